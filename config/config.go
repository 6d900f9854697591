package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath           = "."
	defaultCacheProvider  = CacheProviderBlob
	defaultCacheBucketURL = "mem://"
	defaultInboxSize      = 50

	defaultHTTPHost           = "127.0.0.1"
	defaultMaxRequestBodySize = "100KB"
	defaultWorkerPort         = 8091
	defaultAuditKeyPrefix     = "syncFailures/"
)

// Cache providers understood by the local cache factory.
const (
	CacheProviderBlob  = "blob"
	CacheProviderRedis = "redis"
)

// EnvDevelopment is the env.env value of a local setup.
const EnvDevelopment = "development"

// Pub/Sub providers understood by the event publisher factory.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		// Host defaults to loopback; the stored session is not tied to a caller credential.
		Host               string `json:"host" yaml:"host"`
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// AllowOrigins lists the UI origins allowed to call the API from a browser.
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// API points at the remote storefront backend
	API *APIConfig `json:"api" yaml:"api"`

	// Cache configures the durable local cache
	Cache *CacheConfig `json:"cache" yaml:"cache"`

	// Sync tunes the collection synchronization behaviour
	Sync *SyncConfig `json:"sync" yaml:"sync"`

	// PubSub configuration for sync failure events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Worker configures the sync failure audit worker
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// APIConfig defines where the remote REST collection API lives.
type APIConfig struct {
	// Base URL for cart, wishlist and product routes, e.g. http://localhost:8080/api
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// Base URL for /user/auth routes, e.g. http://localhost:8080
	AuthBaseURL string `json:"authBaseUrl" yaml:"authBaseUrl"`

	// Zero keeps the transport defaults.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// CacheConfig defines the durable local cache backend.
type CacheConfig struct {
	// Provider is "blob" or "redis"
	Provider string `json:"provider" yaml:"provider"`

	// BucketURL for the blob provider (file:///var/lib/storefront?create_dir=true, mem://)
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	Redis RedisConfig `json:"redis" yaml:"redis"`
}

type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	// KeyPrefix must be unique per client; keys are not scoped by user
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// SyncConfig defines collection synchronization options.
type SyncConfig struct {
	// SerializePerKey makes a second mutation on the same product wait for
	// the first one's remote response. Off by default.
	SerializePerKey bool `json:"serializePerKey" yaml:"serializePerKey"`

	// InboxSize bounds the number of undismissed failure notifications kept.
	InboxSize int `json:"inboxSize" yaml:"inboxSize"`
}

// PubSubConfig defines Pub/Sub configuration for sync failure events
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// WorkerConfig defines the push endpoint receiving sync failure events.
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`

	// AuditKeyPrefix namespaces recorded events in the local cache
	AuditKeyPrefix string `json:"auditKeyPrefix" yaml:"auditKeyPrefix"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Env vars override file values: API_BASEURL -> api.baseUrl
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills optional sections and rejects configs the client cannot run with.
func (cfg *Config) applyDefaults() error {
	if cfg.API == nil || strings.TrimSpace(cfg.API.BaseURL) == "" {
		return errors.New("api.baseUrl is required")
	}
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")
	if strings.TrimSpace(cfg.API.AuthBaseURL) == "" {
		cfg.API.AuthBaseURL = strings.TrimSuffix(cfg.API.BaseURL, "/api")
	}
	cfg.API.AuthBaseURL = strings.TrimRight(cfg.API.AuthBaseURL, "/")

	if strings.TrimSpace(cfg.HTTP.Host) == "" {
		cfg.HTTP.Host = defaultHTTPHost
	}
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Cache == nil {
		cfg.Cache = &CacheConfig{}
	}
	if cfg.Cache.Provider == "" {
		cfg.Cache.Provider = defaultCacheProvider
	}
	if cfg.Cache.Provider == CacheProviderBlob && cfg.Cache.BucketURL == "" {
		cfg.Cache.BucketURL = defaultCacheBucketURL
	}

	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.Port == 0 {
		cfg.Worker.Port = defaultWorkerPort
	}
	if cfg.Worker.AuditKeyPrefix == "" {
		cfg.Worker.AuditKeyPrefix = defaultAuditKeyPrefix
	}

	if cfg.Sync == nil {
		cfg.Sync = &SyncConfig{}
	}
	if cfg.Sync.InboxSize <= 0 {
		cfg.Sync.InboxSize = defaultInboxSize
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
