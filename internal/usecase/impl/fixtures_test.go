package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/localcache"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{Sync: &config.SyncConfig{InboxSize: 10}}
}

// localStores is an in-memory durable cache plus the stores built on it.
type localStores struct {
	cache     repository.LocalCache
	snapshots repository.CartSnapshotRepository
	sessions  repository.SessionRepository
}

func newLocalStores(t *testing.T) localStores {
	t.Helper()

	logger := newTestLogger()
	cache, err := localcache.NewBlobCache(context.Background(), "mem://", logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	return localStores{
		cache:     cache,
		snapshots: localcache.NewCartSnapshotRepository(cache, logger),
		sessions:  localcache.NewSessionRepository(cache),
	}
}

func testSession() *entity.Session {
	return &entity.Session{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		User: entity.User{
			ID:    "user-1",
			Name:  "Jane",
			Email: "jane@example.com",
		},
	}
}

func saveTestSession(t *testing.T, stores localStores) *entity.Session {
	t.Helper()

	session := testSession()
	require.NoError(t, stores.sessions.Save(context.Background(), session))

	return session
}

// newTestNotifications returns a real inbox whose publisher accepts anything.
func newTestNotifications(t *testing.T) usecase.NotificationUsecase {
	t.Helper()

	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().PublishSyncFailure(mock.Anything, mock.Anything).Return(nil).Maybe()

	return NewNotificationService(NotificationServiceParams{
		Config:    newTestConfig(),
		Publisher: publisher,
		Logger:    newTestLogger(),
	})
}
