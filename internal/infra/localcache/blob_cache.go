// Package localcache implements the durable local cache that keeps the cart
// snapshot and the session across restarts of the client.
package localcache

import (
	"context"
	"log/slog"

	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// blobCache stores each key as one object in a gocloud bucket.
type blobCache struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// NewBlobCache opens bucketURL (file:///path?create_dir=true, mem://, or any registered driver).
func NewBlobCache(ctx context.Context, bucketURL string, logger *slog.Logger) (repository.LocalCache, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	logger.Info("Local cache bucket opened", slog.String("bucket_url", bucketURL))

	return &blobCache{bucket: bucket, logger: logger}, nil
}

func (c *blobCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrCacheMiss
		}

		return nil, errors.Wrapf(err, "read %s", key)
	}

	return data, nil
}

func (c *blobCache) Set(ctx context.Context, key string, value []byte) error {
	opts := &blob.WriterOptions{ContentType: "application/json"}
	if err := c.bucket.WriteAll(ctx, key, value, opts); err != nil {
		return errors.Wrapf(err, "write %s", key)
	}

	return nil
}

func (c *blobCache) Delete(ctx context.Context, key string) error {
	if err := c.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "delete %s", key)
	}

	return nil
}

func (c *blobCache) Close() error {
	return errors.WithStack(c.bucket.Close())
}
