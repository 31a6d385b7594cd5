// Package minio provides a MinIO-SDK-backed implementation of
// objstore.Store. It speaks to any S3-compatible backend: MinIO itself,
// AWS S3, or anything else honouring the wire protocol.
//
// Usage:
//
//	cfg := objstore.DefaultConfig("localhost:9000", "us-east-1", "media")
//	store, err := minio.New(ctx, cfg, nil)
//	if err != nil { ... }
//	defer store.Close()
//
//	res, err := store.Upload(ctx, input, &objstore.UploadOptions{Folder: "avatars"})
package minio

import (
	"context"
	"fmt"
	"time"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/arkivio/filecab/internal/errs"
	"github.com/arkivio/filecab/internal/logger"
	"github.com/arkivio/filecab/internal/objstore"
)

// Driver is a MinIO implementation of objstore.Store.
// It is stateless across calls and safe for concurrent use by multiple
// goroutines; the only state it holds is the immutable configuration.
type Driver struct {
	client *miniogo.Client
	cfg    *objstore.Config
	log    *logger.Logger
	urlTTL time.Duration
}

var _ objstore.Store = (*Driver)(nil)

// New validates cfg, connects to the store and returns a Driver.
// Configuration errors surface here, before any network activity; the
// connection is then verified with Ping. A nil log falls back to the
// default JSON logger.
func New(ctx context.Context, cfg *objstore.Config, log *logger.Logger) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.New(nil)
	}

	endpoint := cfg.Endpoint
	secure := cfg.UseSSL
	if endpoint == "" {
		endpoint = fmt.Sprintf("s3.%s.amazonaws.com", cfg.Region)
		secure = true
	}

	client, err := miniogo.New(endpoint, &miniogo.Options{
		Creds:  resolveCredentials(cfg),
		Secure: secure,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, errs.Wrap(errs.ErrKindConnectionFailed, "failed to create storage client", err)
	}

	d := &Driver{
		client: client,
		cfg:    cfg,
		log:    log,
		urlTTL: cfg.URLTTL(),
	}

	if err := d.Ping(ctx); err != nil {
		return nil, err
	}

	log.With().Str("bucket", cfg.Bucket).Str("endpoint", endpoint).Logger().
		Debug("connected to object store")

	return d, nil
}

// resolveCredentials prefers the static pair from cfg and otherwise walks
// the ambient chain: environment, shared credentials file, instance profile.
func resolveCredentials(cfg *objstore.Config) *credentials.Credentials {
	if cfg.AccessKey != "" {
		return credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, "")
	}
	return credentials.NewChainCredentials([]credentials.Provider{
		&credentials.EnvAWS{},
		&credentials.FileAWSCredentials{},
		&credentials.IAM{},
	})
}

// Ping verifies the configured bucket is reachable with the configured
// credentials.
func (d *Driver) Ping(ctx context.Context) error {
	ok, err := d.client.BucketExists(ctx, d.cfg.Bucket)
	if err != nil {
		return mapError(err, "ping failed")
	}
	if !ok {
		return errs.New(errs.ErrKindNotFound, "bucket does not exist: "+d.cfg.Bucket)
	}
	return nil
}

// Close is a no-op — the SDK client holds no persistent connections.
func (d *Driver) Close() error {
	return nil
}

// Raw returns the underlying MinIO client for operations this layer
// intentionally does not wrap: ACL headers, multipart upload control,
// bucket administration. Requests made through it bypass the Store
// contracts — no error kind mapping, no key resolution, no ETag
// normalization. ACLs in particular fail against buckets enforcing
// bucket-owner ownership; that hazard is the caller's to manage.
func (d *Driver) Raw() *miniogo.Client {
	return d.client
}
