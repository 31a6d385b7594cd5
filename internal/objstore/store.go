// Package objstore defines the typed client contract over an S3-compatible
// object store.
//
// Providers implement the Store interface. Callers depend only on this
// package — never on a specific provider package.
//
// Usage:
//
//	cfg := objstore.DefaultConfig("localhost:9000", "us-east-1", "media")
//	store, err := minio.New(ctx, cfg, nil)
//	if err != nil { ... }
//	defer store.Close()
//
//	res, err := store.Upload(ctx, input, &objstore.UploadOptions{Folder: "avatars"})
package objstore

import (
	"context"
)

// Store is the single interface all object storage providers must implement.
//
// Every method issues exactly one request to the backing store, except
// DeleteMany which fans out over batches. No method retries; backend errors
// propagate with their original identity on the cause chain so callers can
// apply their own retry policy.
type Store interface {
	// Ping verifies the configured bucket is reachable.
	Ping(ctx context.Context) error

	// Close releases any held resources.
	Close() error

	// Upload stores in.Data under the key resolved from in.Name and opts,
	// creating or overwriting exactly one object. A nil opts uploads under
	// the original filename.
	Upload(ctx context.Context, in *UploadInput, opts *UploadOptions) (*UploadResult, error)

	// DownloadStream opens a streaming handle to the object at key.
	// It returns ok=false with a nil error when the object does not exist;
	// every other failure is returned as an error. The caller MUST call
	// Object.Close() after reading.
	DownloadStream(ctx context.Context, key string) (obj Object, ok bool, err error)

	// DownloadBuffer fully drains the object at key into memory.
	// Absence is reported the same way as DownloadStream.
	DownloadBuffer(ctx context.Context, key string) (buf *Buffered, ok bool, err error)

	// Delete removes the object at key. Deleting an absent key succeeds;
	// no existence pre-check is made.
	Delete(ctx context.Context, key string) error

	// DeleteMany removes every object in keys, splitting the input into
	// batches of at most 1000 keys and issuing the batches concurrently.
	// An empty slice is a no-op that issues zero requests. Any single
	// failed delete fails the whole call.
	DeleteMany(ctx context.Context, keys []string) error

	// Copy duplicates the object at srcKey to dstKey server side. When
	// opts.Metadata is non-nil it replaces the destination's metadata
	// wholesale; when nil the destination inherits the source's metadata.
	// There is no atomic rename: a "move" is Copy then Delete, and a
	// failure between the two leaves both objects present.
	Copy(ctx context.Context, srcKey, dstKey string, opts *CopyOptions) error

	// List returns one page of objects under the prefix built from the
	// configured base path, opts.Folder and opts.Prefix. Thread the
	// returned Page.Cursor back through opts.Cursor, unmodified, to
	// continue the same scan.
	List(ctx context.Context, opts ListOptions) (*Page, error)

	// Exists probes for the object at key. A missing object yields
	// (false, nil); permission and transport failures are returned as
	// errors, never conflated with absence.
	Exists(ctx context.Context, key string) (bool, error)

	// SignedURL returns a time-limited URL granting retrieval access to
	// the object at key. The URL is a capability bound to an expiry —
	// never persist it; derive a fresh one per use.
	SignedURL(ctx context.Context, key string, opts *SignOptions) (string, error)
}
