package minio

import (
	"bytes"
	"context"
	"io"
	"path"
	"strings"

	miniogo "github.com/minio/minio-go/v7"

	"github.com/arkivio/filecab/internal/errs"
	"github.com/arkivio/filecab/internal/objstore"
)

// Upload resolves the object key from in.Name and opts, then issues a single
// put. No ACL header is ever attached: buckets with enforced ownership
// reject ACL-carrying requests, so the capability is reachable only through
// Raw().
func (d *Driver) Upload(ctx context.Context, in *objstore.UploadInput, opts *objstore.UploadOptions) (*objstore.UploadResult, error) {
	if in == nil {
		return nil, errs.New(errs.ErrKindInvalidInput, "nil upload input")
	}
	if opts == nil {
		opts = &objstore.UploadOptions{}
	}

	key, name := objstore.ResolveName(d.cfg.BasePath, in.Name, opts)

	contentType := opts.ContentType
	if contentType == "" {
		contentType = in.ContentType
	}
	storageClass := opts.StorageClass
	if storageClass == "" {
		storageClass = d.cfg.DefaultStorageClass
	}

	info, err := d.client.PutObject(ctx, d.cfg.Bucket, key,
		bytes.NewReader(in.Data), int64(len(in.Data)),
		miniogo.PutObjectOptions{
			ContentType:  contentType,
			UserMetadata: opts.Metadata,
			StorageClass: storageClass,
		})
	if err != nil {
		return nil, mapError(err, "failed to upload object")
	}

	d.log.With().Str("key", key).Int("size", len(in.Data)).Logger().
		Debug("object uploaded")

	return &objstore.UploadResult{
		Key:          key,
		Name:         name,
		OriginalName: in.Name,
		Size:         int64(len(in.Data)),
		ContentType:  contentType,
		ETag:         trimETag(info.ETag),
		StorageClass: storageClass,
	}, nil
}

// DownloadStream opens a streaming handle to the object at key.
// Absence yields (nil, false, nil); any other failure is returned as an
// error with the SDK error preserved on the cause chain.
func (d *Driver) DownloadStream(ctx context.Context, key string) (objstore.Object, bool, error) {
	obj, err := d.client.GetObject(ctx, d.cfg.Bucket, key, miniogo.GetObjectOptions{})
	if err != nil {
		return nil, false, mapError(err, "failed to get object")
	}

	// The SDK defers the request until the first read; Stat forces it so
	// absence is known before the handle is handed out.
	stat, err := obj.Stat()
	if err != nil {
		obj.Close()
		if isNotFound(err) {
			return nil, false, nil
		}
		return nil, false, mapError(err, "failed to stat object after get")
	}

	return &object{ReadCloser: obj, info: infoFromStat(key, stat)}, true, nil
}

// DownloadBuffer drains the object at key into one contiguous buffer before
// returning — the explicit memory-for-simplicity trade the caller opts into
// by choosing buffer mode.
func (d *Driver) DownloadBuffer(ctx context.Context, key string) (*objstore.Buffered, bool, error) {
	obj, ok, err := d.DownloadStream(ctx, key)
	if err != nil || !ok {
		return nil, ok, err
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, false, mapError(err, "failed to read object body")
	}
	return &objstore.Buffered{Data: data, Info: obj.Info()}, true, nil
}

// Delete removes the object at key. The store's delete is idempotent, so a
// missing key succeeds; no existence pre-check is made that would break
// that guarantee.
func (d *Driver) Delete(ctx context.Context, key string) error {
	err := d.client.RemoveObject(ctx, d.cfg.Bucket, key, miniogo.RemoveObjectOptions{})
	if err != nil {
		return mapError(err, "failed to delete object")
	}
	return nil
}

// Copy duplicates srcKey to dstKey server side; no bytes cross the client.
// Supplied metadata replaces the destination's metadata wholesale; nil
// metadata lets the destination inherit the source's.
func (d *Driver) Copy(ctx context.Context, srcKey, dstKey string, opts *objstore.CopyOptions) error {
	src := miniogo.CopySrcOptions{Bucket: d.cfg.Bucket, Object: srcKey}
	dst := miniogo.CopyDestOptions{Bucket: d.cfg.Bucket, Object: dstKey}
	if opts != nil && opts.Metadata != nil {
		dst.UserMetadata = opts.Metadata
		dst.ReplaceMetadata = true
	}

	if _, err := d.client.CopyObject(ctx, dst, src); err != nil {
		return mapError(err, "failed to copy object")
	}

	d.log.With().Str("src", srcKey).Str("dst", dstKey).Logger().
		Debug("object copied")
	return nil
}

// Exists probes for the object at key. The store's distinguished not-found
// response maps to (false, nil); every other failure — permission, network —
// is re-raised rather than conflated with absence.
func (d *Driver) Exists(ctx context.Context, key string) (bool, error) {
	obj, err := d.client.GetObject(ctx, d.cfg.Bucket, key, miniogo.GetObjectOptions{})
	if err != nil {
		return false, mapError(err, "failed to check object")
	}
	defer obj.Close()

	if _, err := obj.Stat(); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, mapError(err, "failed to check object")
	}
	return true, nil
}

// --- internal types ---

// object wraps a MinIO GetObject response and exposes objstore.Object.
type object struct {
	io.ReadCloser
	info *objstore.ObjectInfo
}

func (o *object) Info() *objstore.ObjectInfo {
	return o.info
}

func infoFromStat(key string, stat miniogo.ObjectInfo) *objstore.ObjectInfo {
	return &objstore.ObjectInfo{
		Key:          key,
		Name:         path.Base(key),
		Size:         stat.Size,
		ContentType:  stat.ContentType,
		ETag:         trimETag(stat.ETag),
		LastModified: stat.LastModified,
		StorageClass: stat.StorageClass,
		Metadata:     map[string]string(stat.UserMetadata),
	}
}

// trimETag strips the surrounding quotes S3 wraps entity tags in.
func trimETag(etag string) string {
	return strings.Trim(etag, `"`)
}
