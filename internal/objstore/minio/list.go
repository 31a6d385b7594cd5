package minio

import (
	"context"
	"path"

	miniogo "github.com/minio/minio-go/v7"

	"github.com/arkivio/filecab/internal/objstore"
)

// maxPageSize is the store's per-request listing cap and the default page
// size.
const maxPageSize = 1000

// List returns one page of objects under base path + opts.Folder +
// opts.Prefix. The continuation cursor is the last key of the page; callers
// thread it back unmodified through opts.Cursor. HasMore is probed by
// reading one entry past the requested page size.
func (d *Driver) List(ctx context.Context, opts objstore.ListOptions) (*objstore.Page, error) {
	pageSize := opts.PageSize
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	prefix := objstore.BuildKey(d.cfg.BasePath, opts.Folder)
	if prefix != "" {
		prefix += "/"
	}
	prefix += opts.Prefix

	// Cancel stops the SDK's listing goroutine once the page is full.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Request one entry past the page so HasMore is learned without a
	// second backend round trip.
	listing := d.client.ListObjects(ctx, d.cfg.Bucket, miniogo.ListObjectsOptions{
		Prefix:     prefix,
		Recursive:  true,
		MaxKeys:    pageSize + 1,
		StartAfter: opts.Cursor,
	})

	page := &objstore.Page{}
	for obj := range listing {
		if obj.Err != nil {
			return nil, mapError(obj.Err, "failed to list objects")
		}
		if len(page.Entries) == pageSize {
			page.HasMore = true
			page.Cursor = page.Entries[pageSize-1].Key
			break
		}
		page.Entries = append(page.Entries, objstore.ObjectInfo{
			Key:          obj.Key,
			Name:         path.Base(obj.Key),
			Size:         obj.Size,
			ContentType:  obj.ContentType,
			ETag:         trimETag(obj.ETag),
			LastModified: obj.LastModified,
			StorageClass: obj.StorageClass,
		})
	}
	return page, nil
}
