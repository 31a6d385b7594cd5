package minio

import (
	"context"
	"fmt"
	"net/url"

	"github.com/arkivio/filecab/internal/objstore"
)

// SignedURL returns a presigned GET URL for the object at key. The URL is a
// time-boxed capability; it does not touch the object and does not verify
// its existence. TTL defaults to the configured value, opts.TTL overrides
// it per call.
func (d *Driver) SignedURL(ctx context.Context, key string, opts *objstore.SignOptions) (string, error) {
	ttl := d.urlTTL
	var params url.Values
	if opts != nil {
		if opts.TTL > 0 {
			ttl = opts.TTL
		}
		if opts.Disposition != "" {
			params = url.Values{}
			params.Set("response-content-disposition",
				contentDisposition(opts.Disposition, opts.FileName))
		}
	}

	u, err := d.client.PresignedGetObject(ctx, d.cfg.Bucket, key, ttl, params)
	if err != nil {
		return "", mapError(err, "failed to sign object url")
	}
	return u.String(), nil
}

// contentDisposition renders the response-content-disposition value.
// Attachment filenames are percent-encoded into both the legacy quoted form
// and the RFC 5987 filename* form so old and new HTTP clients agree on the
// suggested name.
func contentDisposition(disp objstore.Disposition, fileName string) string {
	if disp != objstore.DispositionAttachment {
		return string(objstore.DispositionInline)
	}
	if fileName == "" {
		return string(objstore.DispositionAttachment)
	}
	enc := url.PathEscape(fileName)
	return fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, enc, enc)
}
