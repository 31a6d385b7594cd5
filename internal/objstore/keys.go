package objstore

import (
	"path"
	"strings"

	"github.com/google/uuid"
)

// BuildKey joins the given segments into a slash-separated object key.
// Empty segments are dropped and redundant slashes collapse, so callers may
// pass "uploads/" and "/uploads" interchangeably. The result never carries a
// leading slash, a trailing slash, or a doubled slash. An all-empty input
// yields "" — surfaced later by the store, not here.
func BuildKey(segments ...string) string {
	var parts []string
	for _, seg := range segments {
		for _, p := range strings.Split(seg, "/") {
			if p != "" {
				parts = append(parts, p)
			}
		}
	}
	return strings.Join(parts, "/")
}

// ResolveName decides the final key and stored filename for an upload.
//
// Priority, strictly:
//  1. opts.Key is used verbatim; the stored name is its last path segment,
//     or originalName when the key has no slash. All other naming options
//     are ignored.
//  2. opts.FileName replaces the original name.
//  3. opts.UniqueName stores under a random 128-bit identifier keeping the
//     original extension. Random rather than timestamp-based: two uploads
//     in the same clock tick must not collide.
//  4. Otherwise the original name is kept.
//
// In cases 2-4 the key is BuildKey(basePath, opts.Folder, name).
func ResolveName(basePath, originalName string, opts *UploadOptions) (key, name string) {
	if opts == nil {
		opts = &UploadOptions{}
	}

	if opts.Key != "" {
		name = originalName
		if i := strings.LastIndex(opts.Key, "/"); i >= 0 {
			name = opts.Key[i+1:]
		}
		return opts.Key, name
	}

	switch {
	case opts.FileName != "":
		name = opts.FileName
	case opts.UniqueName:
		name = uuid.NewString() + path.Ext(originalName)
	default:
		name = originalName
	}
	return BuildKey(basePath, opts.Folder, name), name
}
