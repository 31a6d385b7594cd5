package objstore

import (
	"io"
	"time"
)

// UploadInput is the canonical upload payload every adapter produces.
// It is immutable once constructed and never retained after Upload returns.
type UploadInput struct {
	// Data is the full object payload.
	Data []byte

	// Name is the original filename as supplied by the caller.
	Name string

	// ContentType is the declared MIME type (e.g. "image/jpeg").
	ContentType string

	// Size is the byte length of Data.
	Size int64
}

// UploadOptions controls naming and storage of an uploaded object.
type UploadOptions struct {
	// Key, when set, is used verbatim as the final object key. It takes
	// absolute precedence: Folder, FileName and UniqueName are ignored.
	Key string

	// Folder is an optional path segment inserted between the client's
	// base path and the stored filename.
	Folder string

	// FileName, when set, replaces the original filename.
	FileName string

	// UniqueName, when true, stores the object under a freshly generated
	// random identifier carrying the original file's extension. Use it to
	// avoid collisions under concurrent uploads into a shared folder.
	UniqueName bool

	// ContentType overrides the input's declared MIME type.
	ContentType string

	// Metadata is attached to the object as opaque user metadata.
	Metadata map[string]string

	// StorageClass overrides the client's default storage tier.
	StorageClass string
}

// UploadResult describes a stored object. Key is the durable identifier —
// the only field safe to persist long term.
type UploadResult struct {
	Key          string
	Name         string // stored filename
	OriginalName string
	Size         int64
	ContentType  string
	ETag         string // entity tag with surrounding quotes stripped; may be empty
	StorageClass string
}

// ObjectInfo describes a single stored object.
type ObjectInfo struct {
	// Key is the full object path within the bucket.
	Key string

	// Name is the last path segment of Key.
	Name string

	// Size is the byte size of the object.
	Size int64

	// ContentType is the MIME type. May be empty in listing entries.
	ContentType string

	// ETag is the entity tag with surrounding quotes stripped.
	ETag string

	// LastModified is when the object was last written.
	LastModified time.Time

	// StorageClass is the storage tier. May be empty when the backend
	// does not report it.
	StorageClass string

	// Metadata is the object's user metadata. Nil in listing entries.
	Metadata map[string]string
}

// Object is a streaming handle to an object's content.
// The caller MUST call Close() after reading to avoid resource leaks.
type Object interface {
	io.ReadCloser

	// Info returns the metadata for this object.
	Info() *ObjectInfo
}

// Buffered holds an object fully drained into memory, for callers that need
// random access or further binary processing.
type Buffered struct {
	Data []byte
	Info *ObjectInfo
}

// CopyOptions controls metadata handling for server-side copies.
type CopyOptions struct {
	// Metadata, when non-nil, fully replaces the destination's metadata.
	// When nil the destination inherits the source's metadata.
	Metadata map[string]string
}

// ListOptions controls how List filters and paginates results.
type ListOptions struct {
	// Folder restricts the listing to objects under base path + folder.
	Folder string

	// Prefix is an extra key prefix appended after base path and Folder.
	// It may be a partial filename.
	Prefix string

	// PageSize caps the entries per page. Values outside 1..1000 use the
	// store maximum of 1000.
	PageSize int

	// Cursor continues a prior scan. Pass Page.Cursor unmodified; pass ""
	// to start from the beginning. Opaque to the caller.
	Cursor string
}

// Page is one page of listing results.
type Page struct {
	Entries []ObjectInfo

	// Cursor continues the scan when HasMore is true.
	Cursor string

	// HasMore reports whether further pages exist.
	HasMore bool
}

// Disposition selects how a signed URL asks the HTTP client to present the
// object.
type Disposition string

const (
	// DispositionInline renders the object in place.
	DispositionInline Disposition = "inline"

	// DispositionAttachment forces a download.
	DispositionAttachment Disposition = "attachment"
)

// SignOptions controls signed URL generation.
type SignOptions struct {
	// TTL overrides the client's default URL lifetime when positive.
	TTL time.Duration

	// Disposition, when set, is encoded into the response's
	// Content-Disposition header.
	Disposition Disposition

	// FileName suggests a download name. Only meaningful with
	// DispositionAttachment.
	FileName string
}
