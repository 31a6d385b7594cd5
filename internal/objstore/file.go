package objstore

import (
	"io"
	"mime/multipart"

	"github.com/arkivio/filecab/internal/errs"
)

// fallbackContentType is assumed when a caller declares no MIME type.
const fallbackContentType = "application/octet-stream"

// NewInput wraps an already-buffered payload as an UploadInput.
func NewInput(data []byte, name, contentType string) *UploadInput {
	if contentType == "" {
		contentType = fallbackContentType
	}
	return &UploadInput{
		Data:        data,
		Name:        name,
		ContentType: contentType,
		Size:        int64(len(data)),
	}
}

// NewInputFromFileHeader converts a parsed multipart form file into the
// canonical UploadInput. This is the adapter to use inside HTTP handlers;
// the core never sees a framework request type.
func NewInputFromFileHeader(fh *multipart.FileHeader) (*UploadInput, error) {
	if fh == nil {
		return nil, errs.New(errs.ErrKindInvalidInput, "nil multipart file header")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, errs.Wrap(errs.ErrKindInvalidInput, "failed to open multipart file", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errs.Wrap(errs.ErrKindOperationFailed, "failed to read multipart file", err)
	}
	return NewInput(data, fh.Filename, fh.Header.Get("Content-Type")), nil
}

// NewInputFromReader drains r into memory and returns the canonical
// UploadInput. The input is fully materialized before any operation consumes
// it; a read failure from r is returned with r's error on the cause chain.
func NewInputFromReader(r io.Reader, name, contentType string) (*UploadInput, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errs.Wrap(errs.ErrKindOperationFailed, "failed to read upload source", err)
	}
	return NewInput(data, name, contentType), nil
}
