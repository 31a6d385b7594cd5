package minio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkivio/filecab/internal/errs"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want func(error) bool
	}{
		{
			name: "404 status",
			err:  miniogo.ErrorResponse{StatusCode: http.StatusNotFound, Code: "NoSuchKey"},
			want: errs.IsNotFound,
		},
		{
			name: "NoSuchKey code without status",
			err:  miniogo.ErrorResponse{Code: "NoSuchKey"},
			want: errs.IsNotFound,
		},
		{
			name: "access denied",
			err:  miniogo.ErrorResponse{StatusCode: http.StatusForbidden, Code: "AccessDenied"},
			want: errs.IsPermissionDenied,
		},
		{
			name: "bad signature",
			err:  miniogo.ErrorResponse{Code: "SignatureDoesNotMatch"},
			want: errs.IsPermissionDenied,
		},
		{
			name: "invalid object name",
			err:  miniogo.ErrorResponse{StatusCode: http.StatusBadRequest, Code: "InvalidObjectName"},
			want: errs.IsInvalidInput,
		},
		{
			name: "throttling",
			err:  miniogo.ErrorResponse{StatusCode: http.StatusServiceUnavailable, Code: "SlowDown"},
			want: errs.IsTimeout,
		},
		{
			name: "deadline exceeded",
			err:  context.DeadlineExceeded,
			want: errs.IsTimeout,
		},
		{
			name: "context canceled",
			err:  context.Canceled,
			want: errs.IsTimeout,
		},
		{
			name: "other s3 error",
			err:  miniogo.ErrorResponse{StatusCode: http.StatusInternalServerError, Code: "InternalError"},
			want: errs.IsOperationFailed,
		},
		{
			name: "plain network error",
			err:  errors.New("connection refused"),
			want: errs.IsConnectionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := mapError(tt.err, "op failed")
			require.Error(t, mapped)
			assert.True(t, tt.want(mapped), "got kind %s", mapped.Kind)
		})
	}
}

func TestMapError_Nil(t *testing.T) {
	assert.Nil(t, mapError(nil, "nothing"))
}

// The SDK error must stay reachable through the wrap so callers can branch
// on the exact S3 code.
func TestMapError_PreservesSDKError(t *testing.T) {
	sdkErr := miniogo.ErrorResponse{StatusCode: http.StatusForbidden, Code: "AccessDenied"}
	mapped := fmt.Errorf("upload: %w", mapError(sdkErr, "put rejected"))

	var resp miniogo.ErrorResponse
	require.ErrorAs(t, mapped, &resp)
	assert.Equal(t, "AccessDenied", resp.Code)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(miniogo.ErrorResponse{StatusCode: http.StatusNotFound}))
	assert.True(t, isNotFound(miniogo.ErrorResponse{Code: "NoSuchKey"}))
	assert.True(t, isNotFound(miniogo.ErrorResponse{Code: "NoSuchBucket"}))
	assert.False(t, isNotFound(miniogo.ErrorResponse{StatusCode: http.StatusForbidden, Code: "AccessDenied"}))
	assert.False(t, isNotFound(errors.New("connection refused")))
	assert.False(t, isNotFound(nil))
}
