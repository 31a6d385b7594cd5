package minio

import (
	"testing"
	"time"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
)

func TestTrimETag(t *testing.T) {
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", trimETag(`"d41d8cd98f00b204e9800998ecf8427e"`))
	assert.Equal(t, "abc", trimETag("abc"))
	assert.Equal(t, "", trimETag(""))
}

func TestInfoFromStat(t *testing.T) {
	now := time.Now()
	info := infoFromStat("uploads/avatars/a.jpg", miniogo.ObjectInfo{
		Size:         11,
		ContentType:  "image/jpeg",
		ETag:         `"etag-value"`,
		LastModified: now,
		StorageClass: "STANDARD",
		UserMetadata: miniogo.StringMap{"owner": "alice"},
	})

	assert.Equal(t, "uploads/avatars/a.jpg", info.Key)
	assert.Equal(t, "a.jpg", info.Name)
	assert.Equal(t, int64(11), info.Size)
	assert.Equal(t, "image/jpeg", info.ContentType)
	assert.Equal(t, "etag-value", info.ETag)
	assert.Equal(t, now, info.LastModified)
	assert.Equal(t, "STANDARD", info.StorageClass)
	assert.Equal(t, map[string]string{"owner": "alice"}, info.Metadata)
}
