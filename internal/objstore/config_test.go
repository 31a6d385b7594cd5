package objstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkivio/filecab/internal/errs"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{
			name:    "valid minimal",
			cfg:     &Config{Region: "us-east-1", Bucket: "media"},
			wantErr: false,
		},
		{
			name:    "valid with static credentials",
			cfg:     &Config{Region: "us-east-1", Bucket: "media", AccessKey: "ak", SecretKey: "sk"},
			wantErr: false,
		},
		{
			name:    "missing region",
			cfg:     &Config{Bucket: "media"},
			wantErr: true,
		},
		{
			name:    "missing bucket",
			cfg:     &Config{Region: "us-east-1"},
			wantErr: true,
		},
		{
			name:    "access key without secret",
			cfg:     &Config{Region: "us-east-1", Bucket: "media", AccessKey: "ak"},
			wantErr: true,
		},
		{
			name:    "nil config",
			cfg:     nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errs.IsInvalidInput(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("localhost:9000", "us-east-1", "media")
	assert.Equal(t, "localhost:9000", cfg.Endpoint)
	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, "media", cfg.Bucket)
	assert.True(t, cfg.UseSSL)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_URLTTL(t *testing.T) {
	assert.Equal(t, DefaultURLTTL, (&Config{}).URLTTL())
	assert.Equal(t, 90*time.Second, (&Config{URLTTLSeconds: 90}).URLTTL())
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filecab.yaml")
	raw := `
endpoint: s3.eu-west-1.amazonaws.com
region: eu-west-1
bucket: media
use_ssl: true
base_path: uploads
default_storage_class: STANDARD_IA
url_ttl_seconds: 600
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", cfg.Region)
	assert.Equal(t, "media", cfg.Bucket)
	assert.Equal(t, "uploads", cfg.BasePath)
	assert.Equal(t, "STANDARD_IA", cfg.DefaultStorageClass)
	assert.Equal(t, 10*time.Minute, cfg.URLTTL())
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errs.IsInvalidInput(err))

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("region: [unclosed"), 0o600))
	_, err = LoadConfig(path)
	require.Error(t, err)
	assert.True(t, errs.IsInvalidInput(err))
}
