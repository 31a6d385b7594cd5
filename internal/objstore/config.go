package objstore

import (
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/arkivio/filecab/internal/errs"
)

// DefaultURLTTL is the signed URL lifetime applied when the config leaves
// URLTTLSeconds unset.
const DefaultURLTTL = 15 * time.Minute

// Config holds all settings needed to connect to an object storage backend.
// It is immutable for the lifetime of a client instance.
type Config struct {
	// Endpoint is the host:port of the storage server, e.g.
	// "localhost:9000" for local MinIO. Leave empty to target AWS S3 in
	// the configured region.
	Endpoint string `yaml:"endpoint"`

	// Region is the store region identifier. Required.
	Region string `yaml:"region"`

	// Bucket is the bucket every operation targets. Required.
	Bucket string `yaml:"bucket"`

	// AccessKey and SecretKey form an optional static credential pair.
	// When AccessKey is empty, credentials are resolved from the ambient
	// environment (env vars, shared credentials file, instance profile).
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`

	// UseSSL controls whether TLS is used for the connection.
	UseSSL bool `yaml:"use_ssl"`

	// BasePath is a fixed prefix applied to every key this client
	// produces. Leading and trailing slashes are tolerated.
	BasePath string `yaml:"base_path"`

	// DefaultStorageClass is applied to uploads that do not override it.
	// Empty means the store's own default.
	DefaultStorageClass string `yaml:"default_storage_class"`

	// URLTTLSeconds is the default signed URL lifetime in seconds.
	// 0 means DefaultURLTTL.
	URLTTLSeconds int `yaml:"url_ttl_seconds"`
}

// DefaultConfig returns a config targeting endpoint over TLS with ambient
// credential resolution.
func DefaultConfig(endpoint, region, bucket string) *Config {
	return &Config{
		Endpoint: endpoint,
		Region:   region,
		Bucket:   bucket,
		UseSSL:   true,
	}
}

// LoadConfig reads a YAML config file from path.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.ErrKindInvalidInput, "failed to read config file", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, errs.Wrap(errs.ErrKindInvalidInput, "failed to parse config file", err)
	}
	return &cfg, nil
}

// Validate reports the first configuration error, before any network
// activity happens. Drivers call it at construction.
func (c *Config) Validate() error {
	if c == nil {
		return errs.New(errs.ErrKindInvalidInput, "nil config")
	}
	if c.Region == "" {
		return errs.New(errs.ErrKindInvalidInput, "region is required")
	}
	if c.Bucket == "" {
		return errs.New(errs.ErrKindInvalidInput, "bucket is required")
	}
	if c.AccessKey != "" && c.SecretKey == "" {
		return errs.New(errs.ErrKindInvalidInput, "secret key is required when access key is set")
	}
	return nil
}

// URLTTL returns the default signed URL lifetime as a duration.
func (c *Config) URLTTL() time.Duration {
	if c.URLTTLSeconds <= 0 {
		return DefaultURLTTL
	}
	return time.Duration(c.URLTTLSeconds) * time.Second
}
