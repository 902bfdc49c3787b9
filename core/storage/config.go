package storage

import (
	"net/url"
	"strings"
	"time"
)

// Config holds configuration for the storage provider.
type Config struct {
	// Endpoint is the URL of the S3-compatible service (e.g. https://s3.us-west-004.backblazeb2.com).
	Endpoint string `mapstructure:"endpoint" default:"http://localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:""`
	// UseSSL is used when Endpoint carries no scheme.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Region is the location used for signing and bucket creation.
	Region string `mapstructure:"region" default:"us-east-1"`
	// PathStyle forces path-style addressing on the request handle.
	PathStyle bool `mapstructure:"path_style" default:"true"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// PresignExpirySeconds is used when a presign request carries no expiry.
	PresignExpirySeconds int `mapstructure:"presign_expiry_seconds" default:"3600"`
}

// EndpointURL returns the endpoint with a scheme, as the aws SDK expects it.
func (c Config) EndpointURL() string {
	endpoint := strings.TrimRight(c.Endpoint, "/")
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	if c.UseSSL {
		return "https://" + endpoint
	}
	return "http://" + endpoint
}

// EndpointHost returns the endpoint without scheme or path, as minio expects it.
func (c Config) EndpointHost() string {
	u, err := url.Parse(c.EndpointURL())
	if err != nil || u.Host == "" {
		endpoint := strings.TrimPrefix(c.Endpoint, "http://")
		return strings.TrimPrefix(endpoint, "https://")
	}
	return u.Host
}

// Secure reports whether the endpoint is reached over TLS.
func (c Config) Secure() bool {
	return strings.HasPrefix(c.EndpointURL(), "https://")
}

// PresignExpiry returns the default presign lifetime.
func (c Config) PresignExpiry() time.Duration {
	if c.PresignExpirySeconds <= 0 {
		return time.Hour
	}
	return time.Duration(c.PresignExpirySeconds) * time.Second
}

func (c Config) timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
