package storage

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscredentials "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go/logging"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// Client issues bucket and object operations against an S3-compatible store.
//
// It holds two handles built from the same endpoint and credentials: a low-level
// request handle (API) and a higher-level resource handle (Resource). Both are
// created once and reused for every call.
type Client struct {
	api           API
	resource      Resource
	endpoint      string
	region        string
	presignExpiry time.Duration
}

// New builds a Client around existing handles.
func New(api API, resource Resource, cfg Config) *Client {
	return &Client{
		api:           api,
		resource:      resource,
		endpoint:      cfg.EndpointURL(),
		region:        cfg.Region,
		presignExpiry: cfg.PresignExpiry(),
	}
}

// NewClient creates both handles from the configuration.
// Missing credentials are not rejected here; the remote service reports them on first use.
func NewClient(ctx context.Context, cfg Config, logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeoutDuration := cfg.timeout()

	// Create custom transport with strict timeouts, shared by both handles
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(awscredentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
		awsconfig.WithHTTPClient(&http.Client{Transport: transport}),
		awsconfig.WithLogger(newSDKLogger(logger)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	api := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.EndpointURL())
		o.UsePathStyle = cfg.PathStyle
	})

	minioClient, err := minio.New(cfg.EndpointHost(), &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.Secure(),
		Region:    region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	cfg.Region = region
	return New(api, &minioClientWrapper{Client: minioClient}, cfg), nil
}

// Endpoint returns the configured endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// PresignExpiry returns the lifetime PresignedURL signs for when asked for requested.
// A non-positive request falls back to the configured default.
func (c *Client) PresignExpiry(requested time.Duration) time.Duration {
	if requested <= 0 {
		return c.presignExpiry
	}
	return requested
}

// newSDKLogger routes aws SDK log lines into zap at debug level.
func newSDKLogger(l *zap.Logger) logging.Logger {
	sugar := l.Named("aws").Sugar()
	return logging.LoggerFunc(func(classification logging.Classification, format string, v ...interface{}) {
		if classification == logging.Warn {
			sugar.Warnf(format, v...)
			return
		}
		sugar.Debugf(format, v...)
	})
}
