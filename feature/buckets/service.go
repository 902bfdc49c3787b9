package buckets

import (
	"context"

	"bucket-manager/core/storage"

	"go.uber.org/zap"
)

// Service handles bucket level operations and reports their outcome in the log.
type Service struct {
	client *storage.Client
	logger *zap.Logger
}

// NewService creates a new bucket service.
func NewService(client *storage.Client, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// List returns every bucket visible to the configured credentials.
func (s *Service) List(ctx context.Context) ([]storage.BucketInfo, error) {
	buckets, err := s.client.ListBuckets(ctx)
	if err != nil {
		s.logger.Error("Failed to list buckets", zap.Error(err))
		return nil, err
	}
	s.logger.Debug("Listed buckets", zap.Int("count", len(buckets)))
	return buckets, nil
}

// Create creates a bucket, blocking public access when secure is set.
func (s *Service) Create(ctx context.Context, name string, secure bool) error {
	l := s.logger.With(zap.String("bucket", name), zap.Bool("secure", secure))
	if err := s.client.CreateBucket(ctx, name, secure); err != nil {
		l.Error("Failed to create bucket", zap.Error(err))
		return err
	}
	l.Info("Created bucket")
	return nil
}

// Delete deletes an empty bucket.
func (s *Service) Delete(ctx context.Context, name string) error {
	if err := s.client.DeleteBucket(ctx, name); err != nil {
		s.logger.Error("Failed to delete bucket", zap.String("bucket", name), zap.Error(err))
		return err
	}
	s.logger.Info("Deleted bucket", zap.String("bucket", name))
	return nil
}

// BlockPublicAccess enables all public access block flags.
func (s *Service) BlockPublicAccess(ctx context.Context, name string) error {
	if err := s.client.SetPublicAccessBlock(ctx, name); err != nil {
		s.logger.Error("Failed to block public access", zap.String("bucket", name), zap.Error(err))
		return err
	}
	s.logger.Info("Blocked public access", zap.String("bucket", name))
	return nil
}

// AccessBlock returns the current public access block flags.
func (s *Service) AccessBlock(ctx context.Context, name string) (storage.AccessBlock, error) {
	block, err := s.client.PublicAccessBlock(ctx, name)
	if err != nil {
		s.logger.Error("Failed to read public access block", zap.String("bucket", name), zap.Error(err))
		return storage.AccessBlock{}, err
	}
	return block, nil
}
