// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/MKhiriev/go-user-profile/internal/config"
	"github.com/MKhiriev/go-user-profile/internal/logger"
)

var loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

// s3ObjectStorage is the AWS SDK implementation of [ObjectStorage].
type s3ObjectStorage struct {
	client  *s3.Client
	presign *s3.PresignClient
	logger  *logger.Logger
}

// NewS3ObjectStorage builds an S3 client from the default AWS configuration
// chain. Static credentials from cfg take precedence over the chain, and
// cfg.Endpoint redirects the client to an S3 compatible service.
func NewS3ObjectStorage(ctx context.Context, cfg config.Objects, log *logger.Logger) (ObjectStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewS3ObjectStorage").Msg("error loading aws config")
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, s3Options(cfg))

	log.Debug().Str("func", "NewS3ObjectStorage").Str("region", cfg.Region).Msg("s3 object storage created")
	return newS3ObjectStorage(client, log), nil
}

func newS3ObjectStorage(client *s3.Client, log *logger.Logger) *s3ObjectStorage {
	return &s3ObjectStorage{
		client:  client,
		presign: s3.NewPresignClient(client),
		logger:  log,
	}
}

func s3Options(cfg config.Objects) func(*s3.Options) {
	return func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	}
}

// Upload implements [ObjectStorage].
func (s *s3ObjectStorage) Upload(ctx context.Context, bucket, key string, body io.ReadSeeker, size int64, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*s3ObjectStorage.Upload").
			Str("bucket", bucket).
			Str("key", key).
			Msg("error uploading object")
		return fmt.Errorf("%w: %w", ErrUploadingObject, err)
	}

	return nil
}

// PresignGet implements [ObjectStorage].
func (s *s3ObjectStorage) PresignGet(ctx context.Context, bucket, key string, expires time.Duration) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*s3ObjectStorage.PresignGet").
			Str("bucket", bucket).
			Str("key", key).
			Msg("error presigning object url")
		return "", fmt.Errorf("%w: %w", ErrPresigningURL, err)
	}

	return req.URL, nil
}
