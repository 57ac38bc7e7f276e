// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/MKhiriev/go-user-profile/internal/config"
	"github.com/MKhiriev/go-user-profile/internal/logger"
)

// minioObjectStorage is the MinIO client implementation of [ObjectStorage].
type minioObjectStorage struct {
	client *minio.Client
	logger *logger.Logger
}

// NewMinioObjectStorage connects to the S3 compatible service at
// cfg.Endpoint. The region is fixed from cfg so that presigning never looks
// up the bucket location over the network.
func NewMinioObjectStorage(cfg config.Objects, log *logger.Logger) (ObjectStorage, error) {
	endpoint, secure, err := normaliseEndpoint(cfg.Endpoint)
	if err != nil {
		log.Err(err).Str("func", "NewMinioObjectStorage").Msg("invalid object storage endpoint")
		return nil, err
	}

	lookup := minio.BucketLookupAuto
	if cfg.UsePathStyle {
		lookup = minio.BucketLookupPath
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:       secure,
		Region:       cfg.Region,
		BucketLookup: lookup,
	})
	if err != nil {
		log.Err(err).Str("func", "NewMinioObjectStorage").Msg("error creating minio client")
		return nil, fmt.Errorf("error creating minio client: %w", err)
	}

	log.Debug().Str("func", "NewMinioObjectStorage").Str("endpoint", endpoint).Msg("minio object storage created")
	return &minioObjectStorage{client: client, logger: log}, nil
}

// normaliseEndpoint accepts either "host:port" or a URL with an http or
// https scheme and returns the host and whether TLS is used.
func normaliseEndpoint(raw string) (endpoint string, secure bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false, errors.New("empty endpoint")
	}

	if !strings.Contains(raw, "://") {
		return raw, false, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", false, err
	}
	if u.Host == "" {
		return "", false, errors.New("invalid endpoint")
	}
	if u.Path != "" && u.Path != "/" {
		return "", false, errors.New("endpoint must not contain a path")
	}

	return u.Host, u.Scheme == "https", nil
}

// Upload implements [ObjectStorage].
func (m *minioObjectStorage) Upload(ctx context.Context, bucket, key string, body io.ReadSeeker, size int64, contentType string) error {
	_, err := m.client.PutObject(ctx, bucket, key, body, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*minioObjectStorage.Upload").
			Str("bucket", bucket).
			Str("key", key).
			Msg("error uploading object")
		return fmt.Errorf("%w: %w", ErrUploadingObject, err)
	}

	return nil
}

// PresignGet implements [ObjectStorage].
func (m *minioObjectStorage) PresignGet(ctx context.Context, bucket, key string, expires time.Duration) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, bucket, key, expires, nil)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*minioObjectStorage.PresignGet").
			Str("bucket", bucket).
			Str("key", key).
			Msg("error presigning object url")
		return "", fmt.Errorf("%w: %w", ErrPresigningURL, err)
	}

	return u.String(), nil
}
