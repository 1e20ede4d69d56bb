// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/apex/log"

	awsx "github.com/staranto/tripcache/internal/aws"
)

const s3Scheme = "s3://"

// Store loads and persists a whole Cache at one location.
type Store interface {
	Load(ctx context.Context) (*Cache, error)
	Flush(ctx context.Context, c *Cache) error
	String() string
}

type openOptions struct {
	region  string
	profile string
}

// OpenOption customizes Open.
type OpenOption func(*openOptions)

// WithRegion sets the AWS region used for s3:// locations.
func WithRegion(region string) OpenOption {
	return func(o *openOptions) { o.region = region }
}

// WithProfile sets the AWS shared config profile used for s3:// locations.
func WithProfile(profile string) OpenOption {
	return func(o *openOptions) { o.profile = profile }
}

// Open returns the Store for location. Locations of the form s3://bucket/key
// are kept in S3; anything else is a local file path.
func Open(ctx context.Context, location string, opts ...OpenOption) (Store, error) {
	if location == "" {
		return nil, errors.New("empty cache location")
	}

	if !strings.HasPrefix(location, s3Scheme) {
		return FileStore{Path: location}, nil
	}

	bucket, key, err := ParseS3Location(location)
	if err != nil {
		return nil, err
	}

	var o openOptions
	for _, opt := range opts {
		opt(&o)
	}

	var awsOpts []awsx.Option
	if o.region != "" {
		awsOpts = append(awsOpts, awsx.WithRegion(o.region))
	}
	if o.profile != "" {
		awsOpts = append(awsOpts, awsx.WithProfile(o.profile))
	}

	cfg, err := awsx.LoadAWSConfig(ctx, awsOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	log.Debugf("using S3 cache bucket=%s key=%s region=%s", bucket, key, cfg.Region)

	return NewS3Store(awsx.NewS3(cfg), bucket, key), nil
}

// ParseS3Location splits s3://bucket/key into its parts.
func ParseS3Location(location string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(location, s3Scheme)
	if !ok {
		return "", "", fmt.Errorf("not an S3 location: %s", location)
	}
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" || key == "" || strings.HasSuffix(key, "/") {
		return "", "", fmt.Errorf("invalid S3 location '%s': want s3://bucket/key", location)
	}
	return bucket, key, nil
}
