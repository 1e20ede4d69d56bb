// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/apex/log"
	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dustin/go-humanize"
)

// ObjectAPI is the subset of the S3 client used by S3Store.
type ObjectAPI interface {
	GetObject(ctx context.Context, params *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3v2.PutObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.PutObjectOutput, error)
}

// S3Store is a Store kept as a single S3 object.
type S3Store struct {
	api    ObjectAPI
	Bucket string
	Key    string
}

func NewS3Store(api ObjectAPI, bucket, key string) *S3Store {
	return &S3Store{api: api, Bucket: bucket, Key: key}
}

// Load reads the object. A missing object is created empty on a best-effort
// basis and yields an empty Cache. Other read failures are returned, since
// flushing over an object we could not read would discard its entries.
func (s *S3Store) Load(ctx context.Context) (*Cache, error) {
	out, err := s.api.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(s.Bucket),
		Key:    awsv2.String(s.Key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if !errors.As(err, &nsk) {
			return nil, fmt.Errorf("failed to get S3 object %s: %w", s, err)
		}

		log.Infof("creating cache object at '%s'", s)
		if err := s.put(ctx, nil); err != nil {
			log.WithError(err).Warnf("failed to create cache at '%s'", s)
		}
		return New(), nil
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read S3 object body %s: %w", s, err)
	}

	c, err := parse(s.String(), data)
	if err != nil {
		return nil, err
	}
	log.Debugf("loaded %d entries from %s (%s)", c.Len(), s, humanize.Bytes(uint64(len(data))))
	return c, nil
}

// Flush overwrites the object with the serialized cache in a single put.
func (s *S3Store) Flush(ctx context.Context, c *Cache) error {
	data, err := Encode(c)
	if err != nil {
		return &FlushError{Step: StepSerialize, Location: s.String(), Err: err}
	}
	if err := s.put(ctx, data); err != nil {
		return &FlushError{Step: StepWrite, Location: s.String(), Err: err}
	}
	log.Debugf("flushed %d entries to %s (%s)", c.Len(), s, humanize.Bytes(uint64(len(data))))
	return nil
}

func (s *S3Store) String() string {
	return s3Scheme + s.Bucket + "/" + s.Key
}

func (s *S3Store) put(ctx context.Context, data []byte) error {
	_, err := s.api.PutObject(ctx, &s3v2.PutObjectInput{
		Bucket:      awsv2.String(s.Bucket),
		Key:         awsv2.String(s.Key),
		Body:        bytes.NewReader(data),
		ContentType: awsv2.String("application/yaml"),
	})
	return err
}
