// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package cache

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/tripcache/internal/query"
)

// fakeObjects is an in-memory ObjectAPI keyed by bucket/key.
type fakeObjects struct {
	objects map[string][]byte
	getErr  error
	putErr  error
	puts    int
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{objects: map[string][]byte{}}
}

func (f *fakeObjects) GetObject(_ context.Context, in *s3v2.GetObjectInput, _ ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	b, ok := f.objects[*in.Bucket+"/"+*in.Key]
	if !ok {
		return nil, &types.NoSuchKey{Message: awsv2.String("The specified key does not exist.")}
	}
	return &s3v2.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(b))}, nil
}

func (f *fakeObjects) PutObject(_ context.Context, in *s3v2.PutObjectInput, _ ...func(*s3v2.Options)) (*s3v2.PutObjectOutput, error) {
	f.puts++
	if f.putErr != nil {
		return nil, f.putErr
	}
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*in.Bucket+"/"+*in.Key] = b
	return &s3v2.PutObjectOutput{}, nil
}

func TestS3Store_BootstrapAndRoundTrip(t *testing.T) {
	api := newFakeObjects()
	s := NewS3Store(api, "bucket", "trips/cache.yaml")
	ctx := context.Background()

	c, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())

	created, ok := api.objects["bucket/trips/cache.yaml"]
	assert.True(t, ok, "empty object should be created")
	assert.Empty(t, created)

	k := query.Key{Origin: "A", Destination: "B"}
	c.Insert(k, sample())
	require.NoError(t, s.Flush(ctx, c))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.True(t, c.Equal(got))
	assert.Equal(t, "s3://bucket/trips/cache.yaml", s.String())
}

func TestS3Store_BootstrapFailureIsNotFatal(t *testing.T) {
	api := newFakeObjects()
	api.putErr = errors.New("access denied")
	s := NewS3Store(api, "bucket", "cache.yaml")

	c, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())

	err = s.Flush(context.Background(), c)
	var fe *FlushError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, StepWrite, fe.Step)
}

func TestS3Store_ReadErrorIsFatal(t *testing.T) {
	api := newFakeObjects()
	api.getErr = errors.New("forbidden")
	s := NewS3Store(api, "bucket", "cache.yaml")

	_, err := s.Load(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 0, api.puts)
}

func TestS3Store_Corrupted(t *testing.T) {
	api := newFakeObjects()
	api.objects["bucket/cache.yaml"] = []byte("not: [valid")
	s := NewS3Store(api, "bucket", "cache.yaml")

	_, err := s.Load(context.Background())
	var ce *CorruptError
	assert.True(t, errors.As(err, &ce))
}

func TestParseS3Location(t *testing.T) {
	tests := []struct {
		location   string
		wantBucket string
		wantKey    string
		wantErr    bool
	}{
		{location: "s3://b/k", wantBucket: "b", wantKey: "k"},
		{location: "s3://b/dir/cache.yaml", wantBucket: "b", wantKey: "dir/cache.yaml"},
		{location: "s3://b", wantErr: true},
		{location: "s3://b/", wantErr: true},
		{location: "s3:///k", wantErr: true},
		{location: "s3://b/dir/", wantErr: true},
		{location: "/local/path", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			bucket, key, err := ParseS3Location(tt.location)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}
