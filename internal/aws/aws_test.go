// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package aws

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAWSConfig_RegionOverride(t *testing.T) {
	t.Setenv("AWS_CONFIG_FILE", "/nonexistent/aws/config")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/nonexistent/aws/credentials")
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_REGION", "us-east-1")

	cfg, err := LoadAWSConfig(context.Background(), WithRegion("eu-north-1"))
	require.NoError(t, err)
	assert.Equal(t, "eu-north-1", cfg.Region)

	assert.NotNil(t, NewS3(cfg))
}

func TestLoadAWSConfig_InheritsEnvironment(t *testing.T) {
	t.Setenv("AWS_CONFIG_FILE", "/nonexistent/aws/config")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/nonexistent/aws/credentials")
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_REGION", "ap-southeast-2")

	cfg, err := LoadAWSConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ap-southeast-2", cfg.Region)
}

func TestLoadAWSConfig_UnknownProfile(t *testing.T) {
	t.Setenv("AWS_CONFIG_FILE", "/nonexistent/aws/config")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/nonexistent/aws/credentials")
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_REGION", "us-east-1")

	_, err := LoadAWSConfig(context.Background(), WithProfile("nosuchprofile"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nosuchprofile")
}
