package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewS3ConfigDefaultBucket(t *testing.T) {
	t.Setenv("S3_BUCKET_NAME", "")
	t.Setenv("AWS_REGION", "us-east-1")

	cfg, err := NewS3Config(context.Background())
	require.NoError(t, err)
	require.NotNil(t, cfg.Client)
	assert.Equal(t, "igala-names-media", cfg.BucketName)
}

func TestNewS3ConfigBucketOverride(t *testing.T) {
	t.Setenv("S3_BUCKET_NAME", "custom-media-bucket")
	t.Setenv("AWS_REGION", "us-east-1")

	cfg, err := NewS3Config(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "custom-media-bucket", cfg.BucketName)
}
