package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvironment(t *testing.T) {
	t.Setenv("CI", "false")

	t.Setenv("ENV", "production")
	assert.Equal(t, Production, GetEnvironment())
	assert.True(t, IsProduction())

	t.Setenv("ENV", "test")
	assert.Equal(t, Test, GetEnvironment())
	assert.True(t, IsTest())

	t.Setenv("ENV", "development")
	assert.Equal(t, Development, GetEnvironment())

	// unrecognized values fall back to development
	t.Setenv("ENV", "staging")
	assert.Equal(t, Development, GetEnvironment())
	assert.True(t, IsDevelopment())
}

func TestCIWinsOverEnv(t *testing.T) {
	t.Setenv("CI", "true")
	t.Setenv("ENV", "production")

	assert.Equal(t, CI, GetEnvironment())
	assert.True(t, IsCI())
	assert.False(t, IsProduction())
}
