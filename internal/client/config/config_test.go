package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:3000/api/v1", c.APIBaseURL)
	assert.Equal(t, "bookclub.db", c.StoragePath)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:3000/api/v1", cfg.APIBaseURL)
	assert.Equal(t, "bookclub.db", cfg.StoragePath)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}
