package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Merge priority: configs appended earlier win for fields they set; later
// configs only fill gaps (mergo does not overwrite non-zero fields).
func TestConfigBuilder_MergePriority(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Backend: Backend{Address: "from-env"}},
		&StructuredConfig{
			Backend: Backend{Address: "from-flags", RequestTimeout: 15 * time.Second},
			Cache:   Cache{DSN: "flags.db"},
		},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Backend.Address)
	assert.Equal(t, 15*time.Second, cfg.Backend.RequestTimeout)
	assert.Equal(t, "flags.db", cfg.Cache.DSN)
}

func TestConfigBuilder_EmptySources(t *testing.T) {
	cfg, err := newConfigBuilder().build()

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestClientConfig_Defaults(t *testing.T) {
	cfg := &ClientConfig{Backend: ClientBackend{Address: "localhost:8080"}}
	cfg.applyDefaults()

	require.NoError(t, cfg.validate())
	assert.Equal(t, defaultRequestTimeout, cfg.Backend.RequestTimeout)
	assert.Equal(t, defaultCacheDSN, cfg.Cache.DSN)
	assert.Equal(t, defaultRefreshInterval, cfg.Workers.RefreshInterval)
}

func TestClientConfig_Validate_MissingAddress(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()

	assert.ErrorIs(t, cfg.validate(), ErrInvalidBackendConfigs)
}
