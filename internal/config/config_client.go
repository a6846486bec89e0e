package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] for fields left unset by every
// source.
const (
	defaultRequestTimeout  = 30 * time.Second
	defaultCacheDSN        = "taskvault-cache.db"
	defaultRefreshInterval = 5 * time.Minute
)

// ClientBackend holds network settings used by the client transport layer.
type ClientBackend struct {
	// Address is the backend endpoint (base URL or host:port).
	Address string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientCache contains local cache settings for the client.
type ClientCache struct {
	// DSN is the SQLite file path of the local cache.
	DSN string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the refresh worker should run.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Backend contains transport address and timeout.
	Backend ClientBackend
	// Cache contains local cache settings.
	Cache ClientCache
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration. Unset optional fields receive
// defaults; the backend address is required.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Backend: ClientBackend{
			Address:        cfg.Backend.Address,
			RequestTimeout: cfg.Backend.RequestTimeout,
		},
		Cache: ClientCache{
			DSN: cfg.Cache.DSN,
		},
		Workers: ClientWorkers{
			RefreshInterval: cfg.Workers.RefreshInterval,
		},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Backend.RequestTimeout == 0 {
		cfg.Backend.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Cache.DSN == "" {
		cfg.Cache.DSN = defaultCacheDSN
	}
	if cfg.Workers.RefreshInterval == 0 {
		cfg.Workers.RefreshInterval = defaultRefreshInterval
	}
}

func (cfg *ClientConfig) validate() error {
	if cfg.Backend.Address == "" {
		return ErrInvalidBackendConfigs
	}

	if cfg.Cache.DSN == "" {
		return ErrInvalidCacheConfigs
	}

	return nil
}
