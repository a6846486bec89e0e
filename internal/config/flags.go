package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a backend address (base URL or [host]:[port])
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-cache local cache SQLite file path
//	-refresh-interval background refresh interval (e.g., "5m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var backendAddress string
	var requestTimeout time.Duration
	var cacheDSN string
	var refreshInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&backendAddress, "a", "", "Backend address (base URL or host:port)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&cacheDSN, "cache", "", "Local cache SQLite file path")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Background refresh interval (e.g., 5m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Backend: Backend{
			Address:        backendAddress,
			RequestTimeout: requestTimeout,
		},
		Cache: Cache{
			DSN: cacheDSN,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
