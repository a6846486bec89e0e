// SPDX-License-Identifier: Apache-2.0

// Package config loads the taskvault client configuration.
//
// Values are merged from three sources, in priority order (earlier sources
// win for fields they set):
//  1. Environment variables (caarlos0/env tags)
//  2. Command-line flags
//  3. An optional JSON file, whose path comes from sources 1 and 2
//
// The merged [StructuredConfig] is reduced to the [ClientConfig] view that
// the client runtime consumes, then validated.
package config
