// SPDX-License-Identifier: Apache-2.0

// Package store implements the client's local read cache.
//
// The cache is a small SQLite database mirroring the records last fetched
// from the backend, so the task list renders offline and survives restarts.
// Encrypted fields (task descriptions, checklist labels) are cached exactly
// as received — opaque ciphertext; the cache never holds plaintext for
// them. The backend remains the source of truth; the cache is replaced
// wholesale on every refresh.
package store
