// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer for communicating with the
// managed task backend.
//
// The primary abstraction is [BackendAdapter], which decouples the service
// layer from HTTP. The shipped implementation ([NewHTTPBackendAdapter]) is
// built on resty. All encrypted fields cross this boundary as opaque
// strings; the adapter never encrypts, decrypts, or inspects them.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrConflict] for 409).
// Idempotent reads are retried with exponential backoff on transport
// failures; writes are never retried.
package adapter
