// Package storage keeps the allocation and box list export settings used by
// the HTTP API. Settings live in memory only.
package storage
