// Package cache stores rendered artifacts keyed by a hash of their input.
//
// Graphviz layouts of large worlds are slow and fully determined by the DOT
// source, so the render path looks a layout up by [Key] before computing it.
// Entries never expire; stale keys simply stop being requested.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
)

// Cache is a byte store keyed by opaque strings.
type Cache interface {
	// Get returns the stored bytes and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte) error
}

// Key derives a cache key from a namespace and the exact input bytes.
func Key(namespace string, input []byte) string {
	h := sha256.New()
	h.Write([]byte(namespace))
	h.Write([]byte{0})
	h.Write(input)
	return hex.EncodeToString(h.Sum(nil))
}

// NullCache never stores anything.
type NullCache struct{}

func (NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte) error         { return nil }

var _ Cache = NullCache{}
