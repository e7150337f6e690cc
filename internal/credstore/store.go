// Package credstore holds the client-side credential state: session tokens,
// the cached profile and the role marker. It is the Go counterpart of the
// browser's localStorage, exposed as an injectable key-value interface so
// handlers and tests can swap backends freely.
package credstore

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("credstore: key not found")

// Store is a flat string key-value space. Reads and writes are atomic at
// key granularity; that is the only concurrency guarantee callers get.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type prefixed struct {
	inner  Store
	prefix string
}

// Prefixed namespaces every key under prefix. The bot uses one namespace per
// Telegram chat, so each chat behaves like an independent browser profile.
func Prefixed(inner Store, prefix string) Store {
	return prefixed{inner: inner, prefix: prefix}
}

func (p prefixed) Get(ctx context.Context, key string) (string, error) {
	return p.inner.Get(ctx, p.prefix+key)
}

func (p prefixed) Set(ctx context.Context, key, value string) error {
	return p.inner.Set(ctx, p.prefix+key, value)
}

func (p prefixed) Delete(ctx context.Context, key string) error {
	return p.inner.Delete(ctx, p.prefix+key)
}
