// Package repository defines the key-value medium the calculation history is
// persisted in. Implementations live in the sub-packages.
package repository

import "context"

// KeyValueStore is a named-record store holding string values.
type KeyValueStore interface {
	// Get returns the value stored under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set creates or replaces the value under key.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	Close(ctx context.Context) error
}
