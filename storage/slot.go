// Package storage persists named slots of serialized state. Each slot holds
// one opaque blob and every write replaces the previous value, so the last
// writer wins. The record collection and the admin-login marker each live in
// their own slot.
package storage

// Slot is a durable key -> blob mapping.
type Slot interface {
	// Read returns the stored blob for key. The second return is false
	// when the slot has never been written.
	Read(key string) ([]byte, bool, error)
	// Write replaces the blob stored under key.
	Write(key string, value []byte) error
	// Delete removes the blob stored under key, if any.
	Delete(key string) error
}
