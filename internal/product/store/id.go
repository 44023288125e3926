package store

import "github.com/google/uuid"

// IDGenerator produces identifiers for products saved without one.
type IDGenerator interface {
	NewID() uuid.UUID
}

// IDGeneratorFunc adapts a plain function to IDGenerator.
type IDGeneratorFunc func() uuid.UUID

// NewID calls f.
func (f IDGeneratorFunc) NewID() uuid.UUID {
	return f()
}

// RandomIDGenerator generates random (version 4) UUIDs.
type RandomIDGenerator struct{}

// NewID returns a new random UUID.
func (RandomIDGenerator) NewID() uuid.UUID {
	return uuid.New()
}
