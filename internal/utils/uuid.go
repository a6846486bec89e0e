package utils

import "github.com/google/uuid"

// UUIDGenerator produces record identifiers for tasks and checklist entries
// created client-side, so a record can be cached before the backend
// acknowledges it.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered v7 UUID, falling back to a random v4 if
// v7 generation fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
