package utils

import "github.com/google/uuid"

// UUIDGenerator issues ids for new users and notes. Version 7 ids sort by
// creation time, which keeps the notes primary key index append-only.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return new(UUIDGenerator)
}

// Generate falls back to a random version 4 id if the clock read fails.
func (*UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
