package utils

import "github.com/google/uuid"

// UUIDGenerator issues sortable command identifiers. UUIDv7 keeps newly
// created commands roughly time-ordered in the database; the random v4 form
// is the fallback when the monotonic clock source fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
