package utils

import "github.com/google/uuid"

// UUIDGenerator issues client-side message identifiers. Version 7 UUIDs are
// preferred because they sort roughly by creation time, which keeps pending
// records readable in logs.
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
