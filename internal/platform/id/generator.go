package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator creates run identifiers for reports and log correlation.
type Generator interface {
	NewID() (string, error)
}

// UUIDGenerator issues time-ordered v7 UUIDs so report files sort by run.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	v, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("new uuid: %w", err)
	}

	return v.String(), nil
}

// StaticGenerator always returns the same id. Reruns that must be byte
// identical use it.
type StaticGenerator string

func (g StaticGenerator) NewID() (string, error) {
	return string(g), nil
}
