package id

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_NewID(t *testing.T) {
	t.Parallel()

	g := NewUUIDGenerator()
	a, err := g.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	b, err := g.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if a == b {
		t.Fatalf("expected distinct ids, got %q twice", a)
	}

	parsed, err := uuid.Parse(a)
	if err != nil {
		t.Fatalf("parse id: %v", err)
	}
	if parsed.Version() != 7 {
		t.Fatalf("expected v7 uuid, got v%d", parsed.Version())
	}
}

func TestStaticGenerator(t *testing.T) {
	t.Parallel()

	got, err := StaticGenerator("run-1").NewID()
	if err != nil || got != "run-1" {
		t.Fatalf("unexpected static id %q, %v", got, err)
	}
}
