package identifier

import (
	"context"
	"fmt"
)

// Entity types with generated identifiers.
const (
	TypePatient     = "patient"
	TypeAdmission   = "admission"
	TypeAppointment = "appointment"
	TypeDoctor      = "doctor"
)

var prefixes = map[string]string{
	TypePatient:     "PAT",
	TypeAdmission:   "ADM",
	TypeAppointment: "APT",
	TypeDoctor:      "DOC",
}

// Sequences hands out monotonically increasing values per entity type.
// Next must be atomic across concurrent callers of the same type.
type Sequences interface {
	Next(ctx context.Context, name string) (uint64, error)
}

// Generator mints human-readable entity identifiers: a fixed prefix plus a
// zero-padded sequence number (e.g. PAT000001). Each identifier is minted
// exactly once, before the entity's first persistence.
type Generator struct {
	sequences Sequences
}

// NewGenerator creates an identifier generator backed by the given sequences.
func NewGenerator(sequences Sequences) *Generator {
	return &Generator{sequences: sequences}
}

// Next mints the next identifier for the given entity type.
func (g *Generator) Next(ctx context.Context, entityType string) (string, error) {
	prefix, ok := prefixes[entityType]
	if !ok {
		return "", fmt.Errorf("unknown entity type: %s", entityType)
	}

	n, err := g.sequences.Next(ctx, entityType)
	if err != nil {
		return "", err
	}

	return Format(prefix, n), nil
}

// Format renders an identifier from its prefix and sequence number.
func Format(prefix string, n uint64) string {
	return fmt.Sprintf("%s%06d", prefix, n)
}
