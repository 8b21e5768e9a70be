// Package idgen provides ID generation utilities
package idgen

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/chronicles-of-arvandor/spell-converter/internal/pkg/idgen Generator

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// Seeded is implemented by generators that derive an ID from stable input
// instead of randomness. Callers that know such input prefer it over Generate.
type Seeded interface {
	Generator
	GenerateFrom(parts ...string) string
}

// SpellNamespace is the UUID namespace for name based spell IDs
var SpellNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://5e.tools/spells"))

// SequentialGenerator generates sequential IDs for testing
type SequentialGenerator struct {
	prefix  string
	counter uint64
}

// NewSequential creates a new sequential generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate creates a new sequential ID
func (g *SequentialGenerator) Generate() string {
	n := atomic.AddUint64(&g.counter, 1)
	if g.prefix != "" {
		return fmt.Sprintf("%s_%d", g.prefix, n)
	}
	return fmt.Sprintf("%d", n)
}

// UUIDGenerator generates random version 4 UUIDs
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a new UUID generator with optional prefix
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate creates a new UUID-based ID
func (g *UUIDGenerator) Generate() string {
	return withPrefix(g.prefix, uuid.New())
}

// NameBasedGenerator generates version 5 UUIDs so the same input always
// yields the same ID across runs
type NameBasedGenerator struct {
	prefix    string
	namespace uuid.UUID
	fallback  Generator
}

// NewNameBased creates a name based generator in the given namespace.
// Generate without input falls back to random UUIDs.
func NewNameBased(prefix string, namespace uuid.UUID) *NameBasedGenerator {
	return &NameBasedGenerator{
		prefix:    prefix,
		namespace: namespace,
		fallback:  NewUUID(prefix),
	}
}

// Generate creates a random ID; there is no input to derive one from
func (g *NameBasedGenerator) Generate() string {
	return g.fallback.Generate()
}

// GenerateFrom derives an ID from parts joined with "/"
func (g *NameBasedGenerator) GenerateFrom(parts ...string) string {
	return withPrefix(g.prefix, uuid.NewSHA1(g.namespace, []byte(strings.Join(parts, "/"))))
}

func withPrefix(prefix string, id uuid.UUID) string {
	if prefix != "" {
		return fmt.Sprintf("%s_%s", prefix, id.String())
	}
	return id.String()
}
