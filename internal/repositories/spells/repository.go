// Package spells provides the interface for persisting converted spell documents
package spells

//go:generate mockgen -destination=mock/mock_repository.go -package=spellsmock github.com/chronicles-of-arvandor/spell-converter/internal/repositories/spells Repository

import (
	"context"

	"github.com/chronicles-of-arvandor/spell-converter/internal/entities/spell"
)

// Repository defines the interface for spell document persistence
type Repository interface {
	// Save stores the rendered document of a spell, replacing any document
	// already stored under the same location
	// Returns errors.InvalidArgument for a nil spell or empty document
	// Returns errors.Internal or errors.Unavailable for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get reads a stored document back
	// Returns errors.InvalidArgument for an empty key
	// Returns errors.NotFound if nothing is stored under the key
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns the keys of every stored document
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// SaveInput defines the input for saving a document
type SaveInput struct {
	Spell    *spell.Spell
	Document []byte
}

// SaveOutput defines the output for saving a document
type SaveOutput struct {
	// Key reads the document back through Get
	Key string
	// Location is where the document ended up, for reporting
	Location string
}

// GetInput defines the input for reading a document
type GetInput struct {
	Key string
}

// GetOutput defines the output for reading a document
type GetOutput struct {
	Key      string
	Document []byte
}

// ListInput defines the input for listing documents
type ListInput struct{}

// ListOutput defines the output for listing documents
type ListOutput struct {
	Keys []string
}
