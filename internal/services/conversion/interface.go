// Package conversion runs 5etools spell records through decoding, rendering
// and storage
package conversion

import (
	"context"
)

// Service converts spell records into stored documents
//
//go:generate mockgen -destination=mock/mock_service.go -package=conversionmock github.com/chronicles-of-arvandor/spell-converter/internal/services/conversion Service
type Service interface {
	// ConvertFile converts every record of a 5etools spell file.
	// By default the first failing record aborts the run and its error is
	// returned. With ContinueOnError every record is attempted and failures
	// are reported in the output instead.
	ConvertFile(ctx context.Context, input *ConvertFileInput) (*ConvertFileOutput, error)

	// ConvertSpell converts a single record: decode, validate, render, store.
	// Errors carry the failing stage and the spell name as metadata.
	ConvertSpell(ctx context.Context, input *ConvertSpellInput) (*ConvertSpellOutput, error)
}
