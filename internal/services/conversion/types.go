package conversion

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/chronicles-of-arvandor/spell-converter/internal/entities/spell"
)

// Stage names the step of a conversion that failed
type Stage string

// Conversion stages, in the order they run
const (
	StageDecode    Stage = "decode"
	StageSerialize Stage = "serialize"
	StageWrite     Stage = "write"
)

// ConvertFileInput defines the request for converting a spell file
type ConvertFileInput struct {
	Path string
}

// ConvertFileOutput reports on a whole run
type ConvertFileOutput struct {
	Total     int
	Converted int
	Written   int
	// Results holds one entry per converted record, in source order
	Results []*ConvertSpellOutput
	// Failures holds one entry per failed record, in source order
	Failures   []Failure
	StartedAt  time.Time
	FinishedAt time.Time
}

// Duration is how long the run took
func (o *ConvertFileOutput) Duration() time.Duration {
	return o.FinishedAt.Sub(o.StartedAt)
}

// Failure describes one record that could not be converted
type Failure struct {
	Index int
	Name  string
	Stage Stage
	Err   error
}

// Error formats the failure for reporting
func (f Failure) Error() string {
	return fmt.Sprintf("record %d (%s) failed at %s: %v", f.Index, f.Name, f.Stage, f.Err)
}

// Unwrap returns the underlying error
func (f Failure) Unwrap() error {
	return f.Err
}

// ConvertSpellInput defines the request for converting one record
type ConvertSpellInput struct {
	// Index is the record's position in its file, used in reports
	Index  int
	Record json.RawMessage
}

// ConvertSpellOutput defines the result of converting one record
type ConvertSpellOutput struct {
	Index    int
	Spell    *spell.Spell
	Document []byte
	// Key and Location are empty when nothing was written
	Key      string
	Location string
	Written  bool
}
