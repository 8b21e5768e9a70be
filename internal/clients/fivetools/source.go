// Package fivetools reads spell data in the 5etools JSON format and decodes
// it into the spell domain model
package fivetools

import (
	"encoding/json"
	"io"
	"os"

	"github.com/chronicles-of-arvandor/spell-converter/internal/errors"
)

// Load reads a 5etools spell document and returns its records undecoded, in
// source order
func Load(r io.Reader) ([]json.RawMessage, error) {
	var doc struct {
		Spell *[]json.RawMessage `json:"spell"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed spell document")
	}
	if doc.Spell == nil {
		return nil, errors.Missing("spell")
	}
	return *doc.Spell, nil
}

// LoadFile reads a 5etools spell document from disk
func LoadFile(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("input file not found: %s", path)
		}
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer func() { _ = f.Close() }()

	records, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return records, nil
}
