// Package document renders spells as tagged YAML documents and names the
// files they are written to
package document

import (
	"bytes"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/chronicles-of-arvandor/spell-converter/internal/entities/spell"
	"github.com/chronicles-of-arvandor/spell-converter/internal/errors"
)

const (
	// RootKey is the single top level key of every document
	RootKey = "spell"
	// Extension is appended to every file name
	Extension = ".yml"

	indent = 2
)

// unsafeFileChars matches every character that may not appear in a file name
var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// FileName derives a file name from a spell's display name. Each character
// outside [A-Za-z0-9._-] becomes an underscore. Distinct names can collide.
func FileName(name string) string {
	return unsafeFileChars.ReplaceAllString(name, "_") + Extension
}

// Encode renders s as a YAML document of the form {spell: <tagged tree>}
func Encode(s *spell.Spell) (data []byte, err error) {
	if s == nil {
		return nil, errors.Internal("serialization error: nil spell")
	}

	defer func() {
		if r := recover(); r != nil {
			data = nil
			err = errors.Internalf("serialization error: %v", r).
				WithMeta(errors.MetaSpell, s.Name)
		}
	}()

	return EncodeTree(s.ToTree())
}

// EncodeTree renders an already built spell tree under the root key
func EncodeTree(tree *spell.Tree) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)

	if err := enc.Encode(map[string]*spell.Tree{RootKey: tree}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "serialization error")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "serialization error")
	}

	return buf.Bytes(), nil
}
