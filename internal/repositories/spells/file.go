package spells

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chronicles-of-arvandor/spell-converter/internal/encoding/document"
	"github.com/chronicles-of-arvandor/spell-converter/internal/errors"
)

const (
	fileMode = 0o644

	errSpellNil      = "spell cannot be nil"
	errDocumentEmpty = "document cannot be empty"
	errKeyEmpty      = "key cannot be empty"
)

type fileRepository struct {
	dir string
}

// FileConfig contains configuration for the directory-backed repository
type FileConfig struct {
	Dir string
}

// Validate validates the FileConfig. Dir must be an existing directory.
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Dir == "" {
		return errors.InvalidArgument("dir cannot be empty")
	}

	info, err := os.Stat(cfg.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NotFoundf("output directory %s does not exist", cfg.Dir)
		}
		return errors.Wrapf(err, "failed to stat output directory %s", cfg.Dir)
	}
	if !info.IsDir() {
		return errors.InvalidArgumentf("output path %s is not a directory", cfg.Dir)
	}
	return nil
}

// NewFile creates a repository that writes one document file per spell into
// a directory. Spells whose names sanitize to the same file name overwrite
// each other.
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &fileRepository{dir: cfg.Dir}, nil
}

func (r *fileRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Spell == nil {
		return nil, errors.InvalidArgument(errSpellNil)
	}
	if len(input.Document) == 0 {
		return nil, errors.InvalidArgument(errDocumentEmpty)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "save canceled")
	}

	name := document.FileName(input.Spell.Name)
	path := filepath.Join(r.dir, name)

	if err := os.WriteFile(path, input.Document, fileMode); err != nil {
		return nil, errors.Wrapf(err, "failed to write spell %q to %s", input.Spell.Name, path).
			WithMeta(errors.MetaSpell, input.Spell.Name)
	}

	return &SaveOutput{Key: name, Location: path}, nil
}

func (r *fileRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}
	if filepath.Base(input.Key) != input.Key {
		return nil, errors.InvalidArgumentf("key %s must be a bare file name", input.Key)
	}

	data, err := os.ReadFile(filepath.Join(r.dir, input.Key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("document %s not found", input.Key)
		}
		return nil, errors.Wrapf(err, "failed to read document %s", input.Key)
	}

	return &GetOutput{Key: input.Key, Document: data}, nil
}

func (r *fileRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", r.dir)
	}

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasSuffix(e.Name(), document.Extension) {
			keys = append(keys, e.Name())
		}
	}
	sort.Strings(keys)

	return &ListOutput{Keys: keys}, nil
}
