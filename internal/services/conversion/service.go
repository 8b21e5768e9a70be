package conversion

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/chronicles-of-arvandor/spell-converter/internal/clients/fivetools"
	"github.com/chronicles-of-arvandor/spell-converter/internal/encoding/document"
	"github.com/chronicles-of-arvandor/spell-converter/internal/errors"
	"github.com/chronicles-of-arvandor/spell-converter/internal/pkg/clock"
	"github.com/chronicles-of-arvandor/spell-converter/internal/pkg/idgen"
	"github.com/chronicles-of-arvandor/spell-converter/internal/repositories/spells"
)

// DefaultWorkers converts records one at a time
const DefaultWorkers = 1

// Config holds the dependencies and run options of the conversion service
type Config struct {
	Store       spells.Repository
	IDGenerator idgen.Generator
	Logger      *slog.Logger
	Clock       clock.Clock

	// Workers bounds how many records convert at once. Zero means DefaultWorkers.
	Workers         int
	ContinueOnError bool
	// DryRun decodes and renders every record but stores nothing
	DryRun bool
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Store == nil && !c.DryRun {
		vb.RequiredField("Store")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Workers < 0 {
		vb.Field("Workers", "must not be negative")
	}

	return vb.Build()
}

type service struct {
	store           spells.Repository
	decoder         fivetools.Decoder
	logger          *slog.Logger
	clock           clock.Clock
	workers         int
	continueOnError bool
	dryRun          bool
}

// NewService creates a conversion service with the provided dependencies
func NewService(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = DefaultWorkers
	}

	decoder, err := fivetools.NewDecoder(&fivetools.Config{
		IDGenerator: cfg.IDGenerator,
		Logger:      logger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create decoder")
	}

	return &service{
		store:           cfg.Store,
		decoder:         decoder,
		logger:          logger,
		clock:           clk,
		workers:         workers,
		continueOnError: cfg.ContinueOnError,
		dryRun:          cfg.DryRun,
	}, nil
}

// ConvertFile loads a spell file and converts its records
func (s *service) ConvertFile(ctx context.Context, input *ConvertFileInput) (*ConvertFileOutput, error) {
	if input == nil || input.Path == "" {
		return nil, errors.InvalidArgument("input path is required")
	}

	startedAt := s.clock.Now()

	records, err := fivetools.LoadFile(input.Path)
	if err != nil {
		return nil, err
	}

	s.logger.Info("converting spells",
		"path", input.Path,
		"records", len(records),
		"workers", s.workers,
		"dry_run", s.dryRun)

	results := make([]*ConvertSpellOutput, len(records))
	failures := make([]*Failure, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, record := range records {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}

			out, err := s.ConvertSpell(gctx, &ConvertSpellInput{Index: i, Record: record})
			if err == nil {
				results[i] = out
				return nil
			}

			failure := newFailure(i, record, err)
			s.logger.Error("spell conversion failed",
				"index", failure.Index,
				"spell", failure.Name,
				"stage", failure.Stage,
				"error", err)

			if s.continueOnError {
				failures[i] = failure
				return nil
			}
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "conversion aborted")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "conversion canceled")
	}

	output := &ConvertFileOutput{
		Total:     len(records),
		StartedAt: startedAt,
	}
	for i := range records {
		if results[i] != nil {
			output.Results = append(output.Results, results[i])
			output.Converted++
			if results[i].Written {
				output.Written++
			}
		}
		if failures[i] != nil {
			output.Failures = append(output.Failures, *failures[i])
		}
	}
	output.FinishedAt = s.clock.Now()

	s.logger.Info("conversion finished",
		"total", output.Total,
		"converted", output.Converted,
		"written", output.Written,
		"failed", len(output.Failures),
		"duration", output.Duration())

	return output, nil
}

// ConvertSpell runs one record through every stage
func (s *service) ConvertSpell(ctx context.Context, input *ConvertSpellInput) (*ConvertSpellOutput, error) {
	if input == nil || len(input.Record) == 0 {
		return nil, errors.InvalidArgument("record is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "conversion canceled")
	}

	name := recordName(input.Index, input.Record)
	s.logger.Info("parsing spell", "index", input.Index, "spell", name)

	sp, err := s.decoder.DecodeSpell(input.Record)
	if err != nil {
		return nil, stageError(StageDecode, name, err)
	}
	if err := sp.Validate(); err != nil {
		return nil, stageError(StageDecode, name, err)
	}

	s.logger.Debug("serializing spell", "spell", sp.Name, "id", sp.ID)

	doc, err := document.Encode(sp)
	if err != nil {
		return nil, stageError(StageSerialize, sp.Name, err)
	}

	output := &ConvertSpellOutput{
		Index:    input.Index,
		Spell:    sp,
		Document: doc,
	}

	if s.dryRun {
		s.logger.Debug("dry run, not writing spell", "spell", sp.Name)
		return output, nil
	}

	s.logger.Debug("writing spell", "spell", sp.Name, "file", document.FileName(sp.Name))

	saved, err := s.store.Save(ctx, spells.SaveInput{Spell: sp, Document: doc})
	if err != nil {
		return nil, stageError(StageWrite, sp.Name, err)
	}

	output.Key = saved.Key
	output.Location = saved.Location
	output.Written = true

	return output, nil
}

// stageError wraps err so its message names the spell and its metadata
// records where the conversion stopped
func stageError(stage Stage, name string, err error) *errors.Error {
	return errors.Wrapf(err, "%s failed for spell %q", stage, name).
		WithMeta(errors.MetaStage, string(stage)).
		WithMeta(errors.MetaSpell, name)
}

func newFailure(index int, record json.RawMessage, err error) *Failure {
	meta := errors.GetMeta(err)

	name, _ := meta[errors.MetaSpell].(string)
	if name == "" {
		name = recordName(index, record)
	}

	stage, _ := meta[errors.MetaStage].(string)
	if stage == "" {
		stage = string(StageDecode)
	}

	return &Failure{
		Index: index,
		Name:  name,
		Stage: Stage(stage),
		Err:   err,
	}
}

// recordName reads the display name of a record without decoding the rest.
// Records without a usable name are labelled by position.
func recordName(index int, record json.RawMessage) string {
	var head struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(record, &head); err != nil || head.Name == "" {
		return fmt.Sprintf("record #%d", index)
	}
	return head.Name
}
