package fivetools

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"log/slog"
	"strconv"

	"github.com/chronicles-of-arvandor/spell-converter/internal/entities/spell"
	"github.com/chronicles-of-arvandor/spell-converter/internal/errors"
	"github.com/chronicles-of-arvandor/spell-converter/internal/pkg/idgen"
)

//go:generate mockgen -destination=mock/mock_decoder.go -package=fivetoolsmock github.com/chronicles-of-arvandor/spell-converter/internal/clients/fivetools Decoder

// Decoder turns raw 5etools spell records into domain spells
type Decoder interface {
	// DecodeSpell decodes one record from the source "spell" array
	DecodeSpell(data json.RawMessage) (*spell.Spell, error)
}

// Config holds the dependencies of a Decoder
type Config struct {
	IDGenerator idgen.Generator
	Logger      *slog.Logger
}

// Validate checks the config
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

type decoder struct {
	idGen  idgen.Generator
	logger *slog.Logger
}

// NewDecoder creates a Decoder. A nil logger discards output.
func NewDecoder(cfg *Config) (Decoder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &decoder{
		idGen:  cfg.IDGenerator,
		logger: logger,
	}, nil
}

// DecodeSpell decodes one spell record. Any failure is returned with the
// spell's display name attached so it can be reported.
func (d *decoder) DecodeSpell(data json.RawMessage) (*spell.Spell, error) {
	var raw RawSpell
	if err := json.Unmarshal(data, &raw); err != nil {
		// encoding/json keeps filling the record after a type mismatch, so
		// the name is usually still known
		var typeErr *json.UnmarshalTypeError
		if !stderrors.As(err, &typeErr) || typeErr.Field == "" {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed spell record")
		}
		decodeErr := errors.Decode(typeErr.Field, typeErr.Value)
		if raw.Name == nil {
			return nil, decodeErr
		}
		return nil, withSpellName(*raw.Name, decodeErr)
	}

	if raw.Name == nil {
		return nil, errors.Missing("name")
	}
	name := *raw.Name

	s, err := d.decode(name, &raw)
	if err != nil {
		return nil, withSpellName(name, err)
	}
	return s, nil
}

func withSpellName(name string, err error) error {
	return errors.Wrapf(err, "failed to decode spell %q", name).
		WithMeta(errors.MetaSpell, name)
}

func (d *decoder) decode(name string, raw *RawSpell) (*spell.Spell, error) {
	if raw.Level == nil {
		return nil, errors.Missing("level")
	}
	if raw.School == nil {
		return nil, errors.Missing("school")
	}

	school, err := DecodeSchool(*raw.School)
	if err != nil {
		return nil, err
	}

	times, err := DecodeTimes(raw.Time)
	if err != nil {
		return nil, err
	}

	rng, err := DecodeRange(raw.Range)
	if err != nil {
		return nil, err
	}

	components, err := DecodeComponents(raw.Components)
	if err != nil {
		return nil, err
	}

	durations, err := DecodeDurations(raw.Duration)
	if err != nil {
		return nil, err
	}

	srd, err := decodeSRD(raw.SRD)
	if err != nil {
		return nil, err
	}

	meta, err := DecodeMeta(raw.Meta, d.logger.With("spell", name))
	if err != nil {
		return nil, err
	}

	s := &spell.Spell{
		ID:         d.identify(name, raw),
		Name:       name,
		Source:     raw.Source,
		Page:       raw.Page,
		SRD:        srd,
		BasicRules: raw.BasicRules,
		Level:      *raw.Level,
		School:     school,
		Time:       times,
		Range:      rng,
		Components: components,
		Duration:   durations,
		Meta:       meta,
	}

	if s.Entries, err = DecodeEntries(raw.Entries); err != nil {
		return nil, err
	}
	if s.EntriesHigherLevel, err = DecodeEntries(raw.EntriesHigherLevel); err != nil {
		return nil, err
	}
	if s.ScalingLevelDice, err = DecodeScalingLevelDice(raw.ScalingLevelDice); err != nil {
		return nil, err
	}
	if s.DamageInflict, err = DecodeDamageInflict(raw.DamageInflict); err != nil {
		return nil, err
	}
	if s.SpellAttack, err = DecodeSpellAttacks(raw.SpellAttack); err != nil {
		return nil, err
	}
	if s.ConditionInflict, err = DecodeConditionInflict(raw.ConditionInflict); err != nil {
		return nil, err
	}
	if s.SavingThrow, err = DecodeSavingThrow(raw.SavingThrow); err != nil {
		return nil, err
	}
	if s.AffectsCreatureType, err = DecodeAffectsCreatureType(raw.AffectsCreatureType); err != nil {
		return nil, err
	}
	if s.MiscTags, err = DecodeMiscTags(raw.MiscTags); err != nil {
		return nil, err
	}
	if s.AreaTags, err = DecodeAreaTags(raw.AreaTags); err != nil {
		return nil, err
	}

	return s, nil
}

// identify derives the ID from source, name and page when the generator
// supports it, otherwise asks for a fresh one
func (d *decoder) identify(name string, raw *RawSpell) string {
	if seeded, ok := d.idGen.(idgen.Seeded); ok {
		var source, page string
		if raw.Source != nil {
			source = *raw.Source
		}
		if raw.Page != nil {
			page = strconv.Itoa(*raw.Page)
		}
		return seeded.GenerateFrom(source, name, page)
	}
	return d.idGen.Generate()
}

// decodeSRD reads the srd flag. The source uses true for SRD spells and a
// string when the SRD lists the spell under another name; both mean true.
func decodeSRD(data json.RawMessage) (bool, error) {
	switch kind := jsonKind(data); kind {
	case "absent", "null":
		return false, nil
	case "boolean":
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return false, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed srd")
		}
		return b, nil
	case "string":
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return false, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed srd")
		}
		return s != "", nil
	default:
		return false, errors.Decode("srd", kind)
	}
}
