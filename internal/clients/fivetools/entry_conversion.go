package fivetools

import (
	"encoding/json"
	"log/slog"
	"sort"
	"strconv"

	"github.com/chronicles-of-arvandor/spell-converter/internal/entities/spell"
	"github.com/chronicles-of-arvandor/spell-converter/internal/errors"
)

// DecodeEntry decodes one entry. A JSON string is a plain paragraph; an
// object is classified by its type field.
func DecodeEntry(data json.RawMessage) (spell.Entry, error) {
	switch kind := jsonKind(data); kind {
	case "string":
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed entry")
		}
		return spell.StringEntry{Value: value}, nil

	case "object":
		var raw RawEntry
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed entry")
		}
		return decodeEntryObject(raw)

	default:
		return nil, errors.Decode("entry", kind)
	}
}

func decodeEntryObject(raw RawEntry) (spell.Entry, error) {
	switch raw.Type {
	case "entries":
		return spell.EntriesEntry{Name: raw.Name, Entries: raw.Entries}, nil
	case "table":
		return spell.TableEntry{
			Caption:   raw.Caption,
			ColLabels: raw.ColLabels,
			ColStyles: raw.ColStyles,
			Rows:      raw.Rows,
		}, nil
	case "list":
		return spell.ListEntry{Items: raw.Items}, nil
	case "inset":
		return spell.InsetEntry{
			Source:  raw.Source,
			Page:    raw.Page,
			Name:    raw.Name,
			Entries: raw.Entries,
		}, nil
	default:
		return nil, errors.Decode("entry type", raw.Type)
	}
}

// DecodeEntries decodes an entry list. A nil list stays nil.
func DecodeEntries(data []json.RawMessage) ([]spell.Entry, error) {
	if data == nil {
		return nil, nil
	}

	entries := make([]spell.Entry, len(data))
	for i, d := range data {
		entry, err := DecodeEntry(d)
		if err != nil {
			return nil, err
		}
		entries[i] = entry
	}
	return entries, nil
}

// DecodeScalingLevelDice normalizes scalingLevelDice, which the source gives
// either as one object or as an array of them, into an ordered slice
func DecodeScalingLevelDice(data json.RawMessage) ([]spell.ScalingLevelDice, error) {
	var raws []RawScalingLevelDice

	switch kind := jsonKind(data); kind {
	case "absent", "null":
		return nil, nil
	case "object":
		var one RawScalingLevelDice
		if err := json.Unmarshal(data, &one); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed scalingLevelDice")
		}
		raws = []RawScalingLevelDice{one}
	case "array":
		if err := json.Unmarshal(data, &raws); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed scalingLevelDice")
		}
	default:
		return nil, errors.Decode("scalingLevelDice", kind)
	}

	dice := make([]spell.ScalingLevelDice, len(raws))
	for i, raw := range raws {
		scaling := make(map[int]string, len(raw.Scaling))
		for key, expr := range raw.Scaling {
			level, err := strconv.Atoi(key)
			if err != nil {
				return nil, errors.Decode("scalingLevelDice.scaling level", key)
			}
			scaling[level] = expr
		}
		dice[i] = spell.ScalingLevelDice{Label: raw.Label, Scaling: scaling}
	}
	return dice, nil
}

// DecodeMeta decodes the meta block. Only ritual is understood; any other
// key is reported on logger and skipped.
func DecodeMeta(data json.RawMessage, logger *slog.Logger) (*spell.Meta, error) {
	switch kind := jsonKind(data); kind {
	case "absent", "null":
		return nil, nil
	case "object":
	default:
		return nil, errors.Decode("meta", kind)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed meta")
	}

	meta := &spell.Meta{}
	if ritual, ok := fields["ritual"]; ok {
		if jsonKind(ritual) != "boolean" {
			return nil, errors.Decode("meta.ritual", string(ritual))
		}
		var b bool
		if err := json.Unmarshal(ritual, &b); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed meta.ritual")
		}
		meta.Ritual = &b
	}

	extra := make([]string, 0, len(fields))
	for key := range fields {
		if key != "ritual" {
			extra = append(extra, key)
		}
	}
	if len(extra) > 0 && logger != nil {
		sort.Strings(extra)
		logger.Warn("ignoring unknown meta keys", "keys", extra)
	}

	return meta, nil
}
