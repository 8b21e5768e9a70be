package fivetools

import (
	"github.com/chronicles-of-arvandor/spell-converter/internal/entities/spell"
	"github.com/chronicles-of-arvandor/spell-converter/internal/errors"
)

// DecodeTime decodes one casting time
func DecodeTime(raw RawTime) (spell.Time, error) {
	unit, err := DecodeTimeUnit(raw.Unit)
	if err != nil {
		return spell.Time{}, err
	}
	return spell.Time{Number: raw.Number, Unit: unit}, nil
}

// DecodeTimes decodes the time list. At least one entry is required.
func DecodeTimes(raw []RawTime) ([]spell.Time, error) {
	if len(raw) == 0 {
		return nil, errors.Missing("time")
	}

	times := make([]spell.Time, len(raw))
	for i, t := range raw {
		decoded, err := DecodeTime(t)
		if err != nil {
			return nil, err
		}
		times[i] = decoded
	}
	return times, nil
}

// DecodeDuration decodes one duration entry
func DecodeDuration(raw RawDuration) (spell.Duration, error) {
	switch raw.Type {
	case "instant":
		return spell.InstantDuration{}, nil

	case "timed":
		if raw.Duration == nil {
			return nil, errors.Missing("duration.duration")
		}
		unit, err := DecodeDurationType(raw.Duration.Type)
		if err != nil {
			return nil, err
		}
		return spell.TimedDuration{
			Type:          unit,
			Amount:        raw.Duration.Amount,
			Concentration: raw.Concentration,
		}, nil

	case "permanent":
		if len(raw.Ends) == 0 {
			return nil, errors.Missing("duration.ends")
		}
		ends := make([]spell.PermanentEnd, len(raw.Ends))
		for i, e := range raw.Ends {
			end, err := DecodePermanentEnd(e)
			if err != nil {
				return nil, err
			}
			ends[i] = end
		}
		return spell.PermanentDuration{Ends: ends}, nil

	case "special":
		return spell.SpecialDuration{}, nil

	default:
		return nil, errors.Decode("duration type", raw.Type)
	}
}

// DecodeDurations decodes the duration list. At least one entry is required.
func DecodeDurations(raw []RawDuration) ([]spell.Duration, error) {
	if len(raw) == 0 {
		return nil, errors.Missing("duration")
	}

	durations := make([]spell.Duration, len(raw))
	for i, d := range raw {
		decoded, err := DecodeDuration(d)
		if err != nil {
			return nil, err
		}
		durations[i] = decoded
	}
	return durations, nil
}
