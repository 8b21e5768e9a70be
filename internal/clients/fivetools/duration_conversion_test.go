package fivetools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronicles-of-arvandor/spell-converter/internal/entities/spell"
	"github.com/chronicles-of-arvandor/spell-converter/internal/errors"
)

func TestDecodeDuration(t *testing.T) {
	tests := []struct {
		name     string
		raw      RawDuration
		expected spell.Duration
	}{
		{
			name:     "instant",
			raw:      RawDuration{Type: "instant"},
			expected: spell.InstantDuration{},
		},
		{
			name: "timed with concentration",
			raw: RawDuration{
				Type:          "timed",
				Duration:      &RawTimedDuration{Type: "minute", Amount: 10},
				Concentration: true,
			},
			expected: spell.TimedDuration{Type: spell.DurationTypeMinute, Amount: 10, Concentration: true},
		},
		{
			name:     "timed rounds",
			raw:      RawDuration{Type: "timed", Duration: &RawTimedDuration{Type: "round", Amount: 1}},
			expected: spell.TimedDuration{Type: spell.DurationTypeRound, Amount: 1},
		},
		{
			name:     "permanent",
			raw:      RawDuration{Type: "permanent", Ends: []string{"dispel", "trigger"}},
			expected: spell.PermanentDuration{Ends: []spell.PermanentEnd{spell.PermanentEndDispel, spell.PermanentEndTrigger}},
		},
		{
			name:     "special",
			raw:      RawDuration{Type: "special"},
			expected: spell.SpecialDuration{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeDuration(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDecodeDuration_Errors(t *testing.T) {
	tests := []struct {
		name  string
		raw   RawDuration
		field string
	}{
		{"unknown type", RawDuration{Type: "forever"}, "duration type"},
		{"timed without length", RawDuration{Type: "timed"}, "duration.duration"},
		{"timed unknown unit", RawDuration{Type: "timed", Duration: &RawTimedDuration{Type: "week", Amount: 1}}, "duration type"},
		{"permanent without ends", RawDuration{Type: "permanent"}, "duration.ends"},
		{"permanent empty ends", RawDuration{Type: "permanent", Ends: []string{}}, "duration.ends"},
		{"permanent unknown end", RawDuration{Type: "permanent", Ends: []string{"dispel", "death"}}, "end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeDuration(tt.raw)
			require.Error(t, err)
			assert.True(t, errors.IsDecode(err))
			assert.Equal(t, tt.field, errors.GetMeta(err)[errors.MetaField])
		})
	}
}

func TestDecodeDurations_RequiresOne(t *testing.T) {
	_, err := DecodeDurations(nil)
	require.Error(t, err)
	assert.Equal(t, "duration", errors.GetMeta(err)[errors.MetaField])

	got, err := DecodeDurations([]RawDuration{{Type: "instant"}, {Type: "special"}})
	require.NoError(t, err)
	assert.Equal(t, []spell.Duration{spell.InstantDuration{}, spell.SpecialDuration{}}, got)
}

func TestDecodeTimes(t *testing.T) {
	got, err := DecodeTimes([]RawTime{{Number: 1, Unit: "action"}, {Number: 10, Unit: "minute"}})
	require.NoError(t, err)
	assert.Equal(t, []spell.Time{
		{Number: 1, Unit: spell.TimeUnitAction},
		{Number: 10, Unit: spell.TimeUnitMinute},
	}, got)

	_, err = DecodeTimes([]RawTime{})
	require.Error(t, err)
	assert.Equal(t, "time", errors.GetMeta(err)[errors.MetaField])

	_, err = DecodeTimes([]RawTime{{Number: 1, Unit: "turn"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid time unit: turn")
}
