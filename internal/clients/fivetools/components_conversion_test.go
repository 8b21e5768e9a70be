package fivetools

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronicles-of-arvandor/spell-converter/internal/entities/spell"
	"github.com/chronicles-of-arvandor/spell-converter/internal/errors"
)

func decodeComponentsJSON(t *testing.T, data string) (spell.Components, error) {
	t.Helper()
	var raw RawComponents
	require.NoError(t, json.Unmarshal([]byte(data), &raw))
	return DecodeComponents(&raw)
}

func TestDecodeComponents(t *testing.T) {
	fifty := 50.0

	tests := []struct {
		name     string
		input    string
		expected spell.Components
	}{
		{
			name:     "verbal and somatic",
			input:    `{"v": true, "s": true}`,
			expected: spell.ComponentsNoMaterial{Verbal: true, Somatic: true},
		},
		{
			name:     "missing somatic is false",
			input:    `{"v": true}`,
			expected: spell.ComponentsNoMaterial{Verbal: true},
		},
		{
			name:     "missing verbal is false",
			input:    `{"s": true, "m": "a pinch of salt"}`,
			expected: spell.ComponentsStringMaterial{Somatic: true, Material: "a pinch of salt"},
		},
		{
			name:     "empty block",
			input:    `{}`,
			expected: spell.ComponentsNoMaterial{},
		},
		{
			name:     "string material",
			input:    `{"v": true, "s": true, "m": "a tiny ball of bat guano and sulfur"}`,
			expected: spell.ComponentsStringMaterial{Verbal: true, Somatic: true, Material: "a tiny ball of bat guano and sulfur"},
		},
		{
			name:     "null material",
			input:    `{"v": true, "m": null}`,
			expected: spell.ComponentsNoMaterial{Verbal: true},
		},
		{
			name:  "object material",
			input: `{"v": true, "s": true, "m": {"text": "a diamond worth 50 gp", "cost": 50, "consume": true}}`,
			expected: spell.ComponentsObjectMaterial{
				Verbal:  true,
				Somatic: true,
				Material: spell.MaterialComponent{
					Text:    "a diamond worth 50 gp",
					Cost:    &fifty,
					Consume: spell.ConsumeAlways,
				},
			},
		},
		{
			name:  "object material without cost",
			input: `{"v": true, "m": {"text": "a feather"}}`,
			expected: spell.ComponentsObjectMaterial{
				Verbal:   true,
				Material: spell.MaterialComponent{Text: "a feather"},
			},
		},
		{
			name:  "explicitly not consumed",
			input: `{"v": true, "m": {"text": "a sprig of mistletoe", "consume": false}}`,
			expected: spell.ComponentsObjectMaterial{
				Verbal: true,
				Material: spell.MaterialComponent{
					Text:    "a sprig of mistletoe",
					Consume: spell.ConsumeNever,
				},
			},
		},
		{
			name:  "optional consumption",
			input: `{"s": true, "m": {"text": "holy water", "cost": 2500, "consume": "optional"}}`,
			expected: spell.ComponentsObjectMaterial{
				Somatic: true,
				Material: spell.MaterialComponent{
					Text:    "holy water",
					Cost:    floatPtr(2500),
					Consume: spell.ConsumeOptional,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeComponentsJSON(t, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDecodeMaterial_AbsentConsumeIsOmitted(t *testing.T) {
	got, err := decodeComponentsJSON(t, `{"v": true, "m": {"text": "ruby dust", "cost": 50}}`)
	require.NoError(t, err)

	components, ok := got.(spell.ComponentsObjectMaterial)
	require.True(t, ok)
	assert.Equal(t, spell.ConsumeUnspecified, components.Material.Consume)

	tree := spell.MaterialTree(components.Material)
	_, present := tree.Get("consume")
	assert.False(t, present)
	assert.Equal(t, []string{spell.DiscriminantKey, "text", "cost"}, tree.Keys())

	for _, raw := range []json.RawMessage{nil, json.RawMessage(`null`)} {
		consume, err := DecodeConsume(raw)
		require.NoError(t, err)
		assert.Equal(t, spell.ConsumeUnspecified, consume)
	}
}

func TestDecodeComponents_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
	}{
		{"numeric material", `{"v": true, "m": 12}`, "components.m"},
		{"array material", `{"v": true, "m": ["a", "b"]}`, "components.m"},
		{"true material", `{"v": true, "m": true}`, "components.m"},
		{"negative cost", `{"m": {"text": "debt", "cost": -1}}`, "components.m.cost"},
		{"unknown consume", `{"m": {"text": "x", "consume": "sometimes"}}`, "components.m.consume"},
		{"numeric consume", `{"m": {"text": "x", "consume": 1}}`, "components.m.consume"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeComponentsJSON(t, tt.input)
			require.Error(t, err)
			assert.True(t, errors.IsDecode(err))
			assert.Equal(t, tt.field, errors.GetMeta(err)[errors.MetaField])
		})
	}
}

func TestDecodeComponents_Missing(t *testing.T) {
	_, err := DecodeComponents(nil)
	require.Error(t, err)
	assert.Equal(t, "components", errors.GetMeta(err)[errors.MetaField])
}

func floatPtr(f float64) *float64 { return &f }
