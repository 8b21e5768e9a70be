package document_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/chronicles-of-arvandor/spell-converter/internal/clients/fivetools"
	"github.com/chronicles-of-arvandor/spell-converter/internal/encoding/document"
	"github.com/chronicles-of-arvandor/spell-converter/internal/entities/spell"
	"github.com/chronicles-of-arvandor/spell-converter/internal/errors"
	"github.com/chronicles-of-arvandor/spell-converter/internal/pkg/idgen"
	"github.com/chronicles-of-arvandor/spell-converter/internal/testutils"
)

func TestFileName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Fireball", "Fireball.yml"},
		{"Melf's Minute Meteors", "Melf_s_Minute_Meteors.yml"},
		{"Tasha's Hideous Laughter", "Tasha_s_Hideous_Laughter.yml"},
		{"Antipathy/Sympathy", "Antipathy_Sympathy.yml"},
		{"Power Word: Kill", "Power_Word__Kill.yml"},
		{"already-safe_name.v2", "already-safe_name.v2.yml"},
		{"Évard's Black Tentacles", "_vard_s_Black_Tentacles.yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, document.FileName(tt.name))
		})
	}
}

func decodeFixture(t *testing.T, record string) *spell.Spell {
	t.Helper()
	decoder, err := fivetools.NewDecoder(&fivetools.Config{IDGenerator: idgen.NewSequential("")})
	require.NoError(t, err)

	s, err := decoder.DecodeSpell(json.RawMessage(record))
	require.NoError(t, err)
	return s
}

func TestEncode_Fireball(t *testing.T) {
	s := decodeFixture(t, testutils.MinimalFireballJSON)

	data, err := document.Encode(s)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "spell:\n  "), "expected two space indent, got:\n%s", data)

	var doc struct {
		Spell struct {
			Tag    string `yaml:"=="`
			ID     string `yaml:"id"`
			Name   string `yaml:"name"`
			Level  int    `yaml:"level"`
			School string `yaml:"school"`
			Range  struct {
				Tag      string `yaml:"=="`
				Distance struct {
					Tag    string `yaml:"=="`
					Amount int    `yaml:"amount"`
				} `yaml:"distance"`
			} `yaml:"range"`
			Components struct {
				Tag      string `yaml:"=="`
				Verbal   bool   `yaml:"verbal"`
				Somatic  bool   `yaml:"somatic"`
				Material string `yaml:"material"`
			} `yaml:"components"`
			Duration []map[string]interface{} `yaml:"duration"`
			Time     []map[string]interface{} `yaml:"time"`
		} `yaml:"spell"`
	}
	require.NoError(t, yaml.Unmarshal(data, &doc))

	assert.Equal(t, spell.TagSpell, doc.Spell.Tag)
	assert.Equal(t, "1", doc.Spell.ID)
	assert.Equal(t, "Fireball", doc.Spell.Name)
	assert.Equal(t, 3, doc.Spell.Level)
	assert.Equal(t, "EVOCATION", doc.Spell.School)
	assert.Equal(t, spell.TagPointRange, doc.Spell.Range.Tag)
	assert.Equal(t, spell.TagDistanceFeet, doc.Spell.Range.Distance.Tag)
	assert.Equal(t, 150, doc.Spell.Range.Distance.Amount)
	assert.Equal(t, spell.TagStringMaterial, doc.Spell.Components.Tag)
	assert.Equal(t, "a tiny ball of bat guano and sulfur", doc.Spell.Components.Material)
	require.Len(t, doc.Spell.Duration, 1)
	assert.Equal(t, spell.TagInstantDuration, doc.Spell.Duration[0]["=="])
	require.Len(t, doc.Spell.Time, 1)
	assert.Equal(t, "ACTION", doc.Spell.Time[0]["unit"])

	assert.Equal(t, "Fireball.yml", document.FileName(s.Name))
}

func TestEncode_AbsentFieldsAreOmitted(t *testing.T) {
	data, err := document.Encode(decodeFixture(t, testutils.MinimalFireballJSON))
	require.NoError(t, err)

	var doc map[string]map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &doc))

	for _, key := range []string{"meta", "entries", "entries-higher-level", "scaling-level-dice", "damage-inflict", "area-tags"} {
		assert.NotContains(t, doc["spell"], key)
	}
}

func TestEncode_HyphenatedKeys(t *testing.T) {
	data, err := document.Encode(decodeFixture(t, testutils.FireballJSON))
	require.NoError(t, err)

	var doc map[string]map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &doc))

	for _, key := range []string{"basic-rules", "entries-higher-level", "damage-inflict", "saving-throw", "misc-tags", "area-tags"} {
		assert.Contains(t, doc["spell"], key)
	}
	assert.Equal(t, []interface{}{"FIRE"}, doc["spell"]["damage-inflict"])
}

func TestEncode_ScalingKeysAscending(t *testing.T) {
	data, err := document.Encode(decodeFixture(t, testutils.FireBoltJSON))
	require.NoError(t, err)

	out := string(data)
	one := strings.Index(out, "1: 1d10")
	five := strings.Index(out, "5: 2d10")
	eleven := strings.Index(out, "11: 3d10")
	seventeen := strings.Index(out, "17: 4d10")

	require.NotEqual(t, -1, one)
	assert.Less(t, one, five)
	assert.Less(t, five, eleven)
	assert.Less(t, eleven, seventeen)
}

func TestEncode_ObjectMaterial(t *testing.T) {
	data, err := document.Encode(decodeFixture(t, testutils.RaiseDeadJSON))
	require.NoError(t, err)

	var doc struct {
		Spell struct {
			Components struct {
				Tag      string `yaml:"=="`
				Material struct {
					Tag     string  `yaml:"=="`
					Text    string  `yaml:"text"`
					Cost    float64 `yaml:"cost"`
					Consume bool    `yaml:"consume"`
				} `yaml:"material"`
			} `yaml:"components"`
		} `yaml:"spell"`
	}
	require.NoError(t, yaml.Unmarshal(data, &doc))

	assert.Equal(t, spell.TagObjectMaterial, doc.Spell.Components.Tag)
	assert.Equal(t, spell.TagMaterialComponent, doc.Spell.Components.Material.Tag)
	assert.Equal(t, 50000.0, doc.Spell.Components.Material.Cost)
	assert.True(t, doc.Spell.Components.Material.Consume)
}

func TestEncode_AbsentOptionalKeysAreOmitted(t *testing.T) {
	record := strings.Replace(testutils.MinimalFireballJSON,
		`"m": "a tiny ball of bat guano and sulfur"`,
		`"m": {"text": "ruby dust", "cost": 50}},
	"meta": {"other": true`, 1)
	s := decodeFixture(t, record)

	data, err := document.Encode(s)
	require.NoError(t, err)

	var doc struct {
		Spell map[string]interface{} `yaml:"spell"`
	}
	require.NoError(t, yaml.Unmarshal(data, &doc))

	assert.NotContains(t, doc.Spell, "source")
	assert.NotContains(t, doc.Spell, "page")

	meta, ok := doc.Spell["meta"].(map[string]interface{})
	require.True(t, ok, "meta block missing:\n%s", data)
	assert.NotContains(t, meta, "ritual")

	components, ok := doc.Spell["components"].(map[string]interface{})
	require.True(t, ok)
	material, ok := components["material"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "ruby dust", material["text"])
	assert.NotContains(t, material, "consume")
}

func TestEncode_IncompleteSpellIsInternalError(t *testing.T) {
	_, err := document.Encode(&spell.Spell{Name: "Half Built"})
	require.Error(t, err)
	assert.True(t, errors.IsInternal(err))
	assert.Contains(t, err.Error(), "serialization error")
	assert.Equal(t, "Half Built", errors.GetMeta(err)[errors.MetaSpell])

	_, err = document.Encode(nil)
	assert.True(t, errors.IsInternal(err))
}
