package fivetools

import "encoding/json"

// RawSpell is a spell record as it appears in 5etools data. Fields whose
// shape varies between records are kept as json.RawMessage and classified
// while decoding.
type RawSpell struct {
	Name       *string         `json:"name"`
	Source     *string         `json:"source"`
	Page       *int            `json:"page"`
	SRD        json.RawMessage `json:"srd"`
	BasicRules bool            `json:"basicRules"`
	Level      *int            `json:"level"`
	School     *string         `json:"school"`
	Time       []RawTime       `json:"time"`
	Range      *RawRange       `json:"range"`
	Components *RawComponents  `json:"components"`
	Duration   []RawDuration   `json:"duration"`

	Meta                json.RawMessage   `json:"meta"`
	Entries             []json.RawMessage `json:"entries"`
	EntriesHigherLevel  []json.RawMessage `json:"entriesHigherLevel"`
	ScalingLevelDice    json.RawMessage   `json:"scalingLevelDice"`
	DamageInflict       []string          `json:"damageInflict"`
	SpellAttack         []string          `json:"spellAttack"`
	ConditionInflict    []string          `json:"conditionInflict"`
	SavingThrow         []string          `json:"savingThrow"`
	AffectsCreatureType []string          `json:"affectsCreatureType"`
	MiscTags            []string          `json:"miscTags"`
	AreaTags            []string          `json:"areaTags"`
}

// RawTime is one casting time
type RawTime struct {
	Number float64 `json:"number"`
	Unit   string  `json:"unit"`
}

// RawRange is the range block
type RawRange struct {
	Type     string       `json:"type"`
	Distance *RawDistance `json:"distance"`
}

// RawDistance is the distance inside a range block
type RawDistance struct {
	Type   string   `json:"type"`
	Amount *float64 `json:"amount"`
}

// RawComponents is the components block. M is a string, an object or absent.
type RawComponents struct {
	V *bool           `json:"v"`
	S *bool           `json:"s"`
	M json.RawMessage `json:"m"`
}

// RawMaterial is the object form of a material component. Consume is a
// boolean or the string "optional".
type RawMaterial struct {
	Text    string          `json:"text"`
	Cost    *float64        `json:"cost"`
	Consume json.RawMessage `json:"consume"`
}

// RawDuration is one duration entry
type RawDuration struct {
	Type          string            `json:"type"`
	Duration      *RawTimedDuration `json:"duration"`
	Concentration bool              `json:"concentration"`
	Ends          []string          `json:"ends"`
}

// RawTimedDuration is the length of a timed duration
type RawTimedDuration struct {
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
}

// RawEntry is the object form of an entry
type RawEntry struct {
	Type      string          `json:"type"`
	Name      *string         `json:"name"`
	Entries   []interface{}   `json:"entries"`
	Caption   *string         `json:"caption"`
	ColLabels []string        `json:"colLabels"`
	ColStyles []string        `json:"colStyles"`
	Rows      [][]interface{} `json:"rows"`
	Items     []interface{}   `json:"items"`
	Source    string          `json:"source"`
	Page      int             `json:"page"`
}

// RawScalingLevelDice is one scaling dice object
type RawScalingLevelDice struct {
	Label   string            `json:"label"`
	Scaling map[string]string `json:"scaling"`
}

// jsonKind reports the JSON type of a raw value: "absent", "null", "string",
// "object", "array", "boolean" or "number"
func jsonKind(raw json.RawMessage) string {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case 'n':
			return "null"
		case '"':
			return "string"
		case '{':
			return "object"
		case '[':
			return "array"
		case 't', 'f':
			return "boolean"
		default:
			return "number"
		}
	}
	return "absent"
}
