package testutils

import "encoding/json"

// Sample 5etools spell records. They follow the shape of the published data
// files closely enough to exercise every decoder branch.
const (
	// FireballJSON is a string-material, instant, point-range spell
	FireballJSON = `{
	"name": "Fireball",
	"source": "PHB",
	"page": 241,
	"srd": true,
	"basicRules": true,
	"level": 3,
	"school": "V",
	"time": [{"number": 1, "unit": "action"}],
	"range": {"type": "point", "distance": {"type": "feet", "amount": 150}},
	"components": {"v": true, "s": true, "m": "a tiny ball of bat guano and sulfur"},
	"duration": [{"type": "instant"}],
	"entries": [
		"A bright streak flashes from your pointing finger to a point you choose within range and then blossoms with a low roar into an explosion of flame.",
		"The fire spreads around corners. It ignites flammable objects in the area that aren't being worn or carried."
	],
	"entriesHigherLevel": [
		{"type": "entries", "name": "At Higher Levels", "entries": ["When you cast this spell using a spell slot of 4th level or higher, the damage increases by {@scaledice 8d6|3-9|1d6} for each slot level above 3rd."]}
	],
	"damageInflict": ["fire"],
	"savingThrow": ["dexterity"],
	"miscTags": ["OBJ"],
	"areaTags": ["S"]
}`

	// MinimalFireballJSON is the smallest record the decoder accepts
	MinimalFireballJSON = `{
	"name": "Fireball",
	"school": "V",
	"level": 3,
	"range": {"type": "point", "distance": {"type": "feet", "amount": 150}},
	"components": {"v": true, "s": true, "m": "a tiny ball of bat guano and sulfur"},
	"duration": [{"type": "instant"}],
	"time": [{"number": 1, "unit": "action"}]
}`

	// RaiseDeadJSON has a costed, consumed object material
	RaiseDeadJSON = `{
	"name": "Raise Dead",
	"source": "PHB",
	"page": 270,
	"srd": true,
	"level": 5,
	"school": "N",
	"time": [{"number": 1, "unit": "hour"}],
	"range": {"type": "point", "distance": {"type": "touch"}},
	"components": {"v": true, "s": true, "m": {"text": "a diamond worth at least 500 gp, which the spell consumes", "cost": 50000, "consume": true}},
	"duration": [{"type": "instant"}],
	"entries": ["You return a dead creature you touch to life, provided that it has been dead no longer than 10 days."],
	"miscTags": ["HL"],
	"areaTags": ["ST"]
}`

	// FireBoltJSON is a cantrip with scaling dice given as a single object
	FireBoltJSON = `{
	"name": "Fire Bolt",
	"source": "PHB",
	"page": 242,
	"srd": true,
	"level": 0,
	"school": "V",
	"time": [{"number": 1, "unit": "action"}],
	"range": {"type": "point", "distance": {"type": "feet", "amount": 120}},
	"components": {"v": true, "s": true},
	"duration": [{"type": "instant"}],
	"entries": ["You hurl a mote of fire at a creature or object within range."],
	"scalingLevelDice": {"label": "fire damage", "scaling": {"1": "1d10", "5": "2d10", "11": "3d10", "17": "4d10"}},
	"damageInflict": ["fire"],
	"spellAttack": ["R"],
	"miscTags": ["OBJ", "SCL"],
	"areaTags": ["ST"]
}`

	// DetectMagicJSON is a ritual with concentration and an extra meta key
	DetectMagicJSON = `{
	"name": "Detect Magic",
	"source": "PHB",
	"page": 231,
	"srd": true,
	"level": 1,
	"school": "D",
	"time": [{"number": 1, "unit": "action"}],
	"range": {"type": "radius", "distance": {"type": "feet", "amount": 30}},
	"components": {"v": true, "s": true},
	"duration": [{"type": "timed", "duration": {"type": "minute", "amount": 10}, "concentration": true}],
	"meta": {"ritual": true, "technomagic": true},
	"entries": ["For the duration, you sense the presence of magic within 30 feet of you."],
	"areaTags": ["R"]
}`

	// MelfsMinuteMeteorsJSON has a name that needs sanitizing for a file name
	MelfsMinuteMeteorsJSON = `{
	"name": "Melf's Minute Meteors",
	"source": "XGE",
	"page": 161,
	"level": 3,
	"school": "V",
	"time": [{"number": 1, "unit": "action"}],
	"range": {"type": "point", "distance": {"type": "self"}},
	"components": {"v": true, "s": true, "m": "niter, sulfur, and pine tar formed into a bead"},
	"duration": [{"type": "timed", "duration": {"type": "minute", "amount": 10}, "concentration": true}],
	"entries": ["You create six tiny meteors in your space."],
	"damageInflict": ["fire"],
	"savingThrow": ["dexterity"],
	"areaTags": ["S"]
}`

	// BadSchoolJSON uses a school code outside the vocabulary
	BadSchoolJSON = `{
	"name": "Broken Spell",
	"level": 1,
	"school": "Q",
	"time": [{"number": 1, "unit": "action"}],
	"range": {"type": "special"},
	"components": {"v": true},
	"duration": [{"type": "special"}]
}`
)

// SpellDocument wraps records into a 5etools spell document
func SpellDocument(records ...string) string {
	raws := make([]json.RawMessage, len(records))
	for i, r := range records {
		raws[i] = json.RawMessage(r)
	}
	data, err := json.Marshal(map[string][]json.RawMessage{"spell": raws})
	if err != nil {
		panic(err)
	}
	return string(data)
}
