// Package spell holds the normalized spell model and its tagged serialization.
//
// Each variant family (Distance, Range, Components, Duration, Entry) is a sealed
// interface. Serialization happens in one exhaustive switch per family, so adding
// a variant means adding the type and one case.
package spell

import (
	"github.com/chronicles-of-arvandor/spell-converter/internal/errors"
)

// Level bounds
const (
	MinLevel = 0
	MaxLevel = 9
)

// Time is one way of casting a spell, e.g. 1 action
type Time struct {
	Number float64
	Unit   TimeUnit
}

// Meta holds flags from the source metadata block. Ritual is nil when the
// block has no ritual key.
type Meta struct {
	Ritual *bool
}

// IsRitual reports whether the spell can be cast as a ritual
func (m *Meta) IsRitual() bool {
	return m != nil && m.Ritual != nil && *m.Ritual
}

// ScalingLevelDice maps a character level to the dice a cantrip rolls at that level
type ScalingLevelDice struct {
	Label   string
	Scaling map[int]string
}

// Spell is a fully decoded spell. Optional slices are nil when the source
// omits them and non-nil (possibly empty) when it provides them.
type Spell struct {
	ID         string
	Name       string
	Source     *string
	Page       *int
	SRD        bool
	BasicRules bool
	Level      int
	School     School
	Time       []Time
	Range      Range
	Components Components
	Duration   []Duration

	Meta                *Meta
	Entries             []Entry
	EntriesHigherLevel  []Entry
	ScalingLevelDice    []ScalingLevelDice
	DamageInflict       []DamageType
	SpellAttack         []SpellAttack
	ConditionInflict    []Condition
	SavingThrow         []Ability
	AffectsCreatureType []CreatureType
	MiscTags            []MiscTag
	AreaTags            []AreaTag
}

// Validate checks the invariants every decoded spell must hold
func (s *Spell) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("id", s.ID, vb)
	errors.ValidateRequired("name", s.Name, vb)
	errors.ValidateRange("level", s.Level, MinLevel, MaxLevel, vb)

	if len(s.Time) == 0 {
		vb.RequiredField("time")
	}
	if len(s.Duration) == 0 {
		vb.RequiredField("duration")
	}

	if s.Range == nil {
		vb.RequiredField("range")
	} else if d, ok := rangeDistance(s.Range); ok && d == nil {
		vb.RequiredField("range.distance")
	}

	switch c := s.Components.(type) {
	case nil:
		vb.RequiredField("components")
	case ComponentsObjectMaterial:
		if c.Material.Cost != nil && *c.Material.Cost < 0 {
			vb.Field("components.m.cost", "must not be negative")
		}
	}

	for i, d := range s.Duration {
		switch v := d.(type) {
		case nil:
			vb.Fieldf("duration", "entry %d is empty", i)
		case PermanentDuration:
			if len(v.Ends) == 0 {
				vb.Fieldf("duration", "entry %d has no ends", i)
			}
		}
	}

	for i, e := range s.Entries {
		if e == nil {
			vb.Fieldf("entries", "entry %d is empty", i)
		}
	}
	for i, e := range s.EntriesHigherLevel {
		if e == nil {
			vb.Fieldf("entriesHigherLevel", "entry %d is empty", i)
		}
	}

	return vb.Build()
}

// TimeTree serializes a casting time
func TimeTree(t Time) *Tree {
	return NewTree(TagTime).
		Set("number", t.Number).
		Set("unit", t.Unit)
}

// MetaTree serializes the metadata block
func MetaTree(m Meta) *Tree {
	t := NewTree(TagMeta)
	if m.Ritual != nil {
		t.Set("ritual", *m.Ritual)
	}
	return t
}

// ScalingLevelDiceTree serializes scaling dice. The YAML encoder writes the
// level keys in ascending numeric order.
func ScalingLevelDiceTree(d ScalingLevelDice) *Tree {
	return NewTree(TagScalingLevelDice).
		Set("label", d.Label).
		Set("scaling", d.Scaling)
}

// ToTree serializes the spell. Absent optional fields are left out.
func (s *Spell) ToTree() *Tree {
	t := NewTree(TagSpell).
		Set("id", s.ID).
		Set("name", s.Name).
		SetOptional("source", deref(s.Source), s.Source != nil).
		SetOptional("page", derefInt(s.Page), s.Page != nil).
		Set("srd", s.SRD).
		Set("basic-rules", s.BasicRules).
		Set("level", s.Level).
		Set("school", s.School)

	times := make([]*Tree, len(s.Time))
	for i, tm := range s.Time {
		times[i] = TimeTree(tm)
	}
	t.Set("time", times)

	t.Set("range", RangeTree(s.Range))
	t.Set("components", ComponentsTree(s.Components))

	durations := make([]*Tree, len(s.Duration))
	for i, d := range s.Duration {
		durations[i] = DurationTree(d)
	}
	t.Set("duration", durations)

	if s.Meta != nil {
		t.Set("meta", MetaTree(*s.Meta))
	}
	if s.Entries != nil {
		t.Set("entries", EntryTrees(s.Entries))
	}
	if s.EntriesHigherLevel != nil {
		t.Set("entries-higher-level", EntryTrees(s.EntriesHigherLevel))
	}
	if s.ScalingLevelDice != nil {
		dice := make([]*Tree, len(s.ScalingLevelDice))
		for i, d := range s.ScalingLevelDice {
			dice[i] = ScalingLevelDiceTree(d)
		}
		t.Set("scaling-level-dice", dice)
	}

	t.SetOptional("damage-inflict", s.DamageInflict, s.DamageInflict != nil)
	t.SetOptional("spell-attack", s.SpellAttack, s.SpellAttack != nil)
	t.SetOptional("condition-inflict", s.ConditionInflict, s.ConditionInflict != nil)
	t.SetOptional("saving-throw", s.SavingThrow, s.SavingThrow != nil)
	t.SetOptional("affects-creature-type", s.AffectsCreatureType, s.AffectsCreatureType != nil)
	t.SetOptional("misc-tags", s.MiscTags, s.MiscTags != nil)
	t.SetOptional("area-tags", s.AreaTags, s.AreaTags != nil)

	return t
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
