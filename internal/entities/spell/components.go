package spell

import "fmt"

// Components are the verbal, somatic and material components of a spell.
// Implementations: ComponentsNoMaterial, ComponentsStringMaterial,
// ComponentsObjectMaterial.
type Components interface {
	isComponents()
}

// ComponentsNoMaterial has no material component
type ComponentsNoMaterial struct {
	Verbal  bool
	Somatic bool
}

// ComponentsStringMaterial describes its material component as free text
type ComponentsStringMaterial struct {
	Verbal   bool
	Somatic  bool
	Material string
}

// ComponentsObjectMaterial has a structured material component
type ComponentsObjectMaterial struct {
	Verbal   bool
	Somatic  bool
	Material MaterialComponent
}

func (ComponentsNoMaterial) isComponents()     {}
func (ComponentsStringMaterial) isComponents() {}
func (ComponentsObjectMaterial) isComponents() {}

// Consumption says whether casting uses up a material component
type Consumption int

// Consumption values. ConsumeUnspecified means the source says nothing.
const (
	ConsumeUnspecified Consumption = iota
	ConsumeNever
	ConsumeAlways
	ConsumeOptional
)

// value is what Consumption renders as: a boolean, or "optional". ok is
// false when there is nothing to render.
func (c Consumption) value() (v interface{}, ok bool) {
	switch c {
	case ConsumeNever:
		return false, true
	case ConsumeAlways:
		return true, true
	case ConsumeOptional:
		return "optional", true
	default:
		return nil, false
	}
}

// MaterialComponent is a material with an optional cost in copper pieces
type MaterialComponent struct {
	Text string
	// Cost is nil when the source gives none
	Cost    *float64
	Consume Consumption
}

// MaterialTree serializes a structured material component
func MaterialTree(m MaterialComponent) *Tree {
	t := NewTree(TagMaterialComponent).Set("text", m.Text)
	if m.Cost != nil {
		t.Set("cost", *m.Cost)
	}
	if consume, ok := m.Consume.value(); ok {
		t.Set("consume", consume)
	}
	return t
}

// ComponentsTree serializes spell components
func ComponentsTree(c Components) *Tree {
	switch v := c.(type) {
	case ComponentsNoMaterial:
		return NewTree(TagNoMaterial).
			Set("verbal", v.Verbal).
			Set("somatic", v.Somatic)
	case ComponentsStringMaterial:
		return NewTree(TagStringMaterial).
			Set("verbal", v.Verbal).
			Set("somatic", v.Somatic).
			Set("material", v.Material)
	case ComponentsObjectMaterial:
		return NewTree(TagObjectMaterial).
			Set("verbal", v.Verbal).
			Set("somatic", v.Somatic).
			Set("material", MaterialTree(v.Material))
	}
	panic(fmt.Sprintf("spell: unknown components variant %T", c))
}
