package spell

import "fmt"

// Duration is how long a spell lasts. Implementations: InstantDuration,
// TimedDuration, PermanentDuration, SpecialDuration.
type Duration interface {
	isDuration()
}

// InstantDuration ends as soon as the spell is cast
type InstantDuration struct{}

// TimedDuration lasts a number of minutes, hours, days or rounds
type TimedDuration struct {
	Type          DurationType
	Amount        float64
	Concentration bool
}

// PermanentDuration lasts until one of its end conditions happens
type PermanentDuration struct {
	Ends []PermanentEnd
}

// SpecialDuration is described only in the spell text
type SpecialDuration struct{}

func (InstantDuration) isDuration()   {}
func (TimedDuration) isDuration()     {}
func (PermanentDuration) isDuration() {}
func (SpecialDuration) isDuration()   {}

// DurationTree serializes a duration
func DurationTree(d Duration) *Tree {
	switch v := d.(type) {
	case InstantDuration:
		return NewTree(TagInstantDuration)
	case TimedDuration:
		return NewTree(TagTimedDuration).
			Set("type", v.Type).
			Set("amount", v.Amount).
			Set("concentration", v.Concentration)
	case PermanentDuration:
		return NewTree(TagPermanentDuration).Set("ends", v.Ends)
	case SpecialDuration:
		return NewTree(TagSpecialDuration)
	}
	panic(fmt.Sprintf("spell: unknown duration variant %T", d))
}
