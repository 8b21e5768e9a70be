package spell

import "fmt"

// Distance is how far a spell reaches. Implementations: DistanceFeet,
// DistanceMile, DistanceSelf, DistanceTouch, DistanceSight, DistanceUnlimited.
type Distance interface {
	isDistance()
}

// DistanceFeet is a distance measured in feet
type DistanceFeet struct {
	Amount float64
}

// DistanceMile is a distance measured in miles
type DistanceMile struct {
	Amount float64
}

// DistanceSelf is the caster's own space
type DistanceSelf struct{}

// DistanceTouch is a creature or object the caster touches
type DistanceTouch struct{}

// DistanceSight is anything the caster can see
type DistanceSight struct{}

// DistanceUnlimited has no distance limit
type DistanceUnlimited struct{}

func (DistanceFeet) isDistance()      {}
func (DistanceMile) isDistance()      {}
func (DistanceSelf) isDistance()      {}
func (DistanceTouch) isDistance()     {}
func (DistanceSight) isDistance()     {}
func (DistanceUnlimited) isDistance() {}

// Range is the shape of a spell's reach. Every shape except SpecialRange wraps
// a single Distance.
type Range interface {
	isRange()
}

// PointRange targets a point at the given distance
type PointRange struct {
	Distance Distance
}

// RadiusRange is a radius around the caster
type RadiusRange struct {
	Distance Distance
}

// SphereRange is a sphere around the caster
type SphereRange struct {
	Distance Distance
}

// ConeRange is a cone from the caster
type ConeRange struct {
	Distance Distance
}

// LineRange is a line from the caster
type LineRange struct {
	Distance Distance
}

// HemisphereRange is a hemisphere around the caster
type HemisphereRange struct {
	Distance Distance
}

// CubeRange is a cube from the caster
type CubeRange struct {
	Distance Distance
}

// SpecialRange is described only in the spell text
type SpecialRange struct{}

func (PointRange) isRange()      {}
func (RadiusRange) isRange()     {}
func (SphereRange) isRange()     {}
func (ConeRange) isRange()       {}
func (LineRange) isRange()       {}
func (HemisphereRange) isRange() {}
func (CubeRange) isRange()       {}
func (SpecialRange) isRange()    {}

// DistanceTree serializes a distance
func DistanceTree(d Distance) *Tree {
	switch v := d.(type) {
	case DistanceFeet:
		return NewTree(TagDistanceFeet).Set("amount", v.Amount)
	case DistanceMile:
		return NewTree(TagDistanceMile).Set("amount", v.Amount)
	case DistanceSelf:
		return NewTree(TagDistanceSelf)
	case DistanceTouch:
		return NewTree(TagDistanceTouch)
	case DistanceSight:
		return NewTree(TagDistanceSight)
	case DistanceUnlimited:
		return NewTree(TagDistanceUnlimited)
	}
	panic(fmt.Sprintf("spell: unknown distance variant %T", d))
}

// RangeTree serializes a range
func RangeTree(r Range) *Tree {
	switch v := r.(type) {
	case PointRange:
		return NewTree(TagPointRange).Set("distance", DistanceTree(v.Distance))
	case RadiusRange:
		return NewTree(TagRadiusRange).Set("distance", DistanceTree(v.Distance))
	case SphereRange:
		return NewTree(TagSphereRange).Set("distance", DistanceTree(v.Distance))
	case ConeRange:
		return NewTree(TagConeRange).Set("distance", DistanceTree(v.Distance))
	case LineRange:
		return NewTree(TagLineRange).Set("distance", DistanceTree(v.Distance))
	case HemisphereRange:
		return NewTree(TagHemisphereRange).Set("distance", DistanceTree(v.Distance))
	case CubeRange:
		return NewTree(TagCubeRange).Set("distance", DistanceTree(v.Distance))
	case SpecialRange:
		return NewTree(TagSpecialRange)
	}
	panic(fmt.Sprintf("spell: unknown range variant %T", r))
}

// rangeDistance returns the wrapped distance and whether the shape carries one
func rangeDistance(r Range) (Distance, bool) {
	switch v := r.(type) {
	case PointRange:
		return v.Distance, true
	case RadiusRange:
		return v.Distance, true
	case SphereRange:
		return v.Distance, true
	case ConeRange:
		return v.Distance, true
	case LineRange:
		return v.Distance, true
	case HemisphereRange:
		return v.Distance, true
	case CubeRange:
		return v.Distance, true
	}
	return nil, false
}
