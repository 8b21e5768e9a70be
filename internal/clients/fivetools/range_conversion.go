package fivetools

import (
	"github.com/chronicles-of-arvandor/spell-converter/internal/entities/spell"
	"github.com/chronicles-of-arvandor/spell-converter/internal/errors"
)

// DecodeDistance decodes the distance inside a range block
func DecodeDistance(raw *RawDistance) (spell.Distance, error) {
	if raw == nil {
		return nil, errors.Missing("range.distance")
	}

	switch raw.Type {
	case "feet":
		if raw.Amount == nil {
			return nil, errors.Missing("range.distance.amount")
		}
		return spell.DistanceFeet{Amount: *raw.Amount}, nil
	case "miles":
		if raw.Amount == nil {
			return nil, errors.Missing("range.distance.amount")
		}
		return spell.DistanceMile{Amount: *raw.Amount}, nil
	case "self":
		return spell.DistanceSelf{}, nil
	case "touch":
		return spell.DistanceTouch{}, nil
	case "sight":
		return spell.DistanceSight{}, nil
	case "unlimited":
		return spell.DistanceUnlimited{}, nil
	default:
		return nil, errors.Decode("distance type", raw.Type)
	}
}

// DecodeRange decodes a range block. Every shape except special carries a
// distance.
func DecodeRange(raw *RawRange) (spell.Range, error) {
	if raw == nil {
		return nil, errors.Missing("range")
	}

	if raw.Type == "special" {
		return spell.SpecialRange{}, nil
	}

	var build func(spell.Distance) spell.Range
	switch raw.Type {
	case "point":
		build = func(d spell.Distance) spell.Range { return spell.PointRange{Distance: d} }
	case "radius":
		build = func(d spell.Distance) spell.Range { return spell.RadiusRange{Distance: d} }
	case "sphere":
		build = func(d spell.Distance) spell.Range { return spell.SphereRange{Distance: d} }
	case "cone":
		build = func(d spell.Distance) spell.Range { return spell.ConeRange{Distance: d} }
	case "line":
		build = func(d spell.Distance) spell.Range { return spell.LineRange{Distance: d} }
	case "hemisphere":
		build = func(d spell.Distance) spell.Range { return spell.HemisphereRange{Distance: d} }
	case "cube":
		build = func(d spell.Distance) spell.Range { return spell.CubeRange{Distance: d} }
	default:
		return nil, errors.Decode("range type", raw.Type)
	}

	distance, err := DecodeDistance(raw.Distance)
	if err != nil {
		return nil, err
	}
	return build(distance), nil
}
