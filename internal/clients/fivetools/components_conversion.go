package fivetools

import (
	"encoding/json"

	"github.com/chronicles-of-arvandor/spell-converter/internal/entities/spell"
	"github.com/chronicles-of-arvandor/spell-converter/internal/errors"
)

// DecodeComponents decodes a components block. Missing v or s mean false.
// The shape of m picks the variant: absent, null, false or an empty string
// means no material, a string is free text, an object is a structured material.
func DecodeComponents(raw *RawComponents) (spell.Components, error) {
	if raw == nil {
		return nil, errors.Missing("components")
	}

	verbal := raw.V != nil && *raw.V
	somatic := raw.S != nil && *raw.S

	switch kind := jsonKind(raw.M); kind {
	case "absent", "null":
		return spell.ComponentsNoMaterial{Verbal: verbal, Somatic: somatic}, nil

	case "boolean":
		var b bool
		if err := json.Unmarshal(raw.M, &b); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed components.m")
		}
		if b {
			return nil, errors.Decode("components.m", "true")
		}
		return spell.ComponentsNoMaterial{Verbal: verbal, Somatic: somatic}, nil

	case "string":
		var text string
		if err := json.Unmarshal(raw.M, &text); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed components.m")
		}
		if text == "" {
			return spell.ComponentsNoMaterial{Verbal: verbal, Somatic: somatic}, nil
		}
		return spell.ComponentsStringMaterial{Verbal: verbal, Somatic: somatic, Material: text}, nil

	case "object":
		material, err := DecodeMaterial(raw.M)
		if err != nil {
			return nil, err
		}
		return spell.ComponentsObjectMaterial{Verbal: verbal, Somatic: somatic, Material: material}, nil

	default:
		return nil, errors.Decode("components.m", kind)
	}
}

// DecodeMaterial decodes the object form of a material component
func DecodeMaterial(data json.RawMessage) (spell.MaterialComponent, error) {
	var raw RawMaterial
	if err := json.Unmarshal(data, &raw); err != nil {
		return spell.MaterialComponent{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed components.m")
	}

	if raw.Cost != nil && *raw.Cost < 0 {
		return spell.MaterialComponent{}, errors.Decode("components.m.cost", *raw.Cost)
	}

	consume, err := DecodeConsume(raw.Consume)
	if err != nil {
		return spell.MaterialComponent{}, err
	}

	return spell.MaterialComponent{
		Text:    raw.Text,
		Cost:    raw.Cost,
		Consume: consume,
	}, nil
}

// DecodeConsume decodes the consume flag of a material: true, false or the
// string "optional". Absent or null leaves it unspecified.
func DecodeConsume(data json.RawMessage) (spell.Consumption, error) {
	switch kind := jsonKind(data); kind {
	case "absent", "null":
		return spell.ConsumeUnspecified, nil
	case "boolean":
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return spell.ConsumeUnspecified, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed components.m.consume")
		}
		if b {
			return spell.ConsumeAlways, nil
		}
		return spell.ConsumeNever, nil
	case "string":
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return spell.ConsumeUnspecified, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed components.m.consume")
		}
		if s == "optional" {
			return spell.ConsumeOptional, nil
		}
		return spell.ConsumeUnspecified, errors.Decode("components.m.consume", s)
	default:
		return spell.ConsumeUnspecified, errors.Decode("components.m.consume", kind)
	}
}
