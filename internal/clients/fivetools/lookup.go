package fivetools

import (
	"github.com/chronicles-of-arvandor/spell-converter/internal/entities/spell"
	"github.com/chronicles-of-arvandor/spell-converter/internal/errors"
)

// Source short codes mapped to canonical tags. Lookups are exact: no case
// folding, no prefix matching, no default.
var (
	schools = map[string]spell.School{
		"A": spell.SchoolAbjuration,
		"C": spell.SchoolConjuration,
		"D": spell.SchoolDivination,
		"E": spell.SchoolEnchantment,
		"V": spell.SchoolEvocation,
		"I": spell.SchoolIllusion,
		"N": spell.SchoolNecromancy,
		"T": spell.SchoolTransmutation,
	}

	timeUnits = map[string]spell.TimeUnit{
		"action":   spell.TimeUnitAction,
		"bonus":    spell.TimeUnitBonus,
		"reaction": spell.TimeUnitReaction,
		"minute":   spell.TimeUnitMinute,
		"hour":     spell.TimeUnitHour,
	}

	durationTypes = map[string]spell.DurationType{
		"minute": spell.DurationTypeMinute,
		"hour":   spell.DurationTypeHour,
		"day":    spell.DurationTypeDay,
		"round":  spell.DurationTypeRound,
	}

	permanentEnds = map[string]spell.PermanentEnd{
		"dispel":  spell.PermanentEndDispel,
		"trigger": spell.PermanentEndTrigger,
	}

	damageTypes = map[string]spell.DamageType{
		"acid":        spell.DamageTypeAcid,
		"bludgeoning": spell.DamageTypeBludgeoning,
		"cold":        spell.DamageTypeCold,
		"fire":        spell.DamageTypeFire,
		"force":       spell.DamageTypeForce,
		"lightning":   spell.DamageTypeLightning,
		"necrotic":    spell.DamageTypeNecrotic,
		"piercing":    spell.DamageTypePiercing,
		"poison":      spell.DamageTypePoison,
		"psychic":     spell.DamageTypePsychic,
		"radiant":     spell.DamageTypeRadiant,
		"slashing":    spell.DamageTypeSlashing,
		"thunder":     spell.DamageTypeThunder,
	}

	spellAttacks = map[string]spell.SpellAttack{
		"R": spell.SpellAttackRanged,
		"M": spell.SpellAttackMelee,
	}

	conditions = map[string]spell.Condition{
		"blinded":       spell.ConditionBlinded,
		"charmed":       spell.ConditionCharmed,
		"deafened":      spell.ConditionDeafened,
		"exhaustion":    spell.ConditionExhaustion,
		"frightened":    spell.ConditionFrightened,
		"grappled":      spell.ConditionGrappled,
		"incapacitated": spell.ConditionIncapacitated,
		"invisible":     spell.ConditionInvisible,
		"paralyzed":     spell.ConditionParalyzed,
		"petrified":     spell.ConditionPetrified,
		"poisoned":      spell.ConditionPoisoned,
		"prone":         spell.ConditionProne,
		"restrained":    spell.ConditionRestrained,
		"stunned":       spell.ConditionStunned,
		"unconscious":   spell.ConditionUnconscious,
	}

	abilities = map[string]spell.Ability{
		"strength":     spell.AbilityStrength,
		"dexterity":    spell.AbilityDexterity,
		"constitution": spell.AbilityConstitution,
		"intelligence": spell.AbilityIntelligence,
		"wisdom":       spell.AbilityWisdom,
		"charisma":     spell.AbilityCharisma,
	}

	creatureTypes = map[string]spell.CreatureType{
		"aberration":  spell.CreatureTypeAberration,
		"beast":       spell.CreatureTypeBeast,
		"celestial":   spell.CreatureTypeCelestial,
		"construct":   spell.CreatureTypeConstruct,
		"dragon":      spell.CreatureTypeDragon,
		"elemental":   spell.CreatureTypeElemental,
		"fey":         spell.CreatureTypeFey,
		"fiend":       spell.CreatureTypeFiend,
		"giant":       spell.CreatureTypeGiant,
		"humanoid":    spell.CreatureTypeHumanoid,
		"monstrosity": spell.CreatureTypeMonstrosity,
		"ooze":        spell.CreatureTypeOoze,
		"plant":       spell.CreatureTypePlant,
		"undead":      spell.CreatureTypeUndead,
	}

	miscTags = map[string]spell.MiscTag{
		"HL":   spell.MiscTagHealing,
		"THP":  spell.MiscTagGrantsTemporaryHP,
		"SGT":  spell.MiscTagRequiresSight,
		"PRM":  spell.MiscTagPermanentEffects,
		"SCL":  spell.MiscTagScalingEffects,
		"SMN":  spell.MiscTagSummonsCreature,
		"MAC":  spell.MiscTagModifiesAC,
		"TP":   spell.MiscTagTeleportation,
		"FMV":  spell.MiscTagForcedMovement,
		"RO":   spell.MiscTagRollableEffects,
		"LGTS": spell.MiscTagCreatesSunlight,
		"LGT":  spell.MiscTagCreatesLight,
		"UBA":  spell.MiscTagUsesBonusAction,
		"PS":   spell.MiscTagPlaneShifting,
		"OBS":  spell.MiscTagObscuresVision,
		"DFT":  spell.MiscTagDifficultTerrain,
		"AAD":  spell.MiscTagAdditionalAttackDamage,
		"OBJ":  spell.MiscTagAffectsObjects,
	}

	areaTags = map[string]spell.AreaTag{
		"ST": spell.AreaTagSingleTarget,
		"MT": spell.AreaTagMultipleTargets,
		"C":  spell.AreaTagCube,
		"N":  spell.AreaTagCone,
		"Y":  spell.AreaTagCylinder,
		"S":  spell.AreaTagSphere,
		"R":  spell.AreaTagCircle,
		"Q":  spell.AreaTagSquare,
		"L":  spell.AreaTagLine,
		"H":  spell.AreaTagHemisphere,
		"W":  spell.AreaTagWall,
	}
)

// lookup decodes one short code through table
func lookup[T any](table map[string]T, field, code string) (T, error) {
	if v, ok := table[code]; ok {
		return v, nil
	}
	var zero T
	return zero, errors.Decode(field, code)
}

// lookupAll decodes a list of short codes in order. A nil list stays nil so
// absent fields remain absent.
func lookupAll[T any](table map[string]T, field string, codes []string) ([]T, error) {
	if codes == nil {
		return nil, nil
	}
	out := make([]T, len(codes))
	for i, code := range codes {
		v, err := lookup(table, field, code)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// DecodeSchool decodes a single-letter school code
func DecodeSchool(code string) (spell.School, error) {
	return lookup(schools, "school", code)
}

// DecodeTimeUnit decodes a casting time unit
func DecodeTimeUnit(code string) (spell.TimeUnit, error) {
	return lookup(timeUnits, "time unit", code)
}

// DecodeDurationType decodes the unit of a timed duration
func DecodeDurationType(code string) (spell.DurationType, error) {
	return lookup(durationTypes, "duration type", code)
}

// DecodePermanentEnd decodes an end condition of a permanent duration
func DecodePermanentEnd(code string) (spell.PermanentEnd, error) {
	return lookup(permanentEnds, "end", code)
}

// DecodeDamageType decodes a damage type
func DecodeDamageType(code string) (spell.DamageType, error) {
	return lookup(damageTypes, "damage type", code)
}

// DecodeDamageInflict decodes the damageInflict list
func DecodeDamageInflict(codes []string) ([]spell.DamageType, error) {
	return lookupAll(damageTypes, "damage type", codes)
}

// DecodeSpellAttack decodes a spell attack code
func DecodeSpellAttack(code string) (spell.SpellAttack, error) {
	return lookup(spellAttacks, "spell attack", code)
}

// DecodeSpellAttacks decodes the spellAttack list
func DecodeSpellAttacks(codes []string) ([]spell.SpellAttack, error) {
	return lookupAll(spellAttacks, "spell attack", codes)
}

// DecodeCondition decodes a condition
func DecodeCondition(code string) (spell.Condition, error) {
	return lookup(conditions, "condition", code)
}

// DecodeConditionInflict decodes the conditionInflict list
func DecodeConditionInflict(codes []string) ([]spell.Condition, error) {
	return lookupAll(conditions, "condition", codes)
}

// DecodeAbility decodes an ability name
func DecodeAbility(code string) (spell.Ability, error) {
	return lookup(abilities, "ability", code)
}

// DecodeSavingThrow decodes the savingThrow list
func DecodeSavingThrow(codes []string) ([]spell.Ability, error) {
	return lookupAll(abilities, "ability", codes)
}

// DecodeCreatureType decodes a creature type
func DecodeCreatureType(code string) (spell.CreatureType, error) {
	return lookup(creatureTypes, "creature type", code)
}

// DecodeAffectsCreatureType decodes the affectsCreatureType list
func DecodeAffectsCreatureType(codes []string) ([]spell.CreatureType, error) {
	return lookupAll(creatureTypes, "creature type", codes)
}

// DecodeMiscTag decodes a misc tag abbreviation
func DecodeMiscTag(code string) (spell.MiscTag, error) {
	return lookup(miscTags, "misc tag", code)
}

// DecodeMiscTags decodes the miscTags list
func DecodeMiscTags(codes []string) ([]spell.MiscTag, error) {
	return lookupAll(miscTags, "misc tag", codes)
}

// DecodeAreaTag decodes an area shape letter
func DecodeAreaTag(code string) (spell.AreaTag, error) {
	return lookup(areaTags, "area tag", code)
}

// DecodeAreaTags decodes the areaTags list
func DecodeAreaTags(codes []string) ([]spell.AreaTag, error) {
	return lookupAll(areaTags, "area tag", codes)
}
