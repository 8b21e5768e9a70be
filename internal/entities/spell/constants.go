package spell

// School is the school of magic a spell belongs to
type School string

// School constants
const (
	SchoolAbjuration    School = "ABJURATION"
	SchoolConjuration   School = "CONJURATION"
	SchoolDivination    School = "DIVINATION"
	SchoolEnchantment   School = "ENCHANTMENT"
	SchoolEvocation     School = "EVOCATION"
	SchoolIllusion      School = "ILLUSION"
	SchoolNecromancy    School = "NECROMANCY"
	SchoolTransmutation School = "TRANSMUTATION"
)

// TimeUnit is the unit of a casting time
type TimeUnit string

// TimeUnit constants
const (
	TimeUnitAction   TimeUnit = "ACTION"
	TimeUnitBonus    TimeUnit = "BONUS"
	TimeUnitReaction TimeUnit = "REACTION"
	TimeUnitMinute   TimeUnit = "MINUTE"
	TimeUnitHour     TimeUnit = "HOUR"
)

// DurationType is the unit of a timed duration
type DurationType string

// DurationType constants
const (
	DurationTypeMinute DurationType = "MINUTE"
	DurationTypeHour   DurationType = "HOUR"
	DurationTypeDay    DurationType = "DAY"
	DurationTypeRound  DurationType = "ROUND"
)

// PermanentEnd is a condition that ends a permanent spell
type PermanentEnd string

// PermanentEnd constants
const (
	PermanentEndDispel  PermanentEnd = "DISPEL"
	PermanentEndTrigger PermanentEnd = "TRIGGER"
)

// DamageType is a type of damage a spell can inflict
type DamageType string

// DamageType constants
const (
	DamageTypeAcid        DamageType = "ACID"
	DamageTypeBludgeoning DamageType = "BLUDGEONING"
	DamageTypeCold        DamageType = "COLD"
	DamageTypeFire        DamageType = "FIRE"
	DamageTypeForce       DamageType = "FORCE"
	DamageTypeLightning   DamageType = "LIGHTNING"
	DamageTypeNecrotic    DamageType = "NECROTIC"
	DamageTypePiercing    DamageType = "PIERCING"
	DamageTypePoison      DamageType = "POISON"
	DamageTypePsychic     DamageType = "PSYCHIC"
	DamageTypeRadiant     DamageType = "RADIANT"
	DamageTypeSlashing    DamageType = "SLASHING"
	DamageTypeThunder     DamageType = "THUNDER"
)

// SpellAttack is the kind of spell attack roll a spell makes
type SpellAttack string

// SpellAttack constants
const (
	SpellAttackRanged SpellAttack = "RANGED"
	SpellAttackMelee  SpellAttack = "MELEE"
)

// Condition is a condition a spell can inflict
type Condition string

// Condition constants
const (
	ConditionBlinded       Condition = "BLINDED"
	ConditionCharmed       Condition = "CHARMED"
	ConditionDeafened      Condition = "DEAFENED"
	ConditionExhaustion    Condition = "EXHAUSTION"
	ConditionFrightened    Condition = "FRIGHTENED"
	ConditionGrappled      Condition = "GRAPPLED"
	ConditionIncapacitated Condition = "INCAPACITATED"
	ConditionInvisible     Condition = "INVISIBLE"
	ConditionParalyzed     Condition = "PARALYZED"
	ConditionPetrified     Condition = "PETRIFIED"
	ConditionPoisoned      Condition = "POISONED"
	ConditionProne         Condition = "PRONE"
	ConditionRestrained    Condition = "RESTRAINED"
	ConditionStunned       Condition = "STUNNED"
	ConditionUnconscious   Condition = "UNCONSCIOUS"
)

// Ability is an ability score, used for saving throws
type Ability string

// Ability constants
const (
	AbilityStrength     Ability = "STRENGTH"
	AbilityDexterity    Ability = "DEXTERITY"
	AbilityConstitution Ability = "CONSTITUTION"
	AbilityIntelligence Ability = "INTELLIGENCE"
	AbilityWisdom       Ability = "WISDOM"
	AbilityCharisma     Ability = "CHARISMA"
)

// CreatureType is a creature type a spell can be restricted to
type CreatureType string

// CreatureType constants
const (
	CreatureTypeAberration  CreatureType = "ABERRATION"
	CreatureTypeBeast       CreatureType = "BEAST"
	CreatureTypeCelestial   CreatureType = "CELESTIAL"
	CreatureTypeConstruct   CreatureType = "CONSTRUCT"
	CreatureTypeDragon      CreatureType = "DRAGON"
	CreatureTypeElemental   CreatureType = "ELEMENTAL"
	CreatureTypeFey         CreatureType = "FEY"
	CreatureTypeFiend       CreatureType = "FIEND"
	CreatureTypeGiant       CreatureType = "GIANT"
	CreatureTypeHumanoid    CreatureType = "HUMANOID"
	CreatureTypeMonstrosity CreatureType = "MONSTROSITY"
	CreatureTypeOoze        CreatureType = "OOZE"
	CreatureTypePlant       CreatureType = "PLANT"
	CreatureTypeUndead      CreatureType = "UNDEAD"
)

// MiscTag is a miscellaneous property tag
type MiscTag string

// MiscTag constants
const (
	MiscTagHealing                MiscTag = "HEALING"
	MiscTagGrantsTemporaryHP      MiscTag = "GRANTS_TEMPORARY_HIT_POINTS"
	MiscTagRequiresSight          MiscTag = "REQUIRES_SIGHT"
	MiscTagPermanentEffects       MiscTag = "PERMANENT_EFFECTS"
	MiscTagScalingEffects         MiscTag = "SCALING_EFFECTS"
	MiscTagSummonsCreature        MiscTag = "SUMMONS_CREATURE"
	MiscTagModifiesAC             MiscTag = "MODIFIES_AC"
	MiscTagTeleportation          MiscTag = "TELEPORTATION"
	MiscTagForcedMovement         MiscTag = "FORCED_MOVEMENT"
	MiscTagRollableEffects        MiscTag = "ROLLABLE_EFFECTS"
	MiscTagCreatesSunlight        MiscTag = "CREATES_SUNLIGHT"
	MiscTagCreatesLight           MiscTag = "CREATES_LIGHT"
	MiscTagUsesBonusAction        MiscTag = "USES_BONUS_ACTION"
	MiscTagPlaneShifting          MiscTag = "PLANE_SHIFTING"
	MiscTagObscuresVision         MiscTag = "OBSCURES_VISION"
	MiscTagDifficultTerrain       MiscTag = "DIFFICULT_TERRAIN"
	MiscTagAdditionalAttackDamage MiscTag = "ADDITIONAL_ATTACK_DAMAGE"
	MiscTagAffectsObjects         MiscTag = "AFFECTS_OBJECTS"
)

// AreaTag is the shape of the area a spell affects
type AreaTag string

// AreaTag constants
const (
	AreaTagSingleTarget    AreaTag = "SINGLE_TARGET"
	AreaTagMultipleTargets AreaTag = "MULTIPLE_TARGETS"
	AreaTagCube            AreaTag = "CUBE"
	AreaTagCone            AreaTag = "CONE"
	AreaTagCylinder        AreaTag = "CYLINDER"
	AreaTagSphere          AreaTag = "SPHERE"
	AreaTagCircle          AreaTag = "CIRCLE"
	AreaTagSquare          AreaTag = "SQUARE"
	AreaTagLine            AreaTag = "LINE"
	AreaTagHemisphere      AreaTag = "HEMISPHERE"
	AreaTagWall            AreaTag = "WALL"
)

// Variant tags written under DiscriminantKey
const (
	TagSpell              = "Spell"
	TagTime               = "SpellTime"
	TagMeta               = "SpellMeta"
	TagScalingLevelDice   = "SpellScalingLevelDice"
	TagMaterialComponent  = "MaterialSpellComponent"
	TagDistanceFeet       = "SpellRangeDistanceFeet"
	TagDistanceMile       = "SpellRangeDistanceMile"
	TagDistanceSelf       = "SpellRangeDistanceSelf"
	TagDistanceTouch      = "SpellRangeDistanceTouch"
	TagDistanceSight      = "SpellRangeDistanceSight"
	TagDistanceUnlimited  = "SpellRangeDistanceUnlimited"
	TagPointRange         = "PointSpellRange"
	TagRadiusRange        = "RadiusSpellRange"
	TagSphereRange        = "SphereSpellRange"
	TagConeRange          = "ConeSpellRange"
	TagLineRange          = "LineSpellRange"
	TagHemisphereRange    = "HemisphereSpellRange"
	TagCubeRange          = "CubeSpellRange"
	TagSpecialRange       = "SpecialSpellRange"
	TagNoMaterial         = "SpellComponentsWithNoMaterial"
	TagStringMaterial     = "SpellComponentsWithStringMaterial"
	TagObjectMaterial     = "SpellComponentsWithObjectMaterial"
	TagInstantDuration    = "InstantSpellDuration"
	TagTimedDuration      = "TimedSpellDuration"
	TagPermanentDuration  = "PermanentSpellDuration"
	TagSpecialDuration    = "SpecialSpellDuration"
	TagStringEntry        = "StringSpellEntry"
	TagEntriesEntry       = "EntriesSpellEntry"
	TagTableEntry         = "TableSpellEntry"
	TagListEntry          = "ListSpellEntry"
	TagInsetEntry         = "InsetSpellEntry"
)
