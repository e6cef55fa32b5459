package swn

// Hull type keys used by the default hull template table
const (
	HullStrikeFighter = "strikeFighter"
	HullShuttle       = "shuttle"
	HullFreeMerchant  = "freeMerchant"
	HullPatrolBoat    = "patrolBoat"
	HullCorvette      = "corvette"
	HullHeavyFrigate  = "heavyFrigate"
	HullBulkFreighter = "bulkFreighter"
	HullFleetCruiser  = "fleetCruiser"
	HullBattleship    = "battleship"
	HullCarrier       = "carrier"
	HullSmallStation  = "smallStation"
	HullLargeStation  = "largeStation"
)

// Ship roles a crew member can be assigned to
const (
	RoleCaptain     = "captain"
	RoleBridge      = "bridge"
	RoleComms       = "comms"
	RoleEngineering = "engineering"
	RoleGunnery     = "gunnery"
)

// Roles lists every assignable ship role
var Roles = []string{RoleCaptain, RoleBridge, RoleComms, RoleEngineering, RoleGunnery}

// Attribute keys
const (
	AttributeStrength     = "str"
	AttributeDexterity    = "dex"
	AttributeConstitution = "con"
	AttributeIntelligence = "int"
	AttributeWisdom       = "wis"
	AttributeCharisma     = "cha"
)

// Skill names used by ship operations
const (
	SkillPilot   = "Pilot"
	SkillFix     = "Fix"
	SkillProgram = "Program"
	SkillShoot   = "Shoot"
)

// Dice pools a skill check can roll. kh2 keeps the two highest dice.
const (
	DicePool2d6   = "2d6"
	DicePool3d6kh = "3d6kh2"
	DicePool4d6kh = "4d6kh2"
)

// DicePoolAttack is the attack roll for ship weapons
const DicePoolAttack = "1d20"

// DicePools lists the supported skill check pools
var DicePools = []string{DicePool2d6, DicePool3d6kh, DicePool4d6kh}

// LifeSupportDaysPerCrew is how many days of life support one crew berth provides
const LifeSupportDaysPerCrew = 60

// MaintenancePercent is the share of total ship cost charged per maintenance cycle
const MaintenancePercent = 5
