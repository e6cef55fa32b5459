package swn

// CrewType distinguishes player characters from non-player characters
type CrewType string

// Crew member types
const (
	CrewTypeCharacter CrewType = "character"
	CrewTypeNPC       CrewType = "npc"
)

// Skill rank bounds
const (
	MinSkillRank = -1
	MaxSkillRank = 4
)

// CrewMember is an actor referenced from a ship roster. Ships do not own crew
// members; they only keep their IDs.
type CrewMember struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Type       CrewType         `json:"type"`
	Skills     map[string]int32 `json:"skills"`
	Attributes map[string]int32 `json:"attributes"`
}

// IsCharacter reports whether the crew member is a player character
func (c *CrewMember) IsCharacter() bool {
	return c.Type == CrewTypeCharacter
}

// SkillModifier returns the check modifier for a skill. Any negative rank
// counts as -1 (untrained). ok is false when the crew member lacks the skill.
func (c *CrewMember) SkillModifier(name string) (int32, bool) {
	rank, ok := c.Skills[name]
	if !ok {
		return 0, false
	}
	if rank < 0 {
		return -1, true
	}
	return rank, true
}

// AttributeModifier returns the named attribute modifier
func (c *CrewMember) AttributeModifier(name string) (int32, bool) {
	mod, ok := c.Attributes[name]
	return mod, ok
}
