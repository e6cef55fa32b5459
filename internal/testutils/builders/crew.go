package builders

import (
	"github.com/KirkDiggler/swn-ship-api/internal/entities/swn"
)

// CrewMemberBuilder provides a fluent interface for building test CrewMember instances
type CrewMemberBuilder struct {
	member *swn.CrewMember
}

// NewCrewMemberBuilder creates a builder for an unskilled NPC
func NewCrewMemberBuilder() *CrewMemberBuilder {
	return &CrewMemberBuilder{
		member: &swn.CrewMember{
			ID:         "crew-test-123",
			Name:       "Test Crew",
			Type:       swn.CrewTypeNPC,
			Skills:     map[string]int32{},
			Attributes: map[string]int32{},
		},
	}
}

// WithID sets the crew member ID
func (b *CrewMemberBuilder) WithID(id string) *CrewMemberBuilder {
	b.member.ID = id
	return b
}

// WithName sets the crew member name
func (b *CrewMemberBuilder) WithName(name string) *CrewMemberBuilder {
	b.member.Name = name
	return b
}

// AsCharacter marks the crew member as a player character
func (b *CrewMemberBuilder) AsCharacter() *CrewMemberBuilder {
	b.member.Type = swn.CrewTypeCharacter
	return b
}

// WithSkill sets a skill rank
func (b *CrewMemberBuilder) WithSkill(name string, rank int32) *CrewMemberBuilder {
	b.member.Skills[name] = rank
	return b
}

// WithAttribute sets an attribute modifier
func (b *CrewMemberBuilder) WithAttribute(name string, mod int32) *CrewMemberBuilder {
	b.member.Attributes[name] = mod
	return b
}

// Build returns the built crew member
func (b *CrewMemberBuilder) Build() *swn.CrewMember {
	return b.member
}
