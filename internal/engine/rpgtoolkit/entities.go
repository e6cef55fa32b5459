package rpgtoolkit

import "github.com/KirkDiggler/swn-ship-api/internal/entities/swn"

// Entity types for event targets. Ships implement core.Entity themselves.
const (
	EntityTypeCrew = "crew_member"
	EntityTypeItem = "ship_item"
)

// CrewEntity wraps swn.CrewMember to implement core.Entity interface
type CrewEntity struct {
	*swn.CrewMember
}

// GetID returns the crew member's ID
func (c *CrewEntity) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *CrewEntity) GetType() string {
	return EntityTypeCrew
}

// ItemEntity wraps an installed swn.Item to implement core.Entity interface
type ItemEntity struct {
	*swn.Item
}

// GetID returns the item's ID
func (i *ItemEntity) GetID() string {
	return i.ID
}

// GetType returns the entity type for rpg-toolkit
func (i *ItemEntity) GetType() string {
	return EntityTypeItem
}

// wrapCrew converts a swn.CrewMember to a CrewEntity
func wrapCrew(member *swn.CrewMember) *CrewEntity {
	return &CrewEntity{CrewMember: member}
}

// wrapItem converts a swn.Item to an ItemEntity
func wrapItem(item *swn.Item) *ItemEntity {
	return &ItemEntity{Item: item}
}
