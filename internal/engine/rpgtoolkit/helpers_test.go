package rpgtoolkit

import (
	"context"
	"fmt"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/swn-ship-api/internal/entities/swn"
)

// scriptedRoller returns pre-loaded values in order and records every call
type scriptedRoller struct {
	values []int
	calls  []string
}

func newScriptedRoller(values ...int) *scriptedRoller {
	return &scriptedRoller{values: values}
}

func (r *scriptedRoller) push(values ...int) {
	r.values = append(r.values, values...)
}

func (r *scriptedRoller) next() (int, error) {
	if len(r.values) == 0 {
		return 0, fmt.Errorf("scripted roller exhausted")
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v, nil
}

func (r *scriptedRoller) Roll(size int) (int, error) {
	r.calls = append(r.calls, fmt.Sprintf("d%d", size))
	return r.next()
}

func (r *scriptedRoller) RollN(count, size int) ([]int, error) {
	r.calls = append(r.calls, fmt.Sprintf("%dd%d", count, size))
	out := make([]int, count)
	for i := range out {
		v, err := r.next()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// recordingBus satisfies events.EventBus and keeps published events
type recordingBus struct {
	mu        sync.Mutex
	published []events.Event
	err       error
}

func (b *recordingBus) Publish(_ context.Context, e events.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = append(b.published, e)
	return b.err
}
func (b *recordingBus) Subscribe(_ string, _ events.Handler) string { return "sub-id" }
func (b *recordingBus) SubscribeFunc(_ string, _ int, _ events.HandlerFunc) string {
	return "sub-id"
}
func (b *recordingBus) Unsubscribe(_ string) error { return nil }
func (b *recordingBus) Clear(_ string)             {}
func (b *recordingBus) ClearAll()                  {}

func (b *recordingBus) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.published)
}

// freeMerchant returns a crewed, fuelled free merchant
func freeMerchant() *swn.Ship {
	return &swn.Ship{
		ID:              "ship-1",
		Name:            "Wandering Star",
		HullType:        swn.HullFreeMerchant,
		HullClass:       swn.HullClassFrigate,
		HP:              swn.Resource{Value: 20, Max: 20},
		Fuel:            swn.Resource{Value: 5, Max: 6},
		LifeSupportDays: swn.Resource{Value: 100, Max: 360},
		Power:           swn.Resource{Value: 10, Max: 10},
		Mass:            swn.Resource{Value: 15, Max: 15},
		Hardpoints:      swn.Resource{Value: 2, Max: 2},
		SpikeDrive:      swn.SpikeDrive{Value: 1, Max: 1},
		AC:              14,
		Armor:           2,
		Speed:           3,
		Crew:            swn.CrewRange{Min: 1, Max: 6},
		BaseCost:        500000,
		Cost:            500000,
		Roster:          []string{"crew-a", "crew-b"},
		Roles:           map[string]string{},
		Finance: swn.Finance{
			CreditPool:        500,
			PaymentAmount:     200,
			MaintenanceCost:   150,
			PaymentMonths:     3,
			MaintenanceMonths: 12,
			LastPayment:       swn.Date{Year: 2023, Month: 11, Day: 15},
			LastMaintenance:   swn.Date{Year: 2023, Month: 6, Day: 1},
		},
	}
}

func npc(id string, pilot int32) *swn.CrewMember {
	return &swn.CrewMember{
		ID:         id,
		Name:       "NPC " + id,
		Type:       swn.CrewTypeNPC,
		Skills:     map[string]int32{swn.SkillPilot: pilot},
		Attributes: map[string]int32{swn.AttributeIntelligence: 0},
	}
}

func character(id string, pilot, intMod int32) *swn.CrewMember {
	return &swn.CrewMember{
		ID:         id,
		Name:       "PC " + id,
		Type:       swn.CrewTypeCharacter,
		Skills:     map[string]int32{swn.SkillPilot: pilot},
		Attributes: map[string]int32{swn.AttributeIntelligence: intMod},
	}
}
