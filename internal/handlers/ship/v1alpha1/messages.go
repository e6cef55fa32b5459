package v1alpha1

import (
	"time"

	"github.com/KirkDiggler/swn-ship-api/internal/engine"
	"github.com/KirkDiggler/swn-ship-api/internal/entities/swn"
	"github.com/KirkDiggler/swn-ship-api/internal/repositories/ledger"
	rolllog "github.com/KirkDiggler/swn-ship-api/internal/repositories/roll_log"
)

// Requests

type createShipRequest struct {
	OwnerID          string       `json:"owner_id"`
	Name             string       `json:"name"`
	HullType         string       `json:"hull_type"`
	FuelMax          int32        `json:"fuel_max"`
	SpikeDriveRating int32        `json:"spike_drive_rating"`
	LifeSupportDays  int32        `json:"life_support_days"`
	Finance          *swn.Finance `json:"finance"`
}

type shipRequest struct {
	ShipID string `json:"ship_id"`
}

type listShipsRequest struct {
	OwnerID string `json:"owner_id"`
}

type applyHullTemplateRequest struct {
	ShipID   string `json:"ship_id"`
	HullType string `json:"hull_type"`
}

type travelRequest struct {
	ShipID string `json:"ship_id"`
	Days   int32  `json:"days"`
}

type spikeTravelRequest struct {
	ShipID       string `json:"ship_id"`
	PilotID      string `json:"pilot_id"`
	Skill        string `json:"skill"`
	Stat         string `json:"stat"`
	DiceModifier int32  `json:"dice_modifier"`
	DicePool     string `json:"dice_pool"`
	Difficulty   int32  `json:"difficulty"`
	TravelDays   int32  `json:"travel_days"`
}

type refuelRequest struct {
	ShipID       string `json:"ship_id"`
	PricePerUnit int64  `json:"price_per_unit"`
}

type resupplyRequest struct {
	ShipID      string `json:"ship_id"`
	PricePerDay int64  `json:"price_per_day"`
}

type systemFailureRequest struct {
	ShipID   string   `json:"ship_id"`
	Eligible []string `json:"eligible"`
	Selector string   `json:"selector"`
}

type settleRequest struct {
	ShipID string `json:"ship_id"`
	Kind   string `json:"kind"`
}

type calculateCostRequest struct {
	ShipID             string `json:"ship_id"`
	IncludeMaintenance bool   `json:"include_maintenance"`
}

type crewRefRequest struct {
	ShipID string `json:"ship_id"`
	CrewID string `json:"crew_id"`
}

type assignRoleRequest struct {
	ShipID string `json:"ship_id"`
	Role   string `json:"role"`
	CrewID string `json:"crew_id"`
}

type itemRequest struct {
	ShipID string    `json:"ship_id"`
	Item   *swn.Item `json:"item"`
}

type itemRefRequest struct {
	ShipID string `json:"ship_id"`
	ItemID string `json:"item_id"`
}

type setItemBrokenRequest struct {
	ShipID string `json:"ship_id"`
	ItemID string `json:"item_id"`
	Broken bool   `json:"broken"`
}

type fireWeaponRequest struct {
	ShipID       string `json:"ship_id"`
	WeaponID     string `json:"weapon_id"`
	GunnerID     string `json:"gunner_id"`
	Skill        string `json:"skill"`
	Stat         string `json:"stat"`
	DiceModifier int32  `json:"dice_modifier"`
	DicePool     string `json:"dice_pool"`
	Difficulty   int32  `json:"difficulty"`
}

type crewMemberRequest struct {
	Member *swn.CrewMember `json:"member"`
}

type crewIDRequest struct {
	CrewID string `json:"crew_id"`
}

type listLedgerRequest struct {
	ShipID string `json:"ship_id"`
	Kind   string `json:"kind"`
	Limit  int32  `json:"limit"`
}

type listRollsRequest struct {
	ShipID string `json:"ship_id"`
	Limit  int32  `json:"limit"`
}

// Responses

type warningView struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type lifeSupportView struct {
	Requested int32 `json:"requested"`
	Consumed  int32 `json:"consumed"`
	Shortfall int32 `json:"shortfall"`
}

type rollView struct {
	Pool       string  `json:"pool"`
	Dice       []int32 `json:"dice"`
	Kept       []int32 `json:"kept"`
	Modifier   int32   `json:"modifier"`
	Total      int32   `json:"total"`
	Difficulty int32   `json:"difficulty"`
	Tier       string  `json:"tier"`
}

type damageView struct {
	Expression string  `json:"expression"`
	Dice       []int32 `json:"dice"`
	Bonus      int32   `json:"bonus"`
	Total      int32   `json:"total"`
}

type crisisView struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type failureView struct {
	Category string `json:"category"`
	ItemID   string `json:"item_id,omitempty"`
	ItemName string `json:"item_name,omitempty"`
	Severity string `json:"severity"`
}

type ledgerEntryView struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	Amount       int64     `json:"amount"`
	BalanceAfter int64     `json:"balance_after"`
	GameDate     string    `json:"game_date,omitempty"`
	Note         string    `json:"note,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type shipResponse struct {
	Ship *swn.Ship `json:"ship"`
}

type shipWarningsResponse struct {
	Ship     *swn.Ship     `json:"ship"`
	Warnings []warningView `json:"warnings"`
}

type getShipResponse struct {
	Ship        *swn.Ship         `json:"ship"`
	Crew        []*swn.CrewMember `json:"crew"`
	MissingCrew []string          `json:"missing_crew"`
}

type listShipsResponse struct {
	Ships []*swn.Ship `json:"ships"`
}

type hullTemplatesResponse struct {
	Types     []string                    `json:"types"`
	Templates map[string]swn.HullTemplate `json:"templates"`
}

type applyHullTemplateResponse struct {
	Ship     *swn.Ship        `json:"ship"`
	Template swn.HullTemplate `json:"template"`
}

type travelResponse struct {
	Ship        *swn.Ship       `json:"ship"`
	LifeSupport lifeSupportView `json:"life_support"`
	Warnings    []warningView   `json:"warnings"`
}

type spikeTravelResponse struct {
	Ship          *swn.Ship       `json:"ship"`
	Pilot         *swn.CrewMember `json:"pilot"`
	SkillModifier int32           `json:"skill_modifier"`
	StatModifier  int32           `json:"stat_modifier"`
	Roll          rollView        `json:"roll"`
	LifeSupport   lifeSupportView `json:"life_support"`
	Warnings      []warningView   `json:"warnings"`
}

type refuelResponse struct {
	Ship       *swn.Ship `json:"ship"`
	UnitsAdded int32     `json:"units_added"`
	Cost       int64     `json:"cost"`
}

type resupplyResponse struct {
	Ship      *swn.Ship `json:"ship"`
	DaysAdded int32     `json:"days_added"`
	Cost      int64     `json:"cost"`
}

type crisisResponse struct {
	Roll   int32      `json:"roll"`
	Crisis crisisView `json:"crisis"`
}

type systemFailureResponse struct {
	Ship    *swn.Ship   `json:"ship"`
	Outcome failureView `json:"outcome"`
}

type settleResponse struct {
	Ship    *swn.Ship `json:"ship"`
	Amount  int64     `json:"amount"`
	PaidOn  swn.Date  `json:"paid_on"`
	NextDue swn.Date  `json:"next_due"`
}

type calculateCostResponse struct {
	Ship           *swn.Ship     `json:"ship"`
	PowerUsed      int32         `json:"power_used"`
	MassUsed       int32         `json:"mass_used"`
	HardpointsUsed int32         `json:"hardpoints_used"`
	Warnings       []warningView `json:"warnings"`
}

type addCrewResponse struct {
	Ship  *swn.Ship `json:"ship"`
	Added bool      `json:"added"`
}

type removeCrewResponse struct {
	Ship         *swn.Ship `json:"ship"`
	Removed      bool      `json:"removed"`
	RolesCleared []string  `json:"roles_cleared"`
}

type itemResponse struct {
	Ship     *swn.Ship     `json:"ship"`
	Item     swn.Item      `json:"item"`
	Warnings []warningView `json:"warnings"`
}

type fireWeaponResponse struct {
	Ship          *swn.Ship       `json:"ship"`
	Weapon        swn.Item        `json:"weapon"`
	Gunner        *swn.CrewMember `json:"gunner"`
	SkillModifier int32           `json:"skill_modifier"`
	StatModifier  int32           `json:"stat_modifier"`
	Attack        rollView        `json:"attack"`
	Damage        damageView      `json:"damage"`
}

type crewMemberResponse struct {
	Member *swn.CrewMember `json:"member"`
}

type listLedgerResponse struct {
	Entries []ledgerEntryView `json:"entries"`
	Total   int64             `json:"total"`
}

type listRollsResponse struct {
	Entries []*rolllog.Entry `json:"entries"`
}

type emptyResponse struct{}

// Conversions

func convertWarnings(warnings []engine.Warning) []warningView {
	out := make([]warningView, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, warningView{Code: string(w.Code), Message: w.Message})
	}
	return out
}

func convertLifeSupport(r engine.LifeSupportResult) lifeSupportView {
	return lifeSupportView{
		Requested: r.Requested,
		Consumed:  r.Consumed,
		Shortfall: r.Shortfall,
	}
}

func convertRoll(r *engine.RollOutcome) rollView {
	if r == nil {
		return rollView{}
	}
	return rollView{
		Pool:       r.Pool,
		Dice:       r.Dice,
		Kept:       r.Kept,
		Modifier:   r.Modifier,
		Total:      r.Total,
		Difficulty: r.Difficulty,
		Tier:       string(r.Tier),
	}
}

func convertDamage(d *engine.DamageRoll) damageView {
	if d == nil {
		return damageView{}
	}
	return damageView{
		Expression: d.Expression,
		Dice:       d.Dice,
		Bonus:      d.Bonus,
		Total:      d.Total,
	}
}

func convertLedgerEntries(entries []*ledger.Entry) []ledgerEntryView {
	out := make([]ledgerEntryView, 0, len(entries))
	for _, e := range entries {
		out = append(out, ledgerEntryView{
			ID:           e.ID,
			Kind:         string(e.Kind),
			Amount:       e.Amount,
			BalanceAfter: e.BalanceAfter,
			GameDate:     e.GameDate,
			Note:         e.Note,
			CreatedAt:    e.CreatedAt,
		})
	}
	return out
}

func convertCategories(names []string) []engine.SystemCategory {
	out := make([]engine.SystemCategory, 0, len(names))
	for _, n := range names {
		out = append(out, engine.SystemCategory(n))
	}
	return out
}
