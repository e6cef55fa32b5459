package rpgtoolkit

import (
	"context"

	"github.com/KirkDiggler/swn-ship-api/internal/engine"
	"github.com/KirkDiggler/swn-ship-api/internal/entities/swn"
	"github.com/KirkDiggler/swn-ship-api/internal/errors"
)

// Weapon attack defaults
const (
	DefaultGunnerySkill = swn.SkillShoot
	DefaultGunneryStat  = swn.AttributeDexterity
	DefaultAttackPool   = swn.DicePoolAttack
)

// FireWeapon rolls an attack and damage for an installed weapon and spends
// one round of limited ammunition. Nothing is rolled when the weapon cannot fire.
func (a *Adapter) FireWeapon(ctx context.Context, input *engine.FireWeaponInput) (*engine.FireWeaponOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireShip(input.Ship); err != nil {
		return nil, err
	}
	if input.WeaponID == "" {
		return nil, errors.InvalidArgument("weapon ID is required")
	}

	idx := input.Ship.FindItem(input.WeaponID)
	if idx < 0 {
		return nil, errors.NotFoundf("item %s not found", input.WeaponID).WithMeta("item_id", input.WeaponID)
	}
	weapon := input.Ship.Items[idx]
	if weapon.Type != swn.ItemTypeWeapon {
		return nil, errors.FailedPreconditionf("%s is not a weapon", weapon.Name).
			WithMeta("item_id", weapon.ID).
			WithMeta("type", string(weapon.Type))
	}
	if !weapon.Intact() {
		return nil, errors.FailedPreconditionf("%s is broken or destroyed", weapon.Name).
			WithMeta("item_id", weapon.ID)
	}
	if weapon.LimitedAmmo() && weapon.Ammo.Value <= 0 {
		return nil, errors.OutOfAmmo(weapon.ID)
	}
	if weapon.Damage == "" {
		return nil, errors.FailedPreconditionf("%s has no damage expression", weapon.Name).
			WithMeta("item_id", weapon.ID)
	}

	damagePool, err := parseDicePool(weapon.Damage)
	if err != nil {
		return nil, err
	}

	poolExpr := input.DicePool
	if poolExpr == "" {
		poolExpr = DefaultAttackPool
	}
	attackPool, err := parseDicePool(poolExpr)
	if err != nil {
		return nil, err
	}

	skillName := input.SkillName
	if skillName == "" {
		skillName = DefaultGunnerySkill
	}
	statName := input.StatName
	if statName == "" {
		statName = DefaultGunneryStat
	}

	gunner := selectGunner(input.Ship, input.Crew, input.GunnerID)

	var skillMod, statMod int32
	if gunner != nil {
		skillMod, _ = gunner.SkillModifier(skillName)
		statMod, _ = gunner.AttributeModifier(statName)
	}

	attack, err := a.check(attackPool, skillMod+statMod+input.DiceModifier, input.Difficulty)
	if err != nil {
		return nil, err
	}
	damage, err := a.rollDamage(damagePool)
	if err != nil {
		return nil, err
	}

	ship := input.Ship.Clone()
	fired := &ship.Items[idx]
	if fired.LimitedAmmo() {
		fired.Ammo.Value--
	}

	a.publish(ctx, EventWeaponFired, ship, wrapItem(fired))

	return &engine.FireWeaponOutput{
		Ship:          ship,
		Weapon:        *fired,
		Gunner:        gunner,
		SkillModifier: skillMod,
		StatModifier:  statMod,
		Attack:        attack,
		Damage:        damage,
	}, nil
}

// selectGunner returns the explicit gunner, else the gunnery role holder.
// Nobody fires with modifiers when neither is on the roster.
func selectGunner(ship *swn.Ship, crew []*swn.CrewMember, explicit string) *swn.CrewMember {
	ref := explicit
	if ref == "" {
		ref, _ = ship.RoleHolder(swn.RoleGunnery)
	}
	if ref == "" || !ship.HasCrew(ref) {
		return nil
	}
	for _, c := range crew {
		if c != nil && c.ID == ref {
			return c
		}
	}
	return nil
}
