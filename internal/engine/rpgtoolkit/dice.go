package rpgtoolkit

import (
	"regexp"
	"slices"
	"strconv"

	"github.com/KirkDiggler/swn-ship-api/internal/engine"
	"github.com/KirkDiggler/swn-ship-api/internal/errors"
)

var dicePoolPattern = regexp.MustCompile(`^(\d+)d(\d+)(?:kh(\d+))?(?:([+-])(\d+))?$`)

// Upper bounds keep a malformed pool from asking the roller for absurd work
const (
	maxPoolDice  = 20
	maxPoolSides = 100
	maxPoolBonus = 100
)

// dicePool is a parsed "NdS" or "NdSkhK" expression with an optional
// flat "+B" or "-B" bonus
type dicePool struct {
	expr  string
	count int
	sides int
	keep  int
	bonus int32
}

func parseDicePool(expr string) (dicePool, error) {
	m := dicePoolPattern.FindStringSubmatch(expr)
	if m == nil {
		return dicePool{}, errors.InvalidArgumentf("invalid dice pool %q", expr)
	}

	count, _ := strconv.Atoi(m[1])
	sides, _ := strconv.Atoi(m[2])
	keep := count
	if m[3] != "" {
		keep, _ = strconv.Atoi(m[3])
	}

	bonus := 0
	if m[5] != "" {
		bonus, _ = strconv.Atoi(m[5])
		if m[4] == "-" {
			bonus = -bonus
		}
	}

	if count < 1 || count > maxPoolDice || sides < 2 || sides > maxPoolSides || keep < 1 || keep > count ||
		bonus > maxPoolBonus || bonus < -maxPoolBonus {
		return dicePool{}, errors.InvalidArgumentf("invalid dice pool %q", expr).
			WithMeta("dice_pool", expr)
	}

	return dicePool{expr: expr, count: count, sides: sides, keep: keep, bonus: int32(bonus)}, nil
}

// roll rolls the pool and returns every die, the kept dice highest first,
// and their sum plus the pool bonus
func (a *Adapter) roll(pool dicePool) (dice, kept []int32, sum int32, err error) {
	rolls, err := a.diceRoller.RollN(pool.count, pool.sides)
	if err != nil {
		return nil, nil, 0, errors.Wrap(err, "failed to roll dice pool")
	}

	dice = make([]int32, len(rolls))
	for i, r := range rolls {
		dice[i] = int32(r)
	}

	kept = slices.Clone(dice)
	slices.SortFunc(kept, func(x, y int32) int { return int(y - x) })
	kept = kept[:pool.keep]

	for _, d := range kept {
		sum += d
	}
	return dice, kept, sum + pool.bonus, nil
}

// check rolls the pool, keeps the highest dice, and grades the total
func (a *Adapter) check(pool dicePool, modifier, difficulty int32) (*engine.RollOutcome, error) {
	dice, kept, sum, err := a.roll(pool)
	if err != nil {
		return nil, err
	}
	total := sum + modifier

	return &engine.RollOutcome{
		Pool:       pool.expr,
		Dice:       dice,
		Kept:       kept,
		Modifier:   modifier,
		Total:      total,
		Difficulty: difficulty,
		Tier:       gradeCheck(total, difficulty),
	}, nil
}

// rollDamage rolls a damage expression. Damage never goes below zero.
func (a *Adapter) rollDamage(pool dicePool) (*engine.DamageRoll, error) {
	dice, _, sum, err := a.roll(pool)
	if err != nil {
		return nil, err
	}

	return &engine.DamageRoll{
		Expression: pool.expr,
		Dice:       dice,
		Bonus:      pool.bonus,
		Total:      max(sum, 0),
	}, nil
}

func gradeCheck(total, difficulty int32) engine.Tier {
	switch {
	case total >= difficulty:
		return engine.TierSuccess
	case difficulty-total >= engine.MishapMargin:
		return engine.TierMishap
	default:
		return engine.TierFailure
	}
}

// pick returns a uniform index in [0, n)
func (a *Adapter) pick(n int) (int, error) {
	if n == 1 {
		return 0, nil
	}
	r, err := a.diceRoller.Roll(n)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll selection")
	}
	return r - 1, nil
}
