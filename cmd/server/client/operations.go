package client

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/swn-ship-api/internal/handlers/ship/v1alpha1"
)

var (
	spikePilot      string
	spikeSkill      string
	spikeStat       string
	spikePool       string
	spikeModifier   int32
	spikeDifficulty int32
	spikeDays       int32

	fireGunner     string
	fireModifier   int32
	fireDifficulty int32
)

var travelCmd = &cobra.Command{
	Use:   "travel [ship-id] [days]",
	Short: "Travel in-system, spending life support",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		days, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("days must be a number: %w", err)
		}
		return invoke(v1alpha1.MethodTravel, map[string]any{
			"ship_id": args[0],
			"days":    days,
		})
	},
}

var spikeCmd = &cobra.Command{
	Use:   "spike [ship-id]",
	Short: "Attempt a spike drill",
	Long: `Roll a pilot check for a spike drill. Examples:

  spike ship-123 --difficulty 9 --days 6
  spike ship-123 --pilot crew-7 --pool 3d6 --difficulty 8`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(v1alpha1.MethodSpikeTravel, map[string]any{
			"ship_id":       args[0],
			"pilot_id":      spikePilot,
			"skill":         spikeSkill,
			"stat":          spikeStat,
			"dice_pool":     spikePool,
			"dice_modifier": spikeModifier,
			"difficulty":    spikeDifficulty,
			"travel_days":   spikeDays,
		})
	},
}

var fireCmd = &cobra.Command{
	Use:   "fire [ship-id] [weapon-id]",
	Short: "Fire an installed weapon",
	Long: `Roll an attack and damage for a ship weapon. Examples:

  fire ship-123 item-4 --difficulty 16
  fire ship-123 item-4 --gunner crew-7 --modifier 2`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(v1alpha1.MethodFireWeapon, map[string]any{
			"ship_id":       args[0],
			"weapon_id":     args[1],
			"gunner_id":     fireGunner,
			"dice_modifier": fireModifier,
			"difficulty":    fireDifficulty,
		})
	},
}

var refuelCmd = &cobra.Command{
	Use:   "refuel [ship-id] [price-per-unit]",
	Short: "Fill the tanks",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		price, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("price must be a number: %w", err)
		}
		return invoke(v1alpha1.MethodRefuel, map[string]any{
			"ship_id":        args[0],
			"price_per_unit": price,
		})
	},
}

var crisisCmd = &cobra.Command{
	Use:   "crisis [ship-id]",
	Short: "Roll on the crisis table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(v1alpha1.MethodRollCrisis, map[string]any{"ship_id": args[0]})
	},
}

var settleCmd = &cobra.Command{
	Use:   "settle [ship-id] [payment|maintenance]",
	Short: "Pay a ship's loan installment or maintenance",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(v1alpha1.MethodSettle, map[string]any{
			"ship_id": args[0],
			"kind":    args[1],
		})
	},
}

func init() {
	spikeCmd.Flags().StringVar(&spikePilot, "pilot", "", "crew ID flying the drill")
	spikeCmd.Flags().StringVar(&spikeSkill, "skill", "", "skill to roll (default pilot)")
	spikeCmd.Flags().StringVar(&spikeStat, "stat", "", "attribute to roll (default intelligence)")
	spikeCmd.Flags().StringVar(&spikePool, "pool", "", "dice pool such as 2d6 or 3d6")
	spikeCmd.Flags().Int32Var(&spikeModifier, "modifier", 0, "situational modifier")
	spikeCmd.Flags().Int32Var(&spikeDifficulty, "difficulty", 7, "target number")
	spikeCmd.Flags().Int32Var(&spikeDays, "days", 0, "days spent in drill")

	fireCmd.Flags().StringVar(&fireGunner, "gunner", "", "crew ID firing the weapon (default gunnery role)")
	fireCmd.Flags().Int32Var(&fireModifier, "modifier", 0, "situational modifier")
	fireCmd.Flags().Int32Var(&fireDifficulty, "difficulty", 10, "target armor class")
}
