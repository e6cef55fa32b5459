package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/swn-ship-api/internal/handlers/ship/v1alpha1"
)

var (
	createOwner       string
	createFuelMax     int32
	createDrive       int32
	createLifeSupport int32
	createCredits     int64
	listOwner         string
)

var createShipCmd = &cobra.Command{
	Use:   "create-ship [name] [hull-type]",
	Short: "Commission a ship on a hull",
	Long: `Commission a new ship. Examples:

  create-ship "Wanderer" freeMerchant
  create-ship "Pike" strikeFighter --owner player-1 --credits 50000`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(v1alpha1.MethodCreateShip, map[string]any{
			"owner_id":           createOwner,
			"name":               args[0],
			"hull_type":          args[1],
			"fuel_max":           createFuelMax,
			"spike_drive_rating": createDrive,
			"life_support_days":  createLifeSupport,
			"finance": map[string]any{
				"credit_pool": createCredits,
			},
		})
	},
}

var getShipCmd = &cobra.Command{
	Use:   "get-ship [ship-id]",
	Short: "Show a ship and its crew",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(v1alpha1.MethodGetShip, map[string]any{"ship_id": args[0]})
	},
}

var listShipsCmd = &cobra.Command{
	Use:   "list-ships",
	Short: "List ships",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(v1alpha1.MethodListShips, map[string]any{"owner_id": listOwner})
	},
}

var listHullsCmd = &cobra.Command{
	Use:   "list-hulls",
	Short: "Show the hull template table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(v1alpha1.MethodListHullTemplates, nil)
	},
}

func init() {
	createShipCmd.Flags().StringVar(&createOwner, "owner", "", "owning player ID")
	createShipCmd.Flags().Int32Var(&createFuelMax, "fuel", 0, "fuel capacity in drills")
	createShipCmd.Flags().Int32Var(&createDrive, "drive", 0, "spike drive rating")
	createShipCmd.Flags().Int32Var(&createLifeSupport, "life-support", 0, "starting life support days")
	createShipCmd.Flags().Int64Var(&createCredits, "credits", 0, "starting credit pool")

	listShipsCmd.Flags().StringVar(&listOwner, "owner", "", "only list this owner's ships")
}
