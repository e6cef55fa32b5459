package client

import (
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/swn-ship-api/internal/handlers/ship/v1alpha1"
)

var (
	historyLimit int32
	ledgerKind   string
)

var ledgerCmd = &cobra.Command{
	Use:   "ledger [ship-id]",
	Short: "Show a ship's credit history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(v1alpha1.MethodListLedger, map[string]any{
			"ship_id": args[0],
			"kind":    ledgerKind,
			"limit":   historyLimit,
		})
	},
}

var rollsCmd = &cobra.Command{
	Use:   "rolls [ship-id]",
	Short: "Show a ship's recent rolls",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(v1alpha1.MethodListRolls, map[string]any{
			"ship_id": args[0],
			"limit":   historyLimit,
		})
	},
}

var callCmd = &cobra.Command{
	Use:   "call [method] [json]",
	Short: "Call any ship service method with a JSON body",
	Long: `Send a raw request. Examples:

  call AddCrew '{"ship_id":"ship-1","crew_id":"crew-7"}'
  call RollSystemFailure '{"ship_id":"ship-1","eligible":["drive","weapon"]}'`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &structpb.Struct{}
		if len(args) == 2 {
			if err := protojson.Unmarshal([]byte(args[1]), req); err != nil {
				return fmt.Errorf("request must be a JSON object: %w", err)
			}
		}
		return invokeStruct(args[0], req)
	},
}

func init() {
	ledgerCmd.Flags().StringVar(&ledgerKind, "kind", "", "payment, maintenance, refuel, or resupply")
	ledgerCmd.Flags().Int32Var(&historyLimit, "limit", 0, "maximum entries")
	rollsCmd.Flags().Int32Var(&historyLimit, "limit", 0, "maximum entries")
}
