// Package main is the entry point for the ship operations gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/swn-ship-api/cmd/server/client"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "swn-ship-api",
	Short: "SWN Ship Operations gRPC Server",
	Long:  `SWN Ship API provides a gRPC interface for running starships: travel, spike drills, upkeep, crew, and fittings.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
