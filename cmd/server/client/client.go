// Package client provides test commands for the ship operations gRPC service
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/swn-ship-api/internal/handlers/ship/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the ship API",
	Long:  `Client commands allow you to exercise the ship API by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Ship lifecycle
	ClientCmd.AddCommand(createShipCmd)
	ClientCmd.AddCommand(getShipCmd)
	ClientCmd.AddCommand(listShipsCmd)
	ClientCmd.AddCommand(listHullsCmd)

	// Operations
	ClientCmd.AddCommand(travelCmd)
	ClientCmd.AddCommand(spikeCmd)
	ClientCmd.AddCommand(fireCmd)
	ClientCmd.AddCommand(refuelCmd)
	ClientCmd.AddCommand(crisisCmd)
	ClientCmd.AddCommand(settleCmd)

	// History
	ClientCmd.AddCommand(ledgerCmd)
	ClientCmd.AddCommand(rollsCmd)

	ClientCmd.AddCommand(callCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createShipClient creates a ship service client
func createShipClient() (*v1alpha1.Client, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewClient(conn), cleanup, nil
}

// invoke calls method with fields as the request and prints the response
func invoke(method string, fields map[string]any) error {
	req, err := structpb.NewStruct(fields)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	return invokeStruct(method, req)
}

func invokeStruct(method string, req *structpb.Struct) error {
	client, cleanup, err := createShipClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Call(ctx, method, req)
	if err != nil {
		return fmt.Errorf("%s failed: %w", method, err)
	}

	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
