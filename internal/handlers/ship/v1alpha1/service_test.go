package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/swn-ship-api/internal/engine"
	"github.com/KirkDiggler/swn-ship-api/internal/errors"
	"github.com/KirkDiggler/swn-ship-api/internal/handlers/ship/v1alpha1"
	"github.com/KirkDiggler/swn-ship-api/internal/orchestrators/ship"
	shipservicemock "github.com/KirkDiggler/swn-ship-api/internal/orchestrators/ship/mock"
	"github.com/KirkDiggler/swn-ship-api/internal/testutils"
)

func startServer(t *testing.T, svc ship.Service) *v1alpha1.Client {
	t.Helper()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{ShipService: svc})
	require.NoError(t, err)

	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	v1alpha1.RegisterShipServiceServer(srv, handler)
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return v1alpha1.NewClient(conn)
}

func TestShipService_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := shipservicemock.NewMockService(ctrl)
	client := startServer(t, svc)

	svc.EXPECT().
		RollCrisis(gomock.Any(), &ship.RollCrisisInput{ShipID: testutils.TestShipID}).
		Return(&ship.RollCrisisOutput{
			Roll:   3,
			Crisis: engine.Crisis{Key: "crewLost", Name: "Crew Lost"},
		}, nil)

	req, err := structpb.NewStruct(map[string]any{"ship_id": testutils.TestShipID})
	require.NoError(t, err)

	resp, err := client.Call(context.Background(), v1alpha1.MethodRollCrisis, req)
	require.NoError(t, err)
	assert.Equal(t, float64(3), resp.GetFields()["roll"].GetNumberValue())
	assert.Equal(t, "Crew Lost",
		resp.GetFields()["crisis"].GetStructValue().GetFields()["name"].GetStringValue())
}

func TestShipService_ErrorReasonsCrossTheWire(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := shipservicemock.NewMockService(ctrl)
	client := startServer(t, svc)

	svc.EXPECT().
		SpikeTravel(gomock.Any(), gomock.Any()).
		Return(nil, errors.DriveDisabled())

	req, err := structpb.NewStruct(map[string]any{"ship_id": testutils.TestShipID, "difficulty": 7})
	require.NoError(t, err)

	_, err = client.Call(context.Background(), v1alpha1.MethodSpikeTravel, req)
	require.Error(t, err)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	assert.True(t, errors.Is(errors.FromGRPCError(err), errors.ErrDriveDisabled))
	assert.False(t, errors.Is(errors.FromGRPCError(err), errors.ErrOutOfFuel))
}

func TestShipService_UnknownMethod(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := startServer(t, shipservicemock.NewMockService(ctrl))

	_, err := client.Call(context.Background(), "Teleport", nil)
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}
