package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "swn.ship.v1alpha1.ShipService"

// Method names exposed by the ship service
const (
	MethodCreateShip          = "CreateShip"
	MethodGetShip             = "GetShip"
	MethodListShips           = "ListShips"
	MethodDeleteShip          = "DeleteShip"
	MethodListHullTemplates   = "ListHullTemplates"
	MethodApplyHullTemplate   = "ApplyHullTemplate"
	MethodTravel              = "Travel"
	MethodSpikeTravel         = "SpikeTravel"
	MethodRefuel              = "Refuel"
	MethodResupplyLifeSupport = "ResupplyLifeSupport"
	MethodRollCrisis          = "RollCrisis"
	MethodRollSystemFailure   = "RollSystemFailure"
	MethodSettle              = "Settle"
	MethodCalculateCost       = "CalculateCost"
	MethodListLedger          = "ListLedger"
	MethodCreateCrewMember    = "CreateCrewMember"
	MethodGetCrewMember       = "GetCrewMember"
	MethodUpdateCrewMember    = "UpdateCrewMember"
	MethodAddCrew             = "AddCrew"
	MethodRemoveCrew          = "RemoveCrew"
	MethodAssignRole          = "AssignRole"
	MethodAddItem             = "AddItem"
	MethodRemoveItem          = "RemoveItem"
	MethodUpdateItem          = "UpdateItem"
	MethodSetItemBroken       = "SetItemBroken"
	MethodDestroyItem         = "DestroyItem"
	MethodFireWeapon          = "FireWeapon"
	MethodListRolls           = "ListRolls"
)

// ShipServiceServer is the server API for the ship service. Every method
// takes and returns a google.protobuf.Struct.
type ShipServiceServer interface {
	CreateShip(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetShip(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListShips(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteShip(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListHullTemplates(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ApplyHullTemplate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Travel(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SpikeTravel(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Refuel(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ResupplyLifeSupport(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RollCrisis(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RollSystemFailure(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Settle(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CalculateCost(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListLedger(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreateCrewMember(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCrewMember(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateCrewMember(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddCrew(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RemoveCrew(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AssignRole(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RemoveItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetItemBroken(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DestroyItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	FireWeapon(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListRolls(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(ShipServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unary(name string, call unaryMethod) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(
			srv any,
			ctx context.Context,
			dec func(any) error,
			interceptor grpc.UnaryServerInterceptor,
		) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(ShipServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(ShipServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// FullMethod returns the gRPC path of a ship service method
func FullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

// ShipServiceDesc describes the ship service for grpc.Server registration
var ShipServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ShipServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodCreateShip, ShipServiceServer.CreateShip),
		unary(MethodGetShip, ShipServiceServer.GetShip),
		unary(MethodListShips, ShipServiceServer.ListShips),
		unary(MethodDeleteShip, ShipServiceServer.DeleteShip),
		unary(MethodListHullTemplates, ShipServiceServer.ListHullTemplates),
		unary(MethodApplyHullTemplate, ShipServiceServer.ApplyHullTemplate),
		unary(MethodTravel, ShipServiceServer.Travel),
		unary(MethodSpikeTravel, ShipServiceServer.SpikeTravel),
		unary(MethodRefuel, ShipServiceServer.Refuel),
		unary(MethodResupplyLifeSupport, ShipServiceServer.ResupplyLifeSupport),
		unary(MethodRollCrisis, ShipServiceServer.RollCrisis),
		unary(MethodRollSystemFailure, ShipServiceServer.RollSystemFailure),
		unary(MethodSettle, ShipServiceServer.Settle),
		unary(MethodCalculateCost, ShipServiceServer.CalculateCost),
		unary(MethodListLedger, ShipServiceServer.ListLedger),
		unary(MethodCreateCrewMember, ShipServiceServer.CreateCrewMember),
		unary(MethodGetCrewMember, ShipServiceServer.GetCrewMember),
		unary(MethodUpdateCrewMember, ShipServiceServer.UpdateCrewMember),
		unary(MethodAddCrew, ShipServiceServer.AddCrew),
		unary(MethodRemoveCrew, ShipServiceServer.RemoveCrew),
		unary(MethodAssignRole, ShipServiceServer.AssignRole),
		unary(MethodAddItem, ShipServiceServer.AddItem),
		unary(MethodRemoveItem, ShipServiceServer.RemoveItem),
		unary(MethodUpdateItem, ShipServiceServer.UpdateItem),
		unary(MethodSetItemBroken, ShipServiceServer.SetItemBroken),
		unary(MethodDestroyItem, ShipServiceServer.DestroyItem),
		unary(MethodFireWeapon, ShipServiceServer.FireWeapon),
		unary(MethodListRolls, ShipServiceServer.ListRolls),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "swn/ship/v1alpha1/ship.proto",
}

// RegisterShipServiceServer registers the ship service with a gRPC server
func RegisterShipServiceServer(s grpc.ServiceRegistrar, srv ShipServiceServer) {
	s.RegisterService(&ShipServiceDesc, srv)
}

// Client calls ship service methods over a client connection
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient wraps a client connection
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// Call invokes a ship service method by name
func (c *Client) Call(
	ctx context.Context,
	method string,
	req *structpb.Struct,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	if req == nil {
		req = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, FullMethod(method), req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
