package handler

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// LedgerServiceName は gRPC のサービス名です。
const LedgerServiceName = "gymledger.v1.LedgerService"

const (
	LedgerService_AppendRow_FullMethodName         = "/" + LedgerServiceName + "/AppendRow"
	LedgerService_ReadAll_FullMethodName           = "/" + LedgerServiceName + "/ReadAll"
	LedgerService_Search_FullMethodName            = "/" + LedgerServiceName + "/Search"
	LedgerService_Dashboard_FullMethodName         = "/" + LedgerServiceName + "/Dashboard"
	LedgerService_LocationBreakdown_FullMethodName = "/" + LedgerServiceName + "/LocationBreakdown"
	LedgerService_ExportTable_FullMethodName       = "/" + LedgerServiceName + "/ExportTable"
)

// LedgerServiceServer は LedgerService のサーバー側インターフェースです。
// メッセージはすべて protobuf の well-known types です。
type LedgerServiceServer interface {
	AppendRow(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ReadAll(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error)
	Search(context.Context, *structpb.Struct) (*structpb.ListValue, error)
	Dashboard(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	LocationBreakdown(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	ExportTable(context.Context, *structpb.Struct) (*wrapperspb.BytesValue, error)
}

// UnimplementedLedgerServiceServer は未実装メソッドに Unimplemented を返します。
type UnimplementedLedgerServiceServer struct{}

func (UnimplementedLedgerServiceServer) AppendRow(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method AppendRow not implemented")
}

func (UnimplementedLedgerServiceServer) ReadAll(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error) {
	return nil, status.Error(codes.Unimplemented, "method ReadAll not implemented")
}

func (UnimplementedLedgerServiceServer) Search(context.Context, *structpb.Struct) (*structpb.ListValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Search not implemented")
}

func (UnimplementedLedgerServiceServer) Dashboard(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Dashboard not implemented")
}

func (UnimplementedLedgerServiceServer) LocationBreakdown(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, status.Error(codes.Unimplemented, "method LocationBreakdown not implemented")
}

func (UnimplementedLedgerServiceServer) ExportTable(context.Context, *structpb.Struct) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportTable not implemented")
}

// RegisterLedgerServiceServer は LedgerService をサーバーに登録します。
func RegisterLedgerServiceServer(s grpc.ServiceRegistrar, srv LedgerServiceServer) {
	s.RegisterService(&LedgerService_ServiceDesc, srv)
}

func unaryHandler[Req any, Resp any](
	fullMethod string,
	newReq func() *Req,
	call func(LedgerServiceServer, context.Context, *Req) (Resp, error),
) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := newReq()
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(LedgerServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(LedgerServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// LedgerService_ServiceDesc は LedgerService の grpc.ServiceDesc です。
var LedgerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: LedgerServiceName,
	HandlerType: (*LedgerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AppendRow",
			Handler: unaryHandler(LedgerService_AppendRow_FullMethodName,
				func() *structpb.Struct { return new(structpb.Struct) },
				LedgerServiceServer.AppendRow),
		},
		{
			MethodName: "ReadAll",
			Handler: unaryHandler(LedgerService_ReadAll_FullMethodName,
				func() *wrapperspb.StringValue { return new(wrapperspb.StringValue) },
				LedgerServiceServer.ReadAll),
		},
		{
			MethodName: "Search",
			Handler: unaryHandler(LedgerService_Search_FullMethodName,
				func() *structpb.Struct { return new(structpb.Struct) },
				LedgerServiceServer.Search),
		},
		{
			MethodName: "Dashboard",
			Handler: unaryHandler(LedgerService_Dashboard_FullMethodName,
				func() *emptypb.Empty { return new(emptypb.Empty) },
				LedgerServiceServer.Dashboard),
		},
		{
			MethodName: "LocationBreakdown",
			Handler: unaryHandler(LedgerService_LocationBreakdown_FullMethodName,
				func() *emptypb.Empty { return new(emptypb.Empty) },
				LedgerServiceServer.LocationBreakdown),
		},
		{
			MethodName: "ExportTable",
			Handler: unaryHandler(LedgerService_ExportTable_FullMethodName,
				func() *structpb.Struct { return new(structpb.Struct) },
				LedgerServiceServer.ExportTable),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gymledger/v1/ledger.proto",
}

// LedgerServiceClient は LedgerService のクライアントです。
type LedgerServiceClient interface {
	AppendRow(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ReadAll(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error)
	Search(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.ListValue, error)
	Dashboard(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	LocationBreakdown(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
	ExportTable(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
}

type ledgerServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewLedgerServiceClient は LedgerServiceClient を生成します。
func NewLedgerServiceClient(cc grpc.ClientConnInterface) LedgerServiceClient {
	return &ledgerServiceClient{cc: cc}
}

func (c *ledgerServiceClient) AppendRow(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, LedgerService_AppendRow_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ledgerServiceClient) ReadAll(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, LedgerService_ReadAll_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ledgerServiceClient) Search(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, LedgerService_Search_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ledgerServiceClient) Dashboard(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, LedgerService_Dashboard_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ledgerServiceClient) LocationBreakdown(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, LedgerService_LocationBreakdown_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ledgerServiceClient) ExportTable(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	if err := c.cc.Invoke(ctx, LedgerService_ExportTable_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
