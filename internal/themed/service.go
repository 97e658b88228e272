// Package themed serves the theme facade over gRPC so out-of-process
// consumers (the web layer, other shell windows, scripts) can read and change
// the theme.
package themed

import (
	"context"
	"fmt"

	"github.com/opencode-ai/themeshell/internal/models"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "themeshell.v1.ThemeService"

// Method names.
const (
	MethodGetTheme       = "GetTheme"
	MethodListPalettes   = "ListPalettes"
	MethodUpdateColors   = "UpdateColors"
	MethodSetDarkMode    = "SetDarkMode"
	MethodToggleDarkMode = "ToggleDarkMode"
	MethodGetStylesheet  = "GetStylesheet"
)

// FullMethod returns the wire path of a method, e.g.
// /themeshell.v1.ThemeService/GetTheme.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// ThemeServiceServer is the server API. Messages are protobuf well-known
// types; the field layout of each Struct is documented on Server.
type ThemeServiceServer interface {
	GetTheme(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	ListPalettes(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateColors(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetDarkMode(context.Context, *wrapperspb.BoolValue) (*structpb.Struct, error)
	ToggleDarkMode(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	GetStylesheet(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
}

// ServiceDesc describes ThemeService for grpc.Server registration.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ThemeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: MethodGetTheme, Handler: unary(MethodGetTheme, newEmpty, ThemeServiceServer.GetTheme)},
		{MethodName: MethodListPalettes, Handler: unary(MethodListPalettes, newStruct, ThemeServiceServer.ListPalettes)},
		{MethodName: MethodUpdateColors, Handler: unary(MethodUpdateColors, newStruct, ThemeServiceServer.UpdateColors)},
		{MethodName: MethodSetDarkMode, Handler: unary(MethodSetDarkMode, newBool, ThemeServiceServer.SetDarkMode)},
		{MethodName: MethodToggleDarkMode, Handler: unary(MethodToggleDarkMode, newEmpty, ThemeServiceServer.ToggleDarkMode)},
		{MethodName: MethodGetStylesheet, Handler: unary(MethodGetStylesheet, newEmpty, ThemeServiceServer.GetStylesheet)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "themeshell/v1/theme.proto",
}

// RegisterThemeServiceServer registers srv with s.
func RegisterThemeServiceServer(s grpc.ServiceRegistrar, srv ThemeServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func newEmpty() *emptypb.Empty { return new(emptypb.Empty) }

func newStruct() *structpb.Struct { return new(structpb.Struct) }

func newBool() *wrapperspb.BoolValue { return new(wrapperspb.BoolValue) }

func unary[Req, Resp proto.Message](
	method string,
	newReq func() Req,
	call func(ThemeServiceServer, context.Context, Req) (Resp, error),
) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := newReq()
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ThemeServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(method),
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ThemeServiceServer), ctx, req.(Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Client is a typed ThemeService client.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps a connection.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// GetTheme returns the daemon's current selection.
func (c *Client) GetTheme(ctx context.Context, opts ...grpc.CallOption) (models.ThemeState, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(MethodGetTheme), &emptypb.Empty{}, out, opts...); err != nil {
		return models.ThemeState{}, err
	}
	return stateFromStruct(out), nil
}

// ListPalettes returns the entry names of a catalog in display order.
func (c *Client) ListPalettes(ctx context.Context, kind string, opts ...grpc.CallOption) ([]string, error) {
	in, err := structpb.NewStruct(map[string]any{"kind": kind})
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(MethodListPalettes), in, out, opts...); err != nil {
		return nil, err
	}

	var names []string
	for _, item := range out.GetFields()["palettes"].GetListValue().GetValues() {
		names = append(names, item.GetStructValue().GetFields()["name"].GetStringValue())
	}
	return names, nil
}

// UpdateColors selects and propagates a palette. A dropped update fails with
// codes.Aborted.
func (c *Client) UpdateColors(ctx context.Context, kind, name string, opts ...grpc.CallOption) (models.ThemeState, string, error) {
	in, err := structpb.NewStruct(map[string]any{"kind": kind, "name": name})
	if err != nil {
		return models.ThemeState{}, "", err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(MethodUpdateColors), in, out, opts...); err != nil {
		return models.ThemeState{}, "", err
	}
	return stateFromStruct(out), out.GetFields()["strategy"].GetStringValue(), nil
}

// SetDarkMode sets dark mode.
func (c *Client) SetDarkMode(ctx context.Context, value bool, opts ...grpc.CallOption) (models.ThemeState, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(MethodSetDarkMode), wrapperspb.Bool(value), out, opts...); err != nil {
		return models.ThemeState{}, err
	}
	return stateFromStruct(out), nil
}

// ToggleDarkMode flips dark mode.
func (c *Client) ToggleDarkMode(ctx context.Context, opts ...grpc.CallOption) (models.ThemeState, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(MethodToggleDarkMode), &emptypb.Empty{}, out, opts...); err != nil {
		return models.ThemeState{}, err
	}
	return stateFromStruct(out), nil
}

// GetStylesheet returns the rendered root scope.
func (c *Client) GetStylesheet(ctx context.Context, opts ...grpc.CallOption) (string, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, FullMethod(MethodGetStylesheet), &emptypb.Empty{}, out, opts...); err != nil {
		return "", err
	}
	return out.GetValue(), nil
}

func stateToStruct(state models.ThemeState, extra map[string]any) (*structpb.Struct, error) {
	fields := map[string]any{
		"primary":  state.Primary,
		"surface":  state.Surface,
		"darkMode": state.DarkMode,
	}
	for k, v := range extra {
		fields[k] = v
	}
	out, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode theme: %w", err)
	}
	return out, nil
}

func stateFromStruct(s *structpb.Struct) models.ThemeState {
	fields := s.GetFields()
	return models.ThemeState{
		Primary:  fields["primary"].GetStringValue(),
		Surface:  fields["surface"].GetStringValue(),
		DarkMode: fields["darkMode"].GetBoolValue(),
	}
}
