package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	Users_CreateUser_FullMethodName  = "/users.Users/CreateUser"
	Users_GetUsers_FullMethodName    = "/users.Users/GetUsers"
	Users_GetUserByID_FullMethodName = "/users.Users/GetUserByID"
	Users_UpdateUser_FullMethodName  = "/users.Users/UpdateUser"
	Users_DeleteUser_FullMethodName  = "/users.Users/DeleteUser"
)

// UsersClient is the client API for the users.Users service.
type UsersClient interface {
	CreateUser(ctx context.Context, in *CreateUserRequest, opts ...grpc.CallOption) (*CreateUserResponse, error)
	GetUsers(ctx context.Context, in *GetUsersRequest, opts ...grpc.CallOption) (*GetUsersResponse, error)
	GetUserByID(ctx context.Context, in *GetUserByIDRequest, opts ...grpc.CallOption) (*GetUserByIDResponse, error)
	UpdateUser(ctx context.Context, in *UpdateUserRequest, opts ...grpc.CallOption) (*UpdateUserResponse, error)
	DeleteUser(ctx context.Context, in *DeleteUserRequest, opts ...grpc.CallOption) (*DeleteUserResponse, error)
}

type usersClient struct {
	cc grpc.ClientConnInterface
}

// NewUsersClient wraps cc. Calls use the binary protobuf codec unless opts
// select another content-subtype, e.g. grpc.CallContentSubtype(JSONCodecName).
func NewUsersClient(cc grpc.ClientConnInterface) UsersClient {
	return &usersClient{cc}
}

func (c *usersClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *usersClient) CreateUser(ctx context.Context, in *CreateUserRequest, opts ...grpc.CallOption) (*CreateUserResponse, error) {
	out := new(CreateUserResponse)
	if err := c.invoke(ctx, Users_CreateUser_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *usersClient) GetUsers(ctx context.Context, in *GetUsersRequest, opts ...grpc.CallOption) (*GetUsersResponse, error) {
	out := new(GetUsersResponse)
	if err := c.invoke(ctx, Users_GetUsers_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *usersClient) GetUserByID(ctx context.Context, in *GetUserByIDRequest, opts ...grpc.CallOption) (*GetUserByIDResponse, error) {
	out := new(GetUserByIDResponse)
	if err := c.invoke(ctx, Users_GetUserByID_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *usersClient) UpdateUser(ctx context.Context, in *UpdateUserRequest, opts ...grpc.CallOption) (*UpdateUserResponse, error) {
	out := new(UpdateUserResponse)
	if err := c.invoke(ctx, Users_UpdateUser_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *usersClient) DeleteUser(ctx context.Context, in *DeleteUserRequest, opts ...grpc.CallOption) (*DeleteUserResponse, error) {
	out := new(DeleteUserResponse)
	if err := c.invoke(ctx, Users_DeleteUser_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// UsersServer is the server API for the users.Users service.
// Implementations must embed UnimplementedUsersServer.
type UsersServer interface {
	CreateUser(context.Context, *CreateUserRequest) (*CreateUserResponse, error)
	GetUsers(context.Context, *GetUsersRequest) (*GetUsersResponse, error)
	GetUserByID(context.Context, *GetUserByIDRequest) (*GetUserByIDResponse, error)
	UpdateUser(context.Context, *UpdateUserRequest) (*UpdateUserResponse, error)
	DeleteUser(context.Context, *DeleteUserRequest) (*DeleteUserResponse, error)
	mustEmbedUnimplementedUsersServer()
}

type UnimplementedUsersServer struct{}

func (UnimplementedUsersServer) CreateUser(context.Context, *CreateUserRequest) (*CreateUserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateUser not implemented")
}
func (UnimplementedUsersServer) GetUsers(context.Context, *GetUsersRequest) (*GetUsersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUsers not implemented")
}
func (UnimplementedUsersServer) GetUserByID(context.Context, *GetUserByIDRequest) (*GetUserByIDResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUserByID not implemented")
}
func (UnimplementedUsersServer) UpdateUser(context.Context, *UpdateUserRequest) (*UpdateUserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateUser not implemented")
}
func (UnimplementedUsersServer) DeleteUser(context.Context, *DeleteUserRequest) (*DeleteUserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteUser not implemented")
}
func (UnimplementedUsersServer) mustEmbedUnimplementedUsersServer() {}

func RegisterUsersServer(s grpc.ServiceRegistrar, srv UsersServer) {
	s.RegisterService(&Users_ServiceDesc, srv)
}

// unaryHandler builds the MethodDesc handler for one RPC; call dispatches the
// decoded *Req to the concrete server method.
func unaryHandler[Req any](method string, call func(UsersServer, context.Context, *Req) (any, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(UsersServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: method,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(UsersServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Users_ServiceDesc is the grpc.ServiceDesc for the users.Users service.
var Users_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "users.Users",
	HandlerType: (*UsersServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateUser",
			Handler: unaryHandler(Users_CreateUser_FullMethodName, func(s UsersServer, ctx context.Context, in *CreateUserRequest) (any, error) {
				return s.CreateUser(ctx, in)
			}),
		},
		{
			MethodName: "GetUsers",
			Handler: unaryHandler(Users_GetUsers_FullMethodName, func(s UsersServer, ctx context.Context, in *GetUsersRequest) (any, error) {
				return s.GetUsers(ctx, in)
			}),
		},
		{
			MethodName: "GetUserByID",
			Handler: unaryHandler(Users_GetUserByID_FullMethodName, func(s UsersServer, ctx context.Context, in *GetUserByIDRequest) (any, error) {
				return s.GetUserByID(ctx, in)
			}),
		},
		{
			MethodName: "UpdateUser",
			Handler: unaryHandler(Users_UpdateUser_FullMethodName, func(s UsersServer, ctx context.Context, in *UpdateUserRequest) (any, error) {
				return s.UpdateUser(ctx, in)
			}),
		},
		{
			MethodName: "DeleteUser",
			Handler: unaryHandler(Users_DeleteUser_FullMethodName, func(s UsersServer, ctx context.Context, in *DeleteUserRequest) (any, error) {
				return s.DeleteUser(ctx, in)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "users.proto",
}
