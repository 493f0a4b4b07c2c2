// Package client is a thin wrapper over the users.Users gRPC API that converts
// wire messages into client models and statuses into typed errors.
package client

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/dmitrijs2005/usersrpc/internal/client/models"
	pb "github.com/dmitrijs2005/usersrpc/internal/proto"
)

// RequestIDHeader matches the header the server logs requests under.
const RequestIDHeader = "x-request-id"

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.UsersClient
}

func withRequestID(ctx context.Context) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	if len(md.Get(RequestIDHeader)) > 0 {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, RequestIDHeader, uuid.NewString())
}

func requestIDInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	return invoker(withRequestID(ctx), method, req, reply, cc, opts...)
}

// NewUsersClient connects lazily to endpointURL. Extra dial options are
// appended after the defaults (plaintext transport, request-id interceptor).
func NewUsersClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(requestIDInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewUsersClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) CreateUser(ctx context.Context, name, email, password string) (*models.User, string, error) {

	req := &pb.CreateUserRequest{User: &pb.User{Name: name, Email: email, Password: password}}

	resp, err := s.client.CreateUser(ctx, req)
	if err != nil {
		return nil, "", s.mapError(err)
	}

	return models.FromPB(resp.GetUser()), resp.GetMessage(), nil

}

func (s *GRPCClient) GetUsers(ctx context.Context, page, pageSize int) ([]*models.User, int, error) {

	resp, err := s.client.GetUsers(ctx, &pb.GetUsersRequest{Page: int32(page), PageSize: int32(pageSize)})
	if err != nil {
		return nil, 0, s.mapError(err)
	}

	list := make([]*models.User, 0, len(resp.GetUsers()))
	for _, u := range resp.GetUsers() {
		list = append(list, models.FromPB(u))
	}
	return list, int(resp.GetTotalCount()), nil

}

func (s *GRPCClient) GetUserByID(ctx context.Context, id string) (*models.User, error) {

	resp, err := s.client.GetUserByID(ctx, &pb.GetUserByIDRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}

	return models.FromPB(resp.GetUser()), nil

}

// UpdateUser replaces name and email; an empty password keeps the current one.
func (s *GRPCClient) UpdateUser(ctx context.Context, id, name, email, password string) (*models.User, string, error) {

	req := &pb.UpdateUserRequest{User: &pb.User{Id: id, Name: name, Email: email, Password: password}}

	resp, err := s.client.UpdateUser(ctx, req)
	if err != nil {
		return nil, "", s.mapError(err)
	}

	return models.FromPB(resp.GetUser()), resp.GetMessage(), nil

}

// DeleteUser returns the id the server reports as deleted along with its
// confirmation message.
func (s *GRPCClient) DeleteUser(ctx context.Context, id string) (string, string, error) {

	resp, err := s.client.DeleteUser(ctx, &pb.DeleteUserRequest{Id: id})
	if err != nil {
		return "", "", s.mapError(err)
	}

	return resp.GetId(), resp.GetMessage(), nil

}
