package grpc

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dmitrijs2005/usersrpc/internal/common"
	pb "github.com/dmitrijs2005/usersrpc/internal/proto"
	"github.com/dmitrijs2005/usersrpc/internal/server/models"
)

const (
	MessageCreated = "User created successfully"
	MessageUpdated = "User updated successfully"
	MessageDeleted = "User deleted successfully"

	internalMessage = "internal error"
)

func (s *GRPCServer) CreateUser(ctx context.Context, req *pb.CreateUserRequest) (*pb.CreateUserResponse, error) {

	in := req.GetUser()
	user, err := s.users.CreateUser(ctx, in.GetName(), in.GetEmail(), in.GetPassword())
	if err != nil {
		return nil, s.statusError(ctx, "CreateUser", err)
	}

	s.logger.Info(ctx, "User created", "request_id", requestID(ctx), "id", user.ID)
	return &pb.CreateUserResponse{User: s.toPB(user), Message: MessageCreated}, nil

}

func (s *GRPCServer) GetUsers(ctx context.Context, req *pb.GetUsersRequest) (*pb.GetUsersResponse, error) {

	list, total, err := s.users.ListUsers(ctx, int(req.GetPage()), int(req.GetPageSize()))
	if err != nil {
		return nil, s.statusError(ctx, "GetUsers", err)
	}

	out := make([]*pb.User, 0, len(list))
	for _, u := range list {
		out = append(out, s.toPB(u))
	}

	return &pb.GetUsersResponse{Users: out, TotalCount: int32(total)}, nil

}

func (s *GRPCServer) GetUserByID(ctx context.Context, req *pb.GetUserByIDRequest) (*pb.GetUserByIDResponse, error) {

	user, err := s.users.GetUser(ctx, req.GetId())
	if err != nil {
		return nil, s.statusError(ctx, "GetUserByID", err, "id", req.GetId())
	}

	return &pb.GetUserByIDResponse{User: s.toPB(user)}, nil

}

func (s *GRPCServer) UpdateUser(ctx context.Context, req *pb.UpdateUserRequest) (*pb.UpdateUserResponse, error) {

	in := req.GetUser()
	user, err := s.users.UpdateUser(ctx, in.GetId(), in.GetName(), in.GetEmail(), in.GetPassword())
	if err != nil {
		return nil, s.statusError(ctx, "UpdateUser", err, "id", in.GetId())
	}

	s.logger.Info(ctx, "User updated", "request_id", requestID(ctx), "id", user.ID)
	return &pb.UpdateUserResponse{User: s.toPB(user), Message: MessageUpdated}, nil

}

func (s *GRPCServer) DeleteUser(ctx context.Context, req *pb.DeleteUserRequest) (*pb.DeleteUserResponse, error) {

	if err := s.users.DeleteUser(ctx, req.GetId()); err != nil {
		return nil, s.statusError(ctx, "DeleteUser", err, "id", req.GetId())
	}

	s.logger.Info(ctx, "User deleted", "request_id", requestID(ctx), "id", req.GetId())
	return &pb.DeleteUserResponse{Id: req.GetId(), Message: MessageDeleted}, nil

}

func (s *GRPCServer) toPB(u *models.User) *pb.User {
	out := &pb.User{
		Id:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: timestamppb.New(u.CreatedAt),
		UpdatedAt: timestamppb.New(u.UpdatedAt),
	}
	if s.exposePasswordHash {
		out.Password = u.PasswordHash
	}
	return out
}

// statusError logs err with the operation name and translates it into a gRPC
// status. Internal failures reach the caller only as "internal error".
func (s *GRPCServer) statusError(ctx context.Context, op string, err error, args ...any) error {
	args = append([]any{"request_id", requestID(ctx), "op", op}, args...)

	var verr *common.ValidationError
	switch {
	case errors.As(err, &verr):
		s.logger.Warn(ctx, "Invalid argument", append(args, "fields", verr.Fields())...)
		return invalidArgument(verr)

	case errors.Is(err, common.ErrorInvalidArgument):
		s.logger.Warn(ctx, "Invalid argument", append(args, "error", err)...)
		return status.Error(codes.InvalidArgument, "invalid argument")

	case errors.Is(err, common.ErrorNotFound):
		s.logger.Info(ctx, "User not found", args...)
		return status.Error(codes.NotFound, "user not found")

	case errors.Is(err, common.ErrorAlreadyExists):
		s.logger.Info(ctx, "Email already in use", append(args, "field", "email")...)
		return status.Error(codes.AlreadyExists, "user with this email already exists")

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		s.logger.Warn(ctx, "Request aborted", append(args, "error", err)...)
		return status.FromContextError(err).Err()

	default:
		s.logger.Error(ctx, "Internal error", append(args, "error", err)...)
		return status.Error(codes.Internal, internalMessage)
	}
}

func invalidArgument(verr *common.ValidationError) error {
	st := status.New(codes.InvalidArgument, verr.Error())

	br := &errdetails.BadRequest{}
	for _, v := range verr.Violations {
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       v.Field,
			Description: v.Description,
		})
	}

	detailed, err := st.WithDetails(br)
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}
