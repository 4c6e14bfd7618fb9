package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/passlocker/internal/common"
	pb "github.com/dmitrijs2005/passlocker/internal/proto"
	"github.com/dmitrijs2005/passlocker/internal/server/authctx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request")

	user, err := s.users.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "username", user.UserName)
	return &pb.RegisterResponse{UserId: user.ID}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	token, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.LoginResponse{AccessToken: token, TokenType: "Bearer"}, nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, req *pb.GetProfileRequest) (*pb.GetProfileResponse, error) {

	p, ok := authctx.PrincipalFrom(ctx)
	if !ok {
		return nil, errUnauthenticated
	}

	user, err := s.users.GetUser(ctx, p.UserID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.GetProfileResponse{
		UserId:      user.ID,
		Username:    user.UserName,
		Email:       user.Email,
		MemberSince: user.CreatedAt.UTC().Format(time.RFC3339),
	}, nil
}

func (s *GRPCServer) ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) (*pb.ChangePasswordResponse, error) {

	p, ok := authctx.PrincipalFrom(ctx)
	if !ok {
		return nil, errUnauthenticated
	}

	if err := s.users.ChangePassword(ctx, p.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Password changed", "username", p.UserName)
	return &pb.ChangePasswordResponse{}, nil
}

func (s *GRPCServer) DeleteProfile(ctx context.Context, req *pb.DeleteProfileRequest) (*pb.DeleteProfileResponse, error) {

	p, ok := authctx.PrincipalFrom(ctx)
	if !ok {
		return nil, errUnauthenticated
	}

	if err := s.users.DeleteUser(ctx, p.UserID); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Profile deleted", "username", p.UserName)
	return &pb.DeleteProfileResponse{}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

// toStatus maps service errors to gRPC statuses with fixed messages; the
// underlying error is logged, never returned.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, "invalid input")
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "user already exists")
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrInvalidToken):
		return errUnauthenticated
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	default:
		s.logger.Error(ctx, "request failed", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}
