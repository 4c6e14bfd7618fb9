package grpc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/passlocker/internal/common"
	pb "github.com/dmitrijs2005/passlocker/internal/proto"
	"github.com/dmitrijs2005/passlocker/internal/server/authctx"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// publicMethods can be called without a session token.
var publicMethods = map[string]struct{}{
	pb.AuthService_Register_FullMethodName: {},
	pb.AuthService_Login_FullMethodName:    {},
	pb.AuthService_Ping_FullMethodName:     {},
}

var errUnauthenticated = status.Error(codes.Unauthenticated, "unauthorized")

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if _, ok := publicMethods[info.FullMethod]; ok {
		return handler(ctx, req)
	}

	token, ok := bearerToken(ctx)
	if !ok {
		return nil, errUnauthenticated
	}

	principal, err := s.users.Authenticate(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrInvalidToken) {
			s.logger.Debug(ctx, "token rejected", "method", info.FullMethod)
			return nil, errUnauthenticated
		}
		s.logger.Error(ctx, "authentication failed", "method", info.FullMethod, "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return handler(authctx.WithPrincipal(ctx, principal), req)
}

// requestLogInterceptor tags each call with a request id and logs its outcome.
func (s *GRPCServer) requestLogInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	requestID := uuid.NewString()

	_ = grpc.SetHeader(ctx, metadata.Pairs("x-request-id", requestID))

	resp, err := handler(ctx, req)

	s.logger.Info(ctx, "rpc",
		"request_id", requestID,
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)

	return resp, err
}

// bearerToken extracts the token from "authorization: Bearer <token>".
func bearerToken(ctx context.Context) (string, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false
	}
	values := md.Get(common.AuthorizationHeaderName)
	if len(values) == 0 {
		return "", false
	}

	v := strings.TrimSpace(values[0])
	if len(v) <= len(common.BearerPrefix) || !strings.EqualFold(v[:len(common.BearerPrefix)], common.BearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(v[len(common.BearerPrefix):])
	return token, token != ""
}
