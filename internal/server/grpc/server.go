// Package grpc exposes the user service over gRPC and authenticates
// requests from their bearer token.
package grpc

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/dmitrijs2005/passlocker/internal/logging"
	pb "github.com/dmitrijs2005/passlocker/internal/proto"
	"github.com/dmitrijs2005/passlocker/internal/server/authctx"
	"github.com/dmitrijs2005/passlocker/internal/server/models"
	"google.golang.org/grpc"
)

// userSvc is the part of services.UserService used by the transport.
type userSvc interface {
	Register(ctx context.Context, username, email, plaintext string) (*models.User, error)
	Login(ctx context.Context, username, plaintext string) (string, error)
	Authenticate(ctx context.Context, token string) (authctx.Principal, error)
	ChangePassword(ctx context.Context, userID, current, next string) error
	GetUser(ctx context.Context, userID string) (*models.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

type GRPCServer struct {
	pb.UnimplementedAuthServiceServer
	address         string
	users           userSvc
	logger          logging.Logger
	shutdownTimeout time.Duration
}

func NewGRPCServer(a string, l logging.Logger, us userSvc, shutdownTimeout time.Duration) *GRPCServer {
	return &GRPCServer{
		address:         a,
		logger:          l.With("module", "grpc_server"),
		users:           us,
		shutdownTimeout: shutdownTimeout,
	}
}

// newServer builds the grpc.Server with interceptors and the service registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.requestLogInterceptor, s.accessTokenInterceptor))
	pb.RegisterAuthServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
// In-flight calls get shutdownTimeout to finish before being cut off.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	served := make(chan struct{})
	drained := make(chan struct{})

	go func() {
		defer close(drained)
		select {
		case <-ctx.Done():
		case <-served:
			return
		}
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.stop(srv)
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	err := srv.Serve(lis)
	close(served)
	<-drained

	if errors.Is(err, grpc.ErrServerStopped) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (s *GRPCServer) stop(srv *grpc.Server) {
	done := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(done)
	}()

	if s.shutdownTimeout <= 0 {
		<-done
		return
	}

	timer := time.NewTimer(s.shutdownTimeout)
	defer timer.Stop()

	select {
	case <-done:
	case <-timer.C:
		srv.Stop()
	}
}
