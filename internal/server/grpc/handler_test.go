package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/passlocker/internal/common"
	"github.com/dmitrijs2005/passlocker/internal/logging"
	pb "github.com/dmitrijs2005/passlocker/internal/proto"
	"github.com/dmitrijs2005/passlocker/internal/server/authctx"
	"github.com/dmitrijs2005/passlocker/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ---- fakes ----

type fakeUser struct {
	regResp *models.User
	regErr  error

	loginResp string
	loginErr  error

	authResp authctx.Principal
	authErr  error

	getResp *models.User
	getErr  error

	changeErr error
	deleteErr error

	changedFor string
	deletedID  string
}

func (f *fakeUser) Register(ctx context.Context, username, email, plaintext string) (*models.User, error) {
	return f.regResp, f.regErr
}
func (f *fakeUser) Login(ctx context.Context, username, plaintext string) (string, error) {
	return f.loginResp, f.loginErr
}
func (f *fakeUser) Authenticate(ctx context.Context, token string) (authctx.Principal, error) {
	return f.authResp, f.authErr
}
func (f *fakeUser) ChangePassword(ctx context.Context, userID, current, next string) error {
	f.changedFor = userID
	return f.changeErr
}
func (f *fakeUser) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return f.getResp, f.getErr
}
func (f *fakeUser) DeleteUser(ctx context.Context, userID string) error {
	f.deletedID = userID
	return f.deleteErr
}

func newServer(u userSvc) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.Nop{}, u, time.Second)
}

func withPrincipal() context.Context {
	return authctx.WithPrincipal(context.Background(), authctx.Principal{UserID: "u-1", UserName: "alice"})
}

// ---- tests ----

func TestPing_OK(t *testing.T) {
	s := newServer(&fakeUser{})
	resp, err := s.Ping(context.Background(), &pb.PingRequest{})
	if err != nil {
		t.Fatalf("Ping error: %v", err)
	}
	if resp.Status != "OK" {
		t.Fatalf("unexpected status: %q", resp.Status)
	}
}

func TestRegister_OK(t *testing.T) {
	s := newServer(&fakeUser{regResp: &models.User{ID: "u-1", UserName: "alice"}})
	resp, err := s.Register(context.Background(), &pb.RegisterRequest{Username: "alice", Password: "pw"})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if resp.GetUserId() != "u-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestRegister_ErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		code codes.Code
		msg  string
	}{
		{common.ErrInvalidInput, codes.InvalidArgument, "invalid input"},
		{common.ErrorAlreadyExists, codes.AlreadyExists, "user already exists"},
		{errors.New("pq: connection refused"), codes.Internal, "internal error"},
	}

	for _, tt := range tests {
		s := newServer(&fakeUser{regErr: tt.err})
		_, err := s.Register(context.Background(), &pb.RegisterRequest{Username: "alice"})
		if status.Code(err) != tt.code || status.Convert(err).Message() != tt.msg {
			t.Fatalf("for %v want %v %q, got %v", tt.err, tt.code, tt.msg, err)
		}
	}
}

func TestLogin_OK(t *testing.T) {
	s := newServer(&fakeUser{loginResp: "tok"})
	resp, err := s.Login(context.Background(), &pb.LoginRequest{Username: "alice", Password: "pw"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if resp.AccessToken != "tok" || resp.TokenType != "Bearer" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestLogin_UnauthorizedAndInternal(t *testing.T) {
	s := newServer(&fakeUser{loginErr: common.ErrorUnauthorized})
	_, err := s.Login(context.Background(), &pb.LoginRequest{})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}

	s = newServer(&fakeUser{loginErr: common.ErrorInternal})
	_, err = s.Login(context.Background(), &pb.LoginRequest{})
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", status.Code(err))
	}
}

func TestGetProfile(t *testing.T) {
	created := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)
	s := newServer(&fakeUser{getResp: &models.User{ID: "u-1", UserName: "alice", Email: "a@x", CreatedAt: created}})

	resp, err := s.GetProfile(withPrincipal(), &pb.GetProfileRequest{})
	if err != nil {
		t.Fatalf("GetProfile error: %v", err)
	}
	if resp.Username != "alice" || resp.Email != "a@x" || resp.MemberSince != "2023-07-01T00:00:00Z" {
		t.Fatalf("unexpected profile: %+v", resp)
	}

	_, err = s.GetProfile(context.Background(), &pb.GetProfileRequest{})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated without principal, got %v", status.Code(err))
	}

	s = newServer(&fakeUser{getErr: common.ErrorNotFound})
	_, err = s.GetProfile(withPrincipal(), &pb.GetProfileRequest{})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("want NotFound, got %v", status.Code(err))
	}
}

func TestChangePassword(t *testing.T) {
	u := &fakeUser{}
	s := newServer(u)

	if _, err := s.ChangePassword(withPrincipal(), &pb.ChangePasswordRequest{CurrentPassword: "a", NewPassword: "b"}); err != nil {
		t.Fatalf("ChangePassword error: %v", err)
	}
	if u.changedFor != "u-1" {
		t.Fatalf("password changed for %q, want u-1", u.changedFor)
	}

	u.changeErr = common.ErrorUnauthorized
	_, err := s.ChangePassword(withPrincipal(), &pb.ChangePasswordRequest{})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}
}

func TestDeleteProfile(t *testing.T) {
	u := &fakeUser{}
	s := newServer(u)

	if _, err := s.DeleteProfile(withPrincipal(), &pb.DeleteProfileRequest{}); err != nil {
		t.Fatalf("DeleteProfile error: %v", err)
	}
	if u.deletedID != "u-1" {
		t.Fatalf("deleted %q, want u-1", u.deletedID)
	}

	_, err := s.DeleteProfile(context.Background(), &pb.DeleteProfileRequest{})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}
}
