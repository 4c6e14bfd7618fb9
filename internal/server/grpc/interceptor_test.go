package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/passlocker/internal/common"
	pb "github.com/dmitrijs2005/passlocker/internal/proto"
	"github.com/dmitrijs2005/passlocker/internal/server/authctx"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func incoming(authorization string) context.Context {
	md := metadata.New(map[string]string{common.AuthorizationHeaderName: authorization})
	return metadata.NewIncomingContext(context.Background(), md)
}

func TestInterceptor_PublicMethod_AllowsWithoutToken(t *testing.T) {
	s := newServer(&fakeUser{authErr: errors.New("must not be called")})

	handlerCalled := false
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		handlerCalled = true
		return "ok", nil
	}

	for _, m := range []string{pb.AuthService_Register_FullMethodName, pb.AuthService_Login_FullMethodName, pb.AuthService_Ping_FullMethodName} {
		handlerCalled = false
		resp, err := s.accessTokenInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: m}, h)
		if err != nil || resp != "ok" || !handlerCalled {
			t.Fatalf("%s: unexpected result %v, %v", m, resp, err)
		}
	}
}

func TestInterceptor_MissingOrMalformedHeader(t *testing.T) {
	s := newServer(&fakeUser{})
	info := &grpc.UnaryServerInfo{FullMethod: pb.AuthService_GetProfile_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	ctxs := map[string]context.Context{
		"no metadata":  context.Background(),
		"empty":        incoming(""),
		"no scheme":    incoming("abc.def.ghi"),
		"basic scheme": incoming("Basic dXNlcjpwYXNz"),
		"bearer only":  incoming("Bearer "),
	}

	for name, ctx := range ctxs {
		_, err := s.accessTokenInterceptor(ctx, nil, info, h)
		if status.Code(err) != codes.Unauthenticated {
			t.Fatalf("%s: expected Unauthenticated, got %v", name, status.Code(err))
		}
		if status.Convert(err).Message() != "unauthorized" {
			t.Fatalf("%s: expected generic message, got %q", name, status.Convert(err).Message())
		}
	}
}

func TestInterceptor_InvalidToken(t *testing.T) {
	s := newServer(&fakeUser{authErr: common.ErrInvalidToken})
	info := &grpc.UnaryServerInfo{FullMethod: pb.AuthService_GetProfile_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called for invalid token")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(incoming("Bearer not-a-valid-jwt"), nil, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "unauthorized" {
		t.Fatalf("expected generic message, got %q", status.Convert(err).Message())
	}
}

func TestInterceptor_StoreFailureIsInternal(t *testing.T) {
	s := newServer(&fakeUser{authErr: common.ErrorInternal})
	info := &grpc.UnaryServerInfo{FullMethod: pb.AuthService_GetProfile_FullMethodName}

	_, err := s.accessTokenInterceptor(incoming("Bearer x.y.z"), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, nil
	})
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal, got %v", status.Code(err))
	}
}

func TestInterceptor_ValidToken_SetsPrincipal(t *testing.T) {
	s := newServer(&fakeUser{authResp: authctx.Principal{UserID: "u-1", UserName: "alice"}})
	info := &grpc.UnaryServerInfo{FullMethod: pb.AuthService_GetProfile_FullMethodName}

	var got authctx.Principal
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		got, _ = authctx.PrincipalFrom(ctx)
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(incoming("bearer a.b.c"), nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
	if got.UserName != "alice" || got.UserID != "u-1" {
		t.Fatalf("principal not propagated in context: %+v", got)
	}
}

func TestBearerToken(t *testing.T) {
	tok, ok := bearerToken(incoming("  Bearer   abc.def.ghi  "))
	if !ok || tok != "abc.def.ghi" {
		t.Fatalf("got %q, %v", tok, ok)
	}
}
