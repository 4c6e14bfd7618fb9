package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/passlocker/internal/common"
	"github.com/dmitrijs2005/passlocker/internal/logging"
	pb "github.com/dmitrijs2005/passlocker/internal/proto"
	"github.com/dmitrijs2005/passlocker/internal/password"
	"github.com/dmitrijs2005/passlocker/internal/server/auth"
	"github.com/dmitrijs2005/passlocker/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/passlocker/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:0", logging.Nop{}, &fakeUser{}, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", logging.Nop{}, &fakeUser{}, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.Run(ctx); err == nil {
		t.Fatal("expected error from Run on bad address, got nil")
	}
}

// startBufServer serves a real UserService over an in-memory listener.
func startBufServer(t *testing.T) pb.AuthServiceClient {
	t.Helper()

	p, err := password.New(password.Params{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32, SaltLen: 16})
	require.NoError(t, err)
	sc, err := auth.NewSigningContext("passlocker", "passlocker-api", 30)
	require.NoError(t, err)
	us := services.NewUserService(nil, repomanager.NewInMemoryRepositoryManager(), p, auth.NewTokenService(sc))

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewGRPCServer("bufnet", logging.Nop{}, us, time.Second).Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		<-done
	})

	return pb.NewAuthServiceClient(conn)
}

func bearer(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, common.AuthorizationHeaderName, common.BearerPrefix+token)
}

func TestEndToEnd_SessionLifecycle(t *testing.T) {
	client := startBufServer(t)
	ctx := context.Background()

	pong, err := client.Ping(ctx, &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", pong.Status)

	reg, err := client.Register(ctx, &pb.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "hash123"})
	require.NoError(t, err)
	require.NotEmpty(t, reg.UserId)

	_, err = client.Register(ctx, &pb.RegisterRequest{Username: "alice", Password: "x"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	_, err = client.Login(ctx, &pb.LoginRequest{Username: "alice", Password: "wrong"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	login, err := client.Login(ctx, &pb.LoginRequest{Username: "alice", Password: "hash123"})
	require.NoError(t, err)

	_, err = client.GetProfile(ctx, &pb.GetProfileRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	profile, err := client.GetProfile(bearer(ctx, login.AccessToken), &pb.GetProfileRequest{})
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, reg.UserId, profile.UserId)
	assert.Equal(t, "alice@example.com", profile.Email)
	_, err = time.Parse(time.RFC3339, profile.MemberSince)
	assert.NoError(t, err)

	_, err = client.ChangePassword(bearer(ctx, login.AccessToken), &pb.ChangePasswordRequest{CurrentPassword: "hash123", NewPassword: "rotated"})
	require.NoError(t, err)

	// the old token was signed with the old hash
	_, err = client.GetProfile(bearer(ctx, login.AccessToken), &pb.GetProfileRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "unauthorized", status.Convert(err).Message())

	login2, err := client.Login(ctx, &pb.LoginRequest{Username: "alice", Password: "rotated"})
	require.NoError(t, err)

	_, err = client.DeleteProfile(bearer(ctx, login2.AccessToken), &pb.DeleteProfileRequest{})
	require.NoError(t, err)

	_, err = client.GetProfile(bearer(ctx, login2.AccessToken), &pb.GetProfileRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}
