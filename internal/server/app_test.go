package server

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/dmitrijs2005/passlocker/internal/logging"
	"github.com/dmitrijs2005/passlocker/internal/server/config"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.EndpointAddrGRPC = "127.0.0.1:0"
	c.DatabaseDSN = MemoryDSN
	c.LogLevel = "error"
	c.ShutdownTimeout = time.Second
	return c
}

func TestNewApp_InMemory(t *testing.T) {
	app, err := NewApp(context.Background(), memoryConfig())
	require.NoError(t, err)
	require.NotNil(t, app.userService)
	require.Nil(t, app.db)
}

func TestNewApp_BadLogLevel(t *testing.T) {
	c := memoryConfig()
	c.LogLevel = "loud"

	_, err := NewApp(context.Background(), c)
	require.Error(t, err)
}

func TestNewApp_BadSigningContext(t *testing.T) {
	c := memoryConfig()
	c.TokenExpirationMinutes = 0

	_, err := NewApp(context.Background(), c)
	require.Error(t, err)
}

func TestRun_StopsOnCancel(t *testing.T) {
	app, err := NewApp(context.Background(), memoryConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
}

func TestSignalHandler_ExitsWhenContextEnds(t *testing.T) {
	app := &App{logger: logging.Nop{}}

	ctx, cancel := context.WithCancel(context.Background())
	done := app.initSignalHandler(ctx, cancel)

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("signal watcher still running after context cancel")
	}
}

func TestSignalHandler_CancelsOnSignal(t *testing.T) {
	app := &App{logger: logging.Nop{}}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := app.initSignalHandler(ctx, cancel)

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGINT))

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("context not cancelled by SIGINT")
	}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("signal watcher did not exit")
	}
}

func TestRun_ReturnsOnServerError(t *testing.T) {
	c := memoryConfig()
	c.EndpointAddrGRPC = "127.0.0.1:99999"

	app, err := NewApp(context.Background(), c)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		app.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop after the server failed")
	}
}
