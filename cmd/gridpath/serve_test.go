package main

import (
	"context"
	"io"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/internal/config"
)

// useServeConfig points the package-level cfg at port and silences the
// logger, restoring both afterwards.
func useServeConfig(t *testing.T, port string) {
	t.Helper()
	prevCfg, prevOut, prevFmt, prevMode := cfg, log.Out, log.Formatter, gin.Mode()
	t.Cleanup(func() {
		cfg = prevCfg
		log.SetOutput(prevOut)
		log.SetFormatter(prevFmt)
		gin.SetMode(prevMode)
	})

	cfg = config.Defaults()
	cfg.Port = port
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.InfoLevel)
}

func TestServe_StopsOnCancelledContext(t *testing.T) {
	useServeConfig(t, "0")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- serve(ctx) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("serve did not return after its context was cancelled")
	}
}

func TestServe_ReportsListenFailure(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()
	useServeConfig(t, strconv.Itoa(busy.Addr().(*net.TCPAddr).Port))

	done := make(chan error, 1)
	go func() { done <- serve(context.Background()) }()

	select {
	case err := <-done:
		require.Error(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("serve did not give up on a port that is already bound")
	}
}
