package main

import (
	"bytes"
	"net"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"xdao.co/cosmoskey/bn254"
	"xdao.co/cosmoskey/config"
	"xdao.co/cosmoskey/keysvc"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)
	cfg.LogLevel = "error"
	return cfg
}

func TestServeListener_StopsOnSignal(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()

	cfg := testConfig(t)
	sig := make(chan os.Signal, 1)
	errc := make(chan error, 1)
	go func() { errc <- serveListener(lis, cfg, sig) }()

	client, err := keysvc.Dial(lis.Addr().String(), keysvc.DialOptions{Timeout: 2 * time.Second})
	require.NoError(t, err)
	defer client.Close()
	urls, err := client.Types()
	require.NoError(t, err)
	require.Contains(t, urls, bn254.TypeURL)

	sig <- syscall.SIGTERM
	select {
	case err := <-errc:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not stop after signal")
	}
}

// A failing listener must return without waiting for a signal.
func TestServeListener_ReturnsOnListenerError(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, lis.Close())

	cfg := testConfig(t)
	errc := make(chan error, 1)
	go func() { errc <- serveListener(lis, cfg, make(chan os.Signal)) }()

	select {
	case err := <-errc:
		require.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatalf("serveListener did not return")
	}
}

func TestRun_ListTypes(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"--list-types"}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	require.Contains(t, out.String(), bn254.TypeURL)
}

func TestRun_InvalidConfig(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"--log-format", "xml"}, &out, &errOut)
	require.Equal(t, 1, code)
	require.Contains(t, errOut.String(), "log_format")
}

func TestRun_RejectsArgs(t *testing.T) {
	var out, errOut bytes.Buffer
	require.Equal(t, 1, run([]string{"extra"}, &out, &errOut))
}
