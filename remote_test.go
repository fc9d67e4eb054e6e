package main

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
)

func TestHost_Parse(t *testing.T) {
	h := &Host{Host: "box", Port: 22}

	chips := h.parse([]byte("alpha\n\n  beta  \r\ngamma"))

	assert.Equal(t, []Chip{
		{ID: "ssh0:box#0", Label: "alpha", Source: "ssh0:box"},
		{ID: "ssh0:box#1", Label: "beta", Source: "ssh0:box"},
		{ID: "ssh0:box#2", Label: "gamma", Source: "ssh0:box"},
	}, chips)
	assert.Empty(t, h.parse(nil))
}

func TestHost_RepeatedHostsKeepDistinctIDs(t *testing.T) {
	c := &Config{}
	require.NoError(t, c.Load(writeConfig(t, `{
		"priv_key_path": "k",
		"hosts": [{"host": "box", "port": 22}, {"host": "box", "port": 2222}]
	}`)))

	chips := append(c.Hosts[0].parse([]byte("alpha")), c.Hosts[1].parse([]byte("omega"))...)
	require.Len(t, chips, 2)
	assert.NotEqual(t, chips[0].ID, chips[1].ID)

	var buf bytes.Buffer
	require.NoError(t, printChips(&buf, chips, false, 80, 1))
	assert.Contains(t, buf.String(), "alpha")
	assert.Contains(t, buf.String(), "omega")
}

func TestHost_FetchMissingKey(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	h := &Host{Host: "box", Port: 22, Command: defaultHostCommand}

	_, err := h.Fetch(filepath.Join(t.TempDir(), "id_ed25519"))
	assert.Error(t, err)
}

func TestHost_FetchClosesAgentConnection(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".ssh"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".ssh", "known_hosts"), nil, 0o600))

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	block, err := ssh.MarshalPrivateKey(priv, "")
	require.NoError(t, err)
	keyPath := filepath.Join(home, "id_ed25519")
	require.NoError(t, os.WriteFile(keyPath, pem.EncodeToMemory(block), 0o600))

	sock := filepath.Join(home, "agent.sock")
	ln, err := net.Listen("unix", sock)
	require.NoError(t, err)
	defer ln.Close()
	t.Setenv("SSH_AUTH_SOCK", sock)

	accepted := make(chan net.Conn, 1)
	go func() {
		conn, err := ln.Accept()
		if err == nil {
			accepted <- conn
		}
	}()

	// Nothing listens on port 1, so the dial fails after the agent is opened.
	h := &Host{Host: "127.0.0.1", Port: 1, Command: defaultHostCommand}
	_, err = h.Fetch(keyPath)
	require.Error(t, err)

	var conn net.Conn
	select {
	case conn = <-accepted:
	case <-time.After(2 * time.Second):
		t.Fatal("agent was never dialed")
	}
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, err = conn.Read(make([]byte, 1))
	assert.ErrorIs(t, err, io.EOF)
}

func TestHost_Source(t *testing.T) {
	h := &Host{Host: "box", index: 3}

	assert.True(t, strings.HasPrefix(h.parse([]byte("x"))[0].ID, "ssh3:box#"))
}
