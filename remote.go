package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net"
	"os"
	"path"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
	"golang.org/x/crypto/ssh/knownhosts"
)

const defaultHostCommand = "chipflow-tags"

// Host is a machine that reports chips, one per output line of Command.
type Host struct {
	Host    string `json:"host"`
	Port    int32  `json:"port"`
	User    string `json:"user"`
	Command string `json:"command"`

	// index is the entry's position in the config; it keeps chip IDs
	// distinct when the same host is listed twice.
	index int
}

func (h *Host) DialString() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}

func (h *Host) source() string {
	return fmt.Sprintf("ssh%d:%s", h.index, h.Host)
}

// clientConfig also returns the ssh-agent connection, if one was opened;
// the caller closes it once the session is done.
func (h *Host) clientConfig(keyPath string) (*ssh.ClientConfig, io.Closer, error) {
	khFile := path.Clean(path.Join(os.Getenv("HOME"), ".ssh/known_hosts"))
	hostKeyCB, err := knownhosts.New(khFile)
	if err != nil {
		return nil, nil, fmt.Errorf("can't parse %q: %w", khFile, err)
	}

	key, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, nil, fmt.Errorf("can't load key %q: %w", keyPath, err)
	}

	signer, err := ssh.ParsePrivateKey(key)
	if err != nil {
		return nil, nil, fmt.Errorf("can't parse key: %w", err)
	}

	var agentConn net.Conn
	auth := []ssh.AuthMethod{ssh.PublicKeys(signer)}
	if socket := os.Getenv("SSH_AUTH_SOCK"); socket != "" {
		agentConn, err = net.Dial("unix", socket)
		if err != nil {
			return nil, nil, fmt.Errorf("can't dial agent %q: %w", socket, err)
		}
		auth = append(auth, ssh.PublicKeysCallback(agent.NewClient(agentConn).Signers))
	}

	conf := &ssh.ClientConfig{
		User:            h.User,
		Auth:            auth,
		Timeout:         2 * time.Second,
		HostKeyCallback: hostKeyCB,
	}
	if agentConn == nil {
		return conf, nopCloser{}, nil
	}
	return conf, agentConn, nil
}

// Fetch runs the host's command and turns its output into chips.
func (h *Host) Fetch(keyPath string) ([]Chip, error) {
	conf, agentConn, err := h.clientConfig(keyPath)
	if err != nil {
		return nil, err
	}
	defer agentConn.Close()

	conn, err := ssh.Dial("tcp", h.DialString(), conf)
	if err != nil {
		return nil, fmt.Errorf("can't dial host %q (%q): %w", h.Host, h.DialString(), err)
	}
	defer conn.Close()

	session, err := conn.NewSession()
	if err != nil {
		return nil, fmt.Errorf("can't create session: %w", err)
	}
	defer session.Close()

	output, err := session.Output(h.Command)
	if err != nil {
		return nil, fmt.Errorf("can't run %q on %q: %w", h.Command, h.Host, err)
	}

	return h.parse(output), nil
}

func (h *Host) parse(output []byte) []Chip {
	var chips []Chip
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		label := strings.TrimSpace(scanner.Text())
		if label == "" {
			continue
		}
		chips = append(chips, newChip(h.source(), len(chips), label))
	}
	return chips
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
