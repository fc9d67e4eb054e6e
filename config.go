package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"time"

	"suah.dev/chipflow/flow"
)

const defaultRefresh = time.Minute

type Config struct {
	Spacing     float32  `json:"spacing"`
	Align       string   `json:"align"`
	Refresh     string   `json:"refresh"`
	Chips       []string `json:"chips"`
	FeedURL     string   `json:"feed_url"`
	PrivKeyPath string   `json:"priv_key_path"`
	Hosts       []*Host  `json:"hosts"`

	alignment flow.Alignment
	interval  time.Duration
}

func defaultConfigPath() string {
	return path.Clean(path.Join(os.Getenv("HOME"), ".chipflow.json"))
}

func (c *Config) Load(file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %q: %w", file, err)
	}
	return c.validate()
}

func (c *Config) validate() error {
	if c.Spacing < 0 {
		return fmt.Errorf("spacing must not be negative, got %v", c.Spacing)
	}

	align, err := flow.ParseAlignment(c.Align)
	if err != nil {
		return err
	}
	c.alignment = align

	c.interval = defaultRefresh
	if c.Refresh != "" {
		d, err := time.ParseDuration(c.Refresh)
		if err != nil {
			return fmt.Errorf("bad refresh interval: %w", err)
		}
		if d <= 0 {
			return errors.New("refresh interval must be positive")
		}
		c.interval = d
	}

	for i, h := range c.Hosts {
		h.index = i
		if h.Host == "" {
			return errors.New("host entry without a host name")
		}
		if h.Port == 0 {
			h.Port = 22
		}
		if h.Command == "" {
			h.Command = defaultHostCommand
		}
	}
	if len(c.Hosts) > 0 && c.PrivKeyPath == "" {
		return errors.New("hosts configured without priv_key_path")
	}
	return nil
}
