package main

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// Chip is one label on the board. ID is unique across sources so two chips
// with the same label are still told apart.
type Chip struct {
	ID     string
	Label  string
	Source string
}

func newChip(source string, n int, label string) Chip {
	return Chip{
		ID:     fmt.Sprintf("%s#%d", source, n),
		Label:  label,
		Source: source,
	}
}

type collector struct {
	cfg    *Config
	client *http.Client
	log    *zap.Logger
}

// collect gathers chips from every configured source in order: static
// chips, the feed, then each host. A failing source is reported and
// skipped.
func (c *collector) collect(ctx context.Context) ([]Chip, []error) {
	var (
		chips []Chip
		errs  []error
	)

	for i, label := range c.cfg.Chips {
		chips = append(chips, newChip("static", i, label))
	}

	if c.cfg.FeedURL != "" {
		feedChips, err := c.feed(ctx)
		if err != nil {
			errs = append(errs, err)
		}
		chips = append(chips, feedChips...)
	}

	for _, h := range c.cfg.Hosts {
		if err := ctx.Err(); err != nil {
			return chips, append(errs, err)
		}
		hostChips, err := h.Fetch(c.cfg.PrivKeyPath)
		if err != nil {
			c.log.Warn("host failed", zap.String("host", h.Host), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		chips = append(chips, hostChips...)
	}

	c.log.Debug("collected chips", zap.Int("chips", len(chips)), zap.Int("errors", len(errs)))
	return chips, errs
}

func (c *collector) feed(ctx context.Context) ([]Chip, error) {
	client := c.client
	if client == nil {
		client = http.DefaultClient
	}

	f, err := fetchFeed(ctx, client, c.cfg.FeedURL)
	if err != nil {
		c.log.Warn("feed failed", zap.String("url", c.cfg.FeedURL), zap.Error(err))
		return nil, err
	}
	return f.Chips()
}
