package main

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"suah.dev/chipflow/flow"
)

type board struct {
	log    *zap.Logger
	layout *flow.Layout
	flow   *fyne.Container
	logs   *widget.TextGrid

	onCopy func(label string)
	onIcon func(fyne.Resource)

	// fallbackWidth is used for rows until the container has been laid
	// out with a real width.
	fallbackWidth float32

	logMu sync.Mutex

	mu     sync.Mutex
	chips  []Chip
	byObj  map[fyne.CanvasObject]Chip
	failed bool
}

func newBoard(cfg *Config, log *zap.Logger) *board {
	l := flow.NewLayout(cfg.Spacing, cfg.alignment)
	return &board{
		log:    log,
		layout: l,
		flow:   container.New(l),
		logs:   widget.NewTextGrid(),
		byObj:  make(map[fyne.CanvasObject]Chip),
	}
}

func (b *board) prependLog(s string) {
	b.logMu.Lock()
	defer b.logMu.Unlock()

	text := b.logs.Text()
	now := time.Now()
	b.logs.SetText(strings.TrimSuffix(strings.Join([]string{
		fmt.Sprintf("%s: %s", now.Format(time.RFC822), s),
		text,
	}, "\n"), "\n"))
}

func (b *board) chipWidget(c Chip) fyne.CanvasObject {
	btn := widget.NewButton(c.Label, func() {
		if b.onCopy != nil {
			b.onCopy(c.Label)
		}
	})
	if c.Source != "static" {
		btn.Importance = widget.LowImportance
	}
	return btn
}

// setChips replaces the board contents and re-lays the flow container.
func (b *board) setChips(chips []Chip, errs []error) {
	objects := make([]fyne.CanvasObject, 0, len(chips))
	byObj := make(map[fyne.CanvasObject]Chip, len(chips))
	for _, c := range chips {
		o := b.chipWidget(c)
		objects = append(objects, o)
		byObj[o] = c
	}

	b.mu.Lock()
	b.chips = chips
	b.byObj = byObj
	b.failed = len(errs) > 0
	b.mu.Unlock()

	for _, err := range errs {
		b.prependLog(err.Error())
	}
	b.prependLog(fmt.Sprintf("showing %d chips", len(chips)))

	b.flow.Objects = objects
	b.flow.Refresh()

	if b.onIcon != nil {
		b.onIcon(b.icon())
	}
}

// rows returns the chips as currently wrapped by the flow layout.
func (b *board) rows() [][]Chip {
	width := b.flow.Size().Width
	if width <= 0 {
		width = b.fallbackWidth
	}
	objRows := b.layout.Rows(b.flow.Objects, width)

	b.mu.Lock()
	defer b.mu.Unlock()

	rows := make([][]Chip, 0, len(objRows))
	for _, objs := range objRows {
		row := make([]Chip, 0, len(objs))
		for _, o := range objs {
			row = append(row, b.byObj[o])
		}
		rows = append(rows, row)
	}
	return rows
}

func (b *board) icon() *layoutIcon {
	b.mu.Lock()
	ok := !b.failed
	b.mu.Unlock()

	return buildIcon(b.rows(), ok)
}

func (b *board) refresh(ctx context.Context, c *collector) {
	b.log.Info("refreshing chips")
	chips, errs := c.collect(ctx)
	b.setChips(chips, errs)
}

// run refreshes the board every interval, or sooner when kick fires, until
// ctx is done.
func (b *board) run(ctx context.Context, c *collector, every time.Duration, kick <-chan struct{}) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		b.refresh(ctx, c)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-kick:
		}
	}
}
