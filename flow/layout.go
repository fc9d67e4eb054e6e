package flow

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"go.uber.org/zap"
)

// Alignment places each row horizontally inside the container.
type Alignment int

const (
	AlignLeading Alignment = iota
	AlignCenter
	AlignTrailing
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignTrailing:
		return "trailing"
	default:
		return "leading"
	}
}

// ParseAlignment accepts the names returned by Alignment.String. An empty
// name means AlignLeading.
func ParseAlignment(name string) (Alignment, error) {
	switch name {
	case "", "leading":
		return AlignLeading, nil
	case "center":
		return AlignCenter, nil
	case "trailing":
		return AlignTrailing, nil
	}
	return AlignLeading, fmt.Errorf("unknown alignment %q", name)
}

var _ fyne.Layout = (*Layout)(nil)

// Layout is a fyne.Layout that wraps its objects into rows. Objects keep
// their MinSize; Spacing separates items within a row and rows from each
// other.
type Layout struct {
	Spacing float32
	Align   Alignment

	sizes *SizeCache[fyne.CanvasObject]
	width float32
}

func NewLayout(spacing float32, align Alignment) *Layout {
	return &Layout{
		Spacing: spacing,
		Align:   align,
		sizes:   NewSizeCache[fyne.CanvasObject](),
	}
}

// NewContainer returns a container laid out by a new flow Layout.
func NewContainer(spacing float32, align Alignment, objects ...fyne.CanvasObject) *fyne.Container {
	return container.New(NewLayout(spacing, align), objects...)
}

// measure records the MinSize of every visible object and returns them in
// order. Objects that are gone or hidden are dropped from the cache.
func (l *Layout) measure(objects []fyne.CanvasObject) []fyne.CanvasObject {
	if l.sizes == nil {
		l.sizes = NewSizeCache[fyne.CanvasObject]()
	}

	visible := make([]fyne.CanvasObject, 0, len(objects))
	changed := false
	for _, o := range objects {
		if o == nil || !o.Visible() {
			continue
		}
		if l.sizes.Set(o, o.MinSize()) {
			changed = true
		}
		visible = append(visible, o)
	}
	if l.sizes.Prune(visible) > 0 {
		changed = true
	}

	if changed {
		Logger().Debug("flow measured",
			zap.Int("objects", len(visible)),
			zap.Float32("width", l.width))
	}
	return visible
}

// Rows returns the partition of the visible objects at the given width.
func (l *Layout) Rows(objects []fyne.CanvasObject, width float32) [][]fyne.CanvasObject {
	visible := l.measure(objects)
	return l.sizes.Rows(width, visible, l.Spacing)
}

func (l *Layout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	visible := l.measure(objects)
	l.width = containerSize.Width

	sizes := l.sizes.Snapshot()
	rows := ComputeRows(containerSize.Width, visible, sizes, l.Spacing)

	var y float32
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		rowWidth, rowHeight := l.extent(row, sizes)

		pos := fyne.NewPos(l.offset(containerSize.Width, rowWidth), y)
		for _, o := range row {
			size := sizes[o]
			o.Resize(size)
			o.Move(pos)

			pos = pos.AddXY(size.Width+l.Spacing, 0)
		}
		y += rowHeight + l.Spacing
	}
}

// MinSize is as wide as the widest object and as tall as the rows need at
// the last laid-out width.
func (l *Layout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	visible := l.measure(objects)
	if len(visible) == 0 {
		return fyne.NewSize(0, 0)
	}

	sizes := l.sizes.Snapshot()
	var minWidth float32
	for _, o := range visible {
		if w := sizes[o].Width; w > minWidth {
			minWidth = w
		}
	}

	width := l.width
	if width < minWidth {
		width = minWidth
	}

	var height float32
	rows := ComputeRows(width, visible, sizes, l.Spacing)
	for i, row := range rows {
		_, rowHeight := l.extent(row, sizes)
		if i > 0 {
			height += l.Spacing
		}
		height += rowHeight
	}
	return fyne.NewSize(minWidth, height)
}

func (l *Layout) extent(row []fyne.CanvasObject, sizes map[fyne.CanvasObject]fyne.Size) (width, height float32) {
	for i, o := range row {
		size := sizes[o]
		if i > 0 {
			width += l.Spacing
		}
		width += size.Width
		if size.Height > height {
			height = size.Height
		}
	}
	return width, height
}

func (l *Layout) offset(containerWidth, rowWidth float32) float32 {
	free := containerWidth - rowWidth
	if free <= 0 {
		return 0
	}
	switch l.Align {
	case AlignCenter:
		return free / 2
	case AlignTrailing:
		return free
	default:
		return 0
	}
}
