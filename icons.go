package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
)

const iconSize = 288

const (
	iconPad = 16
	iconGap = 8
)

func parseHexColor(s string) (*color.RGBA, error) {
	c := &color.RGBA{
		A: 0xff,
	}
	_, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	if err != nil {
		return nil, fmt.Errorf("bad color %q: %w", s, err)
	}

	return c, nil
}

func mustHexColor(s string) *color.RGBA {
	c, err := parseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

var (
	iconBorder = &color.RGBA{A: 0xff}
	iconOK     = mustHexColor("#46d700")
	iconFailed = mustHexColor("#c1c1c1")
)

func isEdge(x, y int) bool {
	if x == 0 || x == iconSize-1 {
		return true
	}

	if y == 0 || y == iconSize-1 {
		return true
	}

	return false
}

// layoutIcon is a fyne.Resource holding a PNG thumbnail of the board rows.
type layoutIcon struct {
	data *image.RGBA
}

func (m *layoutIcon) Name() string {
	return "chipflow.png"
}

func (m *layoutIcon) Content() []byte {
	buf := new(bytes.Buffer)
	_ = png.Encode(buf, m.data)
	return buf.Bytes()
}

// buildIcon draws one band per row and one block per chip, each block as
// wide as its share of the row's label text.
func buildIcon(rows [][]Chip, ok bool) *layoutIcon {
	i := &layoutIcon{data: image.NewRGBA(image.Rect(0, 0, iconSize, iconSize))}

	fill := iconOK
	if !ok {
		fill = iconFailed
	}

	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			if isEdge(x, y) {
				i.data.Set(x, y, iconBorder)
			}
		}
	}

	var nonEmpty [][]Chip
	for _, row := range rows {
		if len(row) > 0 {
			nonEmpty = append(nonEmpty, row)
		}
	}
	if len(nonEmpty) == 0 {
		return i
	}

	inner := iconSize - 2*iconPad
	band := (inner - (len(nonEmpty)-1)*iconGap) / len(nonEmpty)
	if band < 1 {
		band = 1
	}

	for r, row := range nonEmpty {
		top := iconPad + r*(band+iconGap)

		total := 0
		for _, c := range row {
			total += len(c.Label) + 1
		}

		left := iconPad
		for _, c := range row {
			w := (inner - (len(row)-1)*iconGap) * (len(c.Label) + 1) / total
			if w < 1 {
				w = 1
			}
			fillRect(i.data, image.Rect(left, top, left+w, top+band), fill)
			left += w + iconGap
		}
	}
	return i
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	r = r.Intersect(img.Bounds().Inset(1))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}
