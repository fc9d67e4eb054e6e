package main

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#46d700")
	require.NoError(t, err)
	assert.Equal(t, &color.RGBA{R: 0x46, G: 0xd7, B: 0x00, A: 0xff}, c)

	_, err = parseHexColor("green")
	assert.Error(t, err)
}

func TestBuildIcon(t *testing.T) {
	rows := [][]Chip{
		{newChip("static", 0, "go"), newChip("static", 1, "fyne")},
		{newChip("static", 2, "flow")},
	}

	icon := buildIcon(rows, true)
	assert.Equal(t, "chipflow.png", icon.Name())

	img, err := png.Decode(bytes.NewReader(icon.Content()))
	require.NoError(t, err)
	assert.Equal(t, iconSize, img.Bounds().Dx())
	assert.Equal(t, iconSize, img.Bounds().Dy())

	assert.Equal(t, color.RGBAModel.Convert(iconBorder), color.RGBAModel.Convert(img.At(0, 0)))
	assert.Equal(t, color.RGBAModel.Convert(iconOK), color.RGBAModel.Convert(img.At(iconPad+1, iconPad+1)))

	failed := buildIcon(rows, false)
	assert.Equal(t, *iconFailed, failed.data.RGBAAt(iconPad+1, iconPad+1))
}

func TestBuildIcon_Empty(t *testing.T) {
	icon := buildIcon([][]Chip{{}}, true)

	assert.Equal(t, color.RGBA{}, icon.data.RGBAAt(iconSize/2, iconSize/2))
}
