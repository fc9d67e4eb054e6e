package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// chipTheme tightens the default theme so chips pack closely. Spacing
// between chips comes from the flow layout, not from theme padding.
type chipTheme struct {
	padding float32
}

func (*chipTheme) Font(s fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(s)
}

func (*chipTheme) Color(n fyne.ThemeColorName, v fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(n, v)
}

func (*chipTheme) Icon(n fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(n)
}

func (t *chipTheme) Size(n fyne.ThemeSizeName) float32 {
	switch n {
	case theme.SizeNameInnerPadding:
		return t.padding
	case theme.SizeNamePadding:
		return t.padding / 2
	}
	return theme.DefaultTheme().Size(n)
}
