// SPDX-License-Identifier: Unlicense OR MIT

package view

import (
	"golang.org/x/exp/shiny/materialdesign/icons"

	"monoui.org/anim"
)

// Speeds holds animator speeds. Larger is slower.
type Speeds struct {
	Default  float64
	Cursor   float64
	Scroll   float64
	Modal    float64
	Tile     float64
	Entrance float64
}

// Theme holds the visual constants of an application. The defaults are
// tuned for a 128x64 display.
type Theme struct {
	Speed Speeds
	// Epsilon is the animator snap distance.
	Epsilon float64
	// FPS is the frame rate animators are stepped at.
	FPS int
	// GlyphWidth and LineHeight estimate text size before a face is
	// available.
	GlyphWidth float64
	LineHeight float64
	// Padding insets content in list rows and dialogs.
	Padding float64
	// Radius rounds cursors and dialogs.
	Radius float64
	// ItemHeight is the height of a list row.
	ItemHeight float64
	Icon       struct {
		CheckBoxChecked   *Icon
		CheckBoxUnchecked *Icon
		RadioChecked      *Icon
		RadioUnchecked    *Icon
	}
}

// NewTheme returns the default theme.
func NewTheme() *Theme {
	t := &Theme{
		Speed: Speeds{
			Default:  anim.DefaultSpeed,
			Cursor:   60,
			Scroll:   25,
			Modal:    25,
			Tile:     30,
			Entrance: 40,
		},
		Epsilon:    anim.DefaultEpsilon,
		FPS:        60,
		GlyphWidth: 6,
		LineHeight: 13,
		Padding:    3,
		Radius:     3,
		ItemHeight: 16,
	}
	t.Icon.CheckBoxChecked = mustIcon(NewIcon(icons.ToggleCheckBox, 10))
	t.Icon.CheckBoxUnchecked = mustIcon(NewIcon(icons.ToggleCheckBoxOutlineBlank, 10))
	t.Icon.RadioChecked = mustIcon(NewIcon(icons.ToggleRadioButtonChecked, 10))
	t.Icon.RadioUnchecked = mustIcon(NewIcon(icons.ToggleRadioButtonUnchecked, 10))
	return t
}

func mustIcon(ic *Icon, err error) *Icon {
	if err != nil {
		panic(err)
	}
	return ic
}
