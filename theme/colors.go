// SPDX-License-Identifier: Unlicense OR MIT

package theme

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"

	"seabird.dev/ui/render"
)

// ColorResources groups every color a widget can reference.
type ColorResources struct {
	Background BackgroundColor
	Outline    OutlineColor
	Status     StatusColor
	Text       TextColor
	Button     ButtonColors
	Brand      render.Color
}

// DefaultColors is the dark palette with the stock brand color.
func DefaultColors() ColorResources {
	return Dark(MustHex("#02f0cc"))
}

// Dark builds a dark palette around the given brand color.
func Dark(brand render.Color) ColorResources {
	return ColorResources{
		Background: BackgroundColor{Primary: black, Secondary: MustHex("#262322")},
		Outline:    OutlineColor{Primary: white, Secondary: MustHex("#585250")},
		Status:     DefaultStatus(),
		Text: TextColor{
			Heading:   white,
			Primary:   MustHex("#e2e1df"),
			Secondary: MustHex("#a7a29d"),
		},
		Button: ButtonsFor(brand),
		Brand:  brand,
	}
}

// Light builds a light palette around the given brand color.
func Light(brand render.Color) ColorResources {
	return ColorResources{
		Background: BackgroundColor{Primary: white, Secondary: MustHex("#DDDDDD")},
		Outline:    OutlineColor{Primary: black, Secondary: MustHex("#444444")},
		Status:     DefaultStatus(),
		Text: TextColor{
			Heading:   black,
			Primary:   black,
			Secondary: MustHex("#444444"),
		},
		Button: ButtonsFor(brand),
		Brand:  brand,
	}
}

// FromBrand picks a light or dark palette by the brand color's
// brightness.
func FromBrand(brand render.Color) ColorResources {
	if highContrast(brand) {
		return Dark(brand)
	}
	return Light(brand)
}

type BackgroundColor struct {
	Primary   render.Color
	Secondary render.Color
}

type OutlineColor struct {
	Primary   render.Color
	Secondary render.Color
}

type StatusColor struct {
	Success render.Color
	Warning render.Color
	Danger  render.Color
}

func DefaultStatus() StatusColor {
	return StatusColor{
		Success: MustHex("#3ccb5a"),
		Warning: MustHex("#f5bd14"),
		Danger:  MustHex("#ff330a"),
	}
}

type TextColor struct {
	Heading   render.Color
	Primary   render.Color
	Secondary render.Color
}

// ButtonColors carries a color set per button style.
type ButtonColors struct {
	Primary   ButtonColorSet
	Secondary ButtonColorSet
	Ghost     ButtonColorSet
}

// ButtonColorSet is one style across interaction states.
type ButtonColorSet struct {
	Default  ButtonColorScheme
	Disabled ButtonColorScheme
	Hover    ButtonColorScheme
	Pressed  ButtonColorScheme
}

type ButtonColorScheme struct {
	Background render.Color
	Label      render.Color
	Outline    render.Color
}

// ButtonsFor derives the three button styles from a brand color.
func ButtonsFor(brand render.Color) ButtonColors {
	label := black
	if highContrast(brand) {
		label = white
	}
	outline := MustHex("#585250")
	surface := MustHex("#262322")
	return ButtonColors{
		Primary: ButtonColorSet{
			Default:  ButtonColorScheme{Background: brand, Label: label},
			Disabled: ButtonColorScheme{Background: MustHex("#443f3f"), Label: black},
			Hover:    ButtonColorScheme{Background: Darken(brand, 0.85), Label: label},
			Pressed:  ButtonColorScheme{Background: Darken(brand, 0.80), Label: label},
		},
		Secondary: ButtonColorSet{
			Default:  ButtonColorScheme{Label: white, Outline: outline},
			Disabled: ButtonColorScheme{Background: MustHex("#78716c"), Label: black, Outline: outline},
			Hover:    ButtonColorScheme{Background: surface, Label: white, Outline: outline},
			Pressed:  ButtonColorScheme{Background: surface, Label: white, Outline: outline},
		},
		Ghost: ButtonColorSet{
			Default:  ButtonColorScheme{Label: white},
			Disabled: ButtonColorScheme{Label: MustHex("#78716c")},
			Hover:    ButtonColorScheme{Background: surface, Label: white},
			Pressed:  ButtonColorScheme{Background: surface, Label: white},
		},
	}
}

var (
	white = named(colornames.White)
	black = named(colornames.Black)
)

func named(c color.RGBA) render.Color {
	return render.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Hex parses a #RRGGBB color at full opacity.
func Hex(s string) (render.Color, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return render.Color{}, fmt.Errorf("theme: bad color %q: %w", s, err)
	}
	return render.Color{R: r, G: g, B: b, A: 255}, nil
}

// MustHex is Hex for compile-time constants.
func MustHex(s string) render.Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Darken multiplies the color channels by f, keeping alpha.
func Darken(c render.Color, f float32) render.Color {
	return render.Color{
		R: uint8(float32(c.R) * f),
		G: uint8(float32(c.G) * f),
		B: uint8(float32(c.B) * f),
		A: c.A,
	}
}

// highContrast reports whether white text reads well on c.
func highContrast(c render.Color) bool {
	luma := 0.299*float32(c.R) + 0.587*float32(c.G) + 0.114*float32(c.B)
	return luma < 128
}
