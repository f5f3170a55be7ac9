// SPDX-License-Identifier: Unlicense OR MIT

package theme

import (
	"eliasnaur.com/font/roboto/robotoregular"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"

	"seabird.dev/ui/text"
)

// FontResources pairs the font faces with the size scale.
type FontResources struct {
	Fonts Fonts
	Size  FontSize
}

// Fonts maps each text role to a face.
type Fonts struct {
	Heading  *text.Face
	Text     *text.Face
	Label    *text.Face
	Keyboard *text.Face
	Emoji    *text.Face
}

// DefaultFonts parses the embedded faces. Heading and label share
// the bold face; the emoji role reuses the text face until a color
// emoji face is registered.
func DefaultFonts() (Fonts, error) {
	bold, err := text.NewFace(gobold.TTF)
	if err != nil {
		return Fonts{}, err
	}
	medium, err := text.NewFace(gomedium.TTF)
	if err != nil {
		return Fonts{}, err
	}
	regular, err := text.NewFace(robotoregular.TTF)
	if err != nil {
		return Fonts{}, err
	}
	return Fonts{
		Heading:  bold,
		Text:     regular,
		Label:    bold,
		Keyboard: medium,
		Emoji:    regular,
	}, nil
}

// FontSize is the type scale in logical pixels.
type FontSize struct {
	Title float32
	H1    float32
	H2    float32
	H3    float32
	H4    float32
	H5    float32
	H6    float32
	XL    float32
	LG    float32
	MD    float32
	SM    float32
	XS    float32
}

func DefaultFontSize() FontSize {
	return FontSize{
		Title: 72,
		H1:    48,
		H2:    32,
		H3:    24,
		H4:    20,
		H5:    16,
		H6:    14,
		XL:    24,
		LG:    20,
		MD:    16,
		SM:    14,
		XS:    12,
	}
}
