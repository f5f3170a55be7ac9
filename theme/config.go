// SPDX-License-Identifier: Unlicense OR MIT

package theme

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk theme override file. Every field is
// optional; zero values leave the theme untouched.
type Config struct {
	// Mode selects the palette: "light" or "dark".
	Mode string `toml:"mode"`
	// Brand is the brand color as "#RRGGBB".
	Brand string `toml:"brand"`

	Layout   LayoutConfig   `toml:"layout"`
	FontSize FontSizeConfig `toml:"font_size"`
}

type LayoutConfig struct {
	ContentMax     float32 `toml:"content_max"`
	ContentPadding float32 `toml:"content_padding"`
	BumperMax      float32 `toml:"bumper_max"`
}

type FontSizeConfig struct {
	Title float32 `toml:"title"`
	H1    float32 `toml:"h1"`
	H2    float32 `toml:"h2"`
	H3    float32 `toml:"h3"`
	H4    float32 `toml:"h4"`
	H5    float32 `toml:"h5"`
	H6    float32 `toml:"h6"`
	XL    float32 `toml:"xl"`
	LG    float32 `toml:"lg"`
	MD    float32 `toml:"md"`
	SM    float32 `toml:"sm"`
	XS    float32 `toml:"xs"`
}

// LoadConfig reads a TOML override file. A missing file is not an
// error and returns the zero Config.
func LoadConfig(path string) (Config, error) {
	var c Config
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("theme: read config: %w", err)
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("theme: parse config %s: %w", path, err)
	}
	return c, nil
}

// Apply folds the overrides into t.
func (c Config) Apply(t *Theme) error {
	if c.Brand != "" || c.Mode != "" {
		brand := t.Colors.Brand
		if c.Brand != "" {
			var err error
			if brand, err = Hex(c.Brand); err != nil {
				return err
			}
		}
		switch c.Mode {
		case "light":
			t.Colors = Light(brand)
		case "dark":
			t.Colors = Dark(brand)
		case "":
			t.Colors = FromBrand(brand)
		default:
			return fmt.Errorf("theme: unknown mode %q", c.Mode)
		}
	}
	applyNonZero(&t.Layout.ContentMax, c.Layout.ContentMax)
	applyNonZero(&t.Layout.ContentPadding, c.Layout.ContentPadding)
	applyNonZero(&t.Layout.BumperMax, c.Layout.BumperMax)

	s := &t.Fonts.Size
	applyNonZero(&s.Title, c.FontSize.Title)
	applyNonZero(&s.H1, c.FontSize.H1)
	applyNonZero(&s.H2, c.FontSize.H2)
	applyNonZero(&s.H3, c.FontSize.H3)
	applyNonZero(&s.H4, c.FontSize.H4)
	applyNonZero(&s.H5, c.FontSize.H5)
	applyNonZero(&s.H6, c.FontSize.H6)
	applyNonZero(&s.XL, c.FontSize.XL)
	applyNonZero(&s.LG, c.FontSize.LG)
	applyNonZero(&s.MD, c.FontSize.MD)
	applyNonZero(&s.SM, c.FontSize.SM)
	applyNonZero(&s.XS, c.FontSize.XS)
	return nil
}

func applyNonZero(dst *float32, v float32) {
	if v != 0 {
		*dst = v
	}
}
