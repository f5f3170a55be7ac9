// SPDX-License-Identifier: Unlicense OR MIT

// Package theme bundles the resource tables widgets draw from:
// colors, fonts, icons and brand imagery. A Theme is plain data;
// widgets read it through the build context and never mutate it.
package theme

// Theme is the complete resource set for one application look.
type Theme struct {
	Colors ColorResources
	Fonts  FontResources
	Icons  IconResources
	Brand  BrandResources
	Layout LayoutResources
}

// Default builds the stock dark theme with embedded fonts and the
// built-in icon set.
func Default() (*Theme, error) {
	fonts, err := DefaultFonts()
	if err != nil {
		return nil, err
	}
	return &Theme{
		Colors: DefaultColors(),
		Fonts:  FontResources{Fonts: fonts, Size: DefaultFontSize()},
		Icons:  DefaultIcons(),
		Brand:  DefaultBrand(),
		Layout: DefaultLayout(),
	}, nil
}

// LayoutResources are the shared layout metrics widgets consult
// when sizing page content.
type LayoutResources struct {
	// ContentMax caps the width of page content.
	ContentMax float32
	// ContentPadding is the horizontal page inset.
	ContentPadding float32
	// BumperMax caps the width of the bottom action bar.
	BumperMax float32
}

func DefaultLayout() LayoutResources {
	return LayoutResources{
		ContentMax:     375,
		ContentPadding: 24,
		BumperMax:      375,
	}
}
