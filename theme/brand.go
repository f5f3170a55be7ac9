// SPDX-License-Identifier: Unlicense OR MIT

package theme

import (
	"image"
	"image/color"
	"log"
)

// BrandResources carries the brand imagery: the logo marks, the app
// icon and named illustrations.
type BrandResources struct {
	Wordmark      image.Image
	Logomark      image.Image
	AppIcon       image.Image
	Illustrations Illustrations
}

// DefaultBrand returns placeholder imagery. Applications replace it
// with their own marks at startup.
func DefaultBrand() BrandResources {
	mark := placeholder(64, 64)
	return BrandResources{
		Wordmark: placeholder(256, 64),
		Logomark: mark,
		AppIcon:  mark,
		Illustrations: Illustrations{images: map[string]image.Image{
			"error": placeholder(128, 128),
		}},
	}
}

// Illustrations is a named image table.
type Illustrations struct {
	images map[string]image.Image
}

// Get returns the illustration for name, panicking when missing.
func (il Illustrations) Get(name string) image.Image {
	img, ok := il.images[name]
	if !ok {
		panic("theme: unknown illustration " + name)
	}
	return img
}

// Add registers or replaces an illustration.
func (il *Illustrations) Add(name string, img image.Image) {
	if il.images == nil {
		il.images = make(map[string]image.Image)
	}
	if _, ok := il.images[name]; ok {
		log.Printf("theme: replacing illustration %q", name)
	}
	il.images[name] = img
}

func placeholder(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fill := color.RGBA{R: 0x26, G: 0x23, B: 0x22, A: 0xff}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, fill)
		}
	}
	return img
}
