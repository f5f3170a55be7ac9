// SPDX-License-Identifier: Unlicense OR MIT

package theme

import (
	"image"
	"image/color"
	"image/draw"
	"log"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/shiny/iconvg"
	"golang.org/x/exp/shiny/materialdesign/icons"
	"golang.org/x/exp/slices"
)

// IconResources maps icon names to IconVG data. Widgets look icons
// up by name; a missing name is a programming error and panics.
type IconResources struct {
	icons map[string][]byte
}

// DefaultIcons returns the built-in icon set.
func DefaultIcons() IconResources {
	return IconResources{icons: map[string][]byte{
		"accounts":  icons.ActionAccountCircle,
		"add":       icons.ContentAdd,
		"back":      icons.NavigationArrowBack,
		"backspace": icons.HardwareKeyboardBackspace,
		"block":     icons.ContentBlock,
		"camera":    icons.ImageCameraAlt,
		"cancel":    icons.NavigationCancel,
		"checkmark": icons.NavigationCheck,
		"copy":      icons.ContentContentCopy,
		"delete":    icons.ActionDelete,
		"down":      icons.NavigationExpandMore,
		"edit":      icons.ContentCreate,
		"error":     icons.AlertError,
		"forward":   icons.NavigationArrowForward,
		"home":      icons.ActionHome,
		"info":      icons.ActionInfo,
		"paste":     icons.ContentContentPaste,
		"profile":   icons.SocialPerson,
		"search":    icons.ActionSearch,
		"send":      icons.ContentSend,
		"settings":  icons.ActionSettings,
		"up":        icons.NavigationExpandLess,
		"wallet":    icons.ActionAccountBalanceWallet,
		"warning":   icons.AlertWarning,
		"x":         icons.NavigationClose,
	}}
}

// Get returns the IconVG data for name.
func (r IconResources) Get(name string) []byte {
	data, ok := r.icons[name]
	if !ok {
		panic("theme: unknown icon " + name)
	}
	return data
}

// Names returns every registered icon name in sorted order.
func (r IconResources) Names() []string {
	names := maps.Keys(r.icons)
	slices.Sort(names)
	return names
}

// Add registers a new icon. Existing names are left alone.
func (r *IconResources) Add(name string, data []byte) {
	if r.icons == nil {
		r.icons = make(map[string][]byte)
	}
	if _, ok := r.icons[name]; ok {
		log.Printf("theme: icon %q already exists, use Set", name)
		return
	}
	r.icons[name] = data
}

// Set replaces an existing icon.
func (r *IconResources) Set(name string, data []byte) {
	if _, ok := r.icons[name]; !ok {
		log.Printf("theme: icon %q does not exist, use Add", name)
		return
	}
	r.icons[name] = data
}

// Rasterize renders IconVG data at sz pixels wide in the given
// color.
func Rasterize(data []byte, sz int, col color.RGBA) (*image.RGBA, error) {
	m, err := iconvg.DecodeMetadata(data)
	if err != nil {
		return nil, err
	}
	dx, dy := m.ViewBox.AspectRatio()
	img := image.NewRGBA(image.Rectangle{Max: image.Point{X: sz, Y: int(float32(sz) * dy / dx)}})
	var ras iconvg.Rasterizer
	ras.SetDstImage(img, img.Bounds(), draw.Src)
	m.Palette[0] = col
	if err := iconvg.Decode(&ras, data, &iconvg.DecodeOptions{Palette: &m.Palette}); err != nil {
		return nil, err
	}
	return img, nil
}
