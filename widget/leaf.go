// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"

	"seabird.dev/ui"
	"seabird.dev/ui/f32"
	"seabird.dev/ui/io/event"
	"seabird.dev/ui/layout"
	"seabird.dev/ui/render"
	"seabird.dev/ui/text"
	"seabird.dev/ui/theme"
)

// Label is a text leaf. A nil Face resolves to the theme text face
// at measure time.
type Label struct {
	Text     string
	Face     *text.Face
	FontSize float32
	// LineHeight defaults to the face's recommended line distance.
	LineHeight float32
	Color      render.Color
	// MaxWidth wraps the text; zero keeps it on one line.
	MaxWidth float32
}

func (l *Label) face(ctx *ui.Context) *text.Face {
	if l.Face != nil {
		return l.Face
	}
	return ctx.Theme.Fonts.Fonts.Text
}

func (l *Label) fontSize(ctx *ui.Context) float32 {
	if l.FontSize > 0 {
		return l.FontSize
	}
	return ctx.Theme.Fonts.Size.MD
}

func (l *Label) lineHeight(ctx *ui.Context) float32 {
	if l.LineHeight > 0 {
		return l.LineHeight
	}
	return l.face(ctx).Metrics(l.fontSize(ctx)).Height
}

func (l *Label) OnEvent(ctx *ui.Context, e event.Event) []event.Event {
	return []event.Event{e}
}

func (l *Label) RequestSize(ctx *ui.Context) layout.SizeRequest {
	face := l.face(ctx)
	size := l.fontSize(ctx)
	lines := face.Layout(size, l.MaxWidth, l.Text)
	var w float32
	for _, line := range lines {
		if line.Width > w {
			w = line.Width
		}
	}
	h := float32(len(lines)) * l.lineHeight(ctx)
	return layout.Fixed(f32.Pt(w, h))
}

func (l *Label) Draw(ctx *ui.Context, size f32.Point) render.Item {
	col := l.Color
	if col == (render.Color{}) {
		col = ctx.Theme.Colors.Text.Primary
	}
	return render.Text{
		Content:    l.Text,
		Face:       l.face(ctx),
		FontSize:   l.fontSize(ctx),
		LineHeight: l.lineHeight(ctx),
		Color:      col,
		MaxWidth:   l.MaxWidth,
	}
}

// Figure is a shape leaf: a filled or stroked rectangle, rounded
// rectangle or ellipse.
type Figure struct {
	Kind         render.ShapeKind
	Size         f32.Point
	CornerRadius float32
	// Stroke zero fills the shape.
	Stroke float32
	Color  render.Color
	// Fill expands the figure into all offered space instead of
	// pinning it to Size.
	Fill bool
}

func (f *Figure) OnEvent(ctx *ui.Context, e event.Event) []event.Event {
	return []event.Event{e}
}

func (f *Figure) RequestSize(ctx *ui.Context) layout.SizeRequest {
	if f.Fill {
		return layout.Expand()
	}
	return layout.Fixed(f.Size)
}

func (f *Figure) Draw(ctx *ui.Context, size f32.Point) render.Item {
	return render.Fill{
		Shape: render.Shape{
			Kind:         f.Kind,
			Size:         size,
			CornerRadius: f.CornerRadius,
			Stroke:       f.Stroke,
		},
		Color: f.Color,
	}
}

// Image is a raster image leaf drawn at a fixed logical size.
type Image struct {
	Src  image.Image
	Size f32.Point
	Tint render.Color
}

func (im *Image) OnEvent(ctx *ui.Context, e event.Event) []event.Event {
	return []event.Event{e}
}

func (im *Image) RequestSize(ctx *ui.Context) layout.SizeRequest {
	return layout.Fixed(im.Size)
}

func (im *Image) Draw(ctx *ui.Context, size f32.Point) render.Item {
	return render.Image{
		Shape: render.Shape{Kind: render.Rectangle, Size: size},
		Src:   im.Src,
		Tint:  im.Tint,
	}
}

// Icon draws a named theme icon at a square logical size. The
// rasterized image is cached per size and color.
type Icon struct {
	Name  string
	Size  float32
	Color render.Color

	cached    image.Image
	cachedKey iconKey
}

type iconKey struct {
	px    int
	color render.Color
}

func (ic *Icon) OnEvent(ctx *ui.Context, e event.Event) []event.Event {
	return []event.Event{e}
}

func (ic *Icon) RequestSize(ctx *ui.Context) layout.SizeRequest {
	return layout.Fixed(f32.Pt(ic.Size, ic.Size))
}

func (ic *Icon) Draw(ctx *ui.Context, size f32.Point) render.Item {
	px := int(ctx.Metric.Physical(size.X))
	if px < 1 {
		px = 1
	}
	col := ic.Color
	if col == (render.Color{}) {
		col = ctx.Theme.Colors.Text.Primary
	}
	key := iconKey{px: px, color: col}
	if ic.cached == nil || ic.cachedKey != key {
		img, err := theme.Rasterize(ctx.Theme.Icons.Get(ic.Name), px, rgba(col))
		if err != nil {
			img = image.NewRGBA(image.Rect(0, 0, px, px))
		}
		ic.cached = img
		ic.cachedKey = key
	}
	return render.Image{
		Shape: render.Shape{Kind: render.Rectangle, Size: size},
		Src:   ic.cached,
	}
}

func rgba(c render.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
