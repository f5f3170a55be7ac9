// SPDX-License-Identifier: Unlicense OR MIT

// Command gallery assembles one of each interactive widget into a
// scrolling page and runs the frame loop against a logging window.
// It is a wiring demonstration, not a production shell: a real
// port binds Window and the input feed to a platform layer.
package main

import (
	"image/color"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"seabird.dev/ui"
	"seabird.dev/ui/app"
	"seabird.dev/ui/f32"
	"seabird.dev/ui/io/system"
	"seabird.dev/ui/layout"
	"seabird.dev/ui/render"
	"seabird.dev/ui/theme"
	"seabird.dev/ui/widget"
)

type logWindow struct {
	frames int
}

func (w *logWindow) Submit(list render.List) {
	w.frames++
	log.Printf("frame %d: %d entries", w.frames, len(list))
}

func main() {
	th, err := theme.Default()
	if err != nil {
		log.Fatal(err)
	}

	// Theme overrides and icon prewarming are independent; run
	// them together before the loop starts.
	var g errgroup.Group
	var cfg theme.Config
	g.Go(func() error {
		var err error
		cfg, err = theme.LoadConfig("theme.toml")
		return err
	})
	for _, name := range []string{"search", "settings", "add"} {
		data := th.Icons.Get(name)
		g.Go(func() error {
			_, err := theme.Rasterize(data, 48, colorOf(th.Colors.Text.Primary))
			return err
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	if err := cfg.Apply(th); err != nil {
		log.Fatal(err)
	}

	ctx := ui.NewContext(th, ui.Platform{})
	win := &logWindow{}
	engine := app.NewEngine(ctx, buildPage(ctx, th), win)
	engine.Resize(f32.Pt(750, 1334), 2)

	// A platform shell would pump real input here.
	engine.Input(system.CursorMoved{Position: f32.Pt(100, 120)})
	for i := 0; i < 60; i++ {
		engine.Frame(time.Duration(i) * 16 * time.Millisecond)
	}
	log.Printf("done after %d submitted frames", win.frames)
}

func buildPage(ctx *ui.Context, th *theme.Theme) widget.Drawable {
	heading := &widget.Label{
		Text:     "Gallery",
		Face:     th.Fonts.Fonts.Heading,
		FontSize: th.Fonts.Size.H2,
		Color:    th.Colors.Text.Heading,
	}

	primary := widget.NewButton(map[string]widget.Drawable{
		"default": buttonFace(th, th.Colors.Button.Primary.Default),
		"hover":   buttonFace(th, th.Colors.Button.Primary.Hover),
		"pressed": buttonFace(th, th.Colors.Button.Primary.Pressed),
	}, false, true, func(ctx *ui.Context) {
		log.Print("primary button pressed")
	})

	group := widget.NewSelectableGroup()
	choices := widget.NewGroup(&layout.Row{Spacing: 8},
		choice(ctx, th, "One", true, group),
		choice(ctx, th, "Two", false, group),
	)

	slider := widget.NewSlider(ctx, 40,
		&widget.Figure{Kind: render.RoundedRectangle, Size: f32.Pt(200, 6), CornerRadius: 3, Color: th.Colors.Background.Secondary},
		&widget.Figure{Kind: render.RoundedRectangle, Size: f32.Pt(40, 6), CornerRadius: 3, Color: th.Colors.Brand},
		&widget.Figure{Kind: render.Ellipse, Size: f32.Pt(16, 16), Color: th.Colors.Outline.Primary},
		func(ctx *ui.Context, v float32) { log.Printf("slider at %.0f", v) },
	)

	field := widget.NewInputField(map[string]widget.Drawable{
		"default": fieldFrame(th, th.Colors.Outline.Secondary),
		"focus":   fieldFrame(th, th.Colors.Brand),
		"error":   fieldFrame(th, th.Colors.Status.Danger),
	}, &widget.Label{Text: "Type here"}, 48)

	page := widget.NewGroup(
		&layout.Column{
			Spacing: th.Layout.ContentPadding,
			Padding: layout.Uniform(th.Layout.ContentPadding),
		},
		heading, primary, choices, slider, field,
	)
	return widget.NewScrollable(page)
}

func buttonFace(th *theme.Theme, scheme theme.ButtonColorScheme) widget.Drawable {
	centered := layout.Centered()
	return widget.NewGroup(&centered,
		&widget.Figure{Kind: render.RoundedRectangle, Size: f32.Pt(160, 44), CornerRadius: 22, Color: scheme.Background},
		&widget.Label{Text: "Continue", FontSize: th.Fonts.Size.MD, Color: scheme.Label},
	)
}

func fieldFrame(th *theme.Theme, outline render.Color) widget.Drawable {
	return &widget.Figure{
		Kind:         render.RoundedRectangle,
		Size:         f32.Pt(300, 48),
		CornerRadius: 8,
		Stroke:       1,
		Color:        outline,
	}
}

func choice(ctx *ui.Context, th *theme.Theme, label string, selected bool, group uuid.UUID) *widget.Selectable {
	def := &widget.Label{Text: label, Color: th.Colors.Text.Secondary}
	sel := &widget.Label{Text: label, Color: th.Colors.Brand}
	return widget.NewSelectable(def, sel, selected, nil, group)
}

func colorOf(c render.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
