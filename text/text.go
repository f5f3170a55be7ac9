// SPDX-License-Identifier: Unlicense OR MIT

// Package text measures and line-wraps strings against an OpenType
// face. Sizing happens here, during the measure pass; rasterization
// belongs to whatever backend consumes the display list.
package text

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seabird.dev/ui/f32"
)

// A Line contains the measurements of one laid out line.
type Line struct {
	Text string
	// Width is the advance width of the line in logical pixels.
	Width float32
}

// Metrics describe a face at a given size, in logical pixels.
type Metrics struct {
	// Ascent is the height above the baseline.
	Ascent float32
	// Descent is the height below the baseline.
	Descent float32
	// Height is the recommended line distance.
	Height float32
}

// Face measures text for a single parsed font. A Face is not safe
// for concurrent use.
type Face struct {
	fnt *sfnt.Font
	buf sfnt.Buffer
}

// NewFace parses OpenType font data.
func NewFace(data []byte) (*Face, error) {
	fnt, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}
	return &Face{fnt: fnt}, nil
}

// Metrics returns the face metrics scaled to size logical pixels.
func (f *Face) Metrics(size float32) Metrics {
	m, err := f.fnt.Metrics(&f.buf, toPpem(size), font.HintingNone)
	if err != nil {
		return Metrics{Ascent: size, Height: size}
	}
	return Metrics{
		Ascent:  fromFixed(m.Ascent),
		Descent: fromFixed(m.Descent),
		Height:  fromFixed(m.Height),
	}
}

// Advance returns the advance width of r at size logical pixels.
// Runes the face has no glyph for advance as the missing glyph.
func (f *Face) Advance(size float32, r rune) float32 {
	ppem := toPpem(size)
	idx, err := f.fnt.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0
	}
	adv, err := f.fnt.GlyphAdvance(&f.buf, idx, ppem, font.HintingNone)
	if err != nil {
		return 0
	}
	return fromFixed(adv)
}

// Width measures s on a single line.
func (f *Face) Width(size float32, s string) float32 {
	var w float32
	for _, r := range s {
		w += f.Advance(size, r)
	}
	return w
}

// Layout greedily wraps s to maxWidth logical pixels. Breaks happen
// at spaces when possible, mid-word otherwise. Newlines in s force
// a break. A non-positive maxWidth disables wrapping.
func (f *Face) Layout(size, maxWidth float32, s string) []Line {
	var lines []Line
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, f.wrapParagraph(size, maxWidth, para)...)
	}
	return lines
}

// Measure returns the bounding size of s wrapped to maxWidth.
func (f *Face) Measure(size, maxWidth float32, s string) f32.Point {
	lines := f.Layout(size, maxWidth, s)
	var w float32
	for _, l := range lines {
		if l.Width > w {
			w = l.Width
		}
	}
	return f32.Pt(w, float32(len(lines))*f.Metrics(size).Height)
}

func (f *Face) wrapParagraph(size, maxWidth float32, s string) []Line {
	if maxWidth <= 0 || s == "" {
		return []Line{{Text: s, Width: f.Width(size, s)}}
	}
	var (
		lines      []Line
		line       strings.Builder
		lineW      float32
		breakAt    = -1 // byte offset in line of last space
		breakW     float32
		spaceWidth = f.Advance(size, ' ')
	)
	flush := func(text string, w float32) {
		lines = append(lines, Line{Text: text, Width: w})
		line.Reset()
		lineW = 0
		breakAt = -1
	}
	for _, r := range s {
		adv := f.Advance(size, r)
		if lineW+adv > maxWidth && line.Len() > 0 {
			if breakAt >= 0 {
				// Break at the last space, keep the tail.
				full := line.String()
				tail := full[breakAt+1:]
				flush(full[:breakAt], breakW)
				line.WriteString(tail)
				lineW = f.Width(size, tail)
			} else {
				flush(line.String(), lineW)
			}
		}
		if r == ' ' && line.Len() == 0 {
			continue // no leading spaces after a wrap
		}
		if r == ' ' {
			breakAt = line.Len()
			breakW = lineW
			lineW += spaceWidth
			line.WriteRune(r)
			continue
		}
		line.WriteRune(r)
		lineW += adv
	}
	if line.Len() > 0 || len(lines) == 0 {
		last := strings.TrimRight(line.String(), " ")
		flush(last, f.Width(size, last))
	}
	return lines
}

func toPpem(size float32) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

func fromFixed(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
