package qrcode

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html"

	svgo "github.com/ajstarks/svgo"
)

const (
	DefaultMargin     = 4
	DefaultDarkColor  = "#000000"
	DefaultLightColor = "#ffffff"
)

// SVGOptions controls RenderSVG. A nil *SVGOptions means DefaultSVGOptions.
type SVGOptions struct {
	// Quiet zone width in modules. Negative values are treated as 0.
	Margin int

	// Fill colours. Empty strings select the defaults.
	DarkColor  string
	LightColor string

	// Width and height attributes of the document. 0 uses the viewBox size,
	// one unit per module.
	Size int
}

func DefaultSVGOptions() *SVGOptions {
	return &SVGOptions{
		Margin:     DefaultMargin,
		DarkColor:  DefaultDarkColor,
		LightColor: DefaultLightColor,
	}
}

func (o *SVGOptions) normalised() SVGOptions {
	if o == nil {
		return *DefaultSVGOptions()
	}

	n := *o

	if n.Margin < 0 {
		n.Margin = 0
	}

	if n.DarkColor == "" {
		n.DarkColor = DefaultDarkColor
	}

	if n.LightColor == "" {
		n.LightColor = DefaultLightColor
	}

	return n
}

// RenderSVG serializes m as an SVG document: a background rectangle covering
// the viewBox, then one unit square per dark module offset by the margin.
func RenderSVG(m *Matrix, opts *SVGOptions) string {
	o := opts.normalised()

	var b bytes.Buffer

	viewBoxSize := m.Size() + 2*o.Margin

	size := o.Size
	if size <= 0 {
		size = viewBoxSize
	}

	svg := svgo.New(&b)

	svg.Startview(size, size, 0, 0, viewBoxSize, viewBoxSize)
	svg.Rect(0, 0, viewBoxSize, viewBoxSize, fillAttr(o.LightColor))
	svg.Group(fillAttr(o.DarkColor))

	for row := 0; row < m.Size(); row++ {
		for col := 0; col < m.Size(); col++ {
			if m.IsDark(row, col) {
				svg.Rect(col+o.Margin, row+o.Margin, 1, 1)
			}
		}
	}

	svg.Gend()
	svg.End()

	return b.String()
}

// RenderDataURI returns RenderSVG's output as a base64 data URI.
func RenderDataURI(m *Matrix, opts *SVGOptions) string {
	return dataURI("image/svg+xml", []byte(RenderSVG(m, opts)))
}

func dataURI(mediaType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mediaType, base64.StdEncoding.EncodeToString(data))
}

func fillAttr(color string) string {
	return fmt.Sprintf(`fill="%s"`, html.EscapeString(color))
}
