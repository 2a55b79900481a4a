package custombar

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/colornames"

	"github.com/ericlevine/custombar/internal/fontface"
)

// labelTop is the gap between the bars and the top of a raster label.
const labelTop = 4

// Canvas is a resizable raster surface exposing a 2D drawing context.
// *gg.Context implements Canvas.
type Canvas interface {
	Width() int
	Height() int
	Resize(width, height int) error
	SetColor(c color.Color)
	DrawRectangle(x, y, w, h float64)
	Fill() error
	SetFont(face text.Face)
	DrawString(s string, x, y float64)
	MeasureString(s string) (w, h float64)
}

var _ Canvas = (*gg.Context)(nil)

// RenderRaster encodes contents and draws it onto surface, which is resized
// to fit. Surfaces that are not a Canvas are rejected with ErrInvalidSurface.
// Nothing is drawn unless encoding and option checks succeed. A nil opts
// uses RasterDefaults.
func RenderRaster(surface any, contents string, opts *Options) (Canvas, error) {
	canvas, ok := surface.(Canvas)
	if !ok {
		return nil, fmt.Errorf("%T has no 2D drawing context: %w", surface, ErrInvalidSurface)
	}
	if dc, isGG := surface.(*gg.Context); isGG && dc == nil {
		return nil, fmt.Errorf("nil *gg.Context: %w", ErrInvalidSurface)
	}

	opts, err := resolve(opts, RasterDefaults)
	if err != nil {
		return nil, err
	}
	bc, err := Build(contents, opts)
	if err != nil {
		return nil, err
	}
	bg, err := ParseColor(opts.Background)
	if err != nil {
		return nil, err
	}
	fg, err := ParseColor(opts.LineColor)
	if err != nil {
		return nil, err
	}
	var face text.Face
	if opts.IncludeText {
		face, err = fontface.Parse(opts.Font).Face()
		if err != nil {
			return nil, fmt.Errorf("load font %q: %w", opts.Font, err)
		}
	}

	g := Plan(bc.Runs, opts)
	width, height := int(math.Ceil(g.Width)), int(math.Ceil(g.Height))
	Logger().Debug("custombar: raster", "width", width, "height", height, "bars", len(g.Bars()))
	if err := canvas.Resize(width, height); err != nil {
		return nil, fmt.Errorf("resize surface: %w", err)
	}

	canvas.SetColor(bg)
	canvas.DrawRectangle(0, 0, float64(canvas.Width()), float64(canvas.Height()))
	if err := canvas.Fill(); err != nil {
		return nil, fmt.Errorf("fill background: %w", err)
	}

	canvas.SetColor(fg)
	for _, s := range g.Bars() {
		canvas.DrawRectangle(s.X, 0, s.Width, g.BarHeight)
	}
	if err := canvas.Fill(); err != nil {
		return nil, fmt.Errorf("fill bars: %w", err)
	}

	if face != nil && contents != "" {
		canvas.SetFont(face)
		tw, _ := canvas.MeasureString(contents)
		x := float64(canvas.Width())/2 - tw/2
		y := g.BarHeight + labelTop + face.Metrics().Ascent
		canvas.DrawString(contents, x, y)
	}
	return canvas, nil
}

// ParseColor parses a CSS hex color (#rgb, #rgba, #rrggbb, #rrggbbaa) or an
// SVG color name.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if !isHex(hex) {
			return nil, fmt.Errorf("color %q: %w", s, ErrInvalidOptions)
		}
		switch len(hex) {
		case 3, 4, 6, 8:
			return gg.Hex(hex).Color(), nil
		}
		return nil, fmt.Errorf("color %q: %w", s, ErrInvalidOptions)
	}
	name := strings.ToLower(s)
	if name == "transparent" {
		return color.Transparent, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("color %q: %w", s, ErrInvalidOptions)
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return s != ""
}
