package custombar

import "github.com/ericlevine/custombar/bitutil"

// Segment is the horizontal extent of one run. Only bar segments are drawn;
// gaps still consume space.
type Segment struct {
	X     float64
	Width float64
	Bar   bool
}

// Geometry is the pixel layout of a symbol.
type Geometry struct {
	Width     float64
	Height    float64
	BarHeight float64
	Modules   int
	Segments  []Segment
}

// Plan lays runs out left to right starting at the margin.
func Plan(runs []bitutil.Run, opts *Options) Geometry {
	g := Geometry{
		Modules:   bitutil.Modules(runs),
		BarHeight: opts.Height,
		Height:    opts.Height,
		Segments:  make([]Segment, 0, len(runs)),
	}
	if opts.Width > 0 {
		g.Width = opts.Width
	} else {
		g.Width = float64(g.Modules)*opts.ModuleWidth + 2*opts.Margin
	}
	if opts.IncludeText {
		g.Height += labelBand
	}

	x := opts.Margin
	for _, r := range runs {
		w := float64(r.Len) * opts.ModuleWidth
		g.Segments = append(g.Segments, Segment{X: x, Width: w, Bar: r.Bit})
		x += w
	}
	return g
}

// Bars returns the segments that are drawn.
func (g Geometry) Bars() []Segment {
	bars := make([]Segment, 0, len(g.Segments)/2+1)
	for _, s := range g.Segments {
		if s.Bar {
			bars = append(bars, s)
		}
	}
	return bars
}
