package custombar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ericlevine/custombar/internal/fontface"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// labelBaseline is the label baseline offset below the top of the label band.
const labelBaseline = 16

var markupEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&apos;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeMarkup escapes the five characters reserved in XML markup.
func EscapeMarkup(s string) string {
	return markupEscaper.Replace(s)
}

// RenderSVG encodes contents and returns a standalone SVG document with a
// fixed viewport. A nil opts uses VectorDefaults.
func RenderSVG(contents string, opts *Options) (string, error) {
	opts, err := resolve(opts, VectorDefaults)
	if err != nil {
		return "", err
	}
	bc, err := Build(contents, opts)
	if err != nil {
		return "", err
	}
	g := Plan(bc.Runs, opts)
	Logger().Debug("custombar: svg", "width", g.Width, "height", g.Height, "bars", len(g.Bars()))
	return writeSVG(contents, g, opts), nil
}

func writeSVG(contents string, g Geometry, opts *Options) string {
	w, h := num(g.Width), num(g.Height)
	bg, fg := EscapeMarkup(opts.Background), EscapeMarkup(opts.LineColor)

	lines := make([]string, 0, len(g.Segments)/2+5)
	lines = append(lines,
		fmt.Sprintf(`<svg xmlns="%s" width="%s" height="%s" viewBox="0 0 %s %s">`, svgNamespace, w, h, w, h),
		fmt.Sprintf(`<rect x="0" y="0" width="%s" height="%s" fill="%s" />`, w, h, bg),
	)
	barHeight := num(g.BarHeight)
	for _, s := range g.Segments {
		if !s.Bar {
			continue
		}
		lines = append(lines, fmt.Sprintf(`<rect x="%s" y="0" width="%s" height="%s" fill="%s" />`,
			num(s.X), num(s.Width), barHeight, fg))
	}

	if opts.IncludeText {
		font := fontface.Parse(opts.Font)
		weight := ""
		if font.Bold {
			weight = ` font-weight="bold"`
		}
		lines = append(lines, fmt.Sprintf(
			`<text x="%s" y="%s" font-family="%s" font-size="%s"%s fill="%s" text-anchor="middle">%s</text>`,
			num(g.Width/2), num(g.BarHeight+labelBaseline), EscapeMarkup(font.Family),
			EscapeMarkup(font.SizeToken), weight, fg, EscapeMarkup(contents)))
	}

	lines = append(lines, "</svg>")
	return strings.Join(lines, "\n")
}

// num formats v in its shortest decimal form.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
