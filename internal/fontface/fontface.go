// Package fontface parses CSS-like font descriptors such as
// "bold 14px monospace" and provides raster faces for them.
package fontface

import (
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	// DefaultSize is used when a descriptor has no usable size.
	DefaultSize = 12

	// DefaultFamily is used when a descriptor names no family.
	DefaultFamily = "monospace"
)

var sizePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)(px|pt)?`)

// Descriptor is a parsed font specification.
type Descriptor struct {
	// Size is the font size in pixels.
	Size float64

	// SizeToken is the numeric text Size was parsed from.
	SizeToken string

	// Family is the remainder of the descriptor once size and style
	// keywords are removed.
	Family string

	Bold bool
}

// Parse parses a font descriptor. The first numeric token is the size;
// style keywords are recognised anywhere; everything else is the family.
func Parse(font string) Descriptor {
	d := Descriptor{
		Size:      DefaultSize,
		SizeToken: strconv.Itoa(DefaultSize),
	}
	rest := font
	if loc := sizePattern.FindStringSubmatchIndex(font); loc != nil {
		tok := font[loc[2]:loc[3]]
		if v, err := strconv.ParseFloat(tok, 64); err == nil && v > 0 {
			d.Size = v
			d.SizeToken = tok
		}
		rest = font[:loc[0]] + " " + font[loc[1]:]
	}

	var family []string
	for _, f := range strings.Fields(rest) {
		switch strings.ToLower(f) {
		case "bold", "bolder":
			d.Bold = true
		case "normal", "italic", "oblique", "lighter":
		default:
			family = append(family, f)
		}
	}
	d.Family = strings.Join(family, " ")
	if d.Family == "" {
		d.Family = DefaultFamily
	}
	return d
}

// Monospace reports whether the family asks for a fixed-width font.
func (d Descriptor) Monospace() bool {
	f := strings.ToLower(d.Family)
	return strings.Contains(f, "mono") || strings.Contains(f, "courier") || strings.Contains(f, "consol")
}

type fontKey struct {
	mono, bold bool
}

var sources = map[fontKey]func() (*text.FontSource, error){
	{mono: false, bold: false}: sync.OnceValues(func() (*text.FontSource, error) { return text.NewFontSource(goregular.TTF) }),
	{mono: false, bold: true}:  sync.OnceValues(func() (*text.FontSource, error) { return text.NewFontSource(gobold.TTF) }),
	{mono: true, bold: false}:  sync.OnceValues(func() (*text.FontSource, error) { return text.NewFontSource(gomono.TTF) }),
	{mono: true, bold: true}:   sync.OnceValues(func() (*text.FontSource, error) { return text.NewFontSource(gomonobold.TTF) }),
}

// Face returns a face of one of the Go fonts matching the descriptor.
// Font sources are parsed once and shared.
func (d Descriptor) Face() (text.Face, error) {
	src, err := sources[fontKey{mono: d.Monospace(), bold: d.Bold}]()
	if err != nil {
		return nil, err
	}
	return src.Face(d.Size), nil
}
