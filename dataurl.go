package custombar

import (
	"errors"
	"net/url"
	"strings"
)

// SVGDataURLPrefix is the media-type preamble of SVG data URLs.
const SVGDataURLPrefix = "data:image/svg+xml;charset=utf-8,"

const upperhex = "0123456789ABCDEF"

// DataURL wraps SVG markup in a data URL suitable for inline embedding.
// The markup is percent-encoded with the same rules as JavaScript's
// encodeURIComponent.
func DataURL(markup string) string {
	var sb strings.Builder
	sb.Grow(len(SVGDataURLPrefix) + len(markup)*2)
	sb.WriteString(SVGDataURLPrefix)
	for i := 0; i < len(markup); i++ {
		c := markup[i]
		if unreservedComponent(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperhex[c>>4])
		sb.WriteByte(upperhex[c&0x0F])
	}
	return sb.String()
}

func unreservedComponent(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// Image is a handle to a rendered barcode image. Src is a data URL; loading
// and decoding it is left to whoever displays the image.
type Image struct {
	Src string
}

// NewImage renders contents as SVG and returns an image handle for it.
func NewImage(contents string, opts *Options) (*Image, error) {
	svg, err := RenderSVG(contents, opts)
	if err != nil {
		return nil, err
	}
	return &Image{Src: DataURL(svg)}, nil
}

// Markup decodes the SVG document the handle points to.
func (im *Image) Markup() (string, error) {
	data, ok := strings.CutPrefix(im.Src, SVGDataURLPrefix)
	if !ok {
		return "", errors.New("image source is not an SVG data URL")
	}
	return url.PathUnescape(data)
}
