// Package ppm decodes and encodes the binary netpbm P6 raster container.
// The decoder is built entirely on package parse; no image library is used.
package ppm

import (
	"bytes"
	"fmt"
	"math"

	"github.com/ericlevine/eanscan/parse"
)

const (
	magic = "P6"

	// maxChannel is the only supported maximum channel value. Rasters with
	// 16-bit channels are out of scope and rejected.
	maxChannel = 255
)

// Pixmap is a decoded RGB raster, stored as packed triples in row-major
// order. A Pixmap produced by Decode is immutable; mutators exist only for
// building synthetic images on the encode side.
type Pixmap struct {
	width  int
	height int
	pix    []byte
}

// New creates a blank (all black) Pixmap of the given dimensions.
func New(width, height int) *Pixmap {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	return &Pixmap{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*3),
	}
}

// Width returns the raster width in pixels.
func (p *Pixmap) Width() int { return p.width }

// Height returns the raster height in pixels.
func (p *Pixmap) Height() int { return p.height }

// Row returns the packed RGB bytes of row y without copying the rest of the
// image, so callers touching one row keep memory at O(width). The slice is
// a read-only view into the pixmap.
func (p *Pixmap) Row(y int) []byte {
	stride := p.width * 3
	return p.pix[y*stride : (y+1)*stride]
}

// At returns the RGB channels of the pixel at (x, y).
func (p *Pixmap) At(x, y int) (r, g, b byte) {
	i := (y*p.width + x) * 3
	return p.pix[i], p.pix[i+1], p.pix[i+2]
}

// Set writes the pixel at (x, y). Used when constructing synthetic rasters.
func (p *Pixmap) Set(x, y int, r, g, b byte) {
	i := (y*p.width + x) * 3
	p.pix[i], p.pix[i+1], p.pix[i+2] = r, g, b
}

// Decode parses a binary P6 raster: the "P6" magic, whitespace-delimited
// width, height and maximum channel value (which must be 255), exactly one
// delimiter byte, then width*height*3 raw RGB bytes. Any failure is a
// *parse.Error carrying the byte offset where parsing stopped.
//
// The returned Pixmap retains buf as its pixel storage rather than copying
// it; callers must not modify buf while the Pixmap is in use.
func Decode(buf []byte) (*Pixmap, error) {
	r := decodePixmap(parse.NewCursor(buf))
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Value, nil
}

func decodePixmap(c parse.Cursor) parse.Result[*Pixmap] {
	return parse.Bind(parse.Literal(c, magic), func(_ string, c parse.Cursor) parse.Result[*Pixmap] {
		return parse.Bind(header(c), func(h rasterHeader, c parse.Cursor) parse.Result[*Pixmap] {
			return parse.Map(parse.FixedBytes(c, h.width*h.height*3), func(pix []byte) *Pixmap {
				return &Pixmap{width: h.width, height: h.height, pix: pix}
			})
		})
	})
}

type rasterHeader struct {
	width  int
	height int
}

// header parses the three whitespace-delimited size fields and the single
// delimiter byte that separates the header from the pixel payload.
func header(c parse.Cursor) parse.Result[rasterHeader] {
	return parse.Bind(spacedNatural(c), func(width int, c parse.Cursor) parse.Result[rasterHeader] {
		return parse.Bind(spacedNatural(c), func(height int, c parse.Cursor) parse.Result[rasterHeader] {
			// Non-positive values only arise from a zero field or an
			// overflowed natural; the product bound keeps width*height*3
			// from wrapping into a small positive payload size.
			if width <= 0 || height <= 0 || width > math.MaxInt/3/height {
				return parse.Fail[rasterHeader](c, "image dimensions %dx%d out of range", width, height)
			}
			return parse.Bind(spacedNatural(c), func(maxVal int, c parse.Cursor) parse.Result[rasterHeader] {
				if maxVal != maxChannel {
					return parse.Fail[rasterHeader](c, "unsupported max channel value %d, want %d", maxVal, maxChannel)
				}
				return parse.Bind(parse.Byte(c), func(sep byte, rest parse.Cursor) parse.Result[rasterHeader] {
					if !parse.IsSpace(sep) {
						return parse.Fail[rasterHeader](c, "expected whitespace after header, got %q", sep)
					}
					return parse.Ok(rasterHeader{width: width, height: height}, rest)
				})
			})
		})
	})
}

func spacedNatural(c parse.Cursor) parse.Result[int] {
	return parse.Bind(parse.SkipSpace(c), func(_ struct{}, c parse.Cursor) parse.Result[int] {
		return parse.Natural(c)
	})
}

// Encode renders p as a canonical binary P6 container.
func Encode(p *Pixmap) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s\n%d %d\n%d\n", magic, p.width, p.height, maxChannel)
	b.Write(p.pix)
	return b.Bytes()
}
