// Package signal turns one row of a decoded raster into a run-length
// encoded sequence of alternating bar and space widths: luminance
// reduction, adaptive thresholding, then run-length encoding. Every
// function is pure, so any number of rows may be processed concurrently.
package signal

import (
	"math"

	"github.com/ericlevine/eanscan/bitutil"
	"github.com/ericlevine/eanscan/ppm"
)

// threshold places the dark/light pivot at 40% of the row's luminance
// range. The pivot must adapt to the row: absolute brightness varies wildly
// between camera sensors, and a fixed cutoff fails on most real
// photographs.
const threshold = 0.4

// Luminance reduces an RGB triple to a single brightness byte using the
// standard NTSC weights, rounded to nearest.
func Luminance(r, g, b byte) byte {
	return byte(math.Round(0.30*float64(r) + 0.59*float64(g) + 0.11*float64(b)))
}

// RowLuminance converts row y of pix to luminance values. Only the one row
// is materialized, keeping peak working memory at O(width).
func RowLuminance(pix *ppm.Pixmap, y int) []byte {
	row := pix.Row(y)
	lum := make([]byte, pix.Width())
	for x := range lum {
		lum[x] = Luminance(row[3*x], row[3*x+1], row[3*x+2])
	}
	return lum
}

// Threshold binarizes a luminance row against an adaptive pivot. Set bits
// are dark (bar) pixels. A uniform row binarizes to all light.
func Threshold(lum []byte) *bitutil.BitArray {
	bits := bitutil.NewBitArray(len(lum))
	if len(lum) == 0 {
		return bits
	}
	lo, hi := lum[0], lum[0]
	for _, v := range lum[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	pivot := float64(lo) + (float64(hi)-float64(lo))*threshold
	for x, v := range lum {
		if float64(v) < pivot {
			bits.Set(x)
		}
	}
	return bits
}

// Run is one maximal run of same-color pixels in a thresholded row.
type Run struct {
	Length int
	Dark   bool
}

// Runs run-length encodes a thresholded row. Adjacent runs never share a
// polarity.
func Runs(bits *bitutil.BitArray) []Run {
	n := bits.Size()
	if n == 0 {
		return nil
	}
	runs := make([]Run, 0, 64)
	cur := Run{Length: 1, Dark: bits.Get(0)}
	for i := 1; i < n; i++ {
		if d := bits.Get(i); d == cur.Dark {
			cur.Length++
		} else {
			runs = append(runs, cur)
			cur = Run{Length: 1, Dark: d}
		}
	}
	return append(runs, cur)
}

// ExtractRow produces the full run-length signal for row y of pix.
func ExtractRow(pix *ppm.Pixmap, y int) []Run {
	return Runs(Threshold(RowLuminance(pix, y)))
}
