package eanscan

import (
	"github.com/ericlevine/eanscan/ean13"
	"github.com/ericlevine/eanscan/ppm"
	"github.com/ericlevine/eanscan/signal"
)

// Decode extracts a product code from raw binary PPM data. It selects the
// raster's vertical center row and attempts a decode at every horizontal
// run offset, stopping at the first checksum-consistent hit. Malformed
// raster input yields a *parse.Error; a well-formed image with no readable
// code yields ErrNotFound.
func Decode(raw []byte, opts *DecodeOptions) (Code, error) {
	pix, err := ppm.Decode(raw)
	if err != nil {
		return Code{}, err
	}
	return DecodePixmap(pix, opts)
}

// DecodePixmap runs the scan pipeline over an already-decoded raster.
// Every attempt is a pure function of the pixmap, so callers may run
// several concurrently over the same image.
func DecodePixmap(pix *ppm.Pixmap, opts *DecodeOptions) (Code, error) {
	height := pix.Height()
	if height == 0 || pix.Width() == 0 {
		return Code{}, ErrNotFound
	}

	middle := height / 2
	maxLines := 1
	rowStep := 1
	if opts != nil && opts.TryHarder {
		maxLines = 15
		if rowStep = height >> 5; rowStep < 1 {
			rowStep = 1
		}
	}

	// Scan outward from the center: middle, then alternating above and
	// below in rowStep increments.
	for x := 0; x < maxLines; x++ {
		stepsOut := (x + 1) / 2
		rowNumber := middle
		if x&1 == 0 {
			rowNumber += rowStep * stepsOut
		} else {
			rowNumber -= rowStep * stepsOut
		}
		if rowNumber < 0 || rowNumber >= height {
			break
		}
		if code, ok := decodeRuns(signal.ExtractRow(pix, rowNumber)); ok {
			return code, nil
		}
	}
	return Code{}, ErrNotFound
}

// decodeRuns attempts a decode at each successive run offset of one row's
// signal. Offsets that cannot start a barcode are rejected silently and
// the scan advances; the first solvable offset wins.
func decodeRuns(runs []signal.Run) (Code, bool) {
	for off := range runs {
		groups := ean13.CandidateDigits(runs[off:])
		if groups == nil {
			continue
		}
		digits, ok := ean13.Solve(groups)
		if !ok {
			continue
		}
		var code Code
		for i, d := range digits {
			code[i] = Digit(d)
		}
		return code, true
	}
	return Code{}, false
}
