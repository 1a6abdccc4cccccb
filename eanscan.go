// Package eanscan extracts EAN-13/UPC-A product codes from noisy raster
// photographs supplied as binary PPM (P6) data, using no external image or
// vision libraries. The pipeline decodes the container, reduces one row to
// an adaptively thresholded run-length signal, scores each digit group
// against the reference encodings, and searches the ambiguous candidates
// for a checksum-consistent thirteen-digit answer.
package eanscan

// Digit is a single decoded digit, 0 through 9.
type Digit uint8

// Code is a complete decoded product code: twelve data digits plus the
// check digit.
type Code [13]Digit

// String renders the code as thirteen ASCII digits.
func (c Code) String() string {
	var b [13]byte
	for i, d := range c {
		b[i] = '0' + byte(d)
	}
	return string(b[:])
}

// DecodeOptions configures decoding behavior.
type DecodeOptions struct {
	// TryHarder scans additional rows outward from the vertical center
	// instead of the center row only.
	TryHarder bool
}
