package eanscan

import (
	"fmt"

	"github.com/ericlevine/eanscan/ean13"
	"github.com/ericlevine/eanscan/ppm"
)

// Render draws a code as a synthetic black-on-white raster: each module is
// moduleWidth pixels wide, with a quiet zone of quietModules modules on
// each side. Useful for generating test fixtures and printable labels.
func Render(code Code, moduleWidth, height, quietModules int) (*ppm.Pixmap, error) {
	if moduleWidth < 1 || height < 1 || quietModules < 0 {
		return nil, fmt.Errorf("render: bad geometry %dx%d, quiet %d", moduleWidth, height, quietModules)
	}
	digits := make([]int, 13)
	for i, d := range code {
		digits[i] = int(d)
	}
	modules, err := ean13.EncodeModules(digits)
	if err != nil {
		return nil, err
	}

	quiet := quietModules * moduleWidth
	width := len(modules)*moduleWidth + 2*quiet
	pix := ppm.New(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := byte(255)
			if x >= quiet && x < width-quiet && modules[(x-quiet)/moduleWidth] {
				v = 0
			}
			pix.Set(x, y, v, v, v)
		}
	}
	return pix, nil
}

// Complete turns twelve data digits into a full Code by computing the
// check digit.
func Complete(body [12]Digit) Code {
	digits := make([]int, 12)
	for i, d := range body {
		digits[i] = int(d)
	}
	var code Code
	copy(code[:], body[:])
	code[12] = Digit(ean13.CheckDigit(digits))
	return code
}
