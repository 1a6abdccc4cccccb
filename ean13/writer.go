package ean13

import "fmt"

// symbolModules is the width of a full symbol: 3 + 6*7 + 5 + 6*7 + 3.
const symbolModules = 95

// EncodeModules renders a full thirteen-digit code as its 95-module bar
// pattern, true for bar. The first digit selects the parity pattern of the
// six left-hand digits and is not itself drawn.
func EncodeModules(digits []int) ([]bool, error) {
	if len(digits) != 13 {
		return nil, fmt.Errorf("ean13: need 13 digits, got %d", len(digits))
	}
	for _, d := range digits {
		if d < 0 || d > 9 {
			return nil, fmt.Errorf("ean13: digit %d out of range", d)
		}
	}
	if !ValidChecksum(digits) {
		return nil, fmt.Errorf("ean13: check digit mismatch, want %d", CheckDigit(digits[:12]))
	}

	parities := firstDigitParity[digits[0]]
	out := make([]bool, 0, symbolModules)
	out = appendRuns(out, startEndGuard, true)
	for i := 1; i <= 6; i++ {
		widths := leftOddWidths[digits[i]]
		if parities&(1<<uint(6-i)) != 0 {
			widths = reverseWidths(widths)
		}
		out = appendRuns(out, widths, false)
	}
	out = appendRuns(out, middleGuard, false)
	for i := 7; i <= 12; i++ {
		out = appendRuns(out, leftOddWidths[digits[i]], true)
	}
	out = appendRuns(out, startEndGuard, true)
	return out, nil
}

// appendRuns appends run widths as modules, alternating color starting
// with dark when startDark is set.
func appendRuns(modules []bool, widths []int, startDark bool) []bool {
	dark := startDark
	for _, w := range widths {
		for j := 0; j < w; j++ {
			modules = append(modules, dark)
		}
		dark = !dark
	}
	return modules
}

func reverseWidths(widths []int) []int {
	out := make([]int, len(widths))
	for i, w := range widths {
		out[len(widths)-1-i] = w
	}
	return out
}
