// Package ean13 matches run-length signals against the EAN-13 digit
// encodings and searches the resulting candidates for a checksum-consistent
// thirteen-digit code. UPC-A codes decode as EAN-13 with a leading zero.
package ean13

// Guard patterns, as module widths.
var (
	startEndGuard = []int{1, 1, 1}
	middleGuard   = []int{1, 1, 1, 1, 1}
)

// Left-hand odd-parity ("L") patterns, one per digit, as the widths of the
// four space/bar/space/bar runs of each 7-module symbol. The even-parity
// ("G") pattern for a digit is the reverse of its L pattern, and the
// right-hand ("R") pattern has the same widths at opposite phase (bar
// first).
var leftOddWidths = [10][]int{
	{3, 2, 1, 1}, // 0
	{2, 2, 2, 1}, // 1
	{2, 1, 2, 2}, // 2
	{1, 4, 1, 1}, // 3
	{1, 1, 3, 2}, // 4
	{1, 2, 3, 1}, // 5
	{1, 1, 1, 4}, // 6
	{1, 3, 1, 2}, // 7
	{1, 2, 1, 3}, // 8
	{3, 1, 1, 2}, // 9
}

// firstDigitParity encodes, for each possible first digit, which parity the
// six left-hand digits are written in. Bit (5-i) set means position i uses
// the even ("G") pattern.
var firstDigitParity = [10]int{
	0x00, 0x0B, 0x0D, 0x0E, 0x13, 0x19, 0x1C, 0x15, 0x16, 0x1A,
}

// scaledRuns is a run-width vector normalized to unit sum, so patterns can
// be compared independent of absolute bar width.
type scaledRuns []float64

func scaleWidths(widths []int) scaledRuns {
	sum := 0
	for _, w := range widths {
		sum += w
	}
	out := make(scaledRuns, len(widths))
	for i, w := range widths {
		out[i] = float64(w) / float64(sum)
	}
	return out
}

// refTable holds one scaled reference vector per digit.
type refTable [10]scaledRuns

// The four reference tables: left digits in odd and even parity, right
// digits, and the parity patterns that encode the first digit. Built once
// at startup.
var (
	leftOddTable  refTable
	leftEvenTable refTable
	rightTable    refTable
	parityTable   refTable
)

func init() {
	for d := 0; d < 10; d++ {
		widths := leftOddWidths[d]
		reversed := make([]int, len(widths))
		for i, w := range widths {
			reversed[len(widths)-1-i] = w
		}
		leftOddTable[d] = scaleWidths(widths)
		leftEvenTable[d] = scaleWidths(reversed)
		// R patterns share the L widths; phase is handled by run alignment.
		rightTable[d] = scaleWidths(widths)
		parityTable[d] = scaleWidths(parityRuns(firstDigitParity[d]))
	}
}

// parityRuns run-length encodes a 6-bit parity pattern, treating odd parity
// as the high state. All valid patterns start with an odd position, so the
// leading run is always high.
func parityRuns(mask int) []int {
	var runs []int
	length := 0
	prev := true // odd
	for i := 0; i < 6; i++ {
		odd := mask&(1<<uint(5-i)) == 0
		if i == 0 || odd == prev {
			length++
		} else {
			runs = append(runs, length)
			length = 1
		}
		prev = odd
	}
	return append(runs, length)
}
