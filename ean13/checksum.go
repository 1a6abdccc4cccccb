package ean13

// CheckDigit computes the check digit for the first twelve digits of a
// code: digits at odd indices count three times, the rest once, and the
// check digit brings the total to a multiple of ten.
func CheckDigit(digits []int) int {
	sum := 0
	for i, d := range digits {
		if i%2 == 1 {
			sum += 3 * d
		} else {
			sum += d
		}
	}
	return (10 - sum%10) % 10
}

// ValidChecksum reports whether a full thirteen-digit code satisfies the
// weighted mod-10 rule.
func ValidChecksum(digits []int) bool {
	if len(digits) != 13 {
		return false
	}
	return CheckDigit(digits[:12]) == digits[12]
}
