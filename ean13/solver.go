package ean13

// The solver reconstructs a checksum-consistent code from ambiguous
// per-position candidates without enumerating the full combinatorial
// space. At every step only one partial assignment per checksum residue
// survives, so the work per position is linear in the candidate count
// instead of exponential overall. When two assignments reach the same
// residue, the one with the lower accumulated match score is kept, so a
// perfectly matched scan always survives the pruning.

// residueEntry is one surviving partial assignment: the candidate sequence
// that reaches a residue (stored newest digit first) and its accumulated
// match score.
type residueEntry struct {
	ok    bool
	score float64
	seq   []Candidate
}

// residueMap keys partial assignments by checksum residue mod 10.
type residueMap [10]residueEntry

// foldPosition extends every surviving partial assignment with each
// candidate at one digit position, re-keying by the weighted residue.
func foldPosition(old residueMap, cands []Candidate, weight int) residueMap {
	var next residueMap
	for _, cand := range cands {
		for r := 0; r < 10; r++ {
			if !old[r].ok {
				continue
			}
			key := (r + cand.Digit*weight) % 10
			score := old[r].score + cand.Score
			if next[key].ok && next[key].score <= score {
				continue
			}
			seq := make([]Candidate, 0, len(old[r].seq)+1)
			seq = append(seq, cand)
			seq = append(seq, old[r].seq...)
			next[key] = residueEntry{ok: true, score: score, seq: seq}
		}
	}
	return next
}

// firstDigitOf recovers the implied first digit from the parity pattern of
// the six left-hand candidates of one surviving sequence, along with the
// parity match score. seq is stored newest first, so the left digits
// occupy its tail in reverse.
func firstDigitOf(seq []Candidate) (digit int, score float64, ok bool) {
	if len(seq) != 11 {
		return 0, 0, false
	}
	odd := make([]bool, 6)
	for i := 0; i < 6; i++ {
		switch seq[10-i].Parity {
		case ParityOdd:
			odd[i] = true
		case ParityEven:
			odd[i] = false
		default:
			return 0, 0, false
		}
	}
	best := bestScores(&parityTable, scaleWidths(boolRuns(odd)), ParityNone)
	return best[0].Digit, best[0].Score, true
}

func boolRuns(bits []bool) []int {
	var runs []int
	length := 0
	for i, b := range bits {
		if i == 0 || b == bits[i-1] {
			length++
			continue
		}
		runs = append(runs, length)
		length = 1
	}
	return append(runs, length)
}

// Solve searches the twelve candidate groups produced by CandidateDigits
// for a checksum-consistent thirteen-digit assignment. The last group is
// the check-digit readout; the first eleven are folded through the residue
// accumulator, the first digit is recovered from the parity evidence of
// each surviving sequence, and the observed check-digit candidates are
// tried best first. The first hit wins.
func Solve(groups [][]Candidate) ([13]int, bool) {
	var none [13]int
	if len(groups) != 12 {
		return none, false
	}
	for _, g := range groups {
		if len(g) == 0 {
			return none, false
		}
	}

	var m residueMap
	m[0] = residueEntry{ok: true, seq: []Candidate{}}
	for i, cands := range groups[:11] {
		// Readout position i sits at index i+1 of the final code, so
		// even i carries checksum weight 3.
		weight := 1
		if i%2 == 0 {
			weight = 3
		}
		m = foldPosition(m, cands, weight)
	}

	// Re-key each surviving sequence by the check digit it requires.
	type finalEntry struct {
		ok     bool
		score  float64
		digits [12]int
	}
	var byCheck [10]finalEntry
	for r := 0; r < 10; r++ {
		if !m[r].ok {
			continue
		}
		first, firstScore, ok := firstDigitOf(m[r].seq)
		if !ok {
			continue
		}
		key := (10 - (r+first)%10) % 10
		score := m[r].score + firstScore
		if byCheck[key].ok && byCheck[key].score <= score {
			continue
		}
		var digits [12]int
		digits[0] = first
		for i, c := range m[r].seq {
			digits[11-i] = c.Digit
		}
		byCheck[key] = finalEntry{ok: true, score: score, digits: digits}
	}

	for _, cand := range groups[11] {
		if e := byCheck[cand.Digit]; e.ok {
			var code [13]int
			copy(code[:12], e.digits[:])
			code[12] = cand.Digit
			return code, true
		}
	}
	return none, false
}
