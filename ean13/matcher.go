package ean13

import (
	"math"
	"sort"

	"github.com/ericlevine/eanscan/signal"
)

// Parity tags which reference table variant produced a candidate digit.
type Parity uint8

const (
	// ParityNone marks right-hand candidates, which have a single encoding.
	ParityNone Parity = iota
	// ParityOdd marks left-hand candidates matched against the L table.
	ParityOdd
	// ParityEven marks left-hand candidates matched against the G table.
	ParityEven
)

// Candidate is one scored digit guess. Lower scores are better matches.
// Ordering ignores the parity tag.
type Candidate struct {
	Score  float64
	Digit  int
	Parity Parity
}

// minRuns is the fewest runs a full symbol can occupy at one module per
// run: 3 start guard + 24 left + 5 middle guard + 24 right + 3 end guard.
const minRuns = 59

// distance is the L1 distance between two scaled run vectors, compared
// positionally up to the shorter length.
func distance(a, b scaledRuns) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += math.Abs(a[i] - b[i])
	}
	return sum
}

// bestScores matches a scaled run group against every digit of a table and
// returns the three closest candidates, best first.
func bestScores(t *refTable, group scaledRuns, parity Parity) []Candidate {
	cands := make([]Candidate, 0, 10)
	for d := 0; d < 10; d++ {
		cands = append(cands, Candidate{
			Score:  distance(group, t[d]),
			Digit:  d,
			Parity: parity,
		})
	}
	sortByScore(cands)
	return cands[:3]
}

// sortByScore orders candidates by ascending score, projecting away the
// parity tag. The sort is stable so equal scores keep table order.
func sortByScore(cands []Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].Score < cands[j].Score
	})
}

// CandidateDigits scores every aligned 4-run digit group of a signal,
// returning candidate lists for the six left groups followed by the six
// right groups. Left groups are matched against both parity tables, since
// the parity choice itself encodes the first digit; their merged lists
// carry up to six candidates. Right groups carry three.
//
// It returns nil when no barcode can start here: the leading guard must
// begin on a dark run and a full symbol needs at least 59 runs.
func CandidateDigits(runs []signal.Run) [][]Candidate {
	if len(runs) < minRuns || !runs[0].Dark {
		return nil
	}

	groups := make([][]Candidate, 0, 12)
	pos := len(startEndGuard)
	for i := 0; i < 6; i++ {
		group := scaleGroup(runs[pos : pos+4])
		pos += 4
		merged := append(
			bestScores(&leftOddTable, group, ParityOdd),
			bestScores(&leftEvenTable, group, ParityEven)...,
		)
		sortByScore(merged)
		groups = append(groups, merged)
	}
	pos += len(middleGuard)
	for i := 0; i < 6; i++ {
		group := scaleGroup(runs[pos : pos+4])
		pos += 4
		groups = append(groups, bestScores(&rightTable, group, ParityNone))
	}
	return groups
}

func scaleGroup(runs []signal.Run) scaledRuns {
	sum := 0
	for _, r := range runs {
		sum += r.Length
	}
	out := make(scaledRuns, len(runs))
	for i, r := range runs {
		out[i] = float64(r.Length) / float64(sum)
	}
	return out
}
