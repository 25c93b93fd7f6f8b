package encoder

import "github.com/nikhil4902/qrcodegen/bitutil"

const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
)

// finderLikePatterns are the two 11-module windows rule 3 penalizes: a
// 1:1:3:1:1 dark-light run with four light modules on one side.
var finderLikePatterns = [2][11]bool{
	{true, false, true, true, true, false, true, false, false, false, false},
	{false, false, false, false, true, false, true, true, true, false, true},
}

// Penalty holds the score of each rule for one masked symbol.
type Penalty struct {
	Rule1, Rule2, Rule3, Rule4 int
}

// Total returns the sum of the four rules.
func (p Penalty) Total() int {
	return p.Rule1 + p.Rule2 + p.Rule3 + p.Rule4
}

// CalculatePenalty scores matrix with all four rules.
func CalculatePenalty(matrix *bitutil.BitMatrix) Penalty {
	return Penalty{
		Rule1: applyMaskPenaltyRule1(matrix),
		Rule2: applyMaskPenaltyRule2(matrix),
		Rule3: applyMaskPenaltyRule3(matrix),
		Rule4: applyMaskPenaltyRule4(matrix),
	}
}

// applyMaskPenaltyRule1 scores runs of five or more same-colored modules in
// every row and column: 3 for a run of five, plus 1 for each extra module.
func applyMaskPenaltyRule1(matrix *bitutil.BitMatrix) int {
	return applyMaskPenaltyRule1Internal(matrix, true) + applyMaskPenaltyRule1Internal(matrix, false)
}

func applyMaskPenaltyRule1Internal(matrix *bitutil.BitMatrix, isHorizontal bool) int {
	penalty := 0
	iLimit, jLimit := matrix.Height(), matrix.Width()
	if !isHorizontal {
		iLimit, jLimit = jLimit, iLimit
	}
	for i := 0; i < iLimit; i++ {
		numSameBitCells := 0
		var prevBit bool
		for j := 0; j < jLimit; j++ {
			var bit bool
			if isHorizontal {
				bit = matrix.Get(j, i)
			} else {
				bit = matrix.Get(i, j)
			}
			if j > 0 && bit == prevBit {
				numSameBitCells++
				continue
			}
			if numSameBitCells >= 5 {
				penalty += penaltyN1 + (numSameBitCells - 5)
			}
			numSameBitCells = 1
			prevBit = bit
		}
		if numSameBitCells >= 5 {
			penalty += penaltyN1 + (numSameBitCells - 5)
		}
	}
	return penalty
}

// applyMaskPenaltyRule2 scores 3 for every 2x2 block of one color. Blocks
// may overlap.
func applyMaskPenaltyRule2(matrix *bitutil.BitMatrix) int {
	penalty := 0
	for y := 0; y < matrix.Height()-1; y++ {
		for x := 0; x < matrix.Width()-1; x++ {
			value := matrix.Get(x, y)
			if value == matrix.Get(x+1, y) && value == matrix.Get(x, y+1) && value == matrix.Get(x+1, y+1) {
				penalty += penaltyN2
			}
		}
	}
	return penalty
}

// applyMaskPenaltyRule3 scores 40 for every 11-module window, in a row or a
// column, that matches one of the finder-like patterns. Windows lie wholly
// inside the symbol.
func applyMaskPenaltyRule3(matrix *bitutil.BitMatrix) int {
	penalty := 0
	width, height := matrix.Width(), matrix.Height()
	for y := 0; y < height; y++ {
		for x := 0; x+11 <= width; x++ {
			for _, pattern := range finderLikePatterns {
				if matchesWindow(matrix, x, y, 1, 0, pattern) {
					penalty += penaltyN3
				}
			}
		}
	}
	for x := 0; x < width; x++ {
		for y := 0; y+11 <= height; y++ {
			for _, pattern := range finderLikePatterns {
				if matchesWindow(matrix, x, y, 0, 1, pattern) {
					penalty += penaltyN3
				}
			}
		}
	}
	return penalty
}

func matchesWindow(matrix *bitutil.BitMatrix, x, y, dx, dy int, pattern [11]bool) bool {
	for k, want := range pattern {
		if matrix.Get(x+k*dx, y+k*dy) != want {
			return false
		}
	}
	return true
}

// applyMaskPenaltyRule4 rounds the dark percentage to the nearest multiple
// of 5, away from 50 on an exact half, and scores 2 per point of deviation
// from 50.
func applyMaskPenaltyRule4(matrix *bitutil.BitMatrix) int {
	total := matrix.Width() * matrix.Height()
	if total == 0 {
		return 0
	}
	dark := matrix.CountSet()

	// percent = 100*dark/total = 5*(m + rem/step)
	step := 5 * total
	m := 100 * dark / step
	rem := 100*dark - m*step
	rounded := 5 * m
	switch {
	case 2*rem > step:
		rounded += 5
	case 2*rem == step && rounded >= 50:
		rounded += 5
	}
	return abs(50-rounded) * 2
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
