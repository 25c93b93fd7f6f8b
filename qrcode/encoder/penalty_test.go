package encoder

import (
	"testing"

	"github.com/nikhil4902/qrcodegen/bitutil"
)

// matrixFromRows builds a matrix from rows of '1' (dark) and '0' (light).
func matrixFromRows(rows ...string) *bitutil.BitMatrix {
	bm := bitutil.NewBitMatrixWithSize(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, c := range row {
			if c == '1' {
				bm.Set(x, y)
			}
		}
	}
	return bm
}

// matrixWithDark returns a width x height matrix whose first dark modules,
// in row-major order, are set.
func matrixWithDark(width, height, dark int) *bitutil.BitMatrix {
	bm := bitutil.NewBitMatrixWithSize(width, height)
	for i := 0; i < dark; i++ {
		bm.Set(i%width, i/width)
	}
	return bm
}

func TestPenaltyRule1(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want int
	}{
		{"run of 4", []string{"0000101"}, 0},
		{"run of 5", []string{"0000010"}, 3},
		{"run of 7", []string{"1111111"}, 5},
		{"two runs", []string{"00000111111"}, 3 + 4},
		{"column", []string{"1", "1", "1", "1", "1", "1"}, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := applyMaskPenaltyRule1(matrixFromRows(c.rows...)); got != c.want {
				t.Errorf("rule 1 = %d, want %d", got, c.want)
			}
		})
	}
}

func TestPenaltyRule2(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want int
	}{
		{"checkerboard", []string{"010", "101", "010"}, 0},
		{"one block", []string{"110", "110", "001"}, 3},
		{"overlapping", []string{"000", "000", "000"}, 12},
		{"light and dark blocks", []string{"1100", "1100"}, 6},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := applyMaskPenaltyRule2(matrixFromRows(c.rows...)); got != c.want {
				t.Errorf("rule 2 = %d, want %d", got, c.want)
			}
		})
	}
}

func TestPenaltyRule3(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want int
	}{
		{"light after", []string{"10111010000"}, 40},
		{"light before", []string{"00001011101"}, 40},
		{"light both sides", []string{"000010111010000"}, 80},
		{"too little light", []string{"1011101000"}, 0},
		{"broken core", []string{"10110010000"}, 0},
		{"column", []string{"1", "0", "1", "1", "1", "0", "1", "0", "0", "0", "0"}, 40},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := applyMaskPenaltyRule3(matrixFromRows(c.rows...)); got != c.want {
				t.Errorf("rule 3 = %d, want %d", got, c.want)
			}
		})
	}
}

func TestPenaltyRule4(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		dark          int
		want          int
	}{
		{"balanced", 10, 10, 50, 0},
		{"all dark", 10, 10, 100, 100},
		{"all light", 10, 10, 0, 100},
		{"51 percent rounds to 50", 20, 10, 102, 0},
		{"54 percent rounds to 55", 20, 10, 108, 10},
		{"52.5 percent rounds away from 50", 20, 10, 105, 10},
		{"47.5 percent rounds away from 50", 20, 10, 95, 10},
		{"42.5 percent rounds away from 50", 20, 10, 85, 20},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := applyMaskPenaltyRule4(matrixWithDark(c.width, c.height, c.dark)); got != c.want {
				t.Errorf("rule 4 = %d, want %d", got, c.want)
			}
		})
	}
}

func TestCalculatePenalty(t *testing.T) {
	bm := matrixFromRows("1111111")
	p := CalculatePenalty(bm)
	want := Penalty{Rule1: 5, Rule2: 0, Rule3: 0, Rule4: 100}
	if p != want {
		t.Errorf("penalty = %+v, want %+v", p, want)
	}
	if p.Total() != 105 {
		t.Errorf("total = %d, want 105", p.Total())
	}
}
