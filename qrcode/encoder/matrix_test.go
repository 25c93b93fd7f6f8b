package encoder

import (
	"errors"
	"strings"
	"testing"

	qrcodegen "github.com/nikhil4902/qrcodegen"
	"github.com/nikhil4902/qrcodegen/qrcode/decoder"
)

func remainderBits(version int) int {
	switch {
	case version == 1:
		return 0
	case version <= 6:
		return 7
	case version <= 13:
		return 0
	case version <= 20:
		return 3
	case version <= 27:
		return 4
	case version <= 34:
		return 3
	}
	return 0
}

func TestModuleSequenceLength(t *testing.T) {
	for number := 1; number <= 40; number++ {
		v := mustVersion(t, number)
		g, err := BuildFunctionPatterns(v)
		if err != nil {
			t.Fatalf("version %d: %v", number, err)
		}
		seq := ModuleSequence(g)
		size := v.Dimension()
		functionArea := v.BuildFunctionPattern().CountSet()
		if len(seq) != size*size-functionArea {
			t.Errorf("version %d: sequence has %d modules, want %d", number, len(seq), size*size-functionArea)
		}
		if want := 8*v.TotalCodewords + remainderBits(number); len(seq) != want {
			t.Errorf("version %d: sequence has %d modules, want %d", number, len(seq), want)
		}
		if g.CountUnset() != len(seq) {
			t.Errorf("version %d: %d unset cells, %d in sequence", number, g.CountUnset(), len(seq))
		}
	}
}

func TestModuleSequenceAvoidsFunctionPatterns(t *testing.T) {
	for _, number := range []int{1, 2, 7, 14, 40} {
		v := mustVersion(t, number)
		g, err := BuildFunctionPatterns(v)
		if err != nil {
			t.Fatalf("version %d: %v", number, err)
		}
		function := v.BuildFunctionPattern()
		seen := make(map[Coord]bool)
		for _, c := range ModuleSequence(g) {
			if function.Get(c.X, c.Y) {
				t.Fatalf("version %d: %v is a function module", number, c)
			}
			if c.X == 6 {
				t.Fatalf("version %d: %v is on the timing column", number, c)
			}
			if seen[c] {
				t.Fatalf("version %d: %v visited twice", number, c)
			}
			seen[c] = true
		}
	}
}

func TestModuleSequenceOrder(t *testing.T) {
	g, err := BuildFunctionPatterns(mustVersion(t, 1))
	if err != nil {
		t.Fatal(err)
	}
	seq := ModuleSequence(g)
	wantStart := []Coord{{20, 20}, {19, 20}, {20, 19}, {19, 19}}
	for i, want := range wantStart {
		if seq[i] != want {
			t.Errorf("seq[%d] = %v, want %v", i, seq[i], want)
		}
	}
	// The first pair climbs rows 20 to 9, then the next pair descends from row 9.
	if seq[23] != (Coord{19, 9}) || seq[24] != (Coord{18, 9}) {
		t.Errorf("seq[23:25] = %v, want [{19 9} {18 9}]", seq[23:25])
	}
	if last := seq[len(seq)-1]; last != (Coord{0, 12}) {
		t.Errorf("last = %v, want {0 12}", last)
	}
}

func TestFunctionPatterns(t *testing.T) {
	g, err := BuildFunctionPatterns(mustVersion(t, 2))
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		x, y int
		want Module
	}{
		{0, 0, Dark}, {1, 1, Light}, {3, 3, Dark}, {6, 6, Dark},
		{24, 0, Dark}, {0, 24, Dark}, {20, 4, Dark},
		{7, 0, Light}, {0, 7, Light}, {7, 7, Light}, {17, 7, Light}, {7, 17, Light},
		{8, 6, Dark}, {9, 6, Light}, {6, 9, Light}, {6, 10, Dark}, {16, 6, Dark},
		{8, 17, Dark},
		{18, 18, Dark}, {17, 18, Light}, {16, 18, Dark}, {16, 16, Dark}, {17, 17, Light},
		{8, 0, Light}, {0, 8, Light}, {8, 8, Light}, {24, 8, Light}, {8, 24, Light},
		{9, 9, Unset}, {24, 24, Unset},
	}
	for _, c := range cases {
		if got := g.Get(c.x, c.y); got != c.want {
			t.Errorf("(%d, %d) = %d, want %d", c.x, c.y, got, c.want)
		}
	}
}

func TestVersionInfoReadsBack(t *testing.T) {
	for _, number := range []int{7, 21, 40} {
		v := mustVersion(t, number)
		g, err := BuildFunctionPatterns(v)
		if err != nil {
			t.Fatal(err)
		}
		if err := Fill(g, ModuleSequence(g), nil); err != nil {
			t.Fatal(err)
		}
		bm, err := g.ToBitMatrix()
		if err != nil {
			t.Fatal(err)
		}
		parser, err := decoder.NewBitMatrixParser(bm)
		if err != nil {
			t.Fatal(err)
		}
		got, err := parser.ReadVersion()
		if err != nil {
			t.Fatalf("version %d: ReadVersion: %v", number, err)
		}
		if got.Number != number {
			t.Errorf("read version %d, want %d", got.Number, number)
		}
	}
}

func TestCannotDrawPattern(t *testing.T) {
	if err := drawFinderPattern(NewGrid(5), 0, 0); !errors.Is(err, qrcodegen.ErrCannotDrawPattern) {
		t.Errorf("finder err = %v, want ErrCannotDrawPattern", err)
	}
	if err := drawAlignmentPatterns(NewGrid(21), []int{6, 30}); !errors.Is(err, qrcodegen.ErrCannotDrawPattern) {
		t.Errorf("alignment err = %v, want ErrCannotDrawPattern", err)
	}
}

func TestFill(t *testing.T) {
	g, err := BuildFunctionPatterns(mustVersion(t, 1))
	if err != nil {
		t.Fatal(err)
	}
	seq := ModuleSequence(g)
	if err := Fill(g, seq, []byte{0xA5}); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	want := []Module{Dark, Light, Dark, Light, Light, Dark, Light, Dark, Light, Light}
	for i, m := range want {
		if got := g.Get(seq[i].X, seq[i].Y); got != m {
			t.Errorf("module %d at %v = %d, want %d", i, seq[i], got, m)
		}
	}
	if g.CountUnset() != 0 {
		t.Errorf("%d cells left unset", g.CountUnset())
	}

	if err := Fill(g, seq[:8], []byte{1, 2}); !errors.Is(err, qrcodegen.ErrDataTooLarge) {
		t.Errorf("err = %v, want ErrDataTooLarge", err)
	}
}

func TestToBitMatrixRejectsUnset(t *testing.T) {
	g := NewGrid(21)
	if _, err := g.ToBitMatrix(); !errors.Is(err, qrcodegen.ErrConfiguration) {
		t.Errorf("err = %v, want ErrConfiguration", err)
	}
}

func TestGridString(t *testing.T) {
	g := NewGrid(2)
	g.Set(0, 0, Dark)
	g.Set(1, 0, Light)
	if got, want := g.String(), "##  \n....\n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if !strings.Contains(g.String(), "..") {
		t.Error("unset cells should render as dots")
	}
}
