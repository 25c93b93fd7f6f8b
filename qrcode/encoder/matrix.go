package encoder

import (
	"fmt"
	"strings"

	qrcodegen "github.com/nikhil4902/qrcodegen"
	"github.com/nikhil4902/qrcodegen/bitutil"
	"github.com/nikhil4902/qrcodegen/qrcode/decoder"
)

// Module is the state of one grid cell during construction.
type Module uint8

const (
	Light Module = iota
	Dark
	Unset
)

// Coord addresses a module by column X and row Y.
type Coord struct {
	X, Y int
}

// Grid is a square of modules. Cells start Unset; function patterns and
// then data fill them in.
type Grid struct {
	size  int
	cells []Module
}

// NewGrid returns a size x size grid with every cell Unset.
func NewGrid(size int) *Grid {
	cells := make([]Module, size*size)
	for i := range cells {
		cells[i] = Unset
	}
	return &Grid{size: size, cells: cells}
}

// Size returns the number of modules on a side.
func (g *Grid) Size() int { return g.size }

// Get returns the module at (x, y).
func (g *Grid) Get(x, y int) Module { return g.cells[y*g.size+x] }

// Set sets the module at (x, y).
func (g *Grid) Set(x, y int, m Module) { g.cells[y*g.size+x] = m }

func (g *Grid) setBool(x, y int, dark bool) {
	if dark {
		g.Set(x, y, Dark)
	} else {
		g.Set(x, y, Light)
	}
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.size && y < g.size
}

// CountUnset returns the number of cells not yet assigned.
func (g *Grid) CountUnset() int {
	n := 0
	for _, m := range g.cells {
		if m == Unset {
			n++
		}
	}
	return n
}

// ToBitMatrix narrows the grid to dark and light. It fails if any cell is
// still Unset.
func (g *Grid) ToBitMatrix() (*bitutil.BitMatrix, error) {
	bm := bitutil.NewBitMatrix(g.size)
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			switch g.Get(x, y) {
			case Dark:
				bm.Set(x, y)
			case Unset:
				return nil, fmt.Errorf("%w: module (%d, %d) left unset", qrcodegen.ErrConfiguration, x, y)
			}
		}
	}
	return bm, nil
}

// String renders dark as "##", light as "  " and unset as "..".
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			switch g.Get(x, y) {
			case Dark:
				sb.WriteString("##")
			case Light:
				sb.WriteString("  ")
			default:
				sb.WriteString("..")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

var finderPattern = [7][7]Module{
	{1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 0, 0, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 0, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 1, 1},
}

var alignmentPattern = [5][5]Module{
	{1, 1, 1, 1, 1},
	{1, 0, 0, 0, 1},
	{1, 0, 1, 0, 1},
	{1, 0, 0, 0, 1},
	{1, 1, 1, 1, 1},
}

// formatInfoCoordinates holds the first copy of the format information,
// bit 0 first, around the top-left finder.
var formatInfoCoordinates = [15]Coord{
	{8, 0}, {8, 1}, {8, 2}, {8, 3}, {8, 4}, {8, 5}, {8, 7}, {8, 8},
	{7, 8}, {5, 8}, {4, 8}, {3, 8}, {2, 8}, {1, 8}, {0, 8},
}

// secondFormatInfoCoordinate returns where bit i of the second copy goes:
// below the top-right finder for bits 0-7, beside the bottom-left finder
// for bits 8-14.
func secondFormatInfoCoordinate(size, i int) Coord {
	if i < 8 {
		return Coord{size - 1 - i, 8}
	}
	return Coord{8, size - 7 + (i - 8)}
}

// BuildFunctionPatterns allocates the grid for version and draws every
// module that does not carry data. The format areas are reserved as light;
// the mask step writes their final value. Everything left Unset is data.
func BuildFunctionPatterns(version *decoder.Version) (*Grid, error) {
	g := NewGrid(version.Dimension())
	size := g.size

	for _, c := range [3]Coord{{0, 0}, {size - 7, 0}, {0, size - 7}} {
		if err := drawFinderPattern(g, c.X, c.Y); err != nil {
			return nil, err
		}
	}
	drawSeparators(g)
	drawTimingPatterns(g)
	g.Set(8, size-8, Dark)
	if err := drawAlignmentPatterns(g, version.AlignmentPatternCenters); err != nil {
		return nil, err
	}
	reserveFormatArea(g)
	drawVersionInfo(g, version.Number)
	return g, nil
}

func drawFinderPattern(g *Grid, xStart, yStart int) error {
	if !g.inBounds(xStart, yStart) || !g.inBounds(xStart+6, yStart+6) {
		return fmt.Errorf("%w: finder pattern at (%d, %d) in a %dx%d grid",
			qrcodegen.ErrCannotDrawPattern, xStart, yStart, g.size, g.size)
	}
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			g.Set(xStart+x, yStart+y, finderPattern[y][x])
		}
	}
	return nil
}

// drawSeparators draws the light border on the inner sides of each finder.
func drawSeparators(g *Grid) {
	size := g.size
	for i := 0; i < 8; i++ {
		// Top left.
		g.Set(i, 7, Light)
		g.Set(7, i, Light)
		// Top right.
		g.Set(size-8+i, 7, Light)
		g.Set(size-8, i, Light)
		// Bottom left.
		g.Set(i, size-8, Light)
		g.Set(7, size-8+i, Light)
	}
}

// drawTimingPatterns draws row 6 and column 6 between the separators, dark
// at even indices.
func drawTimingPatterns(g *Grid) {
	for i := 8; i < g.size-8; i++ {
		g.setBool(i, 6, i%2 == 0)
		g.setBool(6, i, i%2 == 0)
	}
}

// drawAlignmentPatterns places a 5x5 pattern at every pair of centers
// except the three that would overlap a finder.
func drawAlignmentPatterns(g *Grid, centers []int) error {
	size := g.size
	for _, r := range centers {
		for _, c := range centers {
			if (r-2 <= 7 && c-2 <= 7) || (r-2 <= 7 && c+2 >= size-7) || (r+2 >= size-7 && c-2 <= 7) {
				continue
			}
			if !g.inBounds(c-2, r-2) || !g.inBounds(c+2, r+2) {
				return fmt.Errorf("%w: alignment pattern at (%d, %d) in a %dx%d grid",
					qrcodegen.ErrCannotDrawPattern, c, r, size, size)
			}
			for y := 0; y < 5; y++ {
				for x := 0; x < 5; x++ {
					g.Set(c-2+x, r-2+y, alignmentPattern[y][x])
				}
			}
		}
	}
	return nil
}

func reserveFormatArea(g *Grid) {
	for i, c := range formatInfoCoordinates {
		g.Set(c.X, c.Y, Light)
		second := secondFormatInfoCoordinate(g.size, i)
		g.Set(second.X, second.Y, Light)
	}
}

// drawVersionInfo writes the 18-bit version word into the 6x3 blocks beside
// the top-right and bottom-left finders, for versions 7 and up.
func drawVersionInfo(g *Grid, version int) {
	if version < 7 {
		return
	}
	versionInfoBits := VersionInfoBits(version)
	bitIndex := 0
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			dark := (versionInfoBits>>uint(bitIndex))&1 == 1
			bitIndex++
			g.setBool(i, g.size-11+j, dark)
			g.setBool(g.size-11+j, i, dark)
		}
	}
}

// ModuleSequence lists the Unset cells of g in placement order. Column pairs
// are walked from the right edge, upward first and alternating direction;
// the pair that would include the vertical timing column shifts left by one.
// Within a pair the right column comes first.
func ModuleSequence(g *Grid) []Coord {
	size := g.size
	seq := make([]Coord, 0, g.CountUnset())
	upward := true
	for right := size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		for count := 0; count < size; count++ {
			y := count
			if upward {
				y = size - 1 - count
			}
			for col := 0; col < 2; col++ {
				x := right - col
				if g.Get(x, y) == Unset {
					seq = append(seq, Coord{x, y})
				}
			}
		}
		upward = !upward
	}
	return seq
}

// Fill writes codewords into seq, most significant bit first, and pads the
// remaining coordinates with light modules.
func Fill(g *Grid, seq []Coord, codewords []byte) error {
	if 8*len(codewords) > len(seq) {
		return fmt.Errorf("%w: %d codewords need %d modules, %d available",
			qrcodegen.ErrDataTooLarge, len(codewords), 8*len(codewords), len(seq))
	}
	for k, c := range seq {
		dark := false
		if k < 8*len(codewords) {
			dark = codewords[k/8]>>uint(7-k%8)&1 == 1
		}
		g.setBool(c.X, c.Y, dark)
	}
	return nil
}
