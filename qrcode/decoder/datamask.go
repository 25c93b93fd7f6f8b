package decoder

import "github.com/nikhil4902/qrcodegen/bitutil"

// NumMaskPatterns is the number of data mask patterns.
const NumMaskPatterns = 8

// DataMaskFunc reports whether the module at row i, column j is inverted.
type DataMaskFunc func(i, j int) bool

// DataMasks holds the eight mask predicates, indexed by mask id.
var DataMasks = [NumMaskPatterns]DataMaskFunc{
	func(i, j int) bool { return (i+j)%2 == 0 },
	func(i, j int) bool { return i%2 == 0 },
	func(i, j int) bool { return j%3 == 0 },
	func(i, j int) bool { return (i+j)%3 == 0 },
	func(i, j int) bool { return (i/2+j/3)%2 == 0 },
	func(i, j int) bool { return (i*j)%2+(i*j)%3 == 0 },
	func(i, j int) bool { return ((i*j)%2+(i*j)%3)%2 == 0 },
	func(i, j int) bool { return ((i+j)%2+(i*j)%3)%2 == 0 },
}

// UnmaskBitMatrix flips every module outside functionPattern that mask
// maskIndex selects. Applying it twice restores the matrix.
func UnmaskBitMatrix(bits, functionPattern *bitutil.BitMatrix, maskIndex int) {
	mask := DataMasks[maskIndex]
	for y := 0; y < bits.Height(); y++ {
		for x := 0; x < bits.Width(); x++ {
			if !functionPattern.Get(x, y) && mask(y, x) {
				bits.Flip(x, y)
			}
		}
	}
}
