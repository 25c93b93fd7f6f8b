package encoder

import (
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/nikhil4902/qrcodegen/bitutil"
	"github.com/nikhil4902/qrcodegen/qrcode/decoder"
)

const (
	formatInfoPoly  = 0x537
	versionInfoPoly = 0x1f25
)

// FormatInfoBits returns the 15-bit format word for ecLevel and mask: the
// level indicator and mask id, 10 BCH check bits, XORed with the format mask.
func FormatInfoBits(ecLevel decoder.ErrorCorrectionLevel, mask int) int {
	formatInfo := (ecLevel.Bits() << 3) | mask
	return ((formatInfo << 10) | calculateBCHCode(formatInfo, formatInfoPoly)) ^ decoder.FormatInfoMask
}

// VersionInfoBits returns the 18-bit version word: the 6-bit version number
// followed by 12 BCH check bits.
func VersionInfoBits(version int) int {
	return (version << 12) | calculateBCHCode(version, versionInfoPoly)
}

// calculateBCHCode returns the remainder of value shifted past the degree of
// poly, divided by poly over GF(2).
func calculateBCHCode(value, poly int) int {
	msbSetInPoly := findMSBSet(poly)
	value <<= uint(msbSetInPoly - 1)
	for findMSBSet(value) >= msbSetInPoly {
		value ^= poly << uint(findMSBSet(value)-msbSetInPoly)
	}
	return value
}

func findMSBSet(value int) int {
	count := 0
	for value != 0 {
		value >>= 1
		count++
	}
	return count
}

// Masker applies data masks to a symbol whose function patterns and data
// are in place. The sequence limits masking to data modules.
type Masker struct {
	matrix   *bitutil.BitMatrix
	sequence []Coord
	ecLevel  decoder.ErrorCorrectionLevel
}

// NewMasker returns a Masker for the unmasked matrix. matrix is not modified.
func NewMasker(matrix *bitutil.BitMatrix, sequence []Coord, ecLevel decoder.ErrorCorrectionLevel) *Masker {
	return &Masker{matrix: matrix, sequence: sequence, ecLevel: ecLevel}
}

// ApplyMask returns a copy of the matrix with mask applied to every sequence
// coordinate and the format information for mask written in both places.
func (m *Masker) ApplyMask(mask int) *bitutil.BitMatrix {
	masked := m.matrix.Clone()
	predicate := decoder.DataMasks[mask]
	for _, c := range m.sequence {
		if predicate(c.Y, c.X) {
			masked.Flip(c.X, c.Y)
		}
	}

	formatBits := FormatInfoBits(m.ecLevel, mask)
	size := masked.Width()
	for i, c := range formatInfoCoordinates {
		dark := (formatBits>>uint(i))&1 == 1
		masked.SetBool(c.X, c.Y, dark)
		second := secondFormatInfoCoordinate(size, i)
		masked.SetBool(second.X, second.Y, dark)
	}
	return masked
}

// SelectBestMask scores all eight masks and returns the id with the lowest
// penalty, the lowest id winning ties, together with the matrix masked by it.
// Candidates are scored concurrently; the winner is chosen afterwards in id
// order.
func (m *Masker) SelectBestMask() (int, *bitutil.BitMatrix) {
	var penalties [decoder.NumMaskPatterns]Penalty
	var g errgroup.Group
	for mask := 0; mask < decoder.NumMaskPatterns; mask++ {
		mask := mask
		g.Go(func() error {
			penalties[mask] = CalculatePenalty(m.ApplyMask(mask))
			return nil
		})
	}
	// Scoring cannot fail.
	_ = g.Wait()

	best := 0
	for mask, p := range penalties {
		log.WithFields(log.Fields{
			"mask":  mask,
			"rule1": p.Rule1,
			"rule2": p.Rule2,
			"rule3": p.Rule3,
			"rule4": p.Rule4,
			"total": p.Total(),
		}).Debug("mask penalty")
		if p.Total() < penalties[best].Total() {
			best = mask
		}
	}
	return best, m.ApplyMask(best)
}
