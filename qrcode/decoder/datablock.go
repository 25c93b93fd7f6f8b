package decoder

import (
	"fmt"

	qrcodegen "github.com/nikhil4902/qrcodegen"
)

// DataBlock is one Reed-Solomon block: its data codewords followed by its
// error correction codewords.
type DataBlock struct {
	NumDataCodewords int
	Codewords        []byte
}

// SplitDataBlocks undoes the column interleaving of rawCodewords for the
// block structure of version at ecLevel. Blocks of the second group carry
// one more data codeword than those of the first.
func SplitDataBlocks(rawCodewords []byte, version *Version, ecLevel ErrorCorrectionLevel) ([]DataBlock, error) {
	if len(rawCodewords) != version.TotalCodewords {
		return nil, fmt.Errorf("%w: %d codewords for version %d, want %d",
			qrcodegen.ErrFormat, len(rawCodewords), version.Number, version.TotalCodewords)
	}
	ecBlocks := version.ECBlocksForLevel(ecLevel)

	result := make([]DataBlock, 0, ecBlocks.NumBlocks())
	for _, block := range ecBlocks.Blocks {
		for i := 0; i < block.Count; i++ {
			result = append(result, DataBlock{
				NumDataCodewords: block.DataCodewords,
				Codewords:        make([]byte, ecBlocks.ECCodewordsPerBlock+block.DataCodewords),
			})
		}
	}
	numBlocks := len(result)

	shorterBlocksTotalCodewords := len(result[0].Codewords)
	longerBlocksStartAt := numBlocks - 1
	for longerBlocksStartAt >= 0 && len(result[longerBlocksStartAt].Codewords) != shorterBlocksTotalCodewords {
		longerBlocksStartAt--
	}
	longerBlocksStartAt++

	shorterBlocksNumDataCodewords := shorterBlocksTotalCodewords - ecBlocks.ECCodewordsPerBlock

	offset := 0
	for i := 0; i < shorterBlocksNumDataCodewords; i++ {
		for j := 0; j < numBlocks; j++ {
			result[j].Codewords[i] = rawCodewords[offset]
			offset++
		}
	}
	for j := longerBlocksStartAt; j < numBlocks; j++ {
		result[j].Codewords[shorterBlocksNumDataCodewords] = rawCodewords[offset]
		offset++
	}
	for i := shorterBlocksNumDataCodewords; i < shorterBlocksTotalCodewords; i++ {
		for j := 0; j < numBlocks; j++ {
			iOffset := i
			if j >= longerBlocksStartAt {
				iOffset++
			}
			result[j].Codewords[iOffset] = rawCodewords[offset]
			offset++
		}
	}

	return result, nil
}
