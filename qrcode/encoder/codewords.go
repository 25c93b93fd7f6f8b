package encoder

import (
	"fmt"

	qrcodegen "github.com/nikhil4902/qrcodegen"
	"github.com/nikhil4902/qrcodegen/qrcode/decoder"
	"github.com/nikhil4902/qrcodegen/reedsolomon"
)

var rsEncoder = reedsolomon.NewEncoder(reedsolomon.QRCodeField256)

type blockPair struct {
	dataBytes []byte
	ecBytes   []byte
}

// InterleaveWithECBytes splits dataBytes into the Reed-Solomon blocks of
// version at ecLevel, computes each block's error correction codewords, and
// returns data then EC codewords interleaved column by column. A single
// block yields dataBytes followed by its EC codewords.
func InterleaveWithECBytes(dataBytes []byte, version *decoder.Version, ecLevel decoder.ErrorCorrectionLevel) ([]byte, error) {
	numDataBytes := version.DataCodewords(ecLevel)
	if len(dataBytes) != numDataBytes {
		return nil, fmt.Errorf("%w: %d data codewords for %d-%s, want %d",
			qrcodegen.ErrConfiguration, len(dataBytes), version.Number, ecLevel, numDataBytes)
	}
	numTotalBytes := version.TotalCodewords
	numRSBlocks := version.ECBlocksForLevel(ecLevel).NumBlocks()

	blocks := make([]blockPair, numRSBlocks)
	dataBytesOffset := 0
	maxNumDataBytes := 0
	maxNumEcBytes := 0
	for i := range blocks {
		numDataBytesInBlock, numEcBytesInBlock := numDataAndECBytesForBlockID(numTotalBytes, numDataBytes, numRSBlocks, i)
		data := dataBytes[dataBytesOffset : dataBytesOffset+numDataBytesInBlock]
		ec, err := rsEncoder.ErrorCorrectionCodewords(data, numDataBytesInBlock+numEcBytesInBlock)
		if err != nil {
			return nil, err
		}
		blocks[i] = blockPair{dataBytes: data, ecBytes: ec}
		maxNumDataBytes = max(maxNumDataBytes, numDataBytesInBlock)
		maxNumEcBytes = max(maxNumEcBytes, numEcBytesInBlock)
		dataBytesOffset += numDataBytesInBlock
	}

	result := make([]byte, 0, numTotalBytes)
	for i := 0; i < maxNumDataBytes; i++ {
		for _, block := range blocks {
			if i < len(block.dataBytes) {
				result = append(result, block.dataBytes[i])
			}
		}
	}
	for i := 0; i < maxNumEcBytes; i++ {
		for _, block := range blocks {
			if i < len(block.ecBytes) {
				result = append(result, block.ecBytes[i])
			}
		}
	}

	if len(result) != numTotalBytes {
		return nil, fmt.Errorf("%w: interleaved %d codewords, want %d", qrcodegen.ErrConfiguration, len(result), numTotalBytes)
	}
	return result, nil
}

// numDataAndECBytesForBlockID returns the data and EC codeword counts of
// block blockID. Blocks in the second group are one data codeword longer.
func numDataAndECBytesForBlockID(numTotalBytes, numDataBytes, numRSBlocks, blockID int) (int, int) {
	numRsBlocksInGroup2 := numTotalBytes % numRSBlocks
	numRsBlocksInGroup1 := numRSBlocks - numRsBlocksInGroup2
	numTotalBytesInGroup1 := numTotalBytes / numRSBlocks
	numDataBytesInGroup1 := numDataBytes / numRSBlocks
	numEcBytesInGroup1 := numTotalBytesInGroup1 - numDataBytesInGroup1

	if blockID < numRsBlocksInGroup1 {
		return numDataBytesInGroup1, numEcBytesInGroup1
	}
	// Group 2 has one more total byte and one more data byte, so the same EC count.
	return numDataBytesInGroup1 + 1, numEcBytesInGroup1
}
