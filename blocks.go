package qrcode

import (
	"fmt"

	"github.com/storelink/qrcode/internal/reedsolomon"
)

// dataBlock is one Reed-Solomon block: its data codewords and their error
// correction codewords.
type dataBlock struct {
	data []byte
	ec   []byte
}

// splitBlocks splits data into the version's block structure and computes the
// error correction codewords of every block.
func splitBlocks(v qrCodeVersion, data []byte) ([]dataBlock, error) {
	if len(data) != v.numDataCodewords() {
		return nil, fmt.Errorf("%w: %d data codewords, version %d-%s expects %d",
			ErrInternal, len(data), v.version, v.level, v.numDataCodewords())
	}

	generator := reedsolomon.NewGenerator(v.ecCodewordsPerBlock)

	blocks := make([]dataBlock, 0, v.numBlocks())

	start := 0

	for _, g := range v.block {
		for j := 0; j < g.numBlocks; j++ {
			end := start + g.numDataCodewords

			blocks = append(blocks, dataBlock{
				data: data[start:end],
				ec:   generator.Remainder(data[start:end]),
			})

			start = end
		}
	}

	return blocks, nil
}

// interleaveBlocks returns the final codeword sequence: the i-th data codeword
// of every block in turn, then the i-th error correction codeword of every
// block in turn. Shorter blocks are skipped once exhausted.
func interleaveBlocks(blocks []dataBlock) []byte {
	var result []byte

	// Combine data blocks.
	working := true

	for i := 0; working; i++ {
		working = false

		for _, b := range blocks {
			if i >= len(b.data) {
				continue
			}

			result = append(result, b.data[i])
			working = true
		}
	}

	// Combine error correction blocks.
	working = true

	for i := 0; working; i++ {
		working = false

		for _, b := range blocks {
			if i >= len(b.ec) {
				continue
			}

			result = append(result, b.ec[i])
			working = true
		}
	}

	return result
}

// encodeBlocks applies error correction to data and interleaves the result.
func encodeBlocks(v qrCodeVersion, data []byte) ([]byte, error) {
	blocks, err := splitBlocks(v, data)
	if err != nil {
		return nil, err
	}

	result := interleaveBlocks(blocks)

	if len(result) != v.totalCodewords {
		return nil, fmt.Errorf("%w: %d codewords, expected %d", ErrInternal, len(result), v.totalCodewords)
	}

	return result, nil
}
