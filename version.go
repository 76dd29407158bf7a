package qrcode

import (
	"fmt"
	"log/slog"
)

const (
	minVersion = 1
	maxVersion = 10
)

// blockGroup is a run of error correction blocks sharing the same number of
// data codewords.
type blockGroup struct {
	numBlocks        int
	numDataCodewords int
}

// qrCodeVersion describes the capacity of one (version, level) pair.
type qrCodeVersion struct {
	version int
	level   RecoveryLevel

	// Data plus error correction codewords in the symbol.
	totalCodewords int

	// Error correction codewords in each block; the same for every block.
	ecCodewordsPerBlock int

	// One or two groups. When there are two, the second group's blocks hold
	// one data codeword more than the first's.
	block []blockGroup
}

var versions = []qrCodeVersion{
	{1, Low, 26, 7, []blockGroup{{1, 19}}},
	{1, Medium, 26, 10, []blockGroup{{1, 16}}},
	{1, Quartile, 26, 13, []blockGroup{{1, 13}}},
	{1, High, 26, 17, []blockGroup{{1, 9}}},
	{2, Low, 44, 10, []blockGroup{{1, 34}}},
	{2, Medium, 44, 16, []blockGroup{{1, 28}}},
	{2, Quartile, 44, 22, []blockGroup{{1, 22}}},
	{2, High, 44, 28, []blockGroup{{1, 16}}},
	{3, Low, 70, 15, []blockGroup{{1, 55}}},
	{3, Medium, 70, 26, []blockGroup{{1, 44}}},
	{3, Quartile, 70, 18, []blockGroup{{2, 17}}},
	{3, High, 70, 22, []blockGroup{{2, 13}}},
	{4, Low, 100, 20, []blockGroup{{1, 80}}},
	{4, Medium, 100, 18, []blockGroup{{2, 32}}},
	{4, Quartile, 100, 26, []blockGroup{{2, 24}}},
	{4, High, 100, 16, []blockGroup{{4, 9}}},
	{5, Low, 134, 26, []blockGroup{{1, 108}}},
	{5, Medium, 134, 24, []blockGroup{{2, 43}}},
	{5, Quartile, 134, 18, []blockGroup{{2, 15}, {2, 16}}},
	{5, High, 134, 22, []blockGroup{{2, 11}, {2, 12}}},
	{6, Low, 172, 18, []blockGroup{{2, 68}}},
	{6, Medium, 172, 16, []blockGroup{{4, 27}}},
	{6, Quartile, 172, 24, []blockGroup{{4, 19}}},
	{6, High, 172, 28, []blockGroup{{4, 15}}},
	{7, Low, 196, 20, []blockGroup{{2, 78}}},
	{7, Medium, 196, 18, []blockGroup{{4, 31}}},
	{7, Quartile, 196, 18, []blockGroup{{2, 14}, {4, 15}}},
	{7, High, 196, 26, []blockGroup{{4, 13}, {1, 14}}},
	{8, Low, 242, 24, []blockGroup{{2, 97}}},
	{8, Medium, 242, 22, []blockGroup{{2, 38}, {2, 39}}},
	{8, Quartile, 242, 22, []blockGroup{{4, 18}, {2, 19}}},
	{8, High, 242, 26, []blockGroup{{4, 14}, {2, 15}}},
	{9, Low, 292, 30, []blockGroup{{2, 116}}},
	{9, Medium, 292, 22, []blockGroup{{3, 36}, {2, 37}}},
	{9, Quartile, 292, 20, []blockGroup{{4, 16}, {4, 17}}},
	{9, High, 292, 24, []blockGroup{{4, 12}, {4, 13}}},
	{10, Low, 346, 18, []blockGroup{{2, 68}, {2, 69}}},
	{10, Medium, 346, 26, []blockGroup{{4, 43}, {1, 44}}},
	{10, Quartile, 346, 24, []blockGroup{{6, 19}, {2, 20}}},
	{10, High, 346, 28, []blockGroup{{6, 15}, {2, 16}}},
}

// Alignment pattern centre coordinates, used as both rows and columns.
var alignmentPatternCenter = [][]int{
	{}, // Version 0 doesn't exist.
	{}, // Version 1 doesn't use alignment patterns.
	{6, 18},
	{6, 22},
	{6, 26},
	{6, 30},
	{6, 34},
	{6, 22, 38},
	{6, 24, 42},
	{6, 26, 46},
	{6, 28, 50},
}

// getQRCodeVersion returns the capacity entry for (level, version), or nil.
func getQRCodeVersion(level RecoveryLevel, version int) *qrCodeVersion {
	for i := range versions {
		if versions[i].level == level && versions[i].version == version {
			return &versions[i]
		}
	}

	return nil
}

// chooseQRCodeVersion returns the smallest version able to hold numDataBytes
// bytes of byte-mode data at level.
func chooseQRCodeVersion(level RecoveryLevel, numDataBytes int) (*qrCodeVersion, error) {
	for version := minVersion; version <= maxVersion; version++ {
		v := getQRCodeVersion(level, version)
		if v == nil {
			return nil, fmt.Errorf("%w: no capacity entry for version %d level %s",
				ErrInternal, version, level)
		}

		if v.numDataCodewords() >= numDataBytes+v.numHeaderBytes() {
			Logger().Debug("qrcode: version chosen",
				slog.Int("version", version), slog.String("level", level.String()),
				slog.Int("bytes", numDataBytes))

			return v, nil
		}
	}

	return nil, fmt.Errorf("%w: %d bytes at level %s (maximum version %d)",
		ErrCapacityExceeded, numDataBytes, level, maxVersion)
}

func (v qrCodeVersion) numBlocks() int {
	n := 0
	for _, b := range v.block {
		n += b.numBlocks
	}

	return n
}

// numDataCodewords returns the data capacity in bytes.
func (v qrCodeVersion) numDataCodewords() int {
	return v.totalCodewords - v.ecCodewordsPerBlock*v.numBlocks()
}

func (v qrCodeVersion) numDataBits() int {
	return v.numDataCodewords() * 8
}

// charCountBits returns the length of the byte mode character count field.
func (v qrCodeVersion) charCountBits() int {
	if v.version <= 9 {
		return 8
	}

	return 16
}

// numHeaderBytes returns the whole bytes taken by the mode indicator and the
// character count field.
func (v qrCodeVersion) numHeaderBytes() int {
	return (modeIndicatorBits + v.charCountBits() + 7) / 8
}

func (v qrCodeVersion) symbolSize() int {
	return 17 + v.version*4
}

// numRemainderBits returns the number of modules left over after placing
// every codeword.
func (v qrCodeVersion) numRemainderBits() int {
	if v.version >= 2 && v.version <= 6 {
		return 7
	}

	return 0
}

// versionFromSize returns the version of a symbol size*size modules wide.
func versionFromSize(size int) int {
	return (size - 17) / 4
}
