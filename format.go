package qrcode

const (
	formatInfoLengthBits  = 15
	versionInfoLengthBits = 18
)

// formatInfoTable holds the 15-bit format information, BCH(15,5) encoded and
// XORed with 0x5412, indexed by [level-1][mask].
var formatInfoTable = [4][8]uint16{
	// Low (level bits 01).
	{0x77c4, 0x72f3, 0x7daa, 0x789d, 0x662f, 0x6318, 0x6c41, 0x6976},
	// Medium (00).
	{0x5412, 0x5125, 0x5e7c, 0x5b4b, 0x45f9, 0x40ce, 0x4f97, 0x4aa0},
	// Quartile (11).
	{0x355f, 0x3068, 0x3f31, 0x3a06, 0x24b4, 0x2183, 0x2eda, 0x2bed},
	// High (10).
	{0x1689, 0x13be, 0x1ce7, 0x19d0, 0x0762, 0x0255, 0x0d0c, 0x083b},
}

// versionInfoTable holds the 18-bit BCH(18,6) version information of versions
// 7 and up.
var versionInfoTable = map[int]uint32{
	7:  0x07c94,
	8:  0x085bc,
	9:  0x09a99,
	10: 0x0a4d3,
}

func formatInfo(level RecoveryLevel, mask int) uint16 {
	return formatInfoTable[level-1][mask]
}

// versionInfo returns the version information bits, or false if version has
// none.
func versionInfo(version int) (uint32, bool) {
	v, ok := versionInfoTable[version]
	return v, ok
}

// writeFormatInfo writes both copies of the format information of (level,
// mask) into the reserved modules. Bit 0 is the least significant.
func (m *Matrix) writeFormatInfo(level RecoveryLevel, mask int) {
	fpSize := finderPatternSize
	f := formatInfo(level, mask)

	bit := func(i int) bool {
		return f>>uint(i)&1 != 0
	}

	// Bits 0-5, right of the top left finder pattern.
	for i := 0; i <= 5; i++ {
		m.set(i, fpSize+1, bit(i))
	}

	// Bits 6-8 on the corner of the top left finder pattern.
	m.set(fpSize, fpSize+1, bit(6))
	m.set(fpSize+1, fpSize+1, bit(7))
	m.set(fpSize+1, fpSize, bit(8))

	// Bits 9-14 on the underside of the top left finder pattern.
	for i := 9; i < formatInfoLengthBits; i++ {
		m.set(fpSize+1, 14-i, bit(i))
	}

	// Bits 0-7, under the top right finder pattern.
	for i := 0; i <= 7; i++ {
		m.set(fpSize+1, m.size-1-i, bit(i))
	}

	// Bits 8-14 on the right side of the bottom left finder pattern.
	for i := 8; i < formatInfoLengthBits; i++ {
		m.set(m.size-formatInfoLengthBits+i, fpSize+1, bit(i))
	}

	// Always dark module.
	m.set(m.size-fpSize-1, fpSize+1, true)
}
