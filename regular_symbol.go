package qrcode

import "fmt"

type regularSymbol struct {
	version qrCodeVersion

	matrix *Matrix
	size   int
}

// Abbreviated true/false.
const (
	b0 = false
	b1 = true
)

var (
	finderPattern = [][]bool{
		{b1, b1, b1, b1, b1, b1, b1},
		{b1, b0, b0, b0, b0, b0, b1},
		{b1, b0, b1, b1, b1, b0, b1},
		{b1, b0, b1, b1, b1, b0, b1},
		{b1, b0, b1, b1, b1, b0, b1},
		{b1, b0, b0, b0, b0, b0, b1},
		{b1, b1, b1, b1, b1, b1, b1},
	}

	finderPatternSize = 7

	finderPatternHorizontalBorder = [][]bool{
		{b0, b0, b0, b0, b0, b0, b0, b0},
	}

	finderPatternVerticalBorder = [][]bool{
		{b0},
		{b0},
		{b0},
		{b0},
		{b0},
		{b0},
		{b0},
		{b0},
	}

	alignmentPattern = [][]bool{
		{b1, b1, b1, b1, b1},
		{b1, b0, b0, b0, b1},
		{b1, b0, b1, b0, b1},
		{b1, b0, b0, b0, b1},
		{b1, b1, b1, b1, b1},
	}
)

// buildRegularSymbol lays out the function patterns of version and fills the
// remaining modules with codewords. The result is unmasked and its format
// information area is reserved but light.
func buildRegularSymbol(version qrCodeVersion, codewords []byte) (*Matrix, error) {
	m := &regularSymbol{
		version: version,
		matrix:  newMatrix(version),
		size:    version.symbolSize(),
	}

	m.addFinderPatterns()
	m.addAlignmentPatterns()
	m.addTimingPatterns()
	m.reserveFormatInfo()
	m.addVersionInfo()

	if err := m.addData(codewords); err != nil {
		return nil, err
	}

	if n := m.matrix.numEmptyModules(); n != 0 {
		return nil, fmt.Errorf("%w: numEmptyModules is %d (expected 0) (version=%d)",
			ErrInternal, n, version.version)
	}

	return m.matrix, nil
}

func (m *regularSymbol) addFinderPatterns() {
	fpSize := finderPatternSize
	fp := finderPattern
	fpHBorder := finderPatternHorizontalBorder
	fpVBorder := finderPatternVerticalBorder

	// Top left Finder Pattern.
	m.matrix.set2dPattern(0, 0, fp)
	m.matrix.set2dPattern(fpSize, 0, fpHBorder)
	m.matrix.set2dPattern(0, fpSize, fpVBorder)

	// Top right Finder Pattern.
	m.matrix.set2dPattern(0, m.size-fpSize, fp)
	m.matrix.set2dPattern(fpSize, m.size-fpSize-1, fpHBorder)
	m.matrix.set2dPattern(0, m.size-fpSize-1, fpVBorder)

	// Bottom left Finder Pattern.
	m.matrix.set2dPattern(m.size-fpSize, 0, fp)
	m.matrix.set2dPattern(m.size-fpSize-1, 0, fpHBorder)
	m.matrix.set2dPattern(m.size-fpSize-1, fpSize, fpVBorder)
}

// addAlignmentPatterns must run after addFinderPatterns: centres inside a
// finder pattern are skipped.
func (m *regularSymbol) addAlignmentPatterns() {
	for _, row := range alignmentPatternCenter[m.version.version] {
		for _, col := range alignmentPatternCenter[m.version.version] {
			if !m.matrix.empty(row, col) {
				continue
			}

			m.matrix.set2dPattern(row-2, col-2, alignmentPattern)
		}
	}
}

func (m *regularSymbol) addTimingPatterns() {
	for i := finderPatternSize + 1; i < m.size-finderPatternSize-1; i++ {
		m.matrix.set(finderPatternSize-1, i, i%2 == 0)
		m.matrix.set(i, finderPatternSize-1, i%2 == 0)
	}
}

// reserveFormatInfo marks the format information modules light. They are
// written by writeFormatInfo once the mask is chosen.
func (m *regularSymbol) reserveFormatInfo() {
	fpSize := finderPatternSize

	for i := 0; i <= fpSize+1; i++ {
		if i == fpSize-1 {
			continue
		}

		m.matrix.set(fpSize+1, i, false)
		m.matrix.set(i, fpSize+1, false)
	}

	for i := 0; i <= fpSize; i++ {
		m.matrix.set(fpSize+1, m.size-1-i, false)
	}

	for i := 0; i < fpSize; i++ {
		m.matrix.set(m.size-1-i, fpSize+1, false)
	}

	// Always dark module.
	m.matrix.set(m.size-fpSize-1, fpSize+1, true)
}

func (m *regularSymbol) addVersionInfo() {
	v, ok := versionInfo(m.version.version)
	if !ok {
		return
	}

	for i := 0; i < versionInfoLengthBits; i++ {
		bit := v>>uint(i)&1 != 0
		a := m.size - finderPatternSize - 4 + i%3
		b := i / 3

		// Left of the top right finder pattern.
		m.matrix.set(b, a, bit)

		// Above the bottom left finder pattern.
		m.matrix.set(a, b, bit)
	}
}

// addData places codewords, most significant bit first, along the zig-zag
// path: two-module-wide columns from the right edge, alternately upwards and
// downwards, skipping the vertical timing pattern and every module already
// set. Modules left once the codewords run out are remainder bits, set light.
func (m *regularSymbol) addData(codewords []byte) error {
	numBits := len(codewords) * 8
	i := 0
	numRemainderBits := 0
	up := true

	for right := m.size - 1; right >= 1; right -= 2 {
		// Skip over the vertical timing pattern entirely.
		if right == finderPatternSize-1 {
			right--
		}

		for vert := 0; vert < m.size; vert++ {
			row := vert
			if up {
				row = m.size - 1 - vert
			}

			for j := 0; j < 2; j++ {
				col := right - j

				if !m.matrix.empty(row, col) {
					continue
				}

				if i < numBits {
					m.matrix.set(row, col, codewords[i/8]&(0x80>>uint(i%8)) != 0)
					i++
				} else {
					m.matrix.set(row, col, false)
					numRemainderBits++
				}
			}
		}

		up = !up
	}

	if i != numBits {
		return fmt.Errorf("%w: placed %d of %d data bits (version=%d)",
			ErrInternal, i, numBits, m.version.version)
	}

	if numRemainderBits != m.version.numRemainderBits() {
		return fmt.Errorf("%w: %d remainder bits, expected %d (version=%d)",
			ErrInternal, numRemainderBits, m.version.numRemainderBits(), m.version.version)
	}

	return nil
}

// isReserved reports whether (row, col) of a size*size symbol belongs to a
// function pattern: finder patterns and separators, timing patterns, format
// and version information, the dark module or an alignment pattern. Reserved
// modules are never masked and never carry codewords.
func isReserved(row, col, size int) bool {
	version := versionFromSize(size)
	fpSize := finderPatternSize

	switch {
	case row <= fpSize+1 && col <= fpSize+1:
		return true
	case row <= fpSize+1 && col >= size-fpSize-1:
		return true
	case row >= size-fpSize-1 && col <= fpSize+1:
		return true
	case row == fpSize-1 || col == fpSize-1:
		return true
	case version >= 7 && row < 6 && col >= size-fpSize-4 && col < size-fpSize-1:
		return true
	case version >= 7 && col < 6 && row >= size-fpSize-4 && row < size-fpSize-1:
		return true
	}

	return inAlignmentPattern(row, col, version)
}

func inAlignmentPattern(row, col, version int) bool {
	if version < minVersion || version >= len(alignmentPatternCenter) {
		return false
	}

	centers := alignmentPatternCenter[version]
	if len(centers) == 0 {
		return false
	}

	first, last := centers[0], centers[len(centers)-1]

	for _, r := range centers {
		for _, c := range centers {
			// These overlap the finder patterns.
			if r == first && (c == first || c == last) || r == last && c == first {
				continue
			}

			if abs(row-r) <= 2 && abs(col-c) <= 2 {
				return true
			}
		}
	}

	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
