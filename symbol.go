package qrcode

import "strings"

// Module is the state of one cell of a QR Code symbol.
type Module uint8

const (
	// Unset is only seen while a symbol is under construction.
	Unset Module = iota
	Light
	Dark
)

func (m Module) String() string {
	switch m {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return "unset"
	}
}

// Matrix is a finished QR Code symbol: size*size modules, without quiet zone.
//
// A Matrix returned by Encode is never modified again and may be shared
// between goroutines.
type Matrix struct {
	version qrCodeVersion
	mask    int
	penalty int

	// Width/height of the symbol.
	size int

	// Value of module at [row*size+col].
	module []Module
}

func newMatrix(v qrCodeVersion) *Matrix {
	size := v.symbolSize()

	return &Matrix{
		version: v,
		mask:    -1,
		size:    size,
		module:  make([]Module, size*size),
	}
}

// Size returns the width (and height) of the symbol in modules.
func (m *Matrix) Size() int {
	return m.size
}

// Version returns the QR Code version, 1-10.
func (m *Matrix) Version() int {
	return m.version.version
}

func (m *Matrix) Level() RecoveryLevel {
	return m.version.level
}

// Mask returns the data mask pattern applied, 0-7.
func (m *Matrix) Mask() int {
	return m.mask
}

// Penalty returns the penalty score the mask was selected by.
func (m *Matrix) Penalty() int {
	return m.penalty
}

// At returns the module at (row, col).
func (m *Matrix) At(row, col int) Module {
	return m.module[row*m.size+col]
}

func (m *Matrix) IsDark(row, col int) bool {
	return m.At(row, col) == Dark
}

func (m *Matrix) set(row, col int, dark bool) {
	v := Light
	if dark {
		v = Dark
	}

	m.module[row*m.size+col] = v
}

// set2dPattern sets a 2D array of modules with its top left corner at
// (row, col).
func (m *Matrix) set2dPattern(row, col int, v [][]bool) {
	for j, r := range v {
		for i, value := range r {
			m.set(row+j, col+i, value)
		}
	}
}

// empty returns true if the module at (row, col) has not been set.
func (m *Matrix) empty(row, col int) bool {
	return m.At(row, col) == Unset
}

// numEmptyModules returns the number of modules still Unset.
func (m *Matrix) numEmptyModules() int {
	var count int

	for _, v := range m.module {
		if v == Unset {
			count++
		}
	}

	return count
}

func (m *Matrix) clone() *Matrix {
	c := *m
	c.module = make([]Module, len(m.module))
	copy(c.module, m.module)

	return &c
}

// Bitmap returns the symbol as [row][col] booleans, true for dark, surrounded
// by a light quiet zone quietZone modules wide.
func (m *Matrix) Bitmap(quietZone int) [][]bool {
	if quietZone < 0 {
		quietZone = 0
	}

	n := m.size + 2*quietZone

	bitmap := make([][]bool, n)
	for i := range bitmap {
		bitmap[i] = make([]bool, n)
	}

	for row := 0; row < m.size; row++ {
		for col := 0; col < m.size; col++ {
			bitmap[row+quietZone][col+quietZone] = m.IsDark(row, col)
		}
	}

	return bitmap
}

// String returns a pictorial representation of the symbol with a quiet zone
// of 4 modules, suitable for printing in a terminal with a dark background.
func (m *Matrix) String() string {
	var b strings.Builder

	for _, row := range m.Bitmap(4) {
		for _, dark := range row {
			if dark {
				b.WriteString("  ")
			} else {
				// Unicode 'FULL BLOCK' (U+2588).
				b.WriteString("██")
			}
		}

		b.WriteByte('\n')
	}

	return b.String()
}
