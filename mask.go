package qrcode

import (
	"fmt"
	"log/slog"
)

const numMasks = 8

// maskFuncs[i](row, col) reports whether mask pattern i inverts the module at
// (row, col).
var maskFuncs = [numMasks]func(row, col int) bool{
	func(row, col int) bool { return (row+col)%2 == 0 },
	func(row, col int) bool { return row%2 == 0 },
	func(row, col int) bool { return col%3 == 0 },
	func(row, col int) bool { return (row+col)%3 == 0 },
	func(row, col int) bool { return (row/2+col/3)%2 == 0 },
	func(row, col int) bool { return (row*col)%2+(row*col)%3 == 0 },
	func(row, col int) bool { return ((row*col)%2+(row*col)%3)%2 == 0 },
	func(row, col int) bool { return ((row+col)%2+(row*col)%3)%2 == 0 },
}

// Constants used to weight penalty calculations.
const (
	penaltyWeight1 = 3
	penaltyWeight2 = 3
	penaltyWeight4 = 10
)

// applyMask returns a copy of m with mask pattern mask applied to every
// module outside the function patterns.
func applyMask(m *Matrix, mask int) *Matrix {
	result := m.clone()
	result.mask = mask

	f := maskFuncs[mask]

	for row := 0; row < m.size; row++ {
		for col := 0; col < m.size; col++ {
			if isReserved(row, col, m.size) || !f(row, col) {
				continue
			}

			result.set(row, col, !m.IsDark(row, col))
		}
	}

	result.penalty = result.penaltyScore()

	return result
}

// maskCandidates returns the unmasked symbol m under each of the 8 masks,
// indexed by mask, with their penalty scores computed.
func maskCandidates(m *Matrix) []*Matrix {
	candidates := make([]*Matrix, numMasks)

	for mask := range candidates {
		candidates[mask] = applyMask(m, mask)
	}

	return candidates
}

// selectMask masks m with the pattern of lowest penalty score, the lowest
// index winning ties, and writes the format information.
func selectMask(m *Matrix) (*Matrix, error) {
	var best *Matrix

	for _, c := range maskCandidates(m) {
		Logger().Debug("qrcode: mask candidate",
			slog.Int("mask", c.mask), slog.Int("penalty", c.penalty))

		if best == nil || c.penalty < best.penalty {
			best = c
		}
	}

	if best == nil {
		return nil, fmt.Errorf("%w: no mask candidate", ErrInternal)
	}

	best.writeFormatInfo(best.version.level, best.mask)

	if n := best.numEmptyModules(); n != 0 {
		return nil, fmt.Errorf("%w: numEmptyModules is %d after masking", ErrInternal, n)
	}

	Logger().Debug("qrcode: mask chosen",
		slog.Int("version", best.version.version), slog.Int("mask", best.mask),
		slog.Int("penalty", best.penalty))

	return best, nil
}

// penaltyScore returns the penalty score of the symbol: the sum of the run,
// block and balance penalties. The finder-like pattern penalty of ISO/IEC
// 18004 is not scored.
func (m *Matrix) penaltyScore() int {
	return m.penalty1() + m.penalty2() + m.penalty4()
}

// penalty1 returns the penalty score for "adjacent modules in row/column with
// same colour".
//
// Each run of 5 or more: score = penaltyWeight1 + (runLength - 5).
func (m *Matrix) penalty1() int {
	penalty := 0

	for i := 0; i < m.size; i++ {
		penalty += m.runPenalty(func(j int) Module { return m.At(i, j) })
		penalty += m.runPenalty(func(j int) Module { return m.At(j, i) })
	}

	return penalty
}

func (m *Matrix) runPenalty(at func(int) Module) int {
	penalty := 0
	count := 1

	for j := 1; j <= m.size; j++ {
		if j < m.size && at(j) == at(j-1) {
			count++
			continue
		}

		if count >= 5 {
			penalty += penaltyWeight1 + count - 5
		}

		count = 1
	}

	return penalty
}

// penalty2 returns the penalty score for "block of modules in the same
// colour": penaltyWeight2 for every 2x2 block, overlapping blocks counted
// separately.
func (m *Matrix) penalty2() int {
	penalty := 0

	for row := 1; row < m.size; row++ {
		for col := 1; col < m.size; col++ {
			topLeft := m.At(row-1, col-1)
			above := m.At(row-1, col)
			left := m.At(row, col-1)
			current := m.At(row, col)

			if current == left && current == above && current == topLeft {
				penalty++
			}
		}
	}

	return penalty * penaltyWeight2
}

// penalty4 returns the penalty score for the proportion of dark modules:
// penaltyWeight4 for every full 5% the dark percentage deviates from 50%.
func (m *Matrix) penalty4() int {
	numModules := m.size * m.size
	numDarkModules := 0

	for _, v := range m.module {
		if v == Dark {
			numDarkModules++
		}
	}

	// floor(|100*dark/total - 50| / 5) == floor(|20*dark - 10*total| / total).
	deviation := abs(20*numDarkModules - 10*numModules)

	return penaltyWeight4 * (deviation / numModules)
}
