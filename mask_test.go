package qrcode

import (
	"strings"
	"testing"
)

// matrixFromRows builds a square matrix, '#' dark and anything else light.
func matrixFromRows(rows ...string) *Matrix {
	size := len(rows)
	m := &Matrix{size: size, module: make([]Module, size*size)}

	for row, s := range rows {
		for col, ch := range s {
			m.set(row, col, ch == '#')
		}
	}

	return m
}

func unmaskedSymbol(t *testing.T, text string, level RecoveryLevel) *Matrix {
	t.Helper()

	v, err := chooseQRCodeVersion(level, len(text))
	if err != nil {
		t.Fatal(err)
	}

	data, err := buildDataCodewords(*v, []byte(text))
	if err != nil {
		t.Fatal(err)
	}

	codewords, err := encodeBlocks(*v, data)
	if err != nil {
		t.Fatal(err)
	}

	m, err := buildRegularSymbol(*v, codewords)
	if err != nil {
		t.Fatal(err)
	}

	return m
}

func TestPenaltyAllLight(t *testing.T) {
	m := matrixFromRows(".....", ".....", ".....", ".....", ".....")

	// 10 runs of 5, 16 2x2 blocks, 0% dark.
	if got := m.penalty1(); got != 30 {
		t.Errorf("penalty1() = %d, want 30", got)
	}

	if got := m.penalty2(); got != 48 {
		t.Errorf("penalty2() = %d, want 48", got)
	}

	if got := m.penalty4(); got != 100 {
		t.Errorf("penalty4() = %d, want 100", got)
	}

	if got := m.penaltyScore(); got != 178 {
		t.Errorf("penaltyScore() = %d, want 178", got)
	}
}

func TestPenaltyCheckerboard(t *testing.T) {
	m := matrixFromRows("#.#.#.", ".#.#.#", "#.#.#.", ".#.#.#", "#.#.#.", ".#.#.#")

	if got := m.penaltyScore(); got != 0 {
		t.Errorf("penaltyScore() = %d, want 0", got)
	}
}

func TestPenaltyRuns(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"#######", 5},
		{"######.", 4},
		{"#####..", 3},
		{"####...", 0},
		{".#####.", 3},
		{"#.#.#.#", 0},
	}

	m := &Matrix{size: 7}

	for _, test := range tests {
		got := m.runPenalty(func(j int) Module {
			if test.line[j] == '#' {
				return Dark
			}

			return Light
		})

		if got != test.want {
			t.Errorf("runPenalty(%q) = %d, want %d", test.line, got, test.want)
		}
	}
}

func TestPenaltyOverlappingBlocks(t *testing.T) {
	m := matrixFromRows("###", "###", "###")

	if got := m.penalty2(); got != 4*penaltyWeight2 {
		t.Errorf("penalty2() = %d, want %d", got, 4*penaltyWeight2)
	}
}

func TestPenaltyBalance(t *testing.T) {
	rows := make([]string, 10)
	for i := range rows {
		if i < 3 {
			rows[i] = strings.Repeat("#", 10)
		} else {
			rows[i] = strings.Repeat(".", 10)
		}
	}

	// 30% dark: 4 steps of 5% from 50%.
	if got := matrixFromRows(rows...).penalty4(); got != 40 {
		t.Errorf("penalty4() = %d, want 40", got)
	}

	rows[3] = "####......"

	// 34% dark still rounds down to 3 steps.
	if got := matrixFromRows(rows...).penalty4(); got != 30 {
		t.Errorf("penalty4() = %d, want 30", got)
	}
}

func TestMaskCandidatesKeepFunctionPatterns(t *testing.T) {
	base := unmaskedSymbol(t, "https://example.com/shop/42", Medium)

	for mask, c := range maskCandidates(base) {
		if c.mask != mask {
			t.Errorf("candidate %d has mask %d", mask, c.mask)
		}

		for row := 0; row < base.size; row++ {
			for col := 0; col < base.size; col++ {
				flipped := c.At(row, col) != base.At(row, col)

				want := !isReserved(row, col, base.size) && maskFuncs[mask](row, col)
				if flipped != want {
					t.Fatalf("mask %d: module (%d, %d) flipped = %v, want %v",
						mask, row, col, flipped, want)
				}
			}
		}
	}
}

func TestSelectMaskMinimalPenalty(t *testing.T) {
	for _, text := range []string{"", "TEST", "HELLO WORLD", strings.Repeat("shop-", 20)} {
		for _, level := range allLevels {
			base := unmaskedSymbol(t, text, level)
			candidates := maskCandidates(base)

			m, err := selectMask(base)
			if err != nil {
				t.Fatal(err)
			}

			for _, c := range candidates {
				if c.penalty < m.Penalty() || c.penalty == m.Penalty() && c.mask < m.Mask() {
					t.Errorf("%q-%s: chose mask %d (penalty %d) over mask %d (penalty %d)",
						text, level, m.Mask(), m.Penalty(), c.mask, c.penalty)
				}
			}
		}
	}
}

func TestSelectMaskDoesNotModifyInput(t *testing.T) {
	base := unmaskedSymbol(t, "TEST", Quartile)
	before := base.clone()

	if _, err := selectMask(base); err != nil {
		t.Fatal(err)
	}

	for i := range base.module {
		if base.module[i] != before.module[i] {
			t.Fatalf("module %d changed", i)
		}
	}
}
