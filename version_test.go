package qrcode

import (
	"errors"
	"testing"
)

var allLevels = []RecoveryLevel{Low, Medium, Quartile, High}

func TestVersionTableComplete(t *testing.T) {
	for version := minVersion; version <= maxVersion; version++ {
		for _, level := range allLevels {
			if getQRCodeVersion(level, version) == nil {
				t.Errorf("missing entry for version %d level %s", version, level)
			}
		}
	}

	if len(versions) != 4*(maxVersion-minVersion+1) {
		t.Errorf("got %d entries, want %d", len(versions), 4*(maxVersion-minVersion+1))
	}
}

func TestVersionCapacityInvariant(t *testing.T) {
	for _, v := range versions {
		sum := 0

		for _, b := range v.block {
			sum += b.numBlocks * (b.numDataCodewords + v.ecCodewordsPerBlock)
		}

		if sum != v.totalCodewords {
			t.Errorf("version %d-%s: blocks hold %d codewords, total is %d",
				v.version, v.level, sum, v.totalCodewords)
		}

		if len(v.block) == 2 && v.block[1].numDataCodewords != v.block[0].numDataCodewords+1 {
			t.Errorf("version %d-%s: group 2 blocks are not one codeword longer", v.version, v.level)
		}
	}
}

func TestVersionTotalCodewordsMatchesModules(t *testing.T) {
	for _, v := range versions {
		size := v.symbolSize()

		free := 0

		for row := 0; row < size; row++ {
			for col := 0; col < size; col++ {
				if !isReserved(row, col, size) {
					free++
				}
			}
		}

		if want := v.totalCodewords*8 + v.numRemainderBits(); free != want {
			t.Errorf("version %d: %d free modules, want %d", v.version, free, want)
		}
	}
}

func TestChooseQRCodeVersion(t *testing.T) {
	tests := []struct {
		level       RecoveryLevel
		numBytes    int
		wantVersion int
	}{
		{Quartile, 4, 1},
		{Quartile, 11, 1},
		{Quartile, 12, 2},
		{Low, 0, 1},
		{Low, 17, 1},
		{Low, 18, 2},
		{Low, 32, 2},
		{Low, 33, 3},
		{Low, 100, 5},
		{Medium, 100, 6},
		{Quartile, 100, 8},
		{High, 100, 10},
		{Low, 271, 10},
		{Medium, 213, 10},
		{Quartile, 151, 10},
		{High, 119, 10},
	}

	for _, test := range tests {
		v, err := chooseQRCodeVersion(test.level, test.numBytes)
		if err != nil {
			t.Errorf("chooseQRCodeVersion(%s, %d): %v", test.level, test.numBytes, err)
			continue
		}

		if v.version != test.wantVersion {
			t.Errorf("chooseQRCodeVersion(%s, %d) = %d, want %d",
				test.level, test.numBytes, v.version, test.wantVersion)
		}
	}
}

func TestChooseQRCodeVersionTooLong(t *testing.T) {
	tests := []struct {
		level    RecoveryLevel
		numBytes int
	}{
		{Low, 272},
		{Medium, 214},
		{Quartile, 152},
		{High, 120},
		{Low, 10000},
	}

	for _, test := range tests {
		_, err := chooseQRCodeVersion(test.level, test.numBytes)
		if !errors.Is(err, ErrCapacityExceeded) {
			t.Errorf("chooseQRCodeVersion(%s, %d) error = %v, want ErrCapacityExceeded",
				test.level, test.numBytes, err)
		}
	}
}

func TestChooseQRCodeVersionMonotonic(t *testing.T) {
	for _, level := range allLevels {
		last := 0

		for n := 0; ; n++ {
			v, err := chooseQRCodeVersion(level, n)
			if err != nil {
				break
			}

			if v.version < last {
				t.Fatalf("level %s: %d bytes chose version %d after version %d",
					level, n, v.version, last)
			}

			last = v.version
		}

		if last != maxVersion {
			t.Errorf("level %s: largest version chosen is %d, want %d", level, last, maxVersion)
		}
	}
}
