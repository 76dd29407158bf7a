package qrcode

import (
	"fmt"
	"strings"
)

// RecoveryLevel is the error correction level of a QR Code. From least to most
// tolerant of errors: Low, Medium, Quartile, High.
//
// The zero value selects DefaultLevel.
type RecoveryLevel int

const (
	// Level L: 7% error recovery.
	Low RecoveryLevel = iota + 1

	// Level M: 15% error recovery.
	Medium

	// Level Q: 25% error recovery.
	Quartile

	// Level H: 30% error recovery.
	High
)

// DefaultLevel is used when no recovery level is given.
const DefaultLevel = Quartile

func (l RecoveryLevel) valid() bool {
	return l >= Low && l <= High
}

func (l RecoveryLevel) String() string {
	switch l {
	case Low:
		return "L"
	case Medium:
		return "M"
	case Quartile:
		return "Q"
	case High:
		return "H"
	default:
		return fmt.Sprintf("RecoveryLevel(%d)", int(l))
	}
}

// ParseLevel parses one of "L", "M", "Q" or "H", ignoring case.
func ParseLevel(s string) (RecoveryLevel, error) {
	switch strings.ToUpper(s) {
	case "L":
		return Low, nil
	case "M":
		return Medium, nil
	case "Q":
		return Quartile, nil
	case "H":
		return High, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
}
