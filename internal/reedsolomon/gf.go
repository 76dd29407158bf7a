package reedsolomon

// gfElement is an element of GF(2^8) as used by QR Code, with the field
// generated by the primitive polynomial x^8 + x^4 + x^3 + x^2 + 1 (0x11D).
type gfElement uint8

const (
	gfZero = gfElement(0)
	gfOne  = gfElement(1)

	gfPrimitive = 0x11d
)

var (
	// gfExpTable[i] is alpha^i. The table is doubled so that the sum of two
	// logarithms can be looked up without a modulo.
	gfExpTable [512]gfElement

	// gfLogTable[x] is log_alpha(x). gfLogTable[0] is undefined.
	gfLogTable [256]int
)

func init() {
	x := 1

	for i := 0; i < 255; i++ {
		gfExpTable[i] = gfElement(x)
		gfLogTable[x] = i

		x <<= 1
		if x&0x100 != 0 {
			x ^= gfPrimitive
		}
	}

	for i := 255; i < len(gfExpTable); i++ {
		gfExpTable[i] = gfExpTable[i-255]
	}
}

// gfAdd returns a + b. Addition and subtraction are both XOR in GF(2^8).
func gfAdd(a, b gfElement) gfElement {
	return a ^ b
}

func gfMultiply(a, b gfElement) gfElement {
	if a == gfZero || b == gfZero {
		return gfZero
	}

	return gfExpTable[gfLogTable[a]+gfLogTable[b]]
}

// Multiply returns a*b over GF(256) with modulus 0x11D.
func Multiply(a, b byte) byte {
	return byte(gfMultiply(gfElement(a), gfElement(b)))
}
