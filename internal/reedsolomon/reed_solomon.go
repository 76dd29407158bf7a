// Package reedsolomon computes the Reed-Solomon error correction codewords
// of a QR Code data block.
package reedsolomon

// Generator holds the generator polynomial for a fixed number of error
// correction codewords. A Generator is immutable and can be shared between
// goroutines.
type Generator struct {
	poly gfPoly
}

// NewGenerator returns the generator polynomial for numECBytes error
// correction codewords.
func NewGenerator(numECBytes int) *Generator {
	return &Generator{poly: rsGeneratorPoly(numECBytes)}
}

// Degree returns the number of error correction codewords produced by g.
func (g *Generator) Degree() int {
	return g.poly.degree()
}

// Coefficients returns the generator polynomial coefficients, highest degree
// first. The leading coefficient is always 1.
func (g *Generator) Coefficients() []byte {
	result := make([]byte, g.poly.numTerms())

	for i, t := range g.poly.term {
		result[i] = byte(t)
	}

	return result
}

// Remainder returns the error correction codewords for data.
//
// The bytes are interpreted as the sequence of coefficients of a polynomial,
// the first byte being the highest degree term. The result is the remainder of
// data*x^n divided by the generator, n = g.Degree().
func (g *Generator) Remainder(data []byte) []byte {
	terms := make([]gfElement, len(data))
	for i, b := range data {
		terms[i] = gfElement(b)
	}

	remainder := gfPolyRemainder(terms, g.poly)

	result := make([]byte, len(remainder))
	for i, t := range remainder {
		result[i] = byte(t)
	}

	return result
}

// Encode returns the numECBytes error correction codewords for data.
func Encode(data []byte, numECBytes int) []byte {
	return NewGenerator(numECBytes).Remainder(data)
}
