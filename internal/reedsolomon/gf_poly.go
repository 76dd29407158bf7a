package reedsolomon

// gfPoly is a polynomial over GF(2^8). Terms are stored highest degree first,
// so term[0] is the leading coefficient and term[len-1] the constant.
type gfPoly struct {
	term []gfElement
}

func (e gfPoly) numTerms() int {
	return len(e.term)
}

func (e gfPoly) degree() int {
	return len(e.term) - 1
}

func gfPolyMultiply(a, b gfPoly) gfPoly {
	if a.numTerms() == 0 || b.numTerms() == 0 {
		return gfPoly{}
	}

	result := gfPoly{term: make([]gfElement, a.numTerms()+b.numTerms()-1)}

	for i, x := range a.term {
		for j, y := range b.term {
			result.term[i+j] = gfAdd(result.term[i+j], gfMultiply(x, y))
		}
	}

	return result
}

// rsGeneratorPoly returns prod_{i=0}^{degree-1} (x - alpha^i).
func rsGeneratorPoly(degree int) gfPoly {
	generator := gfPoly{term: []gfElement{gfOne}}

	for i := 0; i < degree; i++ {
		// Subtraction is addition in GF(2^8), so (x - alpha^i) = (x + alpha^i).
		generator = gfPolyMultiply(generator, gfPoly{term: []gfElement{gfOne, gfExpTable[i]}})
	}

	return generator
}

// gfPolyRemainder divides data*x^n by the monic generator g of degree n and
// returns the n remainder coefficients, highest degree first.
func gfPolyRemainder(data []gfElement, generator gfPoly) []gfElement {
	n := generator.degree()

	working := make([]gfElement, len(data)+n)
	copy(working, data)

	for i := range data {
		coefficient := working[i]
		if coefficient == gfZero {
			continue
		}

		for j, g := range generator.term {
			working[i+j] = gfAdd(working[i+j], gfMultiply(g, coefficient))
		}
	}

	return working[len(data):]
}
