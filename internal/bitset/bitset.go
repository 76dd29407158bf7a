// Package bitset implements an append-only, MSB-first bit buffer used to
// assemble QR Code data codewords.
package bitset

import (
	"fmt"
)

type Bitset struct {
	// The number of bits stored.
	numBits int

	// Storage for individual bits, first bit in the MSB of bits[0].
	bits []byte
}

func New() *Bitset {
	return &Bitset{}
}

// WithCapacity returns an empty Bitset with room for numBits bits.
func WithCapacity(numBits int) *Bitset {
	return &Bitset{bits: make([]byte, 0, (numBits+7)/8)}
}

// AppendUint32 appends the numBits least significant bits of value, most
// significant first.
func (b *Bitset) AppendUint32(value uint32, numBits int) error {
	if numBits < 0 || numBits > 32 {
		return fmt.Errorf("numBits %d out of range 0-32", numBits)
	}

	for i := numBits - 1; i >= 0; i-- {
		b.appendBit(value&(1<<uint(i)) != 0)
	}

	return nil
}

func (b *Bitset) AppendByte(value byte) {
	for i := 7; i >= 0; i-- {
		b.appendBit(value&(1<<uint(i)) != 0)
	}
}

func (b *Bitset) AppendBytes(data []byte) {
	for _, d := range data {
		b.AppendByte(d)
	}
}

// AppendZeros appends num zero bits.
func (b *Bitset) AppendZeros(num int) {
	for i := 0; i < num; i++ {
		b.appendBit(false)
	}
}

func (b *Bitset) appendBit(v bool) {
	if b.numBits%8 == 0 {
		b.bits = append(b.bits, 0)
	}

	if v {
		b.bits[b.numBits/8] |= 0x80 >> uint(b.numBits%8)
	}

	b.numBits++
}

func (b *Bitset) Len() int {
	return b.numBits
}

// BitsToByteBoundary returns the number of bits needed to pad b to a whole
// number of bytes.
func (b *Bitset) BitsToByteBoundary() int {
	return (8 - b.numBits%8) % 8
}

func (b *Bitset) At(index int) (bool, error) {
	if index < 0 || index >= b.numBits {
		return false, fmt.Errorf("index %d out of range", index)
	}

	return (b.bits[index/8] & (0x80 >> byte(index%8))) != 0, nil
}

// Bytes returns a copy of the stored bits. It fails unless the length is a
// whole number of bytes.
func (b *Bitset) Bytes() ([]byte, error) {
	if b.numBits%8 != 0 {
		return nil, fmt.Errorf("length %d is not byte aligned", b.numBits)
	}

	result := make([]byte, len(b.bits))
	copy(result, b.bits)

	return result, nil
}
