package qrcode

import (
	"fmt"

	"github.com/storelink/qrcode/internal/bitset"
)

// Only byte mode is implemented; content is always encoded as its UTF-8 bytes.
const (
	byteModeIndicator = 0x4 // 0b0100
	modeIndicatorBits = 4

	maxTerminatorBits = 4
)

// Pad codewords 0b11101100 and 0b00010001, inserted alternately.
var padCodewords = [2]byte{0xec, 0x11}

// dataEncoder builds the data codewords of one version.
type dataEncoder struct {
	version qrCodeVersion

	data *bitset.Bitset
}

func newDataEncoder(v qrCodeVersion) *dataEncoder {
	return &dataEncoder{
		version: v,
		data:    bitset.WithCapacity(v.numDataBits()),
	}
}

// buildDataCodewords returns the data codewords for payload: header, payload,
// terminator and padding, exactly v.numDataCodewords() bytes long.
func buildDataCodewords(v qrCodeVersion, payload []byte) ([]byte, error) {
	d := newDataEncoder(v)

	if err := d.encode(payload); err != nil {
		return nil, err
	}

	d.addTerminatorBits()
	d.addPadding()

	if d.data.Len() != v.numDataBits() {
		return nil, fmt.Errorf("%w: got len %d, expected %d",
			ErrInternal, d.data.Len(), v.numDataBits())
	}

	return d.data.Bytes()
}

func (d *dataEncoder) encode(payload []byte) error {
	charCountBits := d.version.charCountBits()

	if maxLength := 1<<uint(charCountBits) - 1; len(payload) > maxLength {
		return fmt.Errorf("%w: length %d cannot be represented in %d bits",
			ErrCapacityExceeded, len(payload), charCountBits)
	}

	needed := modeIndicatorBits + charCountBits + 8*len(payload)
	if needed > d.version.numDataBits() {
		return fmt.Errorf("%w: %d bits needed, version %d-%s holds %d",
			ErrCapacityExceeded, needed, d.version.version, d.version.level, d.version.numDataBits())
	}

	if err := d.data.AppendUint32(byteModeIndicator, modeIndicatorBits); err != nil {
		return err
	}

	if err := d.data.AppendUint32(uint32(len(payload)), charCountBits); err != nil {
		return err
	}

	d.data.AppendBytes(payload)

	return nil
}

// addTerminatorBits appends up to four zero bits, fewer if the data capacity
// is reached first.
func (d *dataEncoder) addTerminatorBits() {
	numTerminatorBits := d.version.numDataBits() - d.data.Len()
	if numTerminatorBits > maxTerminatorBits {
		numTerminatorBits = maxTerminatorBits
	}

	d.data.AppendZeros(numTerminatorBits)
}

func (d *dataEncoder) addPadding() {
	// Pad to the nearest codeword boundary.
	d.data.AppendZeros(d.data.BitsToByteBoundary())

	for i := 0; d.data.Len() < d.version.numDataBits(); i = 1 - i {
		d.data.AppendByte(padCodewords[i])
	}
}
