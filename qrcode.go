// Package qrcode encodes text as QR Code symbols, versions 1 to 10, in byte
// mode, and renders them as SVG, PNG, JPEG or PDF.
//
// Encode returns the module matrix; RenderSVG and RenderDataURI serialize it.
// The QRCode type bundles a matrix with drawing options.
package qrcode

import (
	"bytes"
	"fmt"
	"image/color"
	"image/jpeg"
	"image/png"

	"github.com/signintech/gopdf"
)

// EncodeOptions controls Encode. A nil *EncodeOptions selects DefaultLevel.
type EncodeOptions struct {
	// Error correction level. The zero value selects DefaultLevel.
	Level RecoveryLevel
}

func (o *EncodeOptions) level() RecoveryLevel {
	if o == nil || o.Level == 0 {
		return DefaultLevel
	}

	return o.Level
}

// Encode returns the QR Code symbol for text, encoded as UTF-8 bytes in the
// smallest version that can hold it.
//
// It fails with ErrCapacityExceeded if no version up to 10 can hold text at
// the requested level, and with ErrInvalidLevel for an unknown level.
func Encode(text string, opts *EncodeOptions) (*Matrix, error) {
	level := opts.level()
	if !level.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, int(level))
	}

	payload := []byte(text)

	version, err := chooseQRCodeVersion(level, len(payload))
	if err != nil {
		return nil, err
	}

	data, err := buildDataCodewords(*version, payload)
	if err != nil {
		return nil, err
	}

	codewords, err := encodeBlocks(*version, data)
	if err != nil {
		return nil, err
	}

	symbol, err := buildRegularSymbol(*version, codewords)
	if err != nil {
		return nil, err
	}

	return selectMask(symbol)
}

// QRCode is an encoded symbol together with its drawing options.
type QRCode struct {
	// Original content encoded.
	content string

	// QR Code type.
	level RecoveryLevel

	// User settable drawing options.
	ForegroundColor color.Color
	BackgroundColor color.Color

	// Qr Code margin.
	Margin int

	// Base 64 output.
	Base64 bool

	matrix *Matrix
}

// New encodes content at level. Drawing options start as black on white with
// a margin of DefaultMargin.
func New(content string, level RecoveryLevel) (*QRCode, error) {
	m, err := Encode(content, &EncodeOptions{Level: level})
	if err != nil {
		return nil, err
	}

	q := &QRCode{
		content: content,
		level:   m.Level(),

		ForegroundColor: color.Black,
		BackgroundColor: color.White,

		Margin: DefaultMargin,

		matrix: m,
	}

	return q, nil
}

func (q *QRCode) Content() string {
	return q.content
}

func (q *QRCode) Level() RecoveryLevel {
	return q.level
}

// Matrix returns the encoded symbol.
func (q *QRCode) Matrix() *Matrix {
	return q.matrix
}

func (q *QRCode) encodeOutput(mediaType string, bts []byte) []byte {
	if q.Base64 {
		return []byte(dataURI(mediaType, bts))
	}

	return bts
}

// PNG returns the symbol as a PNG image size pixels wide; see Matrix.Image.
func (q *QRCode) PNG(size int) ([]byte, error) {
	img := q.matrix.Image(size, q.Margin, q.ForegroundColor, q.BackgroundColor)

	encoder := png.Encoder{CompressionLevel: png.BestCompression}

	var b bytes.Buffer

	if err := encoder.Encode(&b, img); err != nil {
		return nil, err
	}

	return q.encodeOutput("image/png", b.Bytes()), nil
}

func (q *QRCode) JPEG(size int) ([]byte, error) {
	img := q.matrix.Image(size, q.Margin, q.ForegroundColor, q.BackgroundColor)

	var b bytes.Buffer

	if err := jpeg.Encode(&b, img, &jpeg.Options{Quality: jpeg.DefaultQuality}); err != nil {
		return nil, err
	}

	return q.encodeOutput("image/jpeg", b.Bytes()), nil
}

// PDF returns a single page PDF document holding the symbol, size points
// wide.
func (q *QRCode) PDF(size int) ([]byte, error) {
	img := q.matrix.Image(size, q.Margin, q.ForegroundColor, q.BackgroundColor)

	side := float64(img.Bounds().Dx())

	var b bytes.Buffer

	pdf := gopdf.GoPdf{}

	rect := gopdf.Rect{W: side, H: side}

	pdf.Start(gopdf.Config{Unit: gopdf.UnitPT, PageSize: rect})
	pdf.AddPage()

	if err := pdf.ImageFrom(img, 0, 0, &rect); err != nil {
		return nil, err
	}

	if err := pdf.Write(&b); err != nil {
		return nil, err
	}

	return q.encodeOutput("application/pdf", b.Bytes()), nil
}

// SVG returns the symbol as an SVG document size pixels wide. A size of 0 or
// less uses one unit per module.
func (q *QRCode) SVG(size int) ([]byte, error) {
	bts := RenderSVG(q.matrix, &SVGOptions{
		Margin:     q.Margin,
		DarkColor:  colorString(q.ForegroundColor),
		LightColor: colorString(q.BackgroundColor),
		Size:       size,
	})

	return q.encodeOutput("image/svg+xml", []byte(bts)), nil
}

// colorString formats c as #rrggbb, or as rgba() when not opaque.
func colorString(c color.Color) string {
	if c == nil {
		return ""
	}

	n := color.NRGBAModel.Convert(c).(color.NRGBA)

	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}

	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", n.R, n.G, n.B, float64(n.A)/255)
}
