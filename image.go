package qrcode

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Image returns m as a paletted image with a quiet zone margin modules wide.
//
// size is the width and height in pixels. A negative size is a multiple of
// the module count, so -4 draws each module 4 pixels wide. The size is
// increased to at least one pixel per module.
func (m *Matrix) Image(size, margin int, dark, light color.Color) image.Image {
	bitmap := m.Bitmap(margin)

	// Minimum pixels (both width and height) required.
	realSize := len(bitmap)

	// Variable size support.
	if size < 0 {
		size = size * -1 * realSize
	}

	if size < realSize {
		size = realSize
	}

	p := color.Palette([]color.Color{light, dark})

	src := image.NewPaletted(image.Rect(0, 0, realSize, realSize), p)

	for y, row := range bitmap {
		for x, v := range row {
			if v {
				src.SetColorIndex(x, y, 1)
			}
		}
	}

	if size == realSize {
		return src
	}

	// Map each image pixel to the nearest QR code module.
	img := image.NewPaletted(image.Rect(0, 0, size, size), p)
	draw.NearestNeighbor.Scale(img, img.Bounds(), src, src.Bounds(), draw.Src, nil)

	return img
}
