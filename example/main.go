package main

import (
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"

	"github.com/storelink/qrcode"
)

func main() {
	qrcode.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))

	m, err := qrcode.Encode("https://example.com/store/1042", &qrcode.EncodeOptions{Level: qrcode.Medium})
	if err != nil {
		log.Fatal(err.Error())
	}

	fmt.Print(m)
	fmt.Println(qrcode.RenderDataURI(m, nil))
	fmt.Println("----------")

	qr, err := qrcode.New("https://example.com/store/1042", qrcode.High)
	if err != nil {
		log.Fatal(err.Error())
	}

	opacity := 100
	a := (float64(opacity) / float64(100)) * float64(255)
	qr.ForegroundColor = color.RGBA{R: 255, G: 0, B: 0, A: uint8(a)}

	writeToFile("qr.png", qr.PNG)
	writeToFile("qr.jpeg", qr.JPEG)
	writeToFile("qr.svg", qr.SVG)
	writeToFile("qr.pdf", qr.PDF)

	qr.Base64 = true

	stdoutBase64(qr.PNG)
	fmt.Println("----------")
	stdoutBase64(qr.SVG)
}

func writeToFile(fileName string, formatFunc func(_ int) ([]byte, error)) {
	size := 500
	fileMode := os.FileMode(0644)

	bytes, err := formatFunc(size)
	if err != nil {
		log.Fatal(err.Error())
	}

	if err := os.WriteFile(fileName, bytes, fileMode); err != nil {
		log.Fatal(err.Error())
	}
}

func stdoutBase64(formatFunc func(_ int) ([]byte, error)) {
	bytes, err := formatFunc(-4)
	if err != nil {
		log.Fatal(err.Error())
	}

	fmt.Println(string(bytes))
}
