package qrcode

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	var b bytes.Buffer

	SetLogger(slog.New(slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	m, err := Encode("TEST", nil)
	if err != nil {
		t.Fatal(err)
	}

	out := b.String()

	if n := strings.Count(out, "qrcode: mask candidate"); n != numMasks {
		t.Errorf("logged %d mask candidates, want %d", n, numMasks)
	}

	if !strings.Contains(out, "qrcode: mask chosen") {
		t.Errorf("selected mask %d not logged:\n%s", m.Mask(), out)
	}

	SetLogger(nil)
	b.Reset()

	if _, err := Encode("TEST", nil); err != nil {
		t.Fatal(err)
	}

	if b.Len() != 0 {
		t.Errorf("default logger wrote %q", b.String())
	}
}
