package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/storelink/qrcode"
)

func runArgs(t *testing.T, stdin string, tty bool, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	err := run(append([]string{"qrcode"}, args...), strings.NewReader(stdin), &stdout, &stderr, tty)

	return stdout.String(), err
}

func TestRunDefaultFormat(t *testing.T) {
	out, err := runArgs(t, "", false, "hello")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(out, "<?xml") {
		t.Errorf("non-TTY output starts %.20q, want SVG", out)
	}

	out, err = runArgs(t, "", true, "hello")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, "██") {
		t.Errorf("TTY output is not block characters: %.40q", out)
	}
}

func TestRunFormats(t *testing.T) {
	tests := []struct {
		format string
		prefix string
	}{
		{"svg", "<?xml"},
		{"uri", "data:image/svg+xml;base64,"},
		{"png", "\x89PNG"},
		{"jpeg", "\xff\xd8"},
		{"pdf", "%PDF-"},
	}

	for _, test := range tests {
		out, err := runArgs(t, "", false, "-t", test.format, "hello")
		if err != nil {
			t.Fatalf("-t %s: %v", test.format, err)
		}

		if !strings.HasPrefix(out, test.prefix) {
			t.Errorf("-t %s: output starts %.20q, want %q", test.format, out, test.prefix)
		}
	}
}

func TestRunStdin(t *testing.T) {
	fromArgs, err := runArgs(t, "", false, "-l", "m", "hello", "world")
	if err != nil {
		t.Fatal(err)
	}

	fromStdin, err := runArgs(t, "hello world\r\n", false, "-l", "M")
	if err != nil {
		t.Fatal(err)
	}

	if fromArgs != fromStdin {
		t.Error("standard input with final newline differs from arguments")
	}
}

func TestRunCharsets(t *testing.T) {
	want, err := runArgs(t, "", false, "café")
	if err != nil {
		t.Fatal(err)
	}

	got, err := runArgs(t, "caf\xe9", false, "-1")
	if err != nil {
		t.Fatal(err)
	}

	if got != want {
		t.Error("-1 did not convert Latin-1 input")
	}

	want, err = runArgs(t, "", false, "日本")
	if err != nil {
		t.Fatal(err)
	}

	got, err = runArgs(t, "\x93\xfa\x96\x7b", false, "-k")
	if err != nil {
		t.Fatal(err)
	}

	if got != want {
		t.Error("-k did not convert Shift JIS input")
	}
}

func TestRunOptions(t *testing.T) {
	out, err := runArgs(t, "", false, "-m", "0", "-s", "210", "-F", "#f00", "-B", "00000000", "hi")
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{`viewBox="0 0 21 21"`, `width="210"`, `fill="#ff0000"`, `fill="rgba(0, 0, 0, 0.00)"`} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestRunOutputFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "code.svg")

	out, err := runArgs(t, "", true, "-o", fn, "hello")
	if err != nil {
		t.Fatal(err)
	}

	if out != "" {
		t.Errorf("wrote %d bytes to standard output", len(out))
	}

	b, err := os.ReadFile(fn)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.HasPrefix(b, []byte("<?xml")) {
		t.Errorf("-o with a TTY wrote %.20q, want SVG", b)
	}
}

func TestRunErrors(t *testing.T) {
	if _, err := runArgs(t, "", false, "-1", "-k", "x"); !errors.Is(err, errUsage) {
		t.Errorf("-1 -k: %v, want usage error", err)
	}

	if _, err := runArgs(t, "", false, "-F", "nope", "x"); !errors.Is(err, errUsage) {
		t.Errorf("bad colour: %v, want usage error", err)
	}

	if _, err := runArgs(t, "", false, "-t", "gif", "x"); !errors.Is(err, errUsage) {
		t.Errorf("bad type: %v, want usage error", err)
	}

	if _, err := runArgs(t, "", false, "-l", "H", strings.Repeat("x", 200)); !errors.Is(err, qrcode.ErrCapacityExceeded) {
		t.Errorf("200 bytes at H: %v, want ErrCapacityExceeded", err)
	}
}

func TestColourSet(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{"fff", "ffffff"},
		{"#1234", "11223344"},
		{"abcdef", "abcdef"},
		{"01020304", "01020304"},
		{"Navy", "000080"},
	}

	for _, test := range tests {
		var c colour
		if err := c.Set(test.s, nil); err != nil {
			t.Errorf("Set(%q): %v", test.s, err)
			continue
		}

		if got := c.String(); got != test.want {
			t.Errorf("Set(%q) = %s, want %s", test.s, got, test.want)
		}
	}

	var c colour
	for _, s := range []string{"", "12", "fffff", "xyz"} {
		if err := c.Set(s, nil); err == nil {
			t.Errorf("Set(%q) succeeded", s)
		}
	}
}
