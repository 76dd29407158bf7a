// Command qrcode writes a QR Code symbol for its arguments or standard input.
package main

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"

	"github.com/storelink/qrcode"
)

var formats = []string{"svg", "uri", "png", "jpeg", "pdf", "utf8"}

var errUsage = errors.New("usage")

// colour is a getopt.Value holding an RGB[A] colour.
type colour struct {
	c color.NRGBA
}

var colourNames = map[string]color.NRGBA{
	"black":       {0x00, 0x00, 0x00, 0xff},
	"white":       {0xff, 0xff, 0xff, 0xff},
	"red":         {0xff, 0x00, 0x00, 0xff},
	"green":       {0x00, 0x80, 0x00, 0xff},
	"blue":        {0x00, 0x00, 0xff, 0xff},
	"navy":        {0x00, 0x00, 0x80, 0xff},
	"transparent": {0x00, 0x00, 0x00, 0x00},
}

func (c *colour) String() string {
	if c.c.A == 0xff {
		return fmt.Sprintf("%02x%02x%02x", c.c.R, c.c.G, c.c.B)
	}

	return fmt.Sprintf("%02x%02x%02x%02x", c.c.R, c.c.G, c.c.B, c.c.A)
}

func (c *colour) Set(s string, _ getopt.Option) error {
	if v, ok := colourNames[strings.ToLower(s)]; ok {
		c.c = v
		return nil
	}

	h := strings.TrimPrefix(s, "#")

	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return fmt.Errorf("%q: bad colour spec", s)
	}

	switch len(h) {
	case 3:
		n = n<<4 | 0xf
		fallthrough
	case 4:
		var nn uint64
		for i := 0; i < 4; i++ {
			nn <<= 8
			nn |= n >> 12 & 0xf * 0x11
			n <<= 4
		}
		n = nn
	case 6:
		n = n<<8 | 0xff
	case 8:
	default:
		return fmt.Errorf("%q: bad colour spec", s)
	}

	c.c = color.NRGBA{uint8(n >> 24), uint8(n >> 16), uint8(n >> 8), uint8(n)}

	return nil
}

type options struct {
	level    qrcode.RecoveryLevel
	margin   int
	size     int
	sizeSet  bool
	format   string
	fg, bg   colour
	latin1   bool
	sjis     bool
	output   string
	text     []string
	showHelp bool
}

func parseFlags(args []string, tty bool, stderr io.Writer) (*options, *getopt.Set, error) {
	o := &options{
		margin: qrcode.DefaultMargin,
		fg:     colour{color.NRGBA{0x00, 0x00, 0x00, 0xff}},
		bg:     colour{color.NRGBA{0xff, 0xff, 0xff, 0xff}},
	}

	set := getopt.New()
	set.SetParameters("[string ...]")

	set.Flag(&o.showHelp, 'h', "show this help")
	lev := set.Enum('l', []string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "Q",
		"error correction level, lowest to highest", "L|M|Q|H")
	set.Flag(&o.margin, 'm', "quiet zone width in modules", "margin")
	size := set.Flag(&o.size, 's', `image width in pixels (type pdf: points); `+
		`negative values are pixels per module [-8 for raster types]`, "size")
	ff := set.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+`; if no -o is given and standard output `+
		`is a TTY, default is utf8, otherwise svg`, "type")
	set.FlagLong(&o.fg, "foreground", 'F', `foreground colour as 3, 4, 6 or `+
		`8 hex digits or a colour name`, "RGB[A]|name")
	set.FlagLong(&o.bg, "background", 'B', `background colour; see -F`, "RGB[A]|name")
	set.Flag(&o.latin1, '1', "Latin-1 input")
	set.Flag(&o.sjis, 'k', "Shift JIS input")
	fno := set.Flag(&o.output, 'o', `output file, or "-" for standard output`, "file")

	if err := set.Getopt(args, nil); err != nil {
		fmt.Fprintln(stderr, err)
		return nil, set, errUsage
	}

	if o.latin1 && o.sjis {
		fmt.Fprintln(stderr, "-1 and -k are incompatible")
		return nil, set, errUsage
	}

	level, err := qrcode.ParseLevel(*lev)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return nil, set, errUsage
	}

	o.level = level
	o.sizeSet = size.Seen()
	o.format = *ff
	o.text = set.Args()

	if o.format == "" {
		if !fno.Seen() && tty {
			o.format = "utf8"
		} else {
			o.format = "svg"
		}
	}

	if o.output == "-" {
		o.output = ""
	}

	return o, set, nil
}

// readText joins the arguments, or reads standard input and strips the
// final newline, and converts the input to UTF-8.
func readText(o *options, stdin io.Reader) (string, error) {
	var s string

	if len(o.text) != 0 {
		s = strings.Join(o.text, " ")
	} else {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", err
		}

		s, _ = strings.CutSuffix(strings.ReplaceAll(string(b), "\r\n", "\n"), "\n")
	}

	switch {
	case o.latin1:
		return charmap.ISO8859_1.NewDecoder().String(s)
	case o.sjis:
		return japanese.ShiftJIS.NewDecoder().String(s)
	}

	return s, nil
}

func render(q *qrcode.QRCode, o *options) ([]byte, error) {
	size := o.size
	if !o.sizeSet && o.format != "svg" && o.format != "uri" {
		size = -8
	}

	switch o.format {
	case "svg":
		return q.SVG(size)
	case "uri":
		q.Base64 = true
		return q.SVG(size)
	case "png":
		return q.PNG(size)
	case "jpeg":
		return q.JPEG(size)
	case "pdf":
		return q.PDF(size)
	default:
		return []byte(q.Matrix().String()), nil
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, tty bool) error {
	o, set, err := parseFlags(args, tty, stderr)
	if err != nil {
		set.PrintUsage(stderr)
		return err
	}

	if o.showHelp {
		set.PrintUsage(stdout)
		return nil
	}

	s, err := readText(o, stdin)
	if err != nil {
		return err
	}

	q, err := qrcode.New(s, o.level)
	if err != nil {
		return err
	}

	q.Margin = o.margin
	q.ForegroundColor = o.fg.c
	q.BackgroundColor = o.bg.c

	b, err := render(q, o)
	if err != nil {
		return err
	}

	if o.format == "uri" {
		b = append(b, '\n')
	}

	if o.output != "" {
		return os.WriteFile(o.output, b, 0o666)
	}

	_, err = stdout.Write(b)

	return err
}

func main() {
	log.SetFlags(0)

	err := run(os.Args, os.Stdin, os.Stdout, os.Stderr, isatty.IsTerminal(os.Stdout.Fd()))
	switch {
	case errors.Is(err, errUsage):
		os.Exit(2)
	case err != nil:
		log.Fatalln(err)
	}
}
