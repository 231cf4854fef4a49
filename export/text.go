package export

import (
	"bufio"
	"image"
	"io"

	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"

	"sineplot/pixbuf"
)

// DefaultRamp runs from light to dark.
const DefaultRamp = " .:-=+*#%@"

const clearScreen = "\x1b[1;1H\x1b[2J"

// TextOptions controls WriteText.
type TextOptions struct {
	// Cols is the output width in characters; 0 means 80. It never exceeds
	// the frame width.
	Cols int
	// Ramp maps luma onto characters, lightest first.
	Ramp string
	// Clear homes the cursor and clears the terminal before drawing.
	Clear bool
}

// WriteText renders v as characters for terminals. Rows are sampled at half
// the column density since character cells are roughly twice as tall as wide.
func WriteText(w io.Writer, v pixbuf.View, opts TextOptions) error {
	img, err := Image(v)
	if err != nil {
		return err
	}
	cols := opts.Cols
	if cols <= 0 {
		cols = 80
	}
	if cols > v.Width {
		cols = v.Width
	}
	rows := v.Height * cols / v.Width / 2
	if rows < 1 {
		rows = 1
	}
	ramp := []byte(opts.Ramp)
	if len(ramp) == 0 {
		ramp = []byte(DefaultRamp)
	}

	gray := image.NewGray(image.Rect(0, 0, cols, rows))
	xdraw.ApproxBiLinear.Scale(gray, gray.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	bw := bufio.NewWriter(w)
	if opts.Clear {
		bw.WriteString(clearScreen)
	}
	line := make([]byte, cols+1)
	line[cols] = '\n'
	last := len(ramp) - 1
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			l := int(gray.Pix[y*gray.Stride+x])
			line[x] = ramp[(0xFF-l)*last/0xFF]
		}
		bw.Write(line)
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "failed to write text frame")
	}
	return nil
}
