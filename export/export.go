// Package export encodes pixel buffer frames as image files.
//
// Depth maps onto the image color mode: 8 bits is grayscale, 24 bits RGB and
// 32 bits RGBA. Any other depth is an error.
package export

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"

	"sineplot/pixbuf"
)

var (
	ErrUnsupportedDepth  = errors.New("bits per pixel must be 8, 24 or 32")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// Mode is the color mode an exported image is written in.
type Mode uint8

const (
	ModeGray Mode = iota + 1
	ModeRGB
	ModeRGBA
)

func (m Mode) String() string {
	switch m {
	case ModeGray:
		return "gray"
	case ModeRGB:
		return "rgb"
	case ModeRGBA:
		return "rgba"
	}
	return "unknown"
}

// ColorMode returns the color mode for a buffer depth.
func ColorMode(d pixbuf.Depth) (Mode, error) {
	switch d {
	case pixbuf.Depth8:
		return ModeGray, nil
	case pixbuf.Depth24:
		return ModeRGB, nil
	case pixbuf.Depth32:
		return ModeRGBA, nil
	}
	return 0, errors.Wrapf(ErrUnsupportedDepth, "depth %d", d)
}

// Format names an output encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
	FormatTGA  Format = "tga"
	FormatBMP  Format = "bmp"
)

// ParseFormat accepts a format name or a file extension, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.TrimPrefix(strings.ToLower(s), ".")) {
	case FormatPNG:
		return FormatPNG, nil
	case FormatWebP:
		return FormatWebP, nil
	case FormatTGA:
		return FormatTGA, nil
	case FormatBMP:
		return FormatBMP, nil
	}
	return "", errors.Wrapf(ErrUnsupportedFormat, "%q", s)
}

// FormatFromPath picks a format from the path's extension, defaulting to PNG
// when there is none.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return FormatPNG, nil
	}
	return ParseFormat(ext)
}

// Options controls encoding.
type Options struct {
	Format Format
	// Scale > 1 enlarges the frame by an integer factor with nearest-neighbor sampling.
	Scale int
}

// Image copies the visible part of v into a standard library image whose type
// carries v's color mode: *image.Gray, an opaque *image.RGBA, or *image.NRGBA.
func Image(v pixbuf.View) (image.Image, error) {
	mode, err := ColorMode(v.Depth)
	if err != nil {
		return nil, err
	}
	rect := image.Rect(0, 0, v.Width, v.Height)
	switch mode {
	case ModeGray:
		img := image.NewGray(rect)
		for y := 0; y < v.Height; y++ {
			copy(img.Pix[y*img.Stride:], v.Row(y))
		}
		return img, nil
	case ModeRGB:
		img := image.NewRGBA(rect)
		for y := 0; y < v.Height; y++ {
			src := v.Row(y)
			dst := img.Pix[y*img.Stride:]
			for x := 0; x < v.Width; x++ {
				dst[x*4+0] = src[x*3+0]
				dst[x*4+1] = src[x*3+1]
				dst[x*4+2] = src[x*3+2]
				dst[x*4+3] = 0xFF
			}
		}
		return img, nil
	default:
		img := image.NewNRGBA(rect)
		for y := 0; y < v.Height; y++ {
			copy(img.Pix[y*img.Stride:], v.Row(y))
		}
		return img, nil
	}
}

// Encode writes v to w.
func Encode(w io.Writer, v pixbuf.View, opts Options) error {
	img, err := Image(v)
	if err != nil {
		return err
	}
	if opts.Scale > 1 {
		img = scale(img, opts.Scale)
	}

	format := opts.Format
	if format == "" {
		format = FormatPNG
	}
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatWebP:
		err = nativewebp.Encode(w, toNRGBA(img), nil)
	case FormatTGA:
		err = tga.Encode(w, toNRGBA(img))
	case FormatBMP:
		err = bmp.Encode(w, img)
	default:
		return errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", format)
	}
	return nil
}

// SaveFile encodes v into the file at path, creating or truncating it. An
// empty opts.Format is inferred from the extension.
func SaveFile(path string, v pixbuf.View, opts Options) error {
	if opts.Format == "" {
		format, err := FormatFromPath(path)
		if err != nil {
			return err
		}
		opts.Format = format
	}
	if _, err := ColorMode(v.Depth); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create image file")
	}
	if err := Encode(f, v, opts); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "failed to close image file")
	}
	return nil
}

func scale(img image.Image, factor int) image.Image {
	b := img.Bounds()
	rect := image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor)
	var dst draw.Image
	switch img.(type) {
	case *image.Gray:
		dst = image.NewGray(rect)
	case *image.RGBA:
		dst = image.NewRGBA(rect)
	default:
		dst = image.NewNRGBA(rect)
	}
	xdraw.NearestNeighbor.Scale(dst, rect, img, b, xdraw.Src, nil)
	return dst
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	b := img.Bounds()
	n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(n, n.Bounds(), img, b.Min, draw.Src)
	return n
}
