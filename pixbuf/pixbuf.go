// Package pixbuf implements a packed-color pixel buffer with a fixed bit depth
// and row stride.
//
// Writes are bounds-checked: out-of-range coordinates are dropped silently.
// A Buffer is not safe for concurrent use.
package pixbuf

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

var (
	ErrInvalidSize      = errors.New("pixbuf: invalid size")
	ErrUnsupportedDepth = errors.New("pixbuf: unsupported depth")
	ErrStorageTooSmall  = errors.New("pixbuf: storage too small")
)

// Depth is the number of bits per pixel.
type Depth int

const (
	// Depth8 is one grayscale byte per pixel.
	Depth8 Depth = 8
	// Depth24 is an R, G, B byte triple per pixel.
	Depth24 Depth = 24
	// Depth32 is an R, G, B, A byte quad per pixel (a little-endian Color).
	Depth32 Depth = 32
)

// BytesPerPixel returns the storage size of one pixel, or 0 if d is unsupported.
func (d Depth) BytesPerPixel() int {
	switch d {
	case Depth8:
		return 1
	case Depth24:
		return 3
	case Depth32:
		return 4
	}
	return 0
}

// Valid reports whether d is a supported depth.
func (d Depth) Valid() bool { return d.BytesPerPixel() != 0 }

// Buffer is a rectangular grid of pixels stored row by row, stride pixels apart.
type Buffer struct {
	width  int
	height int
	stride int
	depth  Depth
	bpp    int
	pix    []byte
}

// New creates a width x height buffer.
//
// A zero stride defaults to width. If storage is nil a zeroed block is
// allocated; otherwise storage is adopted (not copied) and must hold at least
// height*stride pixels.
func New(width, height, stride int, depth Depth, storage []byte) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if stride == 0 {
		stride = width
	}
	if stride < width {
		return nil, fmt.Errorf("%w: stride %d < width %d", ErrInvalidSize, stride, width)
	}
	bpp := depth.BytesPerPixel()
	if bpp == 0 {
		return nil, fmt.Errorf("%w: %d bits per pixel", ErrUnsupportedDepth, depth)
	}

	n := height * stride * bpp
	if n/bpp/stride != height {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrInvalidSize, stride, height)
	}
	if storage == nil {
		storage = make([]byte, n)
	} else if len(storage) < n {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrStorageTooSmall, len(storage), n)
	}

	return &Buffer{
		width:  width,
		height: height,
		stride: stride,
		depth:  depth,
		bpp:    bpp,
		pix:    storage[:n],
	}, nil
}

func (b *Buffer) Width() int   { return b.width }
func (b *Buffer) Height() int  { return b.height }
func (b *Buffer) Stride() int  { return b.stride }
func (b *Buffer) Depth() Depth { return b.depth }

// View exposes the backing storage without copying it.
func (b *Buffer) View() View {
	return View{
		Pix:    b.pix,
		Width:  b.width,
		Height: b.height,
		Stride: b.stride,
		Depth:  b.depth,
	}
}

func (b *Buffer) offset(x, y int) int {
	return (y*b.stride + x) * b.bpp
}

// SetPixel writes c at column x, row y. Out-of-range coordinates are ignored.
func (b *Buffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	var enc [4]byte
	n := b.encode(&enc, c)
	copy(b.pix[b.offset(x, y):], enc[:n])
}

// SetAllPixels fills every addressable pixel with c. Row padding past the
// visible width is left as is.
func (b *Buffer) SetAllPixels(c Color) {
	var enc [4]byte
	n := b.encode(&enc, c)
	rowBytes := b.width * b.bpp
	for y := 0; y < b.height; y++ {
		off := b.offset(0, y)
		row := b.pix[off : off+rowBytes]
		for i := 0; i < len(row); i += n {
			copy(row[i:i+n], enc[:n])
		}
	}
}

// Pixel reads back the pixel at (x, y). Depth 8 and 24 pixels come back opaque,
// with gray replicated across channels for depth 8.
func (b *Buffer) Pixel(x, y int) (Color, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, false
	}
	p := b.pix[b.offset(x, y):]
	switch b.depth {
	case Depth8:
		return FromRGBA(p[0], p[0], p[0], 0xFF), true
	case Depth24:
		return FromRGBA(p[0], p[1], p[2], 0xFF), true
	default:
		return FromRGBA(p[0], p[1], p[2], p[3]), true
	}
}

func (b *Buffer) encode(dst *[4]byte, c Color) int {
	a, bl, g, r := c.Components()
	switch b.depth {
	case Depth8:
		dst[0] = c.gray()
	case Depth24:
		dst[0], dst[1], dst[2] = r, g, bl
	default:
		dst[0], dst[1], dst[2], dst[3] = r, g, bl, a
	}
	return b.bpp
}

// ColorModel implements image.Image.
func (b *Buffer) ColorModel() color.Model { return Model }

// Bounds implements image.Image.
func (b *Buffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.width, b.height) }

// At implements image.Image.
func (b *Buffer) At(x, y int) color.Color {
	c, _ := b.Pixel(x, y)
	return c
}

// View is a raw, read-only window onto a Buffer's storage.
type View struct {
	Pix    []byte
	Width  int
	Height int
	Stride int
	Depth  Depth
}

// RowBytes returns the distance in bytes between the starts of two rows.
func (v View) RowBytes() int { return v.Stride * v.Depth.BytesPerPixel() }

// Row returns the visible bytes of row y.
func (v View) Row(y int) []byte {
	bpp := v.Depth.BytesPerPixel()
	off := y * v.Stride * bpp
	return v.Pix[off : off+v.Width*bpp]
}
