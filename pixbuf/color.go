package pixbuf

import "image/color"

// Color is a packed alpha-blue-green-red pixel value: A<<24 | B<<16 | G<<8 | R.
//
// Stored little-endian this is the byte sequence R, G, B, A, which is what
// image.NRGBA, PNG RGBA rows and SDL's ABGR8888 surfaces expect.
type Color uint32

// Model converts any color.Color to a Color.
var Model = color.ModelFunc(func(c color.Color) color.Color { return FromColor(c) })

// Pack converts normalized components, in alpha-blue-green-red order, to a
// Color. Components are clamped to [0,1] and truncated to 8 bits.
func Pack(a, b, g, r float64) Color {
	return Color(channel(a)<<24 | channel(b)<<16 | channel(g)<<8 | channel(r))
}

// FromRGBA packs 8-bit straight (non-premultiplied) components.
func FromRGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

// FromColor converts c through the non-premultiplied RGBA model.
func FromColor(c color.Color) Color {
	if p, ok := c.(Color); ok {
		return p
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromRGBA(n.R, n.G, n.B, n.A)
}

func channel(v float64) uint32 {
	// Also catches NaN.
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 0xFF
	}
	return uint32(v * 0xFF)
}

// Components returns the 8-bit channels in packing order.
func (c Color) Components() (a, b, g, r uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// NRGBA returns c as a straight-alpha color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	a, b, g, r := c.Components()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func (c Color) gray() uint8 {
	_, b, g, r := c.Components()
	return color.GrayModel.Convert(color.RGBA{R: r, G: g, B: b, A: 0xFF}).(color.Gray).Y
}
