// Package hud draws a few lines of status text over a frame.
package hud

import (
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"sineplot/internal/buildinfo"
	"sineplot/pixbuf"
)

// Font is the bitmap font used for HUD text.
var Font tinyfont.Fonter = &tinyfont.TomThumb

// Color is the default HUD text color (opaque black).
var Color = pixbuf.Pack(1, 0, 0, 0)

// bufDisplay lets tinyfont draw into a pixel buffer.
type bufDisplay struct {
	buf *pixbuf.Buffer
}

var _ drivers.Displayer = bufDisplay{}

func (d bufDisplay) Size() (x, y int16) {
	if d.buf == nil {
		return 0, 0
	}
	return int16(clampInt16(d.buf.Width())), int16(clampInt16(d.buf.Height()))
}

// SetPixel clips through Buffer.SetPixel.
func (d bufDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.buf == nil {
		return
	}
	d.buf.SetPixel(int(x), int(y), pixbuf.FromColor(c))
}

func (d bufDisplay) Display() error { return nil }

func clampInt16(v int) int {
	if v > 0x7FFF {
		return 0x7FFF
	}
	return v
}

// Draw writes lines from the top-left corner of buf, one font line apart.
func Draw(buf *pixbuf.Buffer, lines []string, c pixbuf.Color) {
	if buf == nil {
		return
	}
	d := bufDisplay{buf: buf}
	fg := color.RGBAModel.Convert(c).(color.RGBA)

	adv := int16(Font.GetYAdvance())
	y := adv
	for _, line := range lines {
		tinyfont.WriteLine(d, Font, 1, y, line, fg)
		y += adv
	}
}

// Lines returns the default HUD text.
func Lines(frame uint64, fps float64) []string {
	return []string{
		"sineplot " + buildinfo.Short(),
		fmt.Sprintf("%.1f fps", fps),
		fmt.Sprintf("frame %d", frame),
	}
}
