package hal

import "sineplot/pixbuf"

// expandRGBA copies v into dst as tightly packed R, G, B, A rows, the layout
// ebiten.Image.WritePixels takes. dst must hold Width*Height*4 bytes.
func expandRGBA(dst []byte, v pixbuf.View) {
	for y := 0; y < v.Height; y++ {
		src := v.Row(y)
		row := dst[y*v.Width*4 : (y+1)*v.Width*4]
		switch v.Depth {
		case pixbuf.Depth8:
			for x, g := range src {
				row[x*4+0] = g
				row[x*4+1] = g
				row[x*4+2] = g
				row[x*4+3] = 0xFF
			}
		case pixbuf.Depth24:
			for x := 0; x < v.Width; x++ {
				row[x*4+0] = src[x*3+0]
				row[x*4+1] = src[x*3+1]
				row[x*4+2] = src[x*3+2]
				row[x*4+3] = 0xFF
			}
		default:
			copy(row, src)
		}
	}
}
