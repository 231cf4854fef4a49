// Package graph maps a continuous Cartesian domain onto a pixel buffer.
//
// The domain's (xmin, ymin) corner is the bottom left of the buffer and
// (xmax, ymax) the top right, so the y axis is flipped relative to pixel rows.
package graph

import (
	"errors"
	"fmt"
	"math"

	"sineplot/pixbuf"
)

var (
	ErrDegenerateDomain = errors.New("graph: degenerate domain")
	ErrNoTarget         = errors.New("graph: no target buffer")
)

// Graph plots domain points into a borrowed buffer. The zero value is
// unconfigured and plots nothing.
type Graph struct {
	xmin, ymin float64
	xmax, ymax float64
	target     *pixbuf.Buffer
}

// New binds the domain [xmin,xmax] x [ymin,ymax] to target.
func New(xmin, ymin, xmax, ymax float64, target *pixbuf.Buffer) (*Graph, error) {
	if target == nil {
		return nil, ErrNoTarget
	}
	if !(xmax > xmin) || !(ymax > ymin) || !finite(xmax-xmin) || !finite(ymax-ymin) {
		return nil, fmt.Errorf("%w: x [%g, %g] y [%g, %g]", ErrDegenerateDomain, xmin, xmax, ymin, ymax)
	}
	return &Graph{
		xmin:   xmin,
		ymin:   ymin,
		xmax:   xmax,
		ymax:   ymax,
		target: target,
	}, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Configured reports whether g has a domain and target.
func (g *Graph) Configured() bool { return g != nil && g.target != nil }

// Bounds returns the domain corners.
func (g *Graph) Bounds() (xmin, ymin, xmax, ymax float64) {
	return g.xmin, g.ymin, g.xmax, g.ymax
}

// Target returns the buffer g writes into.
func (g *Graph) Target() *pixbuf.Buffer { return g.target }

// Map converts a domain point to a pixel coordinate.
//
// Pixel indices are floor((x-xmin)/(xmax-xmin)*width) and
// floor((ymax-y)/(ymax-ymin)*height). Points outside the closed domain, and
// NaN coordinates, are not mapped. The far edges x == xmax and y == ymin
// compute to width and height and are folded onto the last column and row.
func (g *Graph) Map(x, y float64) (px, py int, ok bool) {
	if !g.Configured() {
		return 0, 0, false
	}
	if !(x >= g.xmin && x <= g.xmax && y >= g.ymin && y <= g.ymax) {
		return 0, 0, false
	}

	w := g.target.Width()
	h := g.target.Height()
	px = int(math.Floor((x - g.xmin) / (g.xmax - g.xmin) * float64(w)))
	py = int(math.Floor((g.ymax - y) / (g.ymax - g.ymin) * float64(h)))
	if px >= w {
		px = w - 1
	}
	if py >= h {
		py = h - 1
	}
	return px, py, true
}

// PlotPoint writes one pixel for the domain point (x, y). Points outside the
// domain are dropped without touching the buffer. It reports whether a pixel
// was written.
func (g *Graph) PlotPoint(x, y float64, c pixbuf.Color) bool {
	px, py, ok := g.Map(x, y)
	if !ok {
		return false
	}
	g.target.SetPixel(px, py, c)
	return true
}
