// Package scene holds the animated sine-wave scene: per-wave phase state that
// advances with frame time, and the per-frame drawing into a graph.
package scene

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"sineplot/graph"
	"sineplot/pixbuf"
)

const twoPi = 2 * math.Pi

var ErrTooFewSamples = errors.New("scene: need at least 2 samples")

// Wave is one animated curve: y = amplitude * sin(x + Shift + phase), where
// phase advances by Rate radians per second.
type Wave struct {
	Shift float64
	Rate  float64
	Color pixbuf.Color
}

// DefaultWaves are three curves 120 degrees apart, drifting at different rates.
var DefaultWaves = []Wave{
	{Shift: 0, Rate: math.Pi / 4, Color: pixbuf.Pack(1, 0, 0, 1)},
	{Shift: twoPi / 360 * 120, Rate: math.Pi / 8, Color: pixbuf.Pack(1, 0, 1, 0)},
	{Shift: twoPi / 360 * 240, Rate: math.Pi / 12, Color: pixbuf.Pack(1, 1, 0, 0)},
}

// DefaultBackground is the light gray the buffer is cleared to each frame.
var DefaultBackground = pixbuf.Pack(1, 0.9, 0.9, 0.9)

// DefaultSamples matches stepping x by 0.01 across [-2π, 2π].
const DefaultSamples = 1257

// Params configures a scene.
type Params struct {
	XMin, XMax float64
	Samples    int
	Amplitude  float64
	Background pixbuf.Color
	Waves      []Wave
}

// DefaultParams returns the scene drawn by the sineplot window.
func DefaultParams() Params {
	return Params{
		XMin:       -twoPi,
		XMax:       twoPi,
		Samples:    DefaultSamples,
		Amplitude:  1.5,
		Background: DefaultBackground,
		Waves:      DefaultWaves,
	}
}

// State is the mutable animation state. It is advanced by Update and read by Draw.
type State struct {
	waves      []Wave
	phases     []float64
	xs         []float64
	amplitude  float64
	background pixbuf.Color
}

// New precomputes the sample positions for p.
func New(p Params) (*State, error) {
	if p.Samples < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSamples, p.Samples)
	}
	if !(p.XMax > p.XMin) {
		return nil, fmt.Errorf("scene: invalid x range [%g, %g]", p.XMin, p.XMax)
	}
	waves := append([]Wave(nil), p.Waves...)
	return &State{
		waves:      waves,
		phases:     make([]float64, len(waves)),
		xs:         floats.Span(make([]float64, p.Samples), p.XMin, p.XMax),
		amplitude:  p.Amplitude,
		background: p.Background,
	}, nil
}

// Update advances every phase by rate*dt, wrapped to [0, 2π).
// Non-positive and non-finite dt leave the state unchanged.
func (s *State) Update(dt float64) {
	if !(dt > 0) || math.IsInf(dt, 1) {
		return
	}
	for i, w := range s.waves {
		p := math.Mod(s.phases[i]+w.Rate*dt, twoPi)
		if p < 0 {
			p += twoPi
		}
		s.phases[i] = p
	}
}

// Phases returns a copy of the current phase offsets.
func (s *State) Phases() []float64 {
	return append([]float64(nil), s.phases...)
}

// Samples returns the number of x positions plotted per wave.
func (s *State) Samples() int { return len(s.xs) }

// Draw clears the graph's buffer and plots every wave at each sample position.
func (s *State) Draw(g *graph.Graph) {
	if !g.Configured() {
		return
	}
	g.Target().SetAllPixels(s.background)
	for _, x := range s.xs {
		for i, w := range s.waves {
			g.PlotPoint(x, s.amplitude*math.Sin(x+w.Shift+s.phases[i]), w.Color)
		}
	}
}
