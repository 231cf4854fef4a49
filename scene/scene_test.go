package scene

import (
	"errors"
	"math"
	"testing"

	"sineplot/graph"
	"sineplot/pixbuf"
)

func TestNewRejectsTooFewSamples(t *testing.T) {
	p := DefaultParams()
	p.Samples = 1
	if _, err := New(p); !errors.Is(err, ErrTooFewSamples) {
		t.Fatalf("New err=%v, want ErrTooFewSamples", err)
	}
	p = DefaultParams()
	p.XMax = p.XMin
	if _, err := New(p); err == nil {
		t.Fatal("New accepted an empty x range")
	}
}

func TestUpdateWrapsPhases(t *testing.T) {
	s, err := New(DefaultParams())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 1000; i++ {
		s.Update(0.37)
		for j, p := range s.Phases() {
			if p < 0 || p >= 2*math.Pi {
				t.Fatalf("step %d: phase %d = %v out of [0, 2π)", i, j, p)
			}
		}
	}
}

func TestUpdateRates(t *testing.T) {
	s, err := New(DefaultParams())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Update(1)
	want := []float64{math.Pi / 4, math.Pi / 8, math.Pi / 12}
	for i, p := range s.Phases() {
		if math.Abs(p-want[i]) > 1e-12 {
			t.Fatalf("phase %d = %v, want %v", i, p, want[i])
		}
	}
}

func TestUpdateIgnoresBadDeltas(t *testing.T) {
	s, err := New(DefaultParams())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, dt := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		s.Update(dt)
	}
	for i, p := range s.Phases() {
		if p != 0 {
			t.Fatalf("phase %d = %v after invalid deltas", i, p)
		}
	}
}

func TestDrawPlotsEveryWave(t *testing.T) {
	buf, err := pixbuf.New(480, 272, 0, pixbuf.Depth32, nil)
	if err != nil {
		t.Fatalf("pixbuf.New: %v", err)
	}
	g, err := graph.New(-2*math.Pi, -2, 2*math.Pi, 2, buf)
	if err != nil {
		t.Fatalf("graph.New: %v", err)
	}
	s, err := New(DefaultParams())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Update(0.5)
	s.Draw(g)

	counts := map[pixbuf.Color]int{}
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			c, _ := buf.Pixel(x, y)
			counts[c]++
		}
	}
	if counts[DefaultBackground] == 0 {
		t.Fatal("background not drawn")
	}
	for i, w := range DefaultWaves {
		if counts[w.Color] == 0 {
			t.Fatalf("wave %d color %08x not drawn", i, w.Color)
		}
	}
	if len(counts) != 1+len(DefaultWaves) {
		t.Fatalf("unexpected colors in buffer: %v", counts)
	}
	// Amplitude 1.5 keeps every curve below row 34.
	for x := 0; x < buf.Width(); x++ {
		if c, _ := buf.Pixel(x, 0); c != DefaultBackground {
			t.Fatalf("pixel (%d,0) drawn: %08x", x, c)
		}
	}
}

func TestDrawUnconfiguredGraphIsNoop(t *testing.T) {
	s, err := New(DefaultParams())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Draw(&graph.Graph{})
}
