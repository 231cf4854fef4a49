package hal

import "time"

// HostTime measures frame deltas against a monotonic clock.
type HostTime struct {
	now  func() time.Time
	last time.Time
}

// NewHostTime returns a clock backed by time.Now.
func NewHostTime() *HostTime {
	return NewHostTimeWithClock(time.Now)
}

// NewHostTimeWithClock returns a clock reading now; nil means time.Now.
func NewHostTimeWithClock(now func() time.Time) *HostTime {
	if now == nil {
		now = time.Now
	}
	return &HostTime{now: now}
}

func (t *HostTime) Delta() float64 {
	now := t.now()
	if t.last.IsZero() {
		t.last = now
		return 0
	}
	d := now.Sub(t.last)
	t.last = now
	if d < 0 {
		return 0
	}
	return d.Seconds()
}

// FixedTime reports the same step every frame, for deterministic runs.
type FixedTime float64

// FixedTimeHz steps 1/hz seconds per frame.
func FixedTimeHz(hz int) FixedTime {
	if hz <= 0 {
		return 0
	}
	return FixedTime(1 / float64(hz))
}

func (t FixedTime) Delta() float64 {
	if t < 0 {
		return 0
	}
	return float64(t)
}
