package frameloop

import "time"

// DeltaTimer measures the time between consecutive frames.
type DeltaTimer struct {
	time.Time
	now func() time.Time
}

// Next returns the time since the previous call, zero on the first one.
func (d *DeltaTimer) Next() time.Duration {
	// acquire timestamp exactly once to ensure we're not accumulating error
	var now time.Time
	if d.now != nil {
		now = d.now()
	} else {
		now = time.Now()
	}

	defer d.Set(now)
	if d.IsZero() {
		return 0
	}
	return now.Sub(d.Time)
}

func (d *DeltaTimer) Set(t time.Time) {
	d.Time = t
}
