package frameloop

import (
	"time"

	"github.com/fosdem/glwin/lib/metrics"
)

// Stats counts rendered frames and reports them once per second.
type Stats struct {
	FPS    uint64
	Uptime time.Duration

	frameCounter uint64
	frameTimer   time.Time
	start        time.Time
}

func NewStats(now time.Time) *Stats {
	return &Stats{start: now, frameTimer: now}
}

// Update records one frame at now. It returns true when a new FPS value
// was taken.
func (s *Stats) Update(now time.Time) bool {
	s.frameCounter++
	s.Uptime = now.Sub(s.start)
	metrics.Uptime.Set(s.Uptime.Seconds())

	if now.Sub(s.frameTimer) < time.Second {
		return false
	}
	s.FPS = s.frameCounter
	s.frameCounter = 0
	s.frameTimer = now
	metrics.FPS.Set(float64(s.FPS))
	return true
}
