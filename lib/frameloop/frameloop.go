package frameloop

import (
	"errors"
	"time"

	"github.com/fosdem/glwin/lib/input"
	"github.com/fosdem/glwin/lib/log"
)

// Session is the part of a window session the loop drives.
type Session interface {
	Pump() bool
	Input() input.Snapshot
	Shutdown() int
}

// FrameFunc renders one frame from the snapshot of that frame. dt is the
// time since the previous frame. Returning an error ends the loop.
type FrameFunc func(snap *input.Snapshot, dt time.Duration) error

// ErrStop ends the loop from a frame without counting as a failure.
var ErrStop = errors.New("stop requested")

// Run pumps s until it reports quit or frame fails, then shuts s down and
// returns the status the process should exit with.
func Run(s Session, frame FrameFunc, l *log.Logger) int {
	if l == nil {
		l = log.Discard()
	}
	l = l.With("frameloop")

	var (
		timer    DeltaTimer
		frameErr error
	)
	stats := NewStats(time.Now())
	for s.Pump() {
		snap := s.Input()
		frameErr = frame(&snap, timer.Next())
		if errors.Is(frameErr, ErrStop) {
			l.Debug("frame asked to stop")
			frameErr = nil
			break
		}
		if frameErr != nil {
			l.Error("frame failed, stopping: %s", frameErr)
			break
		}
		if stats.Update(time.Now()) {
			l.Trace("%d fps", stats.FPS)
		}
	}

	status := s.Shutdown()
	if frameErr != nil && status == 0 {
		status = 1
	}
	return status
}
