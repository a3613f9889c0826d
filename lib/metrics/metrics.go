package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FramesPumped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glwin_frames_pumped_total",
		Help: "Total number of pump cycles run by window sessions",
	})
	Messages = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glwin_messages_total",
		Help: "Total number of native messages drained, by translated kind",
	}, []string{"kind"})
	InputDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glwin_input_dropped_total",
		Help: "Total number of key or button messages that mapped to no known identifier",
	})
	Diagnostics = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glwin_gl_diagnostics_total",
		Help: "Total number of driver diagnostics received, by log tier",
	}, []string{"tier"})
	ContextFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glwin_context_failures_total",
		Help: "Total number of failed context negotiations, by failing step",
	}, []string{"step"})
	FPS = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "glwin_frames_per_second",
		Help: "Frames rendered by the frame loop during the last full second",
	})
	Uptime = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "glwin_frame_loop_uptime_seconds",
		Help: "Time since the frame loop started",
	})
)
