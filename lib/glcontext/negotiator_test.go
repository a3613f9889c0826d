package glcontext_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fosdem/glwin/lib/glcontext"
	"github.com/fosdem/glwin/lib/glcontext/glcontexttest"
	"github.com/fosdem/glwin/lib/log"
	"github.com/fosdem/glwin/lib/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

const window = 0x42

func TestNegotiateSuccess(t *testing.T) {
	d := glcontexttest.New()
	n := glcontext.NewNegotiator(d, glcontext.DefaultVersion, nil)

	gc, err := n.Negotiate(window)
	if err != nil {
		t.Fatalf("Negotiate: %v", err)
	}
	if d.Current != gc.Context || !d.IsVersioned(gc.Context) {
		t.Fatalf("current context = %#x, want versioned %#x", d.Current, gc.Context)
	}
	if len(d.Contexts) != 1 {
		t.Fatalf("%d contexts alive, want only the versioned one", len(d.Contexts))
	}
	if d.Callback == nil {
		t.Fatal("diagnostic callback not registered")
	}

	if err := gc.SwapBuffers(); err != nil || d.Swaps != 1 {
		t.Fatalf("SwapBuffers err = %v swaps = %d", err, d.Swaps)
	}

	if err := gc.Destroy(); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	if err := d.Leaked(); err != nil {
		t.Fatalf("after Destroy: %v", err)
	}
	calls := len(d.Calls)
	if err := gc.Destroy(); err != nil {
		t.Fatalf("second Destroy: %v", err)
	}
	if len(d.Calls) != calls {
		t.Fatal("second Destroy reached the driver")
	}
	if gc.SwapBuffers() == nil {
		t.Fatal("swap after destroy succeeded")
	}
}

func TestNegotiateFailsAtEveryStep(t *testing.T) {
	sentinels := map[string]error{
		glcontexttest.StepSurface:             glcontext.ErrSurfaceUnavailable,
		glcontexttest.StepPixelFormat:         glcontext.ErrNoPixelFormat,
		glcontexttest.StepSetPixelFormat:      glcontext.ErrPixelFormatRejected,
		glcontexttest.StepBaselineContext:     glcontext.ErrBaselineContext,
		glcontexttest.StepBaselineActivation:  glcontext.ErrBaselineActivation,
		glcontexttest.StepExtensions:          glcontext.ErrExtensionsUnavailable,
		glcontexttest.StepVersionedContext:    glcontext.ErrVersionedContext,
		glcontexttest.StepVersionedActivation: glcontext.ErrVersionedActivation,
		glcontexttest.StepFunctionTable:       glcontext.ErrFunctionTable,
		glcontexttest.StepDebugCallback:       glcontext.ErrDebugCallback,
	}

	reasons := make(map[string]string)
	for _, step := range glcontexttest.Steps {
		t.Run(step, func(t *testing.T) {
			var out bytes.Buffer
			d := glcontexttest.New()
			d.FailAt = step
			n := glcontext.NewNegotiator(d, glcontext.DefaultVersion, log.New(&out, log.LevelTrace))
			before := testutil.ToFloat64(metrics.ContextFailures.WithLabelValues(step))

			gc, err := n.Negotiate(window)
			if err == nil {
				t.Fatal("Negotiate succeeded")
			}
			if gc != nil {
				t.Fatal("Negotiate returned a context alongside an error")
			}
			if !errors.Is(err, sentinels[step]) {
				t.Fatalf("error %v is not %v", err, sentinels[step])
			}
			if !strings.Contains(out.String(), sentinels[step].Error()) {
				t.Fatalf("reason %q not logged, log was %q", sentinels[step], out.String())
			}
			if err := d.Leaked(); err != nil {
				t.Fatalf("leak after failing at %s: %v", step, err)
			}
			if got := testutil.ToFloat64(metrics.ContextFailures.WithLabelValues(step)) - before; got != 1 {
				t.Fatalf("failure counter moved by %v", got)
			}
			// the handshake stops at the failing step
			if last := d.Calls[len(d.Calls)-1]; step != glcontexttest.StepSurface && last == step {
				t.Fatalf("no cleanup after %s: calls %v", step, d.Calls)
			}
			for prev, other := range reasons {
				if other == sentinels[step].Error() {
					t.Fatalf("%s and %s share reason %q", prev, step, other)
				}
			}
			reasons[step] = sentinels[step].Error()
		})
	}
}

func TestVersionedFailureLeavesNothingCurrent(t *testing.T) {
	d := glcontexttest.New()
	d.FailAt = glcontexttest.StepVersionedContext
	n := glcontext.NewNegotiator(d, glcontext.DefaultVersion, nil)

	if _, err := n.Negotiate(window); err == nil {
		t.Fatal("Negotiate succeeded")
	}
	if d.Current != 0 {
		t.Fatalf("context %#x still current", d.Current)
	}
	if len(d.Contexts) != 0 {
		t.Fatalf("baseline context not deleted")
	}
}

func TestRouteDiagnostic(t *testing.T) {
	tests := []struct {
		severity uint32
		level    string
		tier     string
	}{
		{glcontext.SeverityHigh, "CRITICAL", "critical"},
		{glcontext.SeverityMedium, "ERROR", "error"},
		{glcontext.SeverityLow, "WARN", "warn"},
		{glcontext.SeverityNotification, "TRACE", "trace"},
		{0x1234, "DEBUG", "debug"},
	}
	for _, tt := range tests {
		t.Run(tt.tier, func(t *testing.T) {
			var out bytes.Buffer
			l := log.New(&out, log.LevelTrace)
			before := testutil.ToFloat64(metrics.Diagnostics.WithLabelValues(tt.tier))

			glcontext.RouteDiagnostic(l, glcontext.Diagnostic{Source: 1, Category: 2, ID: 3, Severity: tt.severity, Message: "buffer detail"})

			got := out.String()
			if !strings.Contains(got, tt.level) || !strings.Contains(got, "buffer detail") {
				t.Fatalf("log %q lacks level %s or message", got, tt.level)
			}
			if tt.tier == "debug" && !strings.Contains(got, "unrecognised severity") {
				t.Fatalf("fallback notice missing: %q", got)
			}
			if d := testutil.ToFloat64(metrics.Diagnostics.WithLabelValues(tt.tier)) - before; d != 1 {
				t.Fatalf("tier counter moved by %v", d)
			}
		})
	}
}

func TestRegisteredCallbackRoutesToLog(t *testing.T) {
	var out bytes.Buffer
	d := glcontexttest.New()
	n := glcontext.NewNegotiator(d, glcontext.DefaultVersion, log.New(&out, log.LevelTrace))
	gc, err := n.Negotiate(window)
	if err != nil {
		t.Fatalf("Negotiate: %v", err)
	}
	defer gc.Destroy()

	d.Callback(glcontext.Diagnostic{Severity: glcontext.SeverityMedium, Message: "invalid operation"})
	if !strings.Contains(out.String(), "invalid operation") {
		t.Fatalf("diagnostic not logged: %q", out.String())
	}
}
