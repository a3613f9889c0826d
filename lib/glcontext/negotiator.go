package glcontext

import (
	"errors"
	"fmt"

	"github.com/fosdem/glwin/lib/log"
	"github.com/fosdem/glwin/lib/metrics"
)

// One error per handshake step. Negotiate wraps them, so callers can test
// with errors.Is and still read the driver's reason in the message.
var (
	ErrSurfaceUnavailable    = errors.New("drawing surface unavailable")
	ErrNoPixelFormat         = errors.New("no matching pixel format")
	ErrPixelFormatRejected   = errors.New("pixel format rejected by surface")
	ErrBaselineContext       = errors.New("baseline context creation failed")
	ErrBaselineActivation    = errors.New("baseline context activation failed")
	ErrExtensionsUnavailable = errors.New("extended entry points unavailable")
	ErrVersionedContext      = errors.New("versioned context creation failed")
	ErrVersionedActivation   = errors.New("versioned context activation failed")
	ErrFunctionTable         = errors.New("function table load failed")
	ErrDebugCallback         = errors.New("diagnostic callback registration failed")
)

// Negotiator provisions a versioned rendering context for a window. It never
// retries: the first failing step ends the handshake.
type Negotiator struct {
	driver  Driver
	version Version
	format  PixelFormat
	log     *log.Logger
}

func NewNegotiator(d Driver, v Version, l *log.Logger) *Negotiator {
	if l == nil {
		l = log.Discard()
	}
	return &Negotiator{
		driver:  d,
		version: v,
		format:  RequiredPixelFormat,
		log:     l.With("glcontext"),
	}
}

func (n *Negotiator) fail(step string, sentinel error, cause error) error {
	metrics.ContextFailures.WithLabelValues(step).Inc()
	var err error
	if cause != nil {
		err = fmt.Errorf("%w: %w", sentinel, cause)
	} else {
		err = sentinel
	}
	n.log.Error("context negotiation failed: %s", err)
	return err
}

// Negotiate runs the handshake against window. On failure everything
// acquired so far is released and no context is left current.
func (n *Negotiator) Negotiate(window uintptr) (*GraphicsContext, error) {
	d := n.driver

	surface, err := d.AcquireSurface(window)
	if err != nil {
		return nil, n.fail("surface", ErrSurfaceUnavailable, err)
	}
	n.log.Trace("acquired surface %#x for window %#x", surface, window)

	format, err := d.ChoosePixelFormat(surface, n.format)
	if err != nil {
		d.ReleaseSurface(window, surface)
		return nil, n.fail("pixel_format", ErrNoPixelFormat, err)
	}
	if err := d.SetPixelFormat(surface, format); err != nil {
		d.ReleaseSurface(window, surface)
		return nil, n.fail("set_pixel_format", ErrPixelFormatRejected, err)
	}
	n.log.Trace("pixel format %d applied", format)

	// A baseline context has to be current before the versioned creation
	// entry point can be resolved.
	baseline, err := d.CreateBaselineContext(surface)
	if err != nil {
		d.ReleaseSurface(window, surface)
		return nil, n.fail("baseline_context", ErrBaselineContext, err)
	}
	if err := d.MakeCurrent(surface, baseline); err != nil {
		d.DeleteContext(baseline)
		d.ReleaseSurface(window, surface)
		return nil, n.fail("baseline_activation", ErrBaselineActivation, err)
	}

	abandonBaseline := func() {
		_ = d.MakeCurrent(surface, 0)
		d.DeleteContext(baseline)
		d.ReleaseSurface(window, surface)
	}

	if err := d.LoadExtensions(); err != nil {
		abandonBaseline()
		return nil, n.fail("extensions", ErrExtensionsUnavailable, err)
	}

	ctx, err := d.CreateVersionedContext(surface, n.version)
	if err != nil {
		abandonBaseline()
		return nil, n.fail("versioned_context", ErrVersionedContext,
			fmt.Errorf("%d.%d: %w", n.version.Major, n.version.Minor, err))
	}
	if err := d.MakeCurrent(surface, ctx); err != nil {
		d.DeleteContext(ctx)
		abandonBaseline()
		return nil, n.fail("versioned_activation", ErrVersionedActivation, err)
	}
	d.DeleteContext(baseline)
	n.log.Debug("created OpenGL %d.%d context", n.version.Major, n.version.Minor)

	gc := &GraphicsContext{
		driver:  d,
		window:  window,
		Surface: surface,
		Context: ctx,
		log:     n.log,
	}

	if err := d.LoadFunctions(); err != nil {
		_ = gc.Destroy()
		return nil, n.fail("function_table", ErrFunctionTable, err)
	}

	diagLog := n.log.With("gl")
	if err := d.RegisterDebugCallback(func(diag Diagnostic) { RouteDiagnostic(diagLog, diag) }); err != nil {
		_ = gc.Destroy()
		return nil, n.fail("debug_callback", ErrDebugCallback, err)
	}
	gc.debugRegistered = true

	return gc, nil
}

// GraphicsContext is the surface and rendering context bound to one window.
type GraphicsContext struct {
	driver Driver
	window uintptr
	log    *log.Logger

	Surface Surface
	Context Context

	debugRegistered bool
	destroyed       bool
}

func (g *GraphicsContext) SwapBuffers() error {
	if g.destroyed {
		return errors.New("swap on destroyed context")
	}
	return g.driver.SwapBuffers(g.Surface)
}

// Destroy releases the context and its surface. Only the first call does
// anything.
func (g *GraphicsContext) Destroy() error {
	if g.destroyed {
		return nil
	}
	g.destroyed = true

	if g.debugRegistered {
		g.driver.UnregisterDebugCallback()
		g.debugRegistered = false
	}
	err := g.driver.MakeCurrent(g.Surface, 0)
	if err != nil {
		err = fmt.Errorf("could not release current context: %w", err)
		g.log.Warn("%s", err)
	}
	g.driver.DeleteContext(g.Context)
	g.driver.ReleaseSurface(g.window, g.Surface)
	g.Context = 0
	g.Surface = 0
	return err
}
