// Package glcontexttest provides an in-memory glcontext.Driver for tests.
package glcontexttest

import (
	"errors"
	"fmt"

	"github.com/fosdem/glwin/lib/glcontext"
)

// Step names accepted by Driver.FailAt, in handshake order.
const (
	StepSurface             = "surface"
	StepPixelFormat         = "pixel_format"
	StepSetPixelFormat      = "set_pixel_format"
	StepBaselineContext     = "baseline_context"
	StepBaselineActivation  = "baseline_activation"
	StepExtensions          = "extensions"
	StepVersionedContext    = "versioned_context"
	StepVersionedActivation = "versioned_activation"
	StepFunctionTable       = "function_table"
	StepDebugCallback       = "debug_callback"
)

var Steps = []string{
	StepSurface,
	StepPixelFormat,
	StepSetPixelFormat,
	StepBaselineContext,
	StepBaselineActivation,
	StepExtensions,
	StepVersionedContext,
	StepVersionedActivation,
	StepFunctionTable,
	StepDebugCallback,
}

// Driver simulates the native context API and keeps enough bookkeeping to
// check for leaks.
type Driver struct {
	// FailAt makes the named step fail.
	FailAt string

	nextHandle uintptr
	versioned  map[glcontext.Context]bool

	Surfaces map[glcontext.Surface]bool
	Contexts map[glcontext.Context]bool
	Current  glcontext.Context
	Format   int
	Swaps    int
	Callback glcontext.DiagnosticFunc
	Calls    []string
}

func New() *Driver {
	return &Driver{
		nextHandle: 0x100,
		versioned:  make(map[glcontext.Context]bool),
		Surfaces:   make(map[glcontext.Surface]bool),
		Contexts:   make(map[glcontext.Context]bool),
	}
}

func (d *Driver) handle() uintptr {
	d.nextHandle++
	return d.nextHandle
}

func (d *Driver) step(name string) error {
	d.Calls = append(d.Calls, name)
	if d.FailAt == name {
		return fmt.Errorf("simulated %s failure", name)
	}
	return nil
}

// Leaked reports any surface or context still alive, or a context still
// current.
func (d *Driver) Leaked() error {
	var errs []error
	if len(d.Surfaces) > 0 {
		errs = append(errs, fmt.Errorf("%d surface(s) not released", len(d.Surfaces)))
	}
	if len(d.Contexts) > 0 {
		errs = append(errs, fmt.Errorf("%d context(s) not deleted", len(d.Contexts)))
	}
	if d.Current != 0 {
		errs = append(errs, fmt.Errorf("context %#x left current", d.Current))
	}
	return errors.Join(errs...)
}

func (d *Driver) IsVersioned(c glcontext.Context) bool {
	return d.versioned[c]
}

func (d *Driver) AcquireSurface(window uintptr) (glcontext.Surface, error) {
	if err := d.step(StepSurface); err != nil {
		return 0, err
	}
	if window == 0 {
		return 0, errors.New("no window")
	}
	s := glcontext.Surface(d.handle())
	d.Surfaces[s] = true
	return s, nil
}

func (d *Driver) ReleaseSurface(window uintptr, s glcontext.Surface) {
	d.Calls = append(d.Calls, "release_surface")
	delete(d.Surfaces, s)
}

func (d *Driver) ChoosePixelFormat(s glcontext.Surface, req glcontext.PixelFormat) (int, error) {
	if err := d.step(StepPixelFormat); err != nil {
		return 0, err
	}
	if !req.DoubleBuffer || req.DepthBits < 24 {
		return 0, errors.New("unexpected pixel format request")
	}
	return 7, nil
}

func (d *Driver) SetPixelFormat(s glcontext.Surface, format int) error {
	if err := d.step(StepSetPixelFormat); err != nil {
		return err
	}
	d.Format = format
	return nil
}

func (d *Driver) CreateBaselineContext(s glcontext.Surface) (glcontext.Context, error) {
	if err := d.step(StepBaselineContext); err != nil {
		return 0, err
	}
	c := glcontext.Context(d.handle())
	d.Contexts[c] = true
	return c, nil
}

func (d *Driver) MakeCurrent(s glcontext.Surface, c glcontext.Context) error {
	if c == 0 {
		d.Calls = append(d.Calls, "release_current")
		d.Current = 0
		return nil
	}
	step := StepBaselineActivation
	if d.versioned[c] {
		step = StepVersionedActivation
	}
	if err := d.step(step); err != nil {
		return err
	}
	if !d.Contexts[c] {
		return fmt.Errorf("context %#x does not exist", c)
	}
	d.Current = c
	return nil
}

func (d *Driver) DeleteContext(c glcontext.Context) {
	d.Calls = append(d.Calls, "delete_context")
	if d.Current == c {
		d.Current = 0
	}
	delete(d.Contexts, c)
}

func (d *Driver) LoadExtensions() error {
	if err := d.step(StepExtensions); err != nil {
		return err
	}
	if d.Current == 0 {
		return errors.New("no current context")
	}
	return nil
}

func (d *Driver) CreateVersionedContext(s glcontext.Surface, v glcontext.Version) (glcontext.Context, error) {
	if err := d.step(StepVersionedContext); err != nil {
		return 0, err
	}
	c := glcontext.Context(d.handle())
	d.Contexts[c] = true
	d.versioned[c] = true
	return c, nil
}

func (d *Driver) LoadFunctions() error {
	if err := d.step(StepFunctionTable); err != nil {
		return err
	}
	if !d.versioned[d.Current] {
		return errors.New("functions loaded without the versioned context current")
	}
	return nil
}

func (d *Driver) RegisterDebugCallback(cb glcontext.DiagnosticFunc) error {
	if err := d.step(StepDebugCallback); err != nil {
		return err
	}
	d.Callback = cb
	return nil
}

func (d *Driver) UnregisterDebugCallback() {
	d.Calls = append(d.Calls, "unregister_debug")
	d.Callback = nil
}

func (d *Driver) SwapBuffers(s glcontext.Surface) error {
	if !d.Surfaces[s] {
		return fmt.Errorf("swap on unknown surface %#x", s)
	}
	d.Swaps++
	return nil
}
