package glcontext

import "fmt"

// Surface is a native drawing surface (a device context on Win32).
type Surface uintptr

// Context is a native rendering context handle. The zero value means none.
type Context uintptr

// PixelFormat lists the minimum surface properties the negotiator asks for.
type PixelFormat struct {
	DoubleBuffer bool
	ColorBits    uint8
	DepthBits    uint8
	StencilBits  uint8
	AlphaBits    uint8
	AccumBits    uint8
}

// RequiredPixelFormat is double-buffered RGBA with a 24-bit depth buffer and
// no stencil, alpha or accumulation planes.
var RequiredPixelFormat = PixelFormat{
	DoubleBuffer: true,
	ColorBits:    24,
	DepthBits:    24,
}

// Surplus names the planes got carries beyond what req asked for. A driver
// may hand out such a format as its closest match; it still works but costs
// memory the renderer never uses.
func (req PixelFormat) Surplus(got PixelFormat) []string {
	var extra []string
	for _, p := range []struct {
		name      string
		want, has uint8
	}{
		{"stencil", req.StencilBits, got.StencilBits},
		{"alpha", req.AlphaBits, got.AlphaBits},
		{"accumulation", req.AccumBits, got.AccumBits},
	} {
		if p.has > p.want {
			extra = append(extra, fmt.Sprintf("%s %d", p.name, p.has))
		}
	}
	return extra
}

// Version selects the context the negotiator requests through the extended
// creation entry point.
type Version struct {
	Major, Minor int
	Core         bool
	Debug        bool
}

var DefaultVersion = Version{Major: 4, Minor: 6, Core: true, Debug: true}

// Driver exposes the native context API one step at a time, so the
// negotiator can own the ordering and the cleanup on every failure path.
type Driver interface {
	AcquireSurface(window uintptr) (Surface, error)
	ReleaseSurface(window uintptr, s Surface)

	// ChoosePixelFormat returns a format index matching req.
	ChoosePixelFormat(s Surface, req PixelFormat) (int, error)
	SetPixelFormat(s Surface, format int) error

	CreateBaselineContext(s Surface) (Context, error)
	// MakeCurrent binds c to s on the calling thread. A zero c releases
	// whatever is current.
	MakeCurrent(s Surface, c Context) error
	DeleteContext(c Context)

	// LoadExtensions resolves the extended entry points, including the
	// versioned creation call. It needs some context to be current.
	LoadExtensions() error
	CreateVersionedContext(s Surface, v Version) (Context, error)

	// LoadFunctions loads the full GL function table against the current
	// context.
	LoadFunctions() error
	RegisterDebugCallback(cb DiagnosticFunc) error
	// UnregisterDebugCallback undoes RegisterDebugCallback. It is called
	// before the context that owns the callback is deleted.
	UnregisterDebugCallback()

	SwapBuffers(s Surface) error
}
