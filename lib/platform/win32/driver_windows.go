//go:build windows

package win32

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
	"unsafe"

	"github.com/fosdem/glwin/lib/glcontext"
	"github.com/fosdem/glwin/lib/log"
	"github.com/go-gl/gl/v4.6-core/gl"
	pointer "github.com/mattn/go-pointer"
	"golang.org/x/sys/windows"
)

// Driver is the WGL implementation of glcontext.Driver.
type Driver struct {
	log *log.Logger

	createContextAttribs uintptr
	debugUserParam       unsafe.Pointer
}

func NewDriver(l *log.Logger) *Driver {
	if l == nil {
		l = log.Discard()
	}
	return &Driver{log: l.With("wgl")}
}

func (d *Driver) AcquireSurface(window uintptr) (glcontext.Surface, error) {
	dc, _, err := procGetDC.Call(window)
	if dc == 0 {
		return 0, callErr("GetDC", err)
	}
	return glcontext.Surface(dc), nil
}

func (d *Driver) ReleaseSurface(window uintptr, s glcontext.Surface) {
	procReleaseDC.Call(window, uintptr(s))
}

func (d *Driver) ChoosePixelFormat(s glcontext.Surface, req glcontext.PixelFormat) (int, error) {
	flags := uint32(pfdDrawToWindow | pfdSupportOpenGL)
	if req.DoubleBuffer {
		flags |= pfdDoubleBuffer
	}
	desired := pixelFormatDescriptor{
		nSize:        uint16(unsafe.Sizeof(pixelFormatDescriptor{})),
		nVersion:     1,
		dwFlags:      flags,
		iPixelType:   pfdTypeRGBA,
		cColorBits:   req.ColorBits,
		cAlphaBits:   req.AlphaBits,
		cAccumBits:   req.AccumBits,
		cDepthBits:   req.DepthBits,
		cStencilBits: req.StencilBits,
		iLayerType:   pfdMainPlane,
	}
	pf, _, err := procChoosePixelFormat.Call(uintptr(s), uintptr(unsafe.Pointer(&desired)))
	if pf == 0 {
		return 0, callErr("ChoosePixelFormat", err)
	}

	// ChoosePixelFormat returns the closest match, which may fall short
	chosen, err := describePixelFormat(s, int(pf))
	if err != nil {
		return 0, err
	}
	if chosen.dwFlags&flags != flags || chosen.iPixelType != pfdTypeRGBA ||
		chosen.cColorBits < req.ColorBits || chosen.cDepthBits < req.DepthBits {
		return 0, fmt.Errorf("closest pixel format %d (flags %#x, colour %d, depth %d) does not satisfy the request",
			pf, chosen.dwFlags, chosen.cColorBits, chosen.cDepthBits)
	}
	surplus := req.Surplus(glcontext.PixelFormat{
		StencilBits: chosen.cStencilBits,
		AlphaBits:   chosen.cAlphaBits,
		AccumBits:   chosen.cAccumBits,
	})
	if len(surplus) > 0 {
		d.log.Warn("pixel format %d carries unrequested planes: %s", pf, strings.Join(surplus, ", "))
	}
	d.log.Debug("pixel format %d: colour %d depth %d stencil %d", pf, chosen.cColorBits, chosen.cDepthBits, chosen.cStencilBits)
	return int(pf), nil
}

func (d *Driver) SetPixelFormat(s glcontext.Surface, format int) error {
	pfd, err := describePixelFormat(s, format)
	if err != nil {
		return err
	}
	if r, _, err := procSetPixelFormat.Call(uintptr(s), uintptr(format), uintptr(unsafe.Pointer(&pfd))); r == 0 {
		return callErr("SetPixelFormat", err)
	}
	return nil
}

func describePixelFormat(s glcontext.Surface, format int) (pixelFormatDescriptor, error) {
	var pfd pixelFormatDescriptor
	r, _, err := procDescribePixelFmt.Call(
		uintptr(s),
		uintptr(format),
		unsafe.Sizeof(pfd),
		uintptr(unsafe.Pointer(&pfd)),
	)
	if r == 0 {
		return pfd, callErr("DescribePixelFormat", err)
	}
	return pfd, nil
}

func (d *Driver) CreateBaselineContext(s glcontext.Surface) (glcontext.Context, error) {
	c, _, err := procWglCreateContext.Call(uintptr(s))
	if c == 0 {
		return 0, callErr("wglCreateContext", err)
	}
	return glcontext.Context(c), nil
}

func (d *Driver) MakeCurrent(s glcontext.Surface, c glcontext.Context) error {
	dc := uintptr(s)
	if c == 0 {
		dc = 0
	}
	if r, _, err := procWglMakeCurrent.Call(dc, uintptr(c)); r == 0 {
		return callErr("wglMakeCurrent", err)
	}
	return nil
}

func (d *Driver) DeleteContext(c glcontext.Context) {
	procWglDeleteContext.Call(uintptr(c))
}

func (d *Driver) LoadExtensions() error {
	name, err := windows.BytePtrFromString("wglCreateContextAttribsARB")
	if err != nil {
		return err
	}
	addr, _, _ := procWglGetProcAddress.Call(uintptr(unsafe.Pointer(name)))
	// some drivers report failure as a small integer instead of NULL
	switch addr {
	case 0, 1, 2, 3, ^uintptr(0):
		return errors.New("wglCreateContextAttribsARB is not exported by the driver")
	}
	d.createContextAttribs = addr
	return nil
}

func (d *Driver) CreateVersionedContext(s glcontext.Surface, v glcontext.Version) (glcontext.Context, error) {
	if d.createContextAttribs == 0 {
		return 0, errors.New("extensions not loaded")
	}
	profile := int32(wglContextCompatibilityBit)
	if v.Core {
		profile = wglContextCoreProfileBit
	}
	var flags int32
	if v.Debug {
		flags |= wglContextDebugBit
	}
	attribs := []int32{
		wglContextMajorVersionArb, int32(v.Major),
		wglContextMinorVersionArb, int32(v.Minor),
		wglContextProfileMaskArb, profile,
		wglContextFlagsArb, flags,
		0,
	}
	c, _, err := syscall.SyscallN(d.createContextAttribs, uintptr(s), 0, uintptr(unsafe.Pointer(&attribs[0])))
	if c == 0 {
		return 0, callErr(fmt.Sprintf("wglCreateContextAttribsARB(%d.%d)", v.Major, v.Minor), err)
	}
	return glcontext.Context(c), nil
}

func (d *Driver) LoadFunctions() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("could not initialise OpenGL functions: %w", err)
	}
	d.log.Info("OpenGL version '%s', renderer '%s'",
		gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))
	return nil
}

func (d *Driver) RegisterDebugCallback(cb glcontext.DiagnosticFunc) error {
	var flags int32
	gl.GetIntegerv(gl.CONTEXT_FLAGS, &flags)
	if flags&gl.CONTEXT_FLAG_DEBUG_BIT == 0 {
		d.log.Debug("not a debug context, the driver may report fewer diagnostics")
	}

	d.debugUserParam = pointer.Save(cb)
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageCallback(debugMessage, d.debugUserParam)
	return nil
}

func (d *Driver) UnregisterDebugCallback() {
	if d.debugUserParam == nil {
		return
	}
	gl.Disable(gl.DEBUG_OUTPUT)
	pointer.Unref(d.debugUserParam)
	d.debugUserParam = nil
}

func debugMessage(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
	cb, ok := pointer.Restore(userParam).(glcontext.DiagnosticFunc)
	if !ok {
		return
	}
	cb(glcontext.Diagnostic{
		Source:   source,
		Category: gltype,
		ID:       id,
		Severity: severity,
		Message:  message,
	})
}

func (d *Driver) SwapBuffers(s glcontext.Surface) error {
	if r, _, err := procSwapBuffers.Call(uintptr(s)); r == 0 {
		return callErr("SwapBuffers", err)
	}
	return nil
}
