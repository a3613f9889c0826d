//go:build windows

package main

import (
	"flag"
	stdlog "log"
	"os"
	"runtime"
	"time"

	"github.com/fosdem/glwin/lib/config"
	"github.com/fosdem/glwin/lib/frameloop"
	"github.com/fosdem/glwin/lib/input"
	"github.com/fosdem/glwin/lib/kbdctl"
	"github.com/fosdem/glwin/lib/log"
	"github.com/fosdem/glwin/lib/platform/win32"
	"github.com/fosdem/glwin/lib/rendering/shaders"
	"github.com/fosdem/glwin/lib/rendering/vertexbuffer"
	"github.com/fosdem/glwin/lib/window"
	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

func init() {
	// The window, its message queue and the GL context all belong to one thread
	runtime.LockOSThread()
}

type vertex struct {
	Position [2]float32
	Colour   [3]float32
}

// scene deletes its GL objects before the session drops the context
// that owns them.
type scene struct {
	*window.Session
	program  *shaders.Program
	triangle *vertexbuffer.Buffer[vertex]
}

func (s *scene) Shutdown() int {
	s.triangle.Delete()
	s.program.Delete()
	return s.Session.Shutdown()
}

func main() {
	cfgPath := flag.String("config", "", "YAML config file, defaults apply when empty")
	title := flag.String("title", "", "Window title, overrides the config")
	width := flag.Int("width", -1, "Window width, 0 for full screen")
	height := flag.Int("height", -1, "Window height, 0 for full screen")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Parse(*cfgPath); err != nil {
			stdlog.Fatal(err)
		}
	}
	if *title != "" {
		cfg.Window.Title = *title
	}
	if *width >= 0 {
		cfg.Window.Width = *width
	}
	if *height >= 0 {
		cfg.Window.Height = *height
	}
	if err := cfg.Validate(); err != nil {
		stdlog.Fatal(err)
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		stdlog.Fatal(err)
	}
	logger := log.New(os.Stdout, level)

	platform, err := win32.NewPlatform(logger)
	if err != nil {
		stdlog.Fatalf("could not set up the platform: %s", err)
	}
	session, err := window.Open(platform, win32.NewDriver(logger), window.Options{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		HideCursor: cfg.Window.HideCursor,
		Version:    cfg.Context.Version(),
	}, logger)
	if err != nil {
		stdlog.Fatalf("could not open window: %s", err)
	}

	shaderer, err := shaders.NewShaderer()
	if err != nil {
		session.Shutdown()
		stdlog.Fatalf("could not get shaders: %s", err)
	}
	vs, fs, err := shaderer.Load(cfg.Shaders, shaders.DataFor(cfg.Context.Version()))
	if err != nil {
		session.Shutdown()
		stdlog.Fatalf("could not load shaders: %s", err)
	}
	program := shaders.NewProgram(logger)
	if !program.Compile(vs, fs) {
		session.Shutdown()
		os.Exit(1)
	}

	triangle := vertexbuffer.New[vertex]()
	err = triangle.ConfigureLayout(0,
		vertexbuffer.Attribute{Type: vertexbuffer.Float, Count: 2},
		vertexbuffer.Attribute{Type: vertexbuffer.Float, Count: 3},
	)
	if err != nil {
		session.Shutdown()
		stdlog.Fatalf("could not configure vertex layout: %s", err)
	}
	triangle.Append(vertex{[2]float32{-0.6, -0.5}, [3]float32{1, 0, 0}})
	triangle.Append(vertex{[2]float32{0.6, -0.5}, [3]float32{0, 1, 0}})
	triangle.Append(vertex{[2]float32{0, 0.6}, [3]float32{0, 0, 1}})
	triangle.Upload()

	snap := session.Input()
	gl.Viewport(0, 0, int32(snap.Width), int32(snap.Height))
	gl.ClearColor(cfg.Window.ClearColour.RGBA())

	var (
		angle         float32
		paused, quit  bool
		cursorVisible = !cfg.Window.HideCursor
	)
	bound, err := cfg.Shortcuts.Parse()
	if err != nil {
		stdlog.Fatalf("could not parse shortcuts: %s", err)
	}
	shortcuts := kbdctl.New(logger)
	shortcuts.Bind(bound["quit"], "quit", func() { quit = true })
	shortcuts.Bind(kbdctl.Shortcut{Key: input.KeyEscape}, "quit", func() { quit = true })
	shortcuts.Bind(bound["pause"], "toggle rotation", func() { paused = !paused })
	shortcuts.Bind(bound["toggle_cursor"], "toggle cursor", func() {
		cursorVisible = !cursorVisible
		session.SetCursorVisible(cursorVisible)
	})

	code := frameloop.Run(&scene{session, program, triangle}, func(snap *input.Snapshot, dt time.Duration) error {
		shortcuts.Poll(snap)
		if quit {
			return frameloop.ErrStop
		}
		if snap.Resized {
			gl.Viewport(0, 0, int32(snap.Width), int32(snap.Height))
		}
		if !paused {
			angle += float32(dt.Seconds())
		}

		aspect := float32(1)
		if snap.Height > 0 {
			aspect = float32(snap.Width) / float32(snap.Height)
		}
		transform := mgl32.Ortho2D(-aspect, aspect, -1, 1).Mul4(mgl32.HomogRotate3DZ(angle))

		tint := mgl32.Vec4{1, 1, 1, 1}
		if snap.MouseDown(input.MouseLeft) {
			tint = mgl32.Vec4{0.5, 0.5, 0.5, 1}
		}

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		program.Bind()
		program.SetMat4("transform", transform)
		program.SetVec4("tint", tint)
		triangle.Draw(gl.TRIANGLES)
		return nil
	}, logger)
	os.Exit(code)
}
