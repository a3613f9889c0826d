package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fosdem/glwin/lib/glcontext"
	"github.com/fosdem/glwin/lib/kbdctl"
	"github.com/fosdem/glwin/lib/log"
	yaml "github.com/goccy/go-yaml"
)

type Config struct {
	Window    WindowCfg
	Context   ContextCfg
	Log       LogCfg
	Shaders   ShadersCfg
	Shortcuts ShortcutsCfg
}

type WindowCfg struct {
	Title string
	// Width or Height of 0 opens a borderless full screen window.
	Width       int
	Height      int
	HideCursor  bool   `yaml:"hide_cursor"`
	ClearColour Colour `yaml:"clear_colour"`
}

type ContextCfg struct {
	Major int
	Minor int
	// Debug defaults to true when unset.
	Debug *bool
}

type LogCfg struct {
	Level string
}

type ShadersCfg struct {
	Vertex   CfgPath
	Fragment CfgPath
}

// ShortcutsCfg holds shortcuts like "ctrl+shift+q", see kbdctl.Parse.
type ShortcutsCfg struct {
	Quit         string
	Pause        string
	ToggleCursor string `yaml:"toggle_cursor"`
}

const defaultTitle = "glwin"

// Default is used when no config file is given.
func Default() *Config {
	cfg := &Config{
		Window: WindowCfg{
			Width:  1280,
			Height: 720,
		},
	}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in whatever the file left out. A missing window size
// stays zero, which means full screen.
func (c *Config) applyDefaults() {
	if c.Window.Title == "" {
		c.Window.Title = defaultTitle
	}
	if c.Window.ClearColour == "" {
		c.Window.ClearColour = defaultClearColour
	}
	if c.Context.Major == 0 && c.Context.Minor == 0 {
		c.Context.Major = glcontext.DefaultVersion.Major
		c.Context.Minor = glcontext.DefaultVersion.Minor
	}
	if c.Context.Debug == nil {
		debug := glcontext.DefaultVersion.Debug
		c.Context.Debug = &debug
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Shortcuts.Quit == "" {
		c.Shortcuts.Quit = "ctrl+shift+q"
	}
	if c.Shortcuts.Pause == "" {
		c.Shortcuts.Pause = "space"
	}
	if c.Shortcuts.ToggleCursor == "" {
		c.Shortcuts.ToggleCursor = "c"
	}
}

func Parse(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %s", filename, err)
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
			_ = fmt.Errorf("could not close %s: %s", filename, err)
		}
	}(f)

	absFilename, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("somehow, %s is malformed: %w", filename, err)
	}
	UnmarshalBase = filepath.Dir(absFilename)

	m := yaml.NewDecoder(f)
	cfg := &Config{}
	err = m.Decode(cfg)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, err
}

func (c *Config) Validate() error {
	if err := c.Window.Validate(); err != nil {
		return fmt.Errorf("window config is invalid: %w", err)
	}
	if err := c.Context.Validate(); err != nil {
		return fmt.Errorf("context config is invalid: %w", err)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log config is invalid: %w", err)
	}
	if (c.Shaders.Vertex == "") != (c.Shaders.Fragment == "") {
		return fmt.Errorf("shaders need both a vertex and a fragment path, or neither")
	}
	if _, err := c.Shortcuts.Parse(); err != nil {
		return fmt.Errorf("shortcuts config is invalid: %w", err)
	}
	return nil
}

// Parse returns the shortcuts keyed by the action they trigger.
func (s *ShortcutsCfg) Parse() (map[string]kbdctl.Shortcut, error) {
	parsed := make(map[string]kbdctl.Shortcut, 3)
	for name, text := range map[string]string{
		"quit":          s.Quit,
		"pause":         s.Pause,
		"toggle_cursor": s.ToggleCursor,
	} {
		sc, err := kbdctl.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		parsed[name] = sc
	}
	return parsed, nil
}

func (w *WindowCfg) Validate() error {
	if w.Width < 0 || w.Height < 0 {
		return fmt.Errorf("window size %dx%d must be nonnegative", w.Width, w.Height)
	}
	if strings.TrimSpace(w.Title) == "" {
		return fmt.Errorf("title must be specified")
	}
	if err := w.ClearColour.Validate(); err != nil {
		return fmt.Errorf("clear_colour: %w", err)
	}
	return nil
}

func (c *ContextCfg) Validate() error {
	// the debug callback is a 4.3 core feature
	if c.Major < 4 || (c.Major == 4 && c.Minor < 3) {
		return fmt.Errorf("OpenGL %d.%d is too old, at least 4.3 is required", c.Major, c.Minor)
	}
	if c.Minor < 0 {
		return fmt.Errorf("minor version must be nonnegative")
	}
	return nil
}

// Version is the context the negotiator should request.
func (c *ContextCfg) Version() glcontext.Version {
	return glcontext.Version{Major: c.Major, Minor: c.Minor, Core: true, Debug: c.DebugEnabled()}
}

func (c *ContextCfg) DebugEnabled() bool {
	return c.Debug == nil || *c.Debug
}

// FullScreen reports whether the window covers the whole screen.
func (w *WindowCfg) FullScreen() bool {
	return w.Width == 0 || w.Height == 0
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Window: %q ", c.Window.Title))
	if c.Window.FullScreen() {
		b.WriteString("full screen\n")
	} else {
		b.WriteString(fmt.Sprintf("%dx%d\n", c.Window.Width, c.Window.Height))
	}
	b.WriteString(fmt.Sprintf("Clear colour: %s\n", c.Window.ClearColour))
	b.WriteString(fmt.Sprintf("Context: OpenGL %d.%d core (debug %t)\n", c.Context.Major, c.Context.Minor, c.Context.DebugEnabled()))
	b.WriteString(fmt.Sprintf("Log level: %s\n", c.Log.Level))
	if c.Shaders.Vertex != "" {
		b.WriteString(fmt.Sprintf("Shaders: %s, %s\n", c.Shaders.Vertex, c.Shaders.Fragment))
	}
	b.WriteString(fmt.Sprintf("Shortcuts: quit %s, pause %s, toggle cursor %s\n",
		c.Shortcuts.Quit, c.Shortcuts.Pause, c.Shortcuts.ToggleCursor))
	return b.String()
}
