package shaders

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/fosdem/glwin/lib/config"
	"github.com/fosdem/glwin/lib/glcontext"
)

//go:embed *.frag *.vert
var templateDir embed.FS

// Built-in shader names.
const (
	DefaultVertex   = "triangle.vert"
	DefaultFragment = "triangle.frag"
)

// Shaderer renders shader sources from text templates, so one source can
// target whichever context version was negotiated.
type Shaderer struct {
	templates *template.Template
}

func NewShaderer() (*Shaderer, error) {
	s := &Shaderer{}

	var err error

	s.templates, err = template.ParseFS(templateDir, "*.frag", "*.vert")

	return s, err
}

// ShaderData contains stuff that gets passed to the shader templates
type ShaderData struct {
	Major, Minor int
	Core         bool
}

// DataFor returns the template data matching a negotiated context version.
func DataFor(v glcontext.Version) *ShaderData {
	return &ShaderData{Major: v.Major, Minor: v.Minor, Core: v.Core}
}

// GLSLVersion is the argument of the #version directive, e.g. "460 core".
func (d *ShaderData) GLSLVersion() string {
	v := fmt.Sprintf("%d%d0", d.Major, d.Minor)
	if d.Core {
		v += " core"
	}
	return v
}

// AddSource parses text as an additional template called name, replacing
// any template of that name.
func (s *Shaderer) AddSource(name, text string) error {
	if _, err := s.templates.New(name).Parse(text); err != nil {
		return fmt.Errorf("could not parse shader %s: %w", name, err)
	}
	return nil
}

func (s *Shaderer) GetShaderSource(name string, data *ShaderData) (string, error) {
	var b bytes.Buffer
	err := s.templates.ExecuteTemplate(&b, name, data)
	if err != nil {
		return "", fmt.Errorf("error while rendering template: %s", err)
	}

	return b.String(), nil
}

func (s *Shaderer) TemplateNames() []string {
	var names []string
	for _, t := range s.templates.Templates() {
		names = append(names, t.Name())
	}
	return names
}

// Load returns the rendered vertex and fragment sources. Paths set in cfg
// are read from disk, otherwise the built-in triangle shaders are used.
func (s *Shaderer) Load(cfg config.ShadersCfg, data *ShaderData) (vertex, fragment string, err error) {
	vertexName, fragmentName := DefaultVertex, DefaultFragment
	if cfg.Vertex != "" {
		if vertexName, err = s.addFile(cfg.Vertex); err != nil {
			return "", "", err
		}
	}
	if cfg.Fragment != "" {
		if fragmentName, err = s.addFile(cfg.Fragment); err != nil {
			return "", "", err
		}
	}

	if vertex, err = s.GetShaderSource(vertexName, data); err != nil {
		return "", "", fmt.Errorf("could not get vertex shader: %w", err)
	}
	if fragment, err = s.GetShaderSource(fragmentName, data); err != nil {
		return "", "", fmt.Errorf("could not get fragment shader: %w", err)
	}
	return vertex, fragment, nil
}

func (s *Shaderer) addFile(path config.CfgPath) (string, error) {
	text, err := path.Read()
	if err != nil {
		return "", err
	}
	name := string(path)
	return name, s.AddSource(name, text)
}
