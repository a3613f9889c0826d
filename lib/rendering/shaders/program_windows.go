//go:build windows

package shaders

import (
	"fmt"
	"strings"

	"github.com/fosdem/glwin/lib/log"
	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked vertex and fragment shader pair. All methods need the
// context the program was compiled on to be current.
type Program struct {
	ID uint32

	log      *log.Logger
	uniforms map[string]int32
}

func NewProgram(l *log.Logger) *Program {
	if l == nil {
		l = log.Discard()
	}
	return &Program{log: l.With("shaders"), uniforms: make(map[string]int32)}
}

// Compile builds the program from the two sources. Compiler and linker
// output is logged; the result only reports whether a program exists.
func (p *Program) Compile(vertexSource, fragmentSource string) bool {
	program, err := newProgram(vertexSource, fragmentSource)
	if err != nil {
		p.log.Error("could not build shader program: %s", err)
		return false
	}
	p.Delete()
	p.ID = program
	p.log.Debug("linked shader program %d", program)
	return true
}

func (p *Program) Bind() {
	gl.UseProgram(p.ID)
}

func (p *Program) Delete() {
	if p.ID == 0 {
		return
	}
	gl.DeleteProgram(p.ID)
	p.ID = 0
	clear(p.uniforms)
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, &m[0])
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3fv(p.location(name), 1, &v[0])
}

func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	gl.Uniform4fv(p.location(name), 1, &v[0])
}

func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.location(name), v)
}

func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.location(name), v)
}

// location looks a uniform up once per name. Unknown names resolve to -1,
// which GL silently ignores.
func (p *Program) location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
	if loc < 0 {
		p.log.Warn("uniform %q not found in program %d", name, p.ID)
	}
	p.uniforms[name] = loc
	return loc
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()

	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		logmsg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logmsg))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("failed to link program: %v", strings.TrimRight(logmsg, "\x00"))
	}

	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	size := int32(len(source))
	gl.ShaderSource(shader, 1, csources, &size)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		clog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(clog))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("failed to compile: %v", strings.TrimRight(clog, "\x00"))
	}

	return shader, nil
}
