package main

import (
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// shaderProgram is a linked GL program with a cache of uniform locations.
type shaderProgram struct {
	id       uint32
	uniforms map[string]int32
}

func stringFromShaderFile(shaderFilePath string) (string, error) {
	content, err := os.ReadFile(shaderFilePath)
	if err != nil {
		return "", errors.Wrap(err, "read shader")
	}
	return string(content), nil
}

func loadShader(shaderFilePath string, shaderType uint32) (uint32, error) {
	source, err := stringFromShaderFile(shaderFilePath)
	if err != nil {
		return 0, err
	}

	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()

	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, errors.Errorf("compile %s: %s", shaderFilePath, strings.TrimRight(log, "\x00"))
	}

	return shader, nil
}

// newShaderProgram compiles and links a vertex/fragment pair.
func newShaderProgram(vertexPath, fragmentPath string) (*shaderProgram, error) {
	vertexShader, err := loadShader(vertexPath, gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}
	fragmentShader, err := loadShader(fragmentPath, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return nil, err
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vertexShader)
	gl.AttachShader(prog, fragmentShader)
	gl.LinkProgram(prog)
	gl.DetachShader(prog, vertexShader)
	gl.DetachShader(prog, fragmentShader)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(prog, logLength, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return nil, errors.Errorf("link %s + %s: %s", vertexPath, fragmentPath, strings.TrimRight(log, "\x00"))
	}

	return &shaderProgram{id: prog, uniforms: make(map[string]int32)}, nil
}

func (s *shaderProgram) use() {
	gl.UseProgram(s.id)
}

func (s *shaderProgram) location(name string) int32 {
	if loc, ok := s.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.id, gl.Str(name+"\x00"))
	s.uniforms[name] = loc
	return loc
}

// The setters expect the program to be in use.

func (s *shaderProgram) setMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(s.location(name), 1, false, &m[0])
}

func (s *shaderProgram) setMat3(name string, m mgl32.Mat3) {
	gl.UniformMatrix3fv(s.location(name), 1, false, &m[0])
}

func (s *shaderProgram) setVec3(name string, v mgl32.Vec3) {
	gl.Uniform3fv(s.location(name), 1, &v[0])
}

func (s *shaderProgram) setInt(name string, v int32) {
	gl.Uniform1i(s.location(name), v)
}

func (s *shaderProgram) delete() {
	gl.DeleteProgram(s.id)
}
