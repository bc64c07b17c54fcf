package main

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Not exported by the 4.1 core bindings.
const (
	glStackOverflow  = 0x0503
	glStackUnderflow = 0x0504
)

func glErrorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "INVALID_OPERATION"
	case glStackOverflow:
		return "STACK_OVERFLOW"
	case glStackUnderflow:
		return "STACK_UNDERFLOW"
	case gl.OUT_OF_MEMORY:
		return "OUT_OF_MEMORY"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "INVALID_FRAMEBUFFER_OPERATION"
	}
	return fmt.Sprintf("0x%04X", code)
}

// checkGLError drains the GL error queue, logging every code with the caller's
// location. It returns the last code seen, or NO_ERROR.
func checkGLError() uint32 {
	_, file, line, _ := runtime.Caller(1)
	last := uint32(gl.NO_ERROR)
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		log.Printf("[gl] %s | %s (%d)", glErrorName(code), file, line)
		last = code
	}
	return last
}
