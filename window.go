package main

import (
	"SkyboxDemo/config"
	"SkyboxDemo/controls"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
)

func createWindow(width, height int, title string) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.SRGBCapable, glfw.True)
	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create window")
	}
	window.MakeContextCurrent()
	if config.Vsync {
		glfw.SwapInterval(1)
	}
	return window, nil
}

var glfwKeys = [controls.KeyCount]glfw.Key{
	controls.KeyW:           glfw.KeyW,
	controls.KeyA:           glfw.KeyA,
	controls.KeyS:           glfw.KeyS,
	controls.KeyD:           glfw.KeyD,
	controls.KeySpace:       glfw.KeySpace,
	controls.KeyLeftControl: glfw.KeyLeftControl,
	controls.KeyLeftShift:   glfw.KeyLeftShift,
	controls.KeyLeft:        glfw.KeyLeft,
	controls.KeyRight:       glfw.KeyRight,
	controls.KeyUp:          glfw.KeyUp,
	controls.KeyDown:        glfw.KeyDown,
	controls.KeyQ:           glfw.KeyQ,
	controls.KeyE:           glfw.KeyE,
	controls.KeyZ:           glfw.KeyZ,
	controls.KeyC:           glfw.KeyC,
	controls.KeyR:           glfw.KeyR,
	controls.KeyT:           glfw.KeyT,
	controls.KeyY:           glfw.KeyY,
	controls.KeyU:           glfw.KeyU,
	controls.KeyF3:          glfw.KeyF3,
	controls.KeyEscape:      glfw.KeyEscape,
}

// inputPoller samples the window once per frame instead of reacting to
// callbacks, so the rest of the frame sees one consistent snapshot.
type inputPoller struct {
	window *glfw.Window
	held   controls.KeySet
	mouse  controls.Mouse
}

func newInputPoller(window *glfw.Window) *inputPoller {
	return &inputPoller{window: window}
}

func (p *inputPoller) poll() controls.Snapshot {
	var held controls.KeySet
	for k, glfwKey := range glfwKeys {
		if p.window.GetKey(glfwKey) == glfw.Press {
			held = held.With(controls.Key(k))
		}
	}
	dx, dy := p.mouse.Delta(p.window.GetCursorPos())
	if p.window.GetInputMode(glfw.CursorMode) != glfw.CursorDisabled {
		// a free cursor only points, it does not look around
		dx, dy = 0, 0
	}
	s := controls.NextSnapshot(p.held, held, dx, dy)
	p.held = held
	return s
}

func (p *inputPoller) setCursor(mode controls.CursorMode) {
	switch mode {
	case controls.CursorCaptured:
		if p.window.GetInputMode(glfw.CursorMode) != glfw.CursorDisabled {
			p.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
			p.mouse.Reset()
		}
	case controls.CursorFree:
		p.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}
