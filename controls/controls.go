// Package controls turns a per-frame input snapshot into camera commands and
// render toggles. It has no windowing dependency so the mapping stays pure.
package controls

import (
	"SkyboxDemo/camera"

	"github.com/go-gl/mathgl/mgl32"
)

type CommandKind uint8

const (
	CommandMove CommandKind = iota
	CommandRotate
)

// Command is a single call to make on the camera.
type Command struct {
	Kind      CommandKind
	Direction camera.Direction
	Speed     float32

	// radians
	DeltaPitch float32
	DeltaYaw   float32
}

func Move(direction camera.Direction, speed float32) Command {
	return Command{Kind: CommandMove, Direction: direction, Speed: speed}
}

func Rotate(deltaPitch, deltaYaw float32) Command {
	return Command{Kind: CommandRotate, DeltaPitch: deltaPitch, DeltaYaw: deltaYaw}
}

func (c Command) Apply(cam *camera.Camera) {
	switch c.Kind {
	case CommandMove:
		cam.Move(c.Direction, c.Speed)
	case CommandRotate:
		cam.Rotate(c.DeltaPitch, c.DeltaYaw)
	}
}

// Apply runs the commands in order.
func Apply(cam *camera.Camera, commands []Command) {
	for _, c := range commands {
		c.Apply(cam)
	}
}

type PolygonMode uint8

const (
	PolygonKeep PolygonMode = iota
	PolygonFill
	PolygonLine
)

type ShadingMode uint8

const (
	ShadingKeep ShadingMode = iota
	ShadingSmooth
	ShadingFlat
)

type CursorMode uint8

const (
	CursorKeep CursorMode = iota
	CursorCaptured
	CursorFree
)

// Settings holds the speeds used by Map.
type Settings struct {
	Speed              float32 // world units per second
	TurboMultiplier    float32
	RotationSpeed      float32 // degrees per second, arrow keys
	MouseSensitivity   float32 // degrees per pixel
	ModelRotationSpeed float32 // degrees per second
}

// Frame is everything one snapshot asks the application to do.
type Frame struct {
	Camera []Command

	// Model rotation in degrees to add this frame.
	ModelYaw   float32
	ModelPitch float32

	Polygon   PolygonMode
	Shading   ShadingMode
	Cursor    CursorMode
	ToggleHUD bool
	Quit      bool
}

var moveBindings = []struct {
	key Key
	dir camera.Direction
}{
	{KeySpace, camera.MoveUpward},
	{KeyLeftControl, camera.MoveDownward},
	{KeyW, camera.MoveForward},
	{KeyS, camera.MoveBackward},
	{KeyA, camera.MoveLeft},
	{KeyD, camera.MoveRight},
}

// Map converts a snapshot taken dt seconds after the previous one into a Frame.
//
// Controls:
//
//	WASD     forward, left, backward, right
//	Space    up
//	LCtrl    down
//	LShift   turbo
//	mouse    look
//	arrows   look
//	Q,E      rotate model around Y
//	Z,C      rotate model around Z
//	R        filled polygons, smooth shading, capture mouse
//	T        wireframe
//	Y        flat shading
//	U        release mouse
//	F3       toggle debug overlay
//	Escape   quit
func Map(s Snapshot, dt float32, settings Settings) Frame {
	var f Frame

	if s.MouseDX != 0 || s.MouseDY != 0 {
		// screen y grows downwards, moving the mouse up looks up
		pitch := float32(-s.MouseDY) * settings.MouseSensitivity
		yaw := float32(s.MouseDX) * settings.MouseSensitivity
		f.Camera = append(f.Camera, Rotate(mgl32.DegToRad(pitch), mgl32.DegToRad(yaw)))
	}

	speed := settings.Speed * dt
	if s.Held.Has(KeyLeftShift) {
		speed *= settings.TurboMultiplier
	}
	for _, b := range moveBindings {
		if s.Held.Has(b.key) {
			f.Camera = append(f.Camera, Move(b.dir, speed))
		}
	}

	rotation := mgl32.DegToRad(settings.RotationSpeed * dt)
	if s.Held.Has(KeyLeft) {
		f.Camera = append(f.Camera, Rotate(0, -rotation))
	}
	if s.Held.Has(KeyRight) {
		f.Camera = append(f.Camera, Rotate(0, rotation))
	}
	if s.Held.Has(KeyUp) {
		f.Camera = append(f.Camera, Rotate(rotation, 0))
	}
	if s.Held.Has(KeyDown) {
		f.Camera = append(f.Camera, Rotate(-rotation, 0))
	}

	modelStep := settings.ModelRotationSpeed * dt
	if s.Held.Has(KeyQ) {
		f.ModelYaw -= modelStep
	}
	if s.Held.Has(KeyE) {
		f.ModelYaw += modelStep
	}
	if s.Held.Has(KeyZ) {
		f.ModelPitch -= modelStep
	}
	if s.Held.Has(KeyC) {
		f.ModelPitch += modelStep
	}

	if s.Held.Has(KeyR) {
		f.Polygon = PolygonFill
		f.Shading = ShadingSmooth
		f.Cursor = CursorCaptured
	}
	if s.Held.Has(KeyT) {
		f.Polygon = PolygonLine
	}
	if s.Held.Has(KeyY) {
		f.Shading = ShadingFlat
	}
	if s.Held.Has(KeyU) {
		f.Cursor = CursorFree
	}

	f.ToggleHUD = s.Pressed.Has(KeyF3)
	f.Quit = s.Pressed.Has(KeyEscape)
	return f
}
