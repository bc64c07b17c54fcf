package main

import (
	"testing"
	"time"

	"SkyboxDemo/camera"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/math/fixed"
)

func TestHUDLines(t *testing.T) {
	cam := camera.New(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 0, -10}, mgl32.Vec3{0, 1, 0})
	cam.Rotate(mgl32.DegToRad(30), 0)
	cam.Move(camera.MoveUpward, 1.5)

	lines := hudLines(59.94, cam)
	want := []string{
		"FPS: 59.9",
		"Position: 0.00, 1.50, 3.00",
		"Pitch: 30.0  Yaw: 0.0",
	}
	if !equalLines(lines, want) {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
}

func TestLoadFontFallsBack(t *testing.T) {
	ctx, dst, err := loadFont("testdata/missing.ttf")
	if err != nil {
		t.Fatalf("loadFont: %v", err)
	}
	if ctx == nil || dst.Bounds().Dx() != hudCanvasSize || dst.Bounds().Dy() != hudCanvasSize {
		t.Fatalf("canvas = %v", dst.Bounds())
	}
	if _, err := ctx.DrawString("FPS: 60", fixed.P(hudMargin, 2*hudMargin)); err != nil {
		t.Fatalf("DrawString: %v", err)
	}
	drawn := false
	for i := 3; i < len(dst.Pix); i += 4 {
		if dst.Pix[i] != 0 {
			drawn = true
			break
		}
	}
	if !drawn {
		t.Fatal("nothing rasterised")
	}
}

func TestHUDModelTopLeft(t *testing.T) {
	m := hudModel(768)
	top := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if top != (mgl32.Vec4{0, 768, 0, 1}) {
		t.Fatalf("canvas origin at %v", top)
	}
	bottom := m.Mul4x1(mgl32.Vec4{1, 1, 0, 1})
	if bottom != (mgl32.Vec4{hudCanvasSize, 768 - hudCanvasSize, 0, 1}) {
		t.Fatalf("canvas corner at %v", bottom)
	}
}

func TestFPSCounter(t *testing.T) {
	var c fpsCounter
	start := time.Unix(100, 0)
	if c.tick(start) {
		t.Fatalf("first tick refreshed")
	}
	for i := 1; i < 30; i++ {
		if c.tick(start.Add(time.Duration(i) * 20 * time.Millisecond)) {
			t.Fatalf("refreshed early at frame %d", i)
		}
	}
	if !c.tick(start.Add(time.Second)) {
		t.Fatalf("no refresh after one second")
	}
	if c.fps != 31 {
		t.Fatalf("fps = %f, want 31", c.fps)
	}
}

func TestGLErrorName(t *testing.T) {
	cases := map[uint32]string{
		0x0500: "INVALID_ENUM",
		0x0501: "INVALID_VALUE",
		0x0502: "INVALID_OPERATION",
		0x0503: "STACK_OVERFLOW",
		0x0504: "STACK_UNDERFLOW",
		0x0505: "OUT_OF_MEMORY",
		0x0506: "INVALID_FRAMEBUFFER_OPERATION",
		0x1234: "0x1234",
	}
	for code, want := range cases {
		if got := glErrorName(code); got != want {
			t.Fatalf("glErrorName(%#x) = %q, want %q", code, got, want)
		}
	}
}
