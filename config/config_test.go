package config

import (
	"path/filepath"
	"testing"
)

func TestParseFlags(t *testing.T) {
	width, height, vsync, fov, faces, model := WindowWidth, WindowHeight, Vsync, FieldOfView, SkyboxFaces, ModelPath
	defer func() {
		WindowWidth, WindowHeight, Vsync, FieldOfView, SkyboxFaces, ModelPath = width, height, vsync, fov, faces, model
	}()

	err := ParseFlags([]string{"-width", "640", "-height=480", "-vsync=false", "-fov", "60", "-skybox", "sky", "-model", "m/teapot.obj"})
	if err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if WindowWidth != 640 || WindowHeight != 480 {
		t.Fatalf("size = %dx%d", WindowWidth, WindowHeight)
	}
	if Vsync {
		t.Fatalf("vsync still on")
	}
	if FieldOfView != 60 {
		t.Fatalf("fov = %f", FieldOfView)
	}
	if ModelPath != "m/teapot.obj" {
		t.Fatalf("model = %q", ModelPath)
	}
	if SkyboxFaces[2] != filepath.Join("sky", "top.jpg") || SkyboxFaces[5] != filepath.Join("sky", "back.jpg") {
		t.Fatalf("faces = %v", SkyboxFaces)
	}
}

func TestParseFlagsKeepsDefaults(t *testing.T) {
	faces, fov := SkyboxFaces, FieldOfView
	if err := ParseFlags(nil); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if SkyboxFaces != faces || FieldOfView != fov {
		t.Fatalf("defaults changed: %v %f", SkyboxFaces, FieldOfView)
	}
}

func TestParseFlagsUnknown(t *testing.T) {
	if err := ParseFlags([]string{"-nope"}); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}
