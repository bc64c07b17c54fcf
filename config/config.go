package config

import (
	"flag"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
)

// Window
var (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "OpenGL Project Core"
	Vsync        = true
	ClearColor   = mgl32.Vec4{0.7, 0.7, 0.7, 1.0}
)

// Projection
var (
	FieldOfView   float32 = 45
	NearClipPlane float32 = 0.1
	FarClipPlane  float32 = 1000
)

// Camera start pose and controls. Speeds are world units or degrees per second.
var (
	CameraPosition = mgl32.Vec3{0, 0, 3}
	CameraTarget   = mgl32.Vec3{0, 0, -10}
	CameraUp       = mgl32.Vec3{0, 1, 0}

	CameraSpeed         float32 = 10
	TurboMultiplier     float32 = 4
	CameraRotationSpeed float32 = 100
	MouseSensitivity    float32 = 0.1 // degrees per pixel
	ModelRotationSpeed  float32 = 60
)

// Lighting, direction is towards the light.
var (
	LightDir   = mgl32.Vec3{0, 1, 1}
	LightColor = mgl32.Vec3{1, 1, 1}
)

// Assets
var (
	ModelPath = "models/scene.obj"
	// +X, -X, +Y, -Y, +Z, -Z
	SkyboxFaces = [6]string{
		"skybox/right.jpg",
		"skybox/left.jpg",
		"skybox/top.jpg",
		"skybox/bottom.jpg",
		"skybox/front.jpg",
		"skybox/back.jpg",
	}
	BasicVertexShader    = "shaders/basic.vert"
	BasicFragmentShader  = "shaders/basic.frag"
	SkyboxVertexShader   = "shaders/skyboxShader.vert"
	SkyboxFragmentShader = "shaders/skyboxShader.frag"
	TextVertexShader     = "shaders/textShaderVertex.vert"
	TextFragmentShader   = "shaders/textShaderFragment.frag"
	FontPath             = "assets/fonts/debug.ttf"
)

// SkyboxSeed drives the generated sky used when face images are missing.
var SkyboxSeed int64 = 12

var ShowDebug = true

// ParseFlags overrides the defaults above from command line arguments
// (without the program name).
func ParseFlags(args []string) error {
	fs := flag.NewFlagSet("skybox", flag.ContinueOnError)
	fs.IntVar(&WindowWidth, "width", WindowWidth, "window width")
	fs.IntVar(&WindowHeight, "height", WindowHeight, "window height")
	fs.BoolVar(&Vsync, "vsync", Vsync, "wait for vertical sync")
	fs.BoolVar(&ShowDebug, "debug", ShowDebug, "show the debug overlay")
	fs.StringVar(&ModelPath, "model", ModelPath, "path to the .obj mesh")
	fs.StringVar(&FontPath, "font", FontPath, "path to the overlay .ttf font")
	fs.Int64Var(&SkyboxSeed, "sky-seed", SkyboxSeed, "seed for the generated sky when face images are missing")
	skyDir := fs.String("skybox", "", "directory holding right/left/top/bottom/front/back.jpg")
	fov := fs.Float64("fov", float64(FieldOfView), "vertical field of view in degrees")

	if err := fs.Parse(args); err != nil {
		return err
	}
	FieldOfView = float32(*fov)
	if *skyDir != "" {
		SkyboxFaces = SkyboxFacesIn(*skyDir)
	}
	return nil
}

// SkyboxFacesIn returns the six face paths inside dir, in cubemap order.
func SkyboxFacesIn(dir string) [6]string {
	names := [6]string{"right", "left", "top", "bottom", "front", "back"}
	var faces [6]string
	for i, n := range names {
		faces[i] = filepath.Join(dir, n+".jpg")
	}
	return faces
}
