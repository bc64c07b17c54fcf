package main

import (
	"flag"
	"log"
	"os"
	"runtime"
	"time"

	"SkyboxDemo/camera"
	"SkyboxDemo/config"
	"SkyboxDemo/controls"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// app owns everything the frame loop touches.
type app struct {
	window *glfw.Window
	input  *inputPoller
	cam    *camera.Camera

	basicShader  *shaderProgram
	skyboxShader *shaderProgram
	scene        *model
	sky          *skybox
	overlay      *hud // nil when the font could not be loaded

	projection mgl32.Mat4
	view       mgl32.Mat4
	modelMat   mgl32.Mat4

	modelYaw    float32 // degrees
	modelPitch  float32 // degrees
	wireframe   bool
	flatShading bool
	showDebug   bool

	width, height int
	fps           fpsCounter
	previousFrame time.Time
}

func controlSettings() controls.Settings {
	return controls.Settings{
		Speed:              config.CameraSpeed,
		TurboMultiplier:    config.TurboMultiplier,
		RotationSpeed:      config.CameraRotationSpeed,
		MouseSensitivity:   config.MouseSensitivity,
		ModelRotationSpeed: config.ModelRotationSpeed,
	}
}

func projectionMatrix(width, height int) mgl32.Mat4 {
	aspectRatio := float32(width) / float32(max(height, 1))
	return mgl32.Perspective(mgl32.DegToRad(config.FieldOfView), aspectRatio, config.NearClipPlane, config.FarClipPlane)
}

// modelMatrix rotates the mesh around Y by yaw, then around Z by pitch (degrees).
func modelMatrix(yaw, pitch float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DY(mgl32.DegToRad(yaw)).Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(pitch)))
}

// normalMatrix is the inverse transpose of the upper 3x3 of modelView.
func normalMatrix(modelView mgl32.Mat4) mgl32.Mat3 {
	return modelView.Mat3().Inv().Transpose()
}

func initOpenGLState(width, height int) {
	c := config.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Enable(gl.FRAMEBUFFER_SRGB)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
}

func newApp(window *glfw.Window) (*app, error) {
	a := &app{
		window:        window,
		input:         newInputPoller(window),
		cam:           camera.New(config.CameraPosition, config.CameraTarget, config.CameraUp),
		showDebug:     config.ShowDebug,
		previousFrame: time.Now(),
	}
	a.width, a.height = window.GetFramebufferSize()
	initOpenGLState(a.width, a.height)
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	var err error
	if a.scene, err = loadModel(config.ModelPath); err != nil {
		return nil, err
	}
	a.sky = loadSkybox(config.SkyboxFaces, config.SkyboxSeed)
	if a.basicShader, err = newShaderProgram(config.BasicVertexShader, config.BasicFragmentShader); err != nil {
		return nil, err
	}
	if a.skyboxShader, err = newShaderProgram(config.SkyboxVertexShader, config.SkyboxFragmentShader); err != nil {
		return nil, err
	}

	if textShader, err := newShaderProgram(config.TextVertexShader, config.TextFragmentShader); err != nil {
		log.Printf("[hud] %v, overlay disabled", err)
	} else if a.overlay, err = newHUD(config.FontPath, textShader); err != nil {
		log.Printf("[hud] %v, overlay disabled", err)
		textShader.delete()
	}

	a.initUniforms()
	window.SetFramebufferSizeCallback(a.onResize)
	return a, nil
}

func (a *app) initUniforms() {
	a.basicShader.use()
	a.modelMat = modelMatrix(a.modelYaw, a.modelPitch)
	a.view = a.cam.ViewMatrix()
	a.projection = projectionMatrix(a.width, a.height)
	a.basicShader.setMat4("model", a.modelMat)
	a.basicShader.setMat4("view", a.view)
	a.basicShader.setMat4("projection", a.projection)
	a.basicShader.setMat3("normalMatrix", normalMatrix(a.view.Mul4(a.modelMat)))
	a.basicShader.setVec3("lightDir", config.LightDir)
	a.basicShader.setVec3("lightColor", config.LightColor)
	a.basicShader.setInt("flatShading", 0)
}

func (a *app) onResize(w *glfw.Window, width int, height int) {
	log.Printf("[window] resized to %dx%d", width, height)
	a.width, a.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
	a.projection = projectionMatrix(width, height)
	a.basicShader.use()
	a.basicShader.setMat4("projection", a.projection)
}

// processInput polls one snapshot and applies it to the camera, the model and
// the render state.
func (a *app) processInput(deltaTime float32) {
	frame := controls.Map(a.input.poll(), deltaTime, controlSettings())
	controls.Apply(a.cam, frame.Camera)

	a.modelYaw += frame.ModelYaw
	a.modelPitch += frame.ModelPitch

	switch frame.Polygon {
	case controls.PolygonFill:
		a.wireframe = false
	case controls.PolygonLine:
		a.wireframe = true
	}
	switch frame.Shading {
	case controls.ShadingSmooth:
		a.flatShading = false
	case controls.ShadingFlat:
		a.flatShading = true
	}
	a.input.setCursor(frame.Cursor)
	if frame.ToggleHUD {
		a.showDebug = !a.showDebug
	}
	if frame.Quit {
		a.window.SetShouldClose(true)
	}
}

func (a *app) updateUniforms() {
	a.view = a.cam.ViewMatrix()
	a.modelMat = modelMatrix(a.modelYaw, a.modelPitch)

	a.basicShader.use()
	a.basicShader.setMat4("view", a.view)
	a.basicShader.setMat4("model", a.modelMat)
	a.basicShader.setMat3("normalMatrix", normalMatrix(a.view.Mul4(a.modelMat)))
	flat := int32(0)
	if a.flatShading {
		flat = 1
	}
	a.basicShader.setInt("flatShading", flat)
}

func (a *app) renderScene() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if a.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}
	a.basicShader.use()
	a.scene.draw(a.basicShader)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	a.sky.draw(a.skyboxShader, a.view, a.projection)

	if a.showDebug && a.overlay != nil {
		if err := a.overlay.setLines(hudLines(a.fps.fps, a.cam)); err != nil {
			log.Printf("[hud] %v", err)
		}
		a.overlay.draw(a.width, a.height)
	}
}

func (a *app) run() {
	for !a.window.ShouldClose() {
		now := time.Now()
		deltaTime := float32(now.Sub(a.previousFrame).Seconds())
		a.previousFrame = now

		a.processInput(deltaTime)
		a.updateUniforms()
		a.renderScene()

		a.window.SwapBuffers()
		glfw.PollEvents()
		if a.fps.tick(now) {
			log.Printf("[fps] %.1f", a.fps.fps)
		}
		checkGLError()
	}
}

func (a *app) cleanup() {
	a.scene.delete()
	a.sky.delete()
	a.basicShader.delete()
	a.skyboxShader.delete()
	if a.overlay != nil {
		a.overlay.delete()
	}
}

func main() {
	runtime.LockOSThread()
	if err := config.ParseFlags(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("[window] init glfw: %v", err)
	}
	defer glfw.Terminate()

	window, err := createWindow(config.WindowWidth, config.WindowHeight, config.WindowTitle)
	if err != nil {
		log.Fatalf("[window] %v", err)
	}
	if err := gl.Init(); err != nil {
		log.Fatalf("[gl] init: %v", err)
	}
	log.Printf("[gl] %s", gl.GoStr(gl.GetString(gl.VERSION)))

	a, err := newApp(window)
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		log.Fatalf("[app] %v", err)
	}
	checkGLError()

	a.run()
	a.cleanup()
	window.Destroy()
}
