package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"os"

	"SkyboxDemo/camera"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/freetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

const (
	hudCanvasSize = 512
	hudFontSize   = 16
	hudMargin     = 10
)

// hud is the debug overlay: a few lines of text rasterised into a canvas
// that is uploaded as a texture and drawn as one screen quad.
type hud struct {
	ctx     *freetype.Context
	dst     *image.RGBA
	texture uint32
	vao     uint32
	vbo     uint32
	shader  *shaderProgram
	lines   []string
}

// Sets up freetype context and canvas with desired font
func loadFont(pathToFont string) (*freetype.Context, *image.RGBA, error) {
	fontData, err := os.ReadFile(pathToFont)
	if err != nil {
		log.Printf("[hud] %v, using built-in font", err)
		fontData = goregular.TTF
	}

	f, err := freetype.ParseFont(fontData)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "parse font %s", pathToFont)
	}

	dst := image.NewRGBA(image.Rect(0, 0, hudCanvasSize, hudCanvasSize))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.Transparent}, image.Point{}, draw.Src)
	ctx := freetype.NewContext()
	ctx.SetFont(f)
	ctx.SetFontSize(hudFontSize)
	ctx.SetDst(dst)
	ctx.SetClip(dst.Bounds())
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull) // For sharp text
	return ctx, dst, nil
}

func newHUD(fontPath string, shader *shaderProgram) (*hud, error) {
	ctx, dst, err := loadFont(fontPath)
	if err != nil {
		return nil, err
	}
	h := &hud{ctx: ctx, dst: dst, shader: shader}

	vertices := []float32{
		0.0, 1.0, 0.0, 0.0, 1.0, // Top-left
		0.0, 0.0, 0.0, 0.0, 0.0, // Bottom-left
		1.0, 0.0, 0.0, 1.0, 0.0, // Bottom-right

		0.0, 1.0, 0.0, 0.0, 1.0, // Top-left
		1.0, 0.0, 0.0, 1.0, 0.0, // Bottom-right
		1.0, 1.0, 0.0, 1.0, 1.0,
	}
	gl.GenVertexArrays(1, &h.vao)
	gl.BindVertexArray(h.vao)
	gl.GenBuffers(1, &h.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 5*4, nil)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 5*4, uintptr(3*4))
	gl.BindVertexArray(0)

	gl.GenTextures(1, &h.texture)
	gl.BindTexture(gl.TEXTURE_2D, h.texture)
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA,
		int32(dst.Rect.Size().X), int32(dst.Rect.Size().Y),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(dst.Pix),
	)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return h, nil
}

// hudLines formats the overlay text.
func hudLines(fps float64, cam *camera.Camera) []string {
	p := cam.Position()
	return []string{
		fmt.Sprintf("FPS: %v", mgl64.Round(fps, 1)),
		fmt.Sprintf("Position: %.2f, %.2f, %.2f", p[0], p[1], p[2]),
		fmt.Sprintf("Pitch: %.1f  Yaw: %.1f", mgl32.RadToDeg(cam.Pitch()), mgl32.RadToDeg(cam.Yaw())),
	}
}

func clearImage(img *image.RGBA) {
	for i := range img.Pix {
		img.Pix[i] = 0
	}
}

// setLines redraws the canvas when the text changed.
func (h *hud) setLines(lines []string) error {
	if equalLines(h.lines, lines) {
		return nil
	}
	h.lines = append(h.lines[:0], lines...)

	clearImage(h.dst)
	lineHeight := h.ctx.PointToFixed(hudFontSize * 1.4)
	pt := fixed.P(hudMargin, hudMargin).Add(fixed.Point26_6{Y: h.ctx.PointToFixed(hudFontSize)})
	for _, line := range lines {
		if _, err := h.ctx.DrawString(line, pt); err != nil {
			return errors.Wrap(err, "draw hud text")
		}
		pt.Y += lineHeight
	}

	gl.BindTexture(gl.TEXTURE_2D, h.texture)
	gl.TexSubImage2D(
		gl.TEXTURE_2D,
		0,    // Mipmap level
		0, 0, // Offset in the texture
		int32(h.dst.Rect.Size().X),
		int32(h.dst.Rect.Size().Y),
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(h.dst.Pix),
	)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// hudModel places the canvas in the top-left corner of a width*height
// screen. The canvas is stored top row first, so it is flipped vertically.
func hudModel(height int) mgl32.Mat4 {
	top := float32(height)
	return mgl32.Translate3D(0, top, 0).Mul4(mgl32.Scale3D(hudCanvasSize, -hudCanvasSize, 1))
}

// draw renders the overlay on top of the scene for a width*height framebuffer.
func (h *hud) draw(width, height int) {
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	h.shader.use()
	h.shader.setMat4("projection", mgl32.Ortho(0, float32(width), 0, float32(height), -1, 1))
	h.shader.setMat4("model", hudModel(height))
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, h.texture)
	h.shader.setInt("TexCoord", 0)

	gl.BindVertexArray(h.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.DEPTH_TEST)
}

func (h *hud) delete() {
	gl.DeleteVertexArrays(1, &h.vao)
	gl.DeleteBuffers(1, &h.vbo)
	gl.DeleteTextures(1, &h.texture)
	h.shader.delete()
}
