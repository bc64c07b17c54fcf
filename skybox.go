package main

import (
	"image"
	"image/color"
	"log"
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/ojrac/opensimplex-go"
	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"
)

// Edge length of the generated sky faces.
const generatedSkySize = 256

// skybox is a cube map drawn around the camera behind everything else.
type skybox struct {
	vao     uint32
	vbo     uint32
	texture uint32
}

// Unit cube (positions only), 36 vertices (12 triangles).
// Culling is disabled while drawing, the camera sits inside.
var skyboxVertices = []float32{
	// +X
	1, -1, -1, 1, 1, -1, 1, 1, 1,
	1, -1, -1, 1, 1, 1, 1, -1, 1,
	// -X
	-1, -1, -1, -1, -1, 1, -1, 1, 1,
	-1, -1, -1, -1, 1, 1, -1, 1, -1,
	// +Y
	-1, 1, -1, 1, 1, -1, 1, 1, 1,
	-1, 1, -1, 1, 1, 1, -1, 1, 1,
	// -Y
	-1, -1, -1, -1, -1, 1, 1, -1, 1,
	-1, -1, -1, 1, -1, 1, 1, -1, -1,
	// +Z
	-1, -1, 1, 1, -1, 1, 1, 1, 1,
	-1, -1, 1, 1, 1, 1, -1, 1, 1,
	// -Z
	-1, -1, -1, 1, -1, -1, 1, 1, -1,
	-1, -1, -1, 1, 1, -1, -1, 1, -1,
}

// loadSkybox builds the cube map from six face images in +X -X +Y -Y +Z -Z
// order. If any face cannot be read a sky is generated from seed instead.
func loadSkybox(facePaths [6]string, seed int64) *skybox {
	faces, err := loadSkyboxFaces(facePaths)
	if err != nil {
		log.Printf("[skybox] %v, generating sky", err)
		faces = generatedSkyFaces(generatedSkySize, seed)
	}

	s := &skybox{texture: uploadCubeMap(faces)}

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)

	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(skyboxVertices)*4, gl.Ptr(skyboxVertices), gl.STATIC_DRAW)

	// Position attribute at location 0
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return s
}

func loadSkyboxFaces(facePaths [6]string) ([6]*image.RGBA, error) {
	var images [6]image.Image
	for i, path := range facePaths {
		img, err := loadImage(path)
		if err != nil {
			return [6]*image.RGBA{}, errors.Wrapf(err, "face %d", i)
		}
		images[i] = img
	}
	return squareFaces(images), nil
}

// squareFaces resamples every face to the size of the largest edge found, as
// cube map faces must be square and equally sized.
func squareFaces(images [6]image.Image) [6]*image.RGBA {
	size := 1
	for _, img := range images {
		b := img.Bounds()
		size = max(size, b.Dx(), b.Dy())
	}

	var faces [6]*image.RGBA
	for i, img := range images {
		b := img.Bounds()
		if rgba, ok := img.(*image.RGBA); ok && b.Dx() == size && b.Dy() == size && b.Min == (image.Point{}) {
			faces[i] = rgba
			continue
		}
		dst := image.NewRGBA(image.Rect(0, 0, size, size))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
		faces[i] = dst
	}
	return faces
}

// cubeDirection maps pixel (x, y) of a size*size face to the direction it
// covers, following the GL cube map face orientation.
func cubeDirection(face, x, y, size int) mgl32.Vec3 {
	s := 2*(float32(x)+0.5)/float32(size) - 1
	t := 2*(float32(y)+0.5)/float32(size) - 1
	var d mgl32.Vec3
	switch face {
	case 0:
		d = mgl32.Vec3{1, -t, -s}
	case 1:
		d = mgl32.Vec3{-1, -t, s}
	case 2:
		d = mgl32.Vec3{s, 1, t}
	case 3:
		d = mgl32.Vec3{s, -1, -t}
	case 4:
		d = mgl32.Vec3{s, -t, 1}
	default:
		d = mgl32.Vec3{-s, -t, -1}
	}
	return d.Normalize()
}

func fractalNoise3D(noise opensimplex.Noise32, p mgl32.Vec3, octaves int, lacunarity, persistence float32) float32 {
	var val, norm float32
	amplitude := float32(1)
	for i := 0; i < octaves; i++ {
		val += noise.Eval3(p[0], p[1], p[2]) * amplitude
		norm += amplitude
		p = p.Mul(lacunarity)
		amplitude *= persistence
	}
	return val / norm
}

var (
	skyZenith  = mgl32.Vec3{0.22, 0.45, 0.85}
	skyHorizon = mgl32.Vec3{0.72, 0.84, 0.95}
	skyGround  = mgl32.Vec3{0.35, 0.33, 0.30}
)

// generatedSkyFaces paints a gradient sky with simplex noise clouds above the
// horizon.
func generatedSkyFaces(size int, seed int64) [6]*image.RGBA {
	noise := opensimplex.New32(seed)
	var faces [6]*image.RGBA
	for f := range faces {
		img := image.NewRGBA(image.Rect(0, 0, size, size))
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				img.SetRGBA(x, y, skyColor(noise, cubeDirection(f, x, y, size)))
			}
		}
		faces[f] = img
	}
	return faces
}

func skyColor(noise opensimplex.Noise32, dir mgl32.Vec3) color.RGBA {
	var c mgl32.Vec3
	if dir[1] < 0 {
		k := float32(math.Min(1, float64(-dir[1])*4))
		c = lerp(skyHorizon, skyGround, k)
	} else {
		c = lerp(skyHorizon, skyZenith, float32(math.Sqrt(float64(dir[1]))))
		cloud := fractalNoise3D(noise, dir.Mul(3), 4, 2, 0.5)
		// fade clouds out towards the horizon
		cover := mgl32.Clamp((cloud-0.05)*2.5, 0, 1) * mgl32.Clamp(dir[1]*5, 0, 1)
		c = lerp(c, mgl32.Vec3{1, 1, 1}, cover)
	}
	return color.RGBA{
		R: uint8(mgl32.Clamp(c[0], 0, 1) * 255),
		G: uint8(mgl32.Clamp(c[1], 0, 1) * 255),
		B: uint8(mgl32.Clamp(c[2], 0, 1) * 255),
		A: 255,
	}
}

func lerp(a, b mgl32.Vec3, alpha float32) mgl32.Vec3 {
	return (b.Sub(a)).Mul(alpha).Add(a) // Linear interpolation between a and b
}

func uploadCubeMap(faces [6]*image.RGBA) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	for i, face := range faces {
		b := face.Bounds()
		gl.TexImage2D(uint32(gl.TEXTURE_CUBE_MAP_POSITIVE_X+i), 0, gl.SRGB8_ALPHA8, int32(b.Dx()), int32(b.Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(face.Pix))
	}
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	return texture
}

// skyboxView drops the translation so the sky stays centred on the camera.
func skyboxView(view mgl32.Mat4) mgl32.Mat4 {
	return view.Mat3().Mat4()
}

// draw renders the sky last: depth is written as 1 by the shader, so LEQUAL
// lets it fill only the pixels nothing else covered.
func (s *skybox) draw(shader *shaderProgram, view, projection mgl32.Mat4) {
	gl.DepthMask(false)
	gl.DepthFunc(gl.LEQUAL)
	gl.Disable(gl.CULL_FACE)

	shader.use()
	shader.setMat4("view", skyboxView(view))
	shader.setMat4("projection", projection)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, s.texture)
	shader.setInt("skybox", 0)

	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 36)
	gl.BindVertexArray(0)

	// Restore state expected by the rest of the pipeline
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.DepthFunc(gl.LESS)
	gl.DepthMask(true)
}

func (s *skybox) delete() {
	gl.DeleteVertexArrays(1, &s.vao)
	gl.DeleteBuffers(1, &s.vbo)
	gl.DeleteTextures(1, &s.texture)
}
