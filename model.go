package main

import (
	"log"
	"path/filepath"

	"github.com/g3n/engine/loader/obj"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// position(3) normal(3) uv(2)
const vertexStride = 8

// meshPart is the triangles of one material, flattened for DrawArrays.
type meshPart struct {
	material string
	vertices []float32
}

type drawPart struct {
	vao         uint32
	vbo         uint32
	vertexCount int32
	texture     uint32
	color       mgl32.Vec3
}

// model is a mesh loaded from a Wavefront OBJ file.
type model struct {
	parts []drawPart
	white uint32
}

func loadModel(objPath string) (*model, error) {
	dec, err := obj.Decode(objPath, "")
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", objPath)
	}
	for _, w := range dec.Warnings {
		log.Printf("[model] %s: %s", objPath, w)
	}

	parts := meshFromOBJ(dec)
	if len(parts) == 0 {
		return nil, errors.Errorf("%s has no faces", objPath)
	}

	m := &model{white: whiteTexture()}
	dir := filepath.Dir(objPath)
	textures := make(map[string]uint32)
	for _, p := range parts {
		dp := drawPart{texture: m.white, color: mgl32.Vec3{1, 1, 1}}
		if mat, ok := dec.Materials[p.material]; ok {
			dp.color = mgl32.Vec3{mat.Diffuse.R, mat.Diffuse.G, mat.Diffuse.B}
			if mat.MapKd != "" {
				path := filepath.Join(dir, mat.MapKd)
				tex, ok := textures[path]
				if !ok {
					tex, err = loadTexture(path)
					if err != nil {
						log.Printf("[model] %v, using diffuse colour", err)
						tex = m.white
					}
					textures[path] = tex
				}
				if tex != m.white {
					// the texture already carries the surface colour
					dp.texture = tex
					dp.color = mgl32.Vec3{1, 1, 1}
				}
			}
		}
		dp.vao, dp.vbo = uploadMesh(p.vertices)
		dp.vertexCount = int32(len(p.vertices) / vertexStride)
		m.parts = append(m.parts, dp)
	}
	log.Printf("[model] loaded %s: %d parts", objPath, len(m.parts))
	return m, nil
}

// meshFromOBJ triangulates every face as a fan and groups the triangles by
// material, in the order materials are first used. Faces without normals get
// the flat face normal; missing texture coordinates become (0, 0). V is
// flipped because images are uploaded top row first.
func meshFromOBJ(dec *obj.Decoder) []meshPart {
	var parts []meshPart
	index := make(map[string]int)

	vec3 := func(data []float32, i int) (mgl32.Vec3, bool) {
		if i < 0 || 3*i+2 >= len(data) {
			return mgl32.Vec3{}, false
		}
		return mgl32.Vec3{data[3*i], data[3*i+1], data[3*i+2]}, true
	}
	uv := func(face obj.Face, k int) mgl32.Vec2 {
		if k >= len(face.Uvs) {
			return mgl32.Vec2{}
		}
		i := face.Uvs[k]
		if i < 0 || 2*i+1 >= len(dec.Uvs) {
			return mgl32.Vec2{}
		}
		return mgl32.Vec2{dec.Uvs[2*i], 1 - dec.Uvs[2*i+1]}
	}
	normal := func(face obj.Face, k int) (mgl32.Vec3, bool) {
		if k >= len(face.Normals) {
			return mgl32.Vec3{}, false
		}
		return vec3(dec.Normals, face.Normals[k])
	}

	for _, object := range dec.Objects {
		for _, face := range object.Faces {
			if len(face.Vertices) < 3 {
				continue
			}
			pi, ok := index[face.Material]
			if !ok {
				pi = len(parts)
				index[face.Material] = pi
				parts = append(parts, meshPart{material: face.Material})
			}

			for k := 1; k+1 < len(face.Vertices); k++ {
				corners := [3]int{0, k, k + 1}
				var pos [3]mgl32.Vec3
				valid := true
				for c, idx := range corners {
					if pos[c], ok = vec3(dec.Vertices, face.Vertices[idx]); !ok {
						valid = false
					}
				}
				if !valid {
					continue
				}
				flat := pos[1].Sub(pos[0]).Cross(pos[2].Sub(pos[0]))
				if flat.Len() > 0 {
					flat = flat.Normalize()
				}
				for c, idx := range corners {
					n, ok := normal(face, idx)
					if !ok {
						n = flat
					}
					t := uv(face, idx)
					parts[pi].vertices = append(parts[pi].vertices,
						pos[c][0], pos[c][1], pos[c][2],
						n[0], n[1], n[2],
						t[0], t[1],
					)
				}
			}
		}
	}
	return parts
}

func uploadMesh(vertices []float32) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride*4, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, vertexStride*4, 6*4)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vao, vbo
}

// draw renders every part with shader, which must be in use.
func (m *model) draw(shader *shaderProgram) {
	gl.ActiveTexture(gl.TEXTURE0)
	shader.setInt("diffuseTexture", 0)
	for _, p := range m.parts {
		gl.BindTexture(gl.TEXTURE_2D, p.texture)
		shader.setVec3("diffuseColor", p.color)
		gl.BindVertexArray(p.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, p.vertexCount)
	}
	gl.BindVertexArray(0)
}

func (m *model) delete() {
	deleted := map[uint32]bool{}
	for _, p := range m.parts {
		gl.DeleteVertexArrays(1, &p.vao)
		gl.DeleteBuffers(1, &p.vbo)
		if !deleted[p.texture] {
			gl.DeleteTextures(1, &p.texture)
			deleted[p.texture] = true
		}
	}
	if !deleted[m.white] {
		gl.DeleteTextures(1, &m.white)
	}
}
