package main

import (
	"testing"

	"github.com/g3n/engine/loader/obj"
	"github.com/go-gl/mathgl/mgl32"
)

func quadDecoder() *obj.Decoder {
	return &obj.Decoder{
		Vertices: []float32{
			0, 0, 0,
			1, 0, 0,
			1, 1, 0,
			0, 1, 0,
		},
		Normals: []float32{0, 0, 1},
		Uvs: []float32{
			0, 0,
			1, 0,
			1, 1,
			0, 1,
		},
		Objects: []obj.Object{{
			Name: "quad",
			Faces: []obj.Face{
				{Vertices: []int{0, 1, 2, 3}, Uvs: []int{0, 1, 2, 3}, Normals: []int{0, 0, 0, 0}, Material: "front"},
				{Vertices: []int{0, 2, 1}, Material: "back"},
				{Vertices: []int{0, 1}, Material: "front"},
				{Vertices: []int{0, 1, 9}, Material: "front"},
			},
		}},
	}
}

func vertexAt(p meshPart, i int) (pos, normal mgl32.Vec3, uv mgl32.Vec2) {
	v := p.vertices[i*vertexStride : (i+1)*vertexStride]
	return mgl32.Vec3{v[0], v[1], v[2]}, mgl32.Vec3{v[3], v[4], v[5]}, mgl32.Vec2{v[6], v[7]}
}

func TestMeshFromOBJ(t *testing.T) {
	parts := meshFromOBJ(quadDecoder())
	if len(parts) != 2 {
		t.Fatalf("got %d parts, want 2", len(parts))
	}
	front, back := parts[0], parts[1]
	if front.material != "front" || back.material != "back" {
		t.Fatalf("materials = %q, %q", front.material, back.material)
	}

	// quad fans into two triangles, degenerate and out of range faces are dropped
	if got := len(front.vertices) / vertexStride; got != 6 {
		t.Fatalf("front has %d vertices, want 6", got)
	}
	wantPos := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	for i, want := range wantPos {
		pos, normal, _ := vertexAt(front, i)
		if pos != want {
			t.Fatalf("vertex %d = %v, want %v", i, pos, want)
		}
		if normal != (mgl32.Vec3{0, 0, 1}) {
			t.Fatalf("vertex %d normal = %v", i, normal)
		}
	}
	// v is flipped
	if _, _, uv := vertexAt(front, 2); uv != (mgl32.Vec2{1, 0}) {
		t.Fatalf("uv = %v, want (1,0)", uv)
	}
	if _, _, uv := vertexAt(front, 0); uv != (mgl32.Vec2{0, 1}) {
		t.Fatalf("uv = %v, want (0,1)", uv)
	}
}

func TestMeshFromOBJFlatNormals(t *testing.T) {
	back := meshFromOBJ(quadDecoder())[1]
	if got := len(back.vertices) / vertexStride; got != 3 {
		t.Fatalf("back has %d vertices, want 3", got)
	}
	for i := 0; i < 3; i++ {
		_, normal, uv := vertexAt(back, i)
		if normal.Sub(mgl32.Vec3{0, 0, -1}).Len() > 1e-6 {
			t.Fatalf("normal = %v, want (0,0,-1)", normal)
		}
		if uv != (mgl32.Vec2{}) {
			t.Fatalf("uv = %v, want zero", uv)
		}
	}
}

func TestModelMatrix(t *testing.T) {
	if m := modelMatrix(0, 0); !m.ApproxEqual(mgl32.Ident4()) {
		t.Fatalf("zero rotation = %v", m)
	}
	// yaw 90 turns +X into -Z
	p := modelMatrix(90, 0).Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	if p.Sub(mgl32.Vec4{0, 0, -1, 1}).Len() > 1e-6 {
		t.Fatalf("rotated = %v", p)
	}
}

func TestNormalMatrix(t *testing.T) {
	mv := mgl32.Translate3D(1, 2, 3).Mul4(mgl32.Scale3D(2, 1, 1))
	n := normalMatrix(mv)
	want := mgl32.Mat3{0.5, 0, 0, 0, 1, 0, 0, 0, 1}
	if !n.ApproxEqualThreshold(want, 1e-6) {
		t.Fatalf("normal matrix = %v, want %v", n, want)
	}
}

func TestProjectionMatrixZeroHeight(t *testing.T) {
	m := projectionMatrix(800, 0)
	for i, v := range m {
		if v != v {
			t.Fatalf("element %d is NaN", i)
		}
	}
}
