package main

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCubeDirectionFaceCentres(t *testing.T) {
	want := [6]mgl32.Vec3{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}
	for face, w := range want {
		if got := cubeDirection(face, 0, 0, 1); got.Sub(w).Len() > 1e-6 {
			t.Fatalf("face %d centre = %v, want %v", face, got, w)
		}
	}
}

func TestCubeDirectionTopRowLooksUp(t *testing.T) {
	for _, face := range []int{0, 1, 4, 5} {
		if d := cubeDirection(face, 10, 0, 64); d[1] <= 0 {
			t.Fatalf("face %d top row direction %v points down", face, d)
		}
	}
}

func TestSquareFaces(t *testing.T) {
	var images [6]image.Image
	big := image.NewRGBA(image.Rect(0, 0, 4, 4))
	images[0] = big
	for i := 1; i < 6; i++ {
		img := image.NewNRGBA(image.Rect(0, 0, 2, 3))
		for y := 0; y < 3; y++ {
			for x := 0; x < 2; x++ {
				img.Set(x, y, color.NRGBA{R: 200, A: 255})
			}
		}
		images[i] = img
	}

	faces := squareFaces(images)
	if faces[0] != big {
		t.Fatalf("already square face was copied")
	}
	for i, f := range faces {
		if f.Bounds() != image.Rect(0, 0, 4, 4) {
			t.Fatalf("face %d bounds = %v", i, f.Bounds())
		}
	}
	if c := faces[3].RGBAAt(2, 2); c.R < 150 || c.A < 250 {
		t.Fatalf("resampled pixel = %v", c)
	}
}

func TestGeneratedSkyFaces(t *testing.T) {
	a := generatedSkyFaces(8, 12)
	b := generatedSkyFaces(8, 12)
	for i := range a {
		if a[i].Bounds() != image.Rect(0, 0, 8, 8) {
			t.Fatalf("face %d bounds = %v", i, a[i].Bounds())
		}
		if string(a[i].Pix) != string(b[i].Pix) {
			t.Fatalf("face %d differs for the same seed", i)
		}
	}

	ground := generatedSkyFaces(1, 12)[3].RGBAAt(0, 0)
	if ground != (color.RGBA{89, 84, 76, 255}) {
		t.Fatalf("ground = %v", ground)
	}
	zenith := generatedSkyFaces(1, 12)[2].RGBAAt(0, 0)
	if zenith.B < zenith.R {
		t.Fatalf("zenith %v is not blue or white", zenith)
	}
}

func TestSkyboxViewDropsTranslation(t *testing.T) {
	view := mgl32.LookAtV(mgl32.Vec3{5, 6, 7}, mgl32.Vec3{6, 6, 7}, mgl32.Vec3{0, 1, 0})
	v := skyboxView(view)
	if v.Col(3) != (mgl32.Vec4{0, 0, 0, 1}) {
		t.Fatalf("translation kept: %v", v.Col(3))
	}
	if v.Mat3() != view.Mat3() {
		t.Fatalf("rotation changed")
	}
}
