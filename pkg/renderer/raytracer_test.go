package renderer

import (
	"testing"

	"github.com/df07/go-weekend-tracer/pkg/core"
	"github.com/df07/go-weekend-tracer/pkg/geometry"
	"github.com/df07/go-weekend-tracer/pkg/material"
)

// testScene is a minimal Scene implementation for renderer tests
type testScene struct {
	camera *Camera
	world  *geometry.World
}

func newTestScene(width int, world *geometry.World) *testScene {
	config := DefaultCameraConfig()
	config.Width = width
	return &testScene{camera: NewCamera(config), world: world}
}

func (s *testScene) GetCamera() *Camera        { return s.camera }
func (s *testScene) GetWorld() *geometry.World { return s.world }
func (s *testScene) GetBackgroundColors() (core.Vec3, core.Vec3) {
	return core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1, 1, 1)
}

func TestRaytracer_ImageDimensions(t *testing.T) {
	scene := newTestScene(32, geometry.NewWorld())
	rt := NewRaytracer(scene, SamplingConfig{SamplesPerPixel: 1, MaxDepth: 1}, nil)

	img := rt.Render()
	bounds := img.Bounds()
	if bounds.Dx() != 32 || bounds.Dy() != 18 {
		t.Errorf("Expected 32x18 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRaytracer_SkyGradientOrientation(t *testing.T) {
	scene := newTestScene(16, geometry.NewWorld())
	rt := NewRaytracer(scene, SamplingConfig{SamplesPerPixel: 4, MaxDepth: 2}, nil)

	img := rt.Render()
	height := img.Bounds().Dy()

	top := img.RGBAAt(8, 0)
	bottom := img.RGBAAt(8, height-1)

	// Sky blue above, white below: the red channel grows downward
	if top.R >= bottom.R {
		t.Errorf("Expected bluer sky at the top: top.R=%d, bottom.R=%d", top.R, bottom.R)
	}
	if top.A != 255 || bottom.A != 255 {
		t.Error("Expected opaque pixels")
	}
	// The blue channel saturates everywhere on this gradient
	if top.B != 255 || bottom.B != 255 {
		t.Errorf("Expected saturated blue channel, got top=%v bottom=%v", top, bottom)
	}
}

func TestRaytracer_SphereDarkensCenter(t *testing.T) {
	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world := geometry.NewWorld(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray))

	scene := newTestScene(64, world)
	rt := NewRaytracer(scene, SamplingConfig{SamplesPerPixel: 8, MaxDepth: 4}, nil)

	img := rt.Render()
	width, height := img.Bounds().Dx(), img.Bounds().Dy()

	center := img.RGBAAt(width/2, height/2)
	corner := img.RGBAAt(0, height-1)

	// A diffuse sphere in front of the camera is darker than the sky
	if center.R >= corner.R && center.G >= corner.G && center.B >= corner.B {
		t.Errorf("Expected sphere pixel %v darker than sky pixel %v", center, corner)
	}
}

func TestRaytracer_DeterministicUnderSeed(t *testing.T) {
	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world := geometry.NewWorld(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray))

	render := func() []uint8 {
		scene := newTestScene(16, world)
		rt := NewRaytracer(scene, SamplingConfig{SamplesPerPixel: 4, MaxDepth: 4}, nil)
		rt.SetSampler(core.NewSeededSampler(7))
		return rt.Render().Pix
	}

	first := render()
	second := render()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Renders differ at byte %d under the same seed", i)
		}
	}
}
