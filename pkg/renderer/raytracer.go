package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-weekend-tracer/pkg/core"
	"github.com/df07/go-weekend-tracer/pkg/geometry"
	"github.com/df07/go-weekend-tracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of jittered rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Scene provides everything the raytracer needs to render a frame.
// Declared here to avoid a renderer → scene import cycle.
type Scene interface {
	GetCamera() *Camera
	GetWorld() *geometry.World
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
}

// Raytracer drives per-pixel sampling over a scene
type Raytracer struct {
	scene   Scene
	config  SamplingConfig
	sampler core.Sampler
	logger  core.Logger
}

// NewRaytracer creates a new raytracer with a deterministic default sampler
func NewRaytracer(scene Scene, config SamplingConfig, logger core.Logger) *Raytracer {
	return &Raytracer{
		scene:   scene,
		config:  config,
		sampler: core.NewSeededSampler(42),
		logger:  logger,
	}
}

// SetSampler replaces the random sampler, e.g. for seeded reproducibility
func (rt *Raytracer) SetSampler(sampler core.Sampler) {
	rt.sampler = sampler
}

// Render traces the full frame and returns the quantized image.
// Each pixel averages SamplesPerPixel jittered rays in linear space before
// gamma encoding.
func (rt *Raytracer) Render() *image.RGBA {
	camera := rt.scene.GetCamera()
	world := rt.scene.GetWorld()
	top, bottom := rt.scene.GetBackgroundColors()
	tracer := integrator.NewPathTracer(top, bottom)

	width, height := camera.Width(), camera.Height()
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			colorAccum := core.Vec3{}

			for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
				ray := camera.GetRay(col, row, rt.sampler)
				colorAccum = colorAccum.Add(tracer.RayColor(ray, world, rt.sampler, rt.config.MaxDepth))
			}

			colorVec := colorAccum.Multiply(1.0 / float64(rt.config.SamplesPerPixel))
			img.SetRGBA(col, row, vec3ToColor(colorVec))
		}

		if rt.logger != nil && (row+1)%50 == 0 {
			rt.logger.Printf("rendered %d/%d rows", row+1, height)
		}
	}

	return img
}

// vec3ToColor converts a linear Vec3 color to RGBA with gamma correction
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	// Gamma encode (gamma = 2.0), then clamp to the displayable range
	colorVec = colorVec.GammaCorrect(2.0)
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
