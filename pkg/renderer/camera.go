package renderer

import (
	"github.com/df07/go-weekend-tracer/pkg/core"
)

// CameraConfig holds the parameters that define the viewing geometry
type CameraConfig struct {
	Center         core.Vec3 // Camera position
	Width          int       // Image width in pixels
	AspectRatio    float64   // Width / height
	ViewportHeight float64   // Viewport height in world units
	FocalLength    float64   // Distance from camera to viewport
}

// DefaultCameraConfig returns the standard 16:9 camera at the origin
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center:         core.NewVec3(0, 0, 0),
		Width:          400,
		AspectRatio:    16.0 / 9.0,
		ViewportHeight: 2.0,
		FocalLength:    1.0,
	}
}

// Camera generates rays through a pixel grid on the viewport
type Camera struct {
	config  CameraConfig
	height  int
	du      core.Vec3 // Viewport step per pixel column
	dv      core.Vec3 // Viewport step per pixel row (points down)
	pixel00 core.Vec3 // Center of the top-left pixel
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	height := int(float64(config.Width) / config.AspectRatio)
	if height < 1 {
		height = 1
	}

	// Recompute the ratio actual pixels produce, since height is truncated
	aspectRatio := float64(config.Width) / float64(height)

	viewportHeight := config.ViewportHeight
	viewportWidth := aspectRatio * viewportHeight

	// Viewport spans rightward in u and downward in v, so pixel (0,0) is
	// the top-left of the image
	viewportU := core.NewVec3(viewportWidth, 0, 0)
	viewportV := core.NewVec3(0, -viewportHeight, 0)

	du := viewportU.Multiply(1.0 / float64(config.Width))
	dv := viewportV.Multiply(1.0 / float64(height))

	// Viewport sits focal-length in front of the camera (negative Z),
	// offset back to its top-left corner
	viewportOrigin := config.Center.
		Subtract(core.NewVec3(0, 0, config.FocalLength)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))

	// Pixel centers sit in the middle of the grid cells
	pixel00 := viewportOrigin.Add(du.Add(dv).Multiply(0.5))

	return &Camera{
		config:  config,
		height:  height,
		du:      du,
		dv:      dv,
		pixel00: pixel00,
	}
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.config.Width
}

// Height returns the image height in pixels
func (c *Camera) Height() int {
	return c.height
}

// GetRay generates a ray through pixel (col, row) with sub-pixel jitter
// uniform in [-0.5, 0.5)² pixel units
func (c *Camera) GetRay(col, row int, sampler core.Sampler) core.Ray {
	jitter := core.SampleUnitSquare(sampler)

	pixel := c.pixel00.
		Add(c.du.Multiply(float64(col) + jitter.X)).
		Add(c.dv.Multiply(float64(row) + jitter.Y))

	return core.NewRay(c.config.Center, pixel.Subtract(c.config.Center))
}

// GetCenterRay generates the ray through the exact center of pixel (col, row)
func (c *Camera) GetCenterRay(col, row int) core.Ray {
	pixel := c.pixel00.
		Add(c.du.Multiply(float64(col))).
		Add(c.dv.Multiply(float64(row)))

	return core.NewRay(c.config.Center, pixel.Subtract(c.config.Center))
}
