package scene

import (
	"github.com/df07/go-weekend-tracer/pkg/core"
	"github.com/df07/go-weekend-tracer/pkg/geometry"
	"github.com/df07/go-weekend-tracer/pkg/renderer"
)

// Scene contains all the elements needed to render a frame
type Scene struct {
	CameraConfig   renderer.CameraConfig
	World          *geometry.World
	TopColor       core.Vec3 // Background gradient at the zenith
	BottomColor    core.Vec3 // Background gradient at the horizon
	SamplingConfig renderer.SamplingConfig

	camera *renderer.Camera
}

// NewScene creates a scene with the default sky gradient
func NewScene(cameraConfig renderer.CameraConfig, world *geometry.World) *Scene {
	return &Scene{
		CameraConfig:   cameraConfig,
		World:          world,
		TopColor:       core.NewVec3(0.5, 0.7, 1.0),
		BottomColor:    core.NewVec3(1.0, 1.0, 1.0),
		SamplingConfig: renderer.DefaultSamplingConfig(),
	}
}

// GetCamera returns the camera, building it lazily from the config
func (s *Scene) GetCamera() *renderer.Camera {
	if s.camera == nil {
		s.camera = renderer.NewCamera(s.CameraConfig)
	}
	return s.camera
}

// GetWorld returns the world aggregate
func (s *Scene) GetWorld() *geometry.World {
	return s.World
}

// GetBackgroundColors returns the sky gradient endpoints
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetPrimitiveCount returns the number of objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.World.Objects)
}
