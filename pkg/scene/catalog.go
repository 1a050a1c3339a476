package scene

import (
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-weekend-tracer/pkg/core"
	"github.com/df07/go-weekend-tracer/pkg/geometry"
	"github.com/df07/go-weekend-tracer/pkg/material"
	"github.com/df07/go-weekend-tracer/pkg/renderer"
)

// NewDefaultScene creates the reference scene: a large ground sphere with a
// diffuse, a glass and a fuzzy metal sphere resting on it
func NewDefaultScene() *Scene {
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	left := material.NewDielectric(1.5)
	right := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)

	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, left),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, right),
	)

	return NewScene(renderer.DefaultCameraConfig(), world)
}

// NewGradientScene creates an empty scene showing only the sky gradient
func NewGradientScene() *Scene {
	s := NewScene(renderer.DefaultCameraConfig(), geometry.NewWorld())
	// Nothing to bounce off, one sample and one bounce suffice
	s.SamplingConfig = renderer.SamplingConfig{SamplesPerPixel: 1, MaxDepth: 1}
	return s
}

// NewSingleSphereScene creates a scene with one gray diffuse sphere straight
// ahead of the camera
func NewSingleSphereScene() *Scene {
	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray),
	)
	return NewScene(renderer.DefaultCameraConfig(), world)
}

// builtinScenes maps scene names to their constructors
var builtinScenes = map[string]func() *Scene{
	"default":       NewDefaultScene,
	"gradient":      NewGradientScene,
	"single-sphere": NewSingleSphereScene,
}

// CreateScene builds a scene by built-in name, or loads it from a config
// file when the name ends in a recognized config extension
func CreateScene(name string) (*Scene, error) {
	if constructor, ok := builtinScenes[name]; ok {
		return constructor(), nil
	}

	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") || strings.HasSuffix(name, ".toml") {
		return LoadScene(name)
	}

	return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(SceneNames(), ", "))
}

// SceneNames returns the sorted list of built-in scene names
func SceneNames() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
