package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/df07/go-weekend-tracer/pkg/core"
	"github.com/df07/go-weekend-tracer/pkg/geometry"
	"github.com/df07/go-weekend-tracer/pkg/material"
	"github.com/df07/go-weekend-tracer/pkg/renderer"
)

func writeSceneFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Writing scene file: %v", err)
	}
	return path
}

func TestLoadScene_Full(t *testing.T) {
	path := writeSceneFile(t, `
camera:
  center: [0, 0.5, 2]
  width: 200
  aspect_ratio: 1.0
background:
  top: [0.2, 0.4, 0.9]
  bottom: [0.9, 0.9, 0.9]
sampling:
  samples_per_pixel: 25
  max_depth: 10
spheres:
  - center: [0, 0, -1]
    radius: 0.5
    material:
      type: lambertian
      albedo: [0.1, 0.2, 0.5]
  - center: [1, 0, -1]
    radius: 0.5
    material:
      type: metal
      albedo: [0.8, 0.6, 0.2]
      fuzz: 0.3
  - center: [-1, 0, -1]
    radius: 0.5
    material:
      type: dielectric
      refractive_index: 1.5
`)

	s, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene failed: %v", err)
	}

	expectedCamera := renderer.CameraConfig{
		Center:         core.NewVec3(0, 0.5, 2),
		Width:          200,
		AspectRatio:    1.0,
		ViewportHeight: 2.0,
		FocalLength:    1.0,
	}
	if diff := cmp.Diff(expectedCamera, s.CameraConfig); diff != "" {
		t.Errorf("Camera config mismatch (-want +got):\n%s", diff)
	}

	if s.GetPrimitiveCount() != 3 {
		t.Fatalf("Expected 3 spheres, got %d", s.GetPrimitiveCount())
	}
	if s.SamplingConfig.SamplesPerPixel != 25 || s.SamplingConfig.MaxDepth != 10 {
		t.Errorf("Sampling config not applied: %+v", s.SamplingConfig)
	}
	if s.TopColor != core.NewVec3(0.2, 0.4, 0.9) {
		t.Errorf("Background top not applied: %v", s.TopColor)
	}

	metalSphere := s.World.Objects[1].(*geometry.Sphere)
	metal, ok := metalSphere.Material.(*material.Metal)
	if !ok {
		t.Fatalf("Expected metal material, got %T", metalSphere.Material)
	}
	if metal.Fuzz != 0.3 {
		t.Errorf("Expected fuzz 0.3, got %v", metal.Fuzz)
	}
}

func TestLoadScene_Defaults(t *testing.T) {
	path := writeSceneFile(t, `
spheres:
  - center: [0, 0, -1]
    radius: 0.5
    material:
      type: lambertian
      albedo: [0.5, 0.5, 0.5]
`)

	s, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene failed: %v", err)
	}

	if diff := cmp.Diff(renderer.DefaultCameraConfig(), s.CameraConfig); diff != "" {
		t.Errorf("Expected default camera config (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(renderer.DefaultSamplingConfig(), s.SamplingConfig); diff != "" {
		t.Errorf("Expected default sampling config (-want +got):\n%s", diff)
	}
}

func TestLoadScene_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "negative radius",
			content: `
spheres:
  - center: [0, 0, -1]
    radius: -1
    material: {type: lambertian, albedo: [0.5, 0.5, 0.5]}
`,
			wantErr: "radius must be positive",
		},
		{
			name: "unknown material",
			content: `
spheres:
  - center: [0, 0, -1]
    radius: 0.5
    material: {type: velvet, albedo: [0.5, 0.5, 0.5]}
`,
			wantErr: "unknown material type",
		},
		{
			name: "fuzz out of range",
			content: `
spheres:
  - center: [0, 0, -1]
    radius: 0.5
    material: {type: metal, albedo: [0.5, 0.5, 0.5], fuzz: 1.5}
`,
			wantErr: "fuzz must be in [0, 1]",
		},
		{
			name: "bad refractive index",
			content: `
spheres:
  - center: [0, 0, -1]
    radius: 0.5
    material: {type: dielectric, refractive_index: -1}
`,
			wantErr: "refractive_index must be positive",
		},
		{
			name: "wrong vector arity",
			content: `
spheres:
  - center: [0, 0]
    radius: 0.5
    material: {type: lambertian, albedo: [0.5, 0.5, 0.5]}
`,
			wantErr: "must have 3 components",
		},
		{
			name: "bad camera width",
			content: `
camera:
  width: -10
`,
			wantErr: "width must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSceneFile(t, tt.content)
			_, err := LoadScene(path)
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadScene_MissingFile(t *testing.T) {
	if _, err := LoadScene(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestCreateScene_ConfigPath(t *testing.T) {
	path := writeSceneFile(t, `
spheres:
  - center: [0, 0, -1]
    radius: 0.5
    material: {type: lambertian, albedo: [0.5, 0.5, 0.5]}
`)

	s, err := CreateScene(path)
	if err != nil {
		t.Fatalf("CreateScene with config path failed: %v", err)
	}
	if s.GetPrimitiveCount() != 1 {
		t.Errorf("Expected 1 sphere, got %d", s.GetPrimitiveCount())
	}
}
