package scene

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/df07/go-weekend-tracer/pkg/core"
	"github.com/df07/go-weekend-tracer/pkg/geometry"
	"github.com/df07/go-weekend-tracer/pkg/material"
	"github.com/df07/go-weekend-tracer/pkg/renderer"
)

// fileConfig mirrors the on-disk scene description
type fileConfig struct {
	Camera struct {
		Center         []float64 `mapstructure:"center"`
		Width          int       `mapstructure:"width"`
		AspectRatio    float64   `mapstructure:"aspect_ratio"`
		ViewportHeight float64   `mapstructure:"viewport_height"`
		FocalLength    float64   `mapstructure:"focal_length"`
	} `mapstructure:"camera"`
	Background struct {
		Top    []float64 `mapstructure:"top"`
		Bottom []float64 `mapstructure:"bottom"`
	} `mapstructure:"background"`
	Sampling struct {
		SamplesPerPixel int `mapstructure:"samples_per_pixel"`
		MaxDepth        int `mapstructure:"max_depth"`
	} `mapstructure:"sampling"`
	Spheres []sphereConfig `mapstructure:"spheres"`
}

type sphereConfig struct {
	Center   []float64      `mapstructure:"center"`
	Radius   float64        `mapstructure:"radius"`
	Material materialConfig `mapstructure:"material"`
}

type materialConfig struct {
	Type            string    `mapstructure:"type"`
	Albedo          []float64 `mapstructure:"albedo"`
	Fuzz            float64   `mapstructure:"fuzz"`
	RefractiveIndex float64   `mapstructure:"refractive_index"`
}

// LoadScene reads a scene description from a YAML or TOML file.
// Construction happens once, off the hot path, so invalid parameters fail
// fast with descriptive errors instead of being silently repaired.
func LoadScene(path string) (*Scene, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading scene file %s: %w", path, err)
	}

	var cfg fileConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing scene file %s: %w", path, err)
	}

	return buildScene(cfg)
}

func buildScene(cfg fileConfig) (*Scene, error) {
	cameraConfig := renderer.DefaultCameraConfig()
	if cfg.Camera.Center != nil {
		center, err := parseVec3(cfg.Camera.Center, "camera.center")
		if err != nil {
			return nil, err
		}
		cameraConfig.Center = center
	}
	if cfg.Camera.Width != 0 {
		if cfg.Camera.Width < 1 {
			return nil, fmt.Errorf("camera.width must be positive, got %d", cfg.Camera.Width)
		}
		cameraConfig.Width = cfg.Camera.Width
	}
	if cfg.Camera.AspectRatio != 0 {
		if cfg.Camera.AspectRatio <= 0 {
			return nil, fmt.Errorf("camera.aspect_ratio must be positive, got %g", cfg.Camera.AspectRatio)
		}
		cameraConfig.AspectRatio = cfg.Camera.AspectRatio
	}
	if cfg.Camera.ViewportHeight != 0 {
		cameraConfig.ViewportHeight = cfg.Camera.ViewportHeight
	}
	if cfg.Camera.FocalLength != 0 {
		cameraConfig.FocalLength = cfg.Camera.FocalLength
	}

	world := geometry.NewWorld()
	for i, sc := range cfg.Spheres {
		sphere, err := buildSphere(sc)
		if err != nil {
			return nil, fmt.Errorf("spheres[%d]: %w", i, err)
		}
		world.Add(sphere)
	}

	s := NewScene(cameraConfig, world)

	if cfg.Background.Top != nil {
		top, err := parseVec3(cfg.Background.Top, "background.top")
		if err != nil {
			return nil, err
		}
		s.TopColor = top
	}
	if cfg.Background.Bottom != nil {
		bottom, err := parseVec3(cfg.Background.Bottom, "background.bottom")
		if err != nil {
			return nil, err
		}
		s.BottomColor = bottom
	}

	if cfg.Sampling.SamplesPerPixel != 0 {
		s.SamplingConfig.SamplesPerPixel = cfg.Sampling.SamplesPerPixel
	}
	if cfg.Sampling.MaxDepth != 0 {
		s.SamplingConfig.MaxDepth = cfg.Sampling.MaxDepth
	}

	return s, nil
}

func buildSphere(sc sphereConfig) (*geometry.Sphere, error) {
	center, err := parseVec3(sc.Center, "center")
	if err != nil {
		return nil, err
	}
	if sc.Radius <= 0 {
		return nil, fmt.Errorf("radius must be positive, got %g", sc.Radius)
	}

	mat, err := buildMaterial(sc.Material)
	if err != nil {
		return nil, err
	}

	return geometry.NewSphere(center, sc.Radius, mat), nil
}

func buildMaterial(mc materialConfig) (material.Material, error) {
	switch mc.Type {
	case "lambertian":
		albedo, err := parseVec3(mc.Albedo, "material.albedo")
		if err != nil {
			return nil, err
		}
		return material.NewLambertian(albedo), nil

	case "metal":
		albedo, err := parseVec3(mc.Albedo, "material.albedo")
		if err != nil {
			return nil, err
		}
		if mc.Fuzz < 0 || mc.Fuzz > 1 {
			return nil, fmt.Errorf("material.fuzz must be in [0, 1], got %g", mc.Fuzz)
		}
		return material.NewMetal(albedo, mc.Fuzz), nil

	case "dielectric":
		if mc.RefractiveIndex <= 0 {
			return nil, fmt.Errorf("material.refractive_index must be positive, got %g", mc.RefractiveIndex)
		}
		if mc.Albedo != nil {
			albedo, err := parseVec3(mc.Albedo, "material.albedo")
			if err != nil {
				return nil, err
			}
			return material.NewTintedDielectric(albedo, mc.RefractiveIndex), nil
		}
		return material.NewDielectric(mc.RefractiveIndex), nil

	default:
		return nil, fmt.Errorf("unknown material type %q", mc.Type)
	}
}

func parseVec3(values []float64, field string) (core.Vec3, error) {
	if len(values) != 3 {
		return core.Vec3{}, fmt.Errorf("%s must have 3 components, got %d", field, len(values))
	}
	return core.NewVec3(values[0], values[1], values[2]), nil
}
