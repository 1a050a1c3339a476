package main

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/df07/go-weekend-tracer/pkg/core"
	"github.com/df07/go-weekend-tracer/pkg/ppm"
	"github.com/df07/go-weekend-tracer/pkg/renderer"
	"github.com/df07/go-weekend-tracer/pkg/scene"
	"github.com/df07/go-weekend-tracer/web/server"
)

const (
	appName = "weekend-tracer"
	version = "v0.3.0"
)

var rootCmd = &cobra.Command{
	Use:     appName,
	Short:   "A recursive stochastic ray tracer",
	Long:    "Renders scenes of spheres with diffuse, metal and glass materials\nby recursive Monte Carlo sampling of light-transport bounces.",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Bind only the invoked command's flags so same-named flags on
		// sibling commands don't shadow each other
		return viper.BindPFlags(cmd.Flags())
	},
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a scene to an image file",
	Long: `Render a built-in scene or a scene config file to PNG or PPM.

Settings come from flags, WEEKEND_TRACER_* environment variables, or a
config file, in that order of precedence.`,
	RunE: runRender,
}

var gradientCmd = &cobra.Command{
	Use:   "gradient",
	Short: "Write the sky gradient to a PPM file",
	Long:  "Renders the empty-world background gradient, the first real image of the pipeline.",
	RunE:  runGradient,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve renders over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.NewServer(viper.GetInt("port")).Start()
	},
}

func init() {
	renderCmd.Flags().String("scene", "default", "built-in scene name or path to a scene config file")
	renderCmd.Flags().Int("width", 0, "image width in pixels (0 = scene default)")
	renderCmd.Flags().Int("samples", 0, "samples per pixel (0 = scene default)")
	renderCmd.Flags().Int("depth", 0, "maximum bounce depth (0 = scene default)")
	renderCmd.Flags().Int64("seed", 42, "random sampler seed")
	renderCmd.Flags().String("output", "output", "output directory")
	renderCmd.Flags().String("format", "png", "output format: png or ppm")

	gradientCmd.Flags().String("output", "gradient.ppm", "output file")

	serveCmd.Flags().Int("port", 8080, "port to serve on")

	viper.SetEnvPrefix("WEEKEND_TRACER")
	viper.AutomaticEnv()

	rootCmd.AddCommand(renderCmd, gradientCmd, serveCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	sceneName := viper.GetString("scene")
	sceneObj, err := scene.CreateScene(sceneName)
	if err != nil {
		return err
	}

	if width := viper.GetInt("width"); width > 0 {
		sceneObj.CameraConfig.Width = width
	}

	config := sceneObj.SamplingConfig
	if samples := viper.GetInt("samples"); samples > 0 {
		config.SamplesPerPixel = samples
	}
	if depth := viper.GetInt("depth"); depth > 0 {
		config.MaxDepth = depth
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)
	raytracer := renderer.NewRaytracer(sceneObj, config, logger)
	raytracer.SetSampler(core.NewSeededSampler(viper.GetInt64("seed")))

	logger.Printf("rendering %s (%d spp, depth %d)", sceneName, config.SamplesPerPixel, config.MaxDepth)
	start := time.Now()
	img := raytracer.Render()
	logger.Printf("render finished in %v", time.Since(start))

	format := viper.GetString("format")
	outputPath, err := writeImage(img, viper.GetString("output"), sceneName, format)
	if err != nil {
		return err
	}

	logger.Printf("wrote %s", outputPath)
	return nil
}

func runGradient(cmd *cobra.Command, args []string) error {
	sceneObj := scene.NewGradientScene()
	raytracer := renderer.NewRaytracer(sceneObj, sceneObj.SamplingConfig, nil)
	img := raytracer.Render()

	path := viper.GetString("output")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := ppm.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	fmt.Printf("wrote %s\n", path)
	return nil
}

// writeImage saves img under dir with a timestamped name in the given format
func writeImage(img image.Image, dir, sceneName, format string) (string, error) {
	// Scene config paths make poor directory names, keep the base only
	base := strings.TrimSuffix(filepath.Base(sceneName), filepath.Ext(sceneName))
	outputDir := filepath.Join(dir, base)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	name := fmt.Sprintf("render_%s.%s", time.Now().Format("20060102_150405"), format)
	path := filepath.Join(outputDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	switch format {
	case "png":
		err = png.Encode(f, img)
	case "ppm":
		err = ppm.Encode(f, img)
	default:
		return "", fmt.Errorf("unknown format %q, want png or ppm", format)
	}
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", path, err)
	}

	return path, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
