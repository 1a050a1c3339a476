// Package server exposes the raytracer over a small HTTP API.
package server

import (
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-weekend-tracer/pkg/core"
	"github.com/df07/go-weekend-tracer/pkg/renderer"
	"github.com/df07/go-weekend-tracer/pkg/scene"
)

// Server handles web requests for the raytracer
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest represents the parameters of a render request
type RenderRequest struct {
	Scene   string // Built-in scene name
	Width   int    // Image width
	Samples int    // Samples per pixel
	Depth   int    // Maximum bounce depth
	Seed    int64  // Sampler seed
}

// Start starts the web server
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/health", s.handleHealth)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, mux)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{"scenes": scene.SceneNames()})
}

// handleRender renders the requested scene and responds with a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid request: %v", err), http.StatusBadRequest)
		return
	}

	// Built-in names only: CreateScene also loads config files by path,
	// which would let remote clients open arbitrary server files
	if !isBuiltinScene(req.Scene) {
		http.Error(w, fmt.Sprintf("unknown scene %q (available: %s)",
			req.Scene, strings.Join(scene.SceneNames(), ", ")), http.StatusBadRequest)
		return
	}

	sceneObj, err := scene.CreateScene(req.Scene)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Width > 0 {
		sceneObj.CameraConfig.Width = req.Width
	}
	config := sceneObj.SamplingConfig
	if req.Samples > 0 {
		config.SamplesPerPixel = req.Samples
	}
	if req.Depth > 0 {
		config.MaxDepth = req.Depth
	}

	raytracer := renderer.NewRaytracer(sceneObj, config, log.Default())
	raytracer.SetSampler(core.NewSeededSampler(req.Seed))

	start := time.Now()
	img := raytracer.Render()
	log.Printf("rendered %s (%dx%d, %d spp) in %v",
		req.Scene, img.Bounds().Dx(), img.Bounds().Dy(), config.SamplesPerPixel, time.Since(start))

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		log.Printf("error encoding response: %v", err)
	}
}

// parseRenderRequest extracts render parameters from query, applying defaults
func (s *Server) parseRenderRequest(r *http.Request) (RenderRequest, error) {
	req := RenderRequest{
		Scene:   "default",
		Width:   0, // 0 = scene default
		Samples: 0,
		Depth:   0,
		Seed:    42,
	}

	query := r.URL.Query()
	if v := query.Get("scene"); v != "" {
		req.Scene = v
	}

	var err error
	if req.Width, err = parseIntParam(query.Get("width"), req.Width); err != nil {
		return req, fmt.Errorf("width: %w", err)
	}
	if query.Get("width") != "" && (req.Width < 1 || req.Width > 4096) {
		return req, fmt.Errorf("width %d out of range [1, 4096]", req.Width)
	}
	if req.Samples, err = parseIntParam(query.Get("samples"), req.Samples); err != nil {
		return req, fmt.Errorf("samples: %w", err)
	}
	if req.Depth, err = parseIntParam(query.Get("depth"), req.Depth); err != nil {
		return req, fmt.Errorf("depth: %w", err)
	}
	if v := query.Get("seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return req, fmt.Errorf("seed: %w", err)
		}
		req.Seed = seed
	}

	return req, nil
}

func parseIntParam(value string, fallback int) (int, error) {
	if value == "" {
		return fallback, nil
	}
	return strconv.Atoi(value)
}

func isBuiltinScene(name string) bool {
	for _, builtin := range scene.SceneNames() {
		if name == builtin {
			return true
		}
	}
	return false
}
