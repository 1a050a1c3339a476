package server

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandleHealth(t *testing.T) {
	server := NewServer(8080)
	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()

	server.handleHealth(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Decoding response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %q", body["status"])
	}
}

func TestHandleScenes(t *testing.T) {
	server := NewServer(8080)
	req := httptest.NewRequest("GET", "/api/scenes", nil)
	w := httptest.NewRecorder()

	server.handleScenes(w, req)

	var body map[string][]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Decoding response: %v", err)
	}

	scenes := body["scenes"]
	if len(scenes) == 0 {
		t.Fatal("Expected at least one scene")
	}
	found := false
	for _, name := range scenes {
		if name == "default" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected default scene in list, got %v", scenes)
	}
}

func TestParseRenderRequest(t *testing.T) {
	server := NewServer(8080)

	tests := []struct {
		name        string
		query       string
		expected    RenderRequest
		expectError string
	}{
		{
			name:     "defaults",
			query:    "",
			expected: RenderRequest{Scene: "default", Width: 0, Samples: 0, Depth: 0, Seed: 42},
		},
		{
			name:     "all parameters",
			query:    "scene=gradient&width=64&samples=8&depth=4&seed=7",
			expected: RenderRequest{Scene: "gradient", Width: 64, Samples: 8, Depth: 4, Seed: 7},
		},
		{
			name:        "non-numeric width",
			query:       "width=abc",
			expectError: "width",
		},
		{
			name:        "width too large",
			query:       "width=5000",
			expectError: "out of range",
		},
		{
			name:        "width too small",
			query:       "width=0",
			expectError: "out of range",
		},
		{
			name:        "bad seed",
			query:       "seed=xyz",
			expectError: "seed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/render?"+tt.query, nil)
			parsed, err := server.parseRenderRequest(req)

			if tt.expectError != "" {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.expectError) {
					t.Errorf("Expected error containing %q, got %q", tt.expectError, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("parseRenderRequest failed: %v", err)
			}
			if parsed != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, parsed)
			}
		})
	}
}

func TestHandleRender_BadRequest(t *testing.T) {
	server := NewServer(8080)

	tests := []struct {
		name  string
		query string
	}{
		{"invalid width", "width=nope"},
		{"unknown scene", "scene=no-such-scene"},
		{"scene config path", "scene=../../etc/scenes.yaml"},
		{"toml path", "scene=mine.toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/render?"+tt.query, nil)
			w := httptest.NewRecorder()

			server.handleRender(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", w.Code)
			}
		})
	}
}

func TestHandleRender_SceneDefaultWidth(t *testing.T) {
	server := NewServer(8080)
	// No width parameter: the scene's own camera width (400) must survive
	req := httptest.NewRequest("GET", "/api/render?scene=gradient", nil)
	w := httptest.NewRecorder()

	server.handleRender(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	img, err := png.Decode(w.Body)
	if err != nil {
		t.Fatalf("Decoding response PNG: %v", err)
	}
	if img.Bounds().Dx() != 400 || img.Bounds().Dy() != 225 {
		t.Errorf("Expected 400x225 image, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestHandleRender_ReturnsPNG(t *testing.T) {
	server := NewServer(8080)
	// Gradient scene keeps this fast: no geometry, 1 sample per pixel
	req := httptest.NewRequest("GET", "/api/render?scene=gradient&width=32", nil)
	w := httptest.NewRecorder()

	server.handleRender(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected Content-Type image/png, got %q", ct)
	}

	img, err := png.Decode(w.Body)
	if err != nil {
		t.Fatalf("Decoding response PNG: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 18 {
		t.Errorf("Expected 32x18 image, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}
