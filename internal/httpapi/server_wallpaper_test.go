package httpapi

import (
	"net/http"
	"testing"
)

func TestGenerateWallpaper(t *testing.T) {
	h := newTestRouter(t, Deps{})

	rec := doJSON(t, h, http.MethodPost, "/api/wallpaper/generate", map[string]any{
		"prompt":       "Beautiful sunset over mountains with purple sky",
		"style":        "nature",
		"aspect_ratio": "9:16",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body wallpaperResponseDTO
	decodeBody(t, rec, &body)
	if !body.Success {
		t.Fatalf("success = false, error = %q", body.Error)
	}
	want := "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=512&h=910&fit=crop&auto=format"
	if body.ImageURL != want {
		t.Errorf("image_url = %q, want %q", body.ImageURL, want)
	}
	if body.Prompt != "Beautiful sunset over mountains with purple sky" {
		t.Errorf("prompt not echoed: %q", body.Prompt)
	}
	if body.AspectRatio != "9:16" {
		t.Errorf("aspect_ratio = %q, want 9:16", body.AspectRatio)
	}
}

func TestGenerateWallpaperDefaultsAspectRatio(t *testing.T) {
	h := newTestRouter(t, Deps{})

	rec := doJSON(t, h, http.MethodPost, "/api/wallpaper/generate", map[string]any{
		"prompt": "minimal desk setup",
	})
	var body wallpaperResponseDTO
	decodeBody(t, rec, &body)
	if body.AspectRatio != "9:16" {
		t.Errorf("aspect_ratio = %q, want default 9:16", body.AspectRatio)
	}
}

func TestGenerateWallpaperUnknownAspectRatioEchoed(t *testing.T) {
	h := newTestRouter(t, Deps{})

	rec := doJSON(t, h, http.MethodPost, "/api/wallpaper/generate", map[string]any{
		"prompt":       "starry night",
		"aspect_ratio": "21:9",
	})
	var body wallpaperResponseDTO
	decodeBody(t, rec, &body)
	if body.AspectRatio != "21:9" {
		t.Errorf("aspect_ratio = %q, want 21:9 echoed", body.AspectRatio)
	}
}

func TestGenerateWallpaperEmptyPrompt(t *testing.T) {
	h := newTestRouter(t, Deps{})

	rec := doJSON(t, h, http.MethodPost, "/api/wallpaper/generate", map[string]any{"prompt": ""})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body wallpaperResponseDTO
	decodeBody(t, rec, &body)
	if !body.Success || body.ImageURL == "" {
		t.Errorf("empty prompt must still select an image: %+v", body)
	}
}

func TestGenerateWallpaperDeterministicAcrossRequests(t *testing.T) {
	h := newTestRouter(t, Deps{})

	req := map[string]any{"prompt": "abstract waves", "aspect_ratio": "1:1"}
	var first wallpaperResponseDTO
	decodeBody(t, doJSON(t, h, http.MethodPost, "/api/wallpaper/generate", req), &first)
	var second wallpaperResponseDTO
	decodeBody(t, doJSON(t, h, http.MethodPost, "/api/wallpaper/generate", req), &second)

	if first.ImageURL != second.ImageURL {
		t.Errorf("image_url differs across identical requests: %q vs %q", first.ImageURL, second.ImageURL)
	}
}
