package httpapi

import (
	"net/http"

	"agentsapi/internal/wallpaper"
)

type wallpaperRequestDTO struct {
	Prompt      string `json:"prompt"`
	AspectRatio string `json:"aspect_ratio"`
	Style       string `json:"style"`
}

type wallpaperResponseDTO struct {
	Success     bool   `json:"success"`
	ImageURL    string `json:"image_url,omitempty"`
	Prompt      string `json:"prompt"`
	AspectRatio string `json:"aspect_ratio"`
	Error       string `json:"error,omitempty"`
}

func (s server) handleGenerateWallpaper(w http.ResponseWriter, r *http.Request) {
	in := wallpaperRequestDTO{AspectRatio: "9:16"}
	if !readJSONLimited(w, r, &in, maxRequestBodyBytes) {
		return
	}

	imageURL, aspectRatio := wallpaper.Select(in.Prompt, in.Style, in.AspectRatio)

	writeJSON(w, http.StatusOK, wallpaperResponseDTO{
		Success:     true,
		ImageURL:    imageURL,
		Prompt:      in.Prompt,
		AspectRatio: aspectRatio,
	})
}
