// apicheck is a smoke check for a running api instance: it hits the root
// endpoint and the wallpaper endpoint and verifies the documented shapes.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

func main() {
	var (
		baseURL = flag.String("base-url", "http://localhost:8080", "Base URL of the running api")
		prompt  = flag.String("prompt", "Beautiful sunset over mountains with purple sky", "Wallpaper prompt to send")
	)
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}
	base := strings.TrimRight(*baseURL, "/")

	if err := checkRoot(client, base); err != nil {
		fmt.Fprintln(os.Stderr, "root check failed:", err)
		os.Exit(1)
	}
	if err := checkWallpaper(client, base, *prompt); err != nil {
		fmt.Fprintln(os.Stderr, "wallpaper check failed:", err)
		os.Exit(1)
	}
	fmt.Println("OK")
}

func checkRoot(client *http.Client, base string) error {
	resp, err := client.Get(base + "/api/")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return err
	}
	if body.Message != "Hello World" {
		return fmt.Errorf("message = %q", body.Message)
	}
	return nil
}

func checkWallpaper(client *http.Client, base, prompt string) error {
	payload, err := json.Marshal(map[string]string{"prompt": prompt})
	if err != nil {
		return err
	}

	// Two identical requests: the selection must be deterministic.
	var urls [2]string
	for i := range urls {
		resp, err := client.Post(base+"/api/wallpaper/generate", "application/json", bytes.NewReader(payload))
		if err != nil {
			return err
		}
		var body struct {
			Success  bool   `json:"success"`
			ImageURL string `json:"image_url"`
			Error    string `json:"error"`
		}
		decodeErr := json.NewDecoder(resp.Body).Decode(&body)
		resp.Body.Close()
		if decodeErr != nil {
			return decodeErr
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("status %d", resp.StatusCode)
		}
		if !body.Success {
			return fmt.Errorf("success=false: %s", body.Error)
		}
		if body.ImageURL == "" {
			return fmt.Errorf("empty image_url")
		}
		urls[i] = body.ImageURL
	}

	if urls[0] != urls[1] {
		return fmt.Errorf("non-deterministic selection: %s vs %s", urls[0], urls[1])
	}
	fmt.Println("wallpaper:", urls[0])
	return nil
}
