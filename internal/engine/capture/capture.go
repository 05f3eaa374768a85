// Package capture saves rendered frames as PNG screenshots.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Screenshot writes raw RGBA pixels read from the GL framebuffer to a
// timestamped PNG under dir. Pixels are expected bottom-up (GL origin is the
// bottom-left corner) and get flipped. Returns the written path.
func Screenshot(dir, prefix string, pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * rowSize
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}

	filename := fmt.Sprintf("%s_%s.png", prefix, time.Now().Format("2006-01-02_15-04-05"))
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating screenshot file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encoding screenshot: %w", err)
	}

	return path, nil
}
