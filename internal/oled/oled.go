// Package oled rasterizes the status text into a monochrome framebuffer
// image the way the device's OLED panel renders it. It implements the
// display collaborator interface for headless use and snapshot capture.
package oled

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fogleman/gg"
	"github.com/google/uuid"
	"golang.org/x/image/font/basicfont"
)

// Panel geometry of the reference SSD1306 module.
const (
	Width  = 128
	Height = 64
)

const lineHeight = 14

// Rasterizer renders text into a Width x Height framebuffer. It satisfies
// status.Display.
type Rasterizer struct {
	mu   sync.Mutex
	dc   *gg.Context
	text string
}

// New creates a rasterizer with a cleared framebuffer.
func New() *Rasterizer {
	r := &Rasterizer{dc: gg.NewContext(Width, Height)}
	r.dc.SetFontFace(basicfont.Face7x13)
	r.clear()
	return r
}

// ShowText renders the text onto the framebuffer, one line per row,
// white on black, replacing whatever was shown before.
func (r *Rasterizer) ShowText(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clear()
	r.dc.SetRGB(1, 1, 1)
	for i, line := range strings.Split(text, "\n") {
		y := float64((i + 1) * lineHeight)
		if y > Height {
			break
		}
		r.dc.DrawString(line, 2, y)
	}
	r.text = text
}

// Text returns the most recently shown text.
func (r *Rasterizer) Text() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.text
}

// Image returns the current framebuffer contents.
func (r *Rasterizer) Image() image.Image {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dc.Image()
}

// SavePNG writes the framebuffer to a uniquely named file in dir and
// returns the path.
func (r *Rasterizer) SavePNG(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("oled: creating snapshot dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("oled-%s.png", uuid.NewString()))

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.dc.SavePNG(path); err != nil {
		return "", fmt.Errorf("oled: saving snapshot: %w", err)
	}
	return path, nil
}

func (r *Rasterizer) clear() {
	r.dc.SetRGB(0, 0, 0)
	r.dc.Clear()
}
