package card

import (
	"crypto/md5"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// EnlargeScale is the cosmetic scale-up applied to an enlarged card.
const EnlargeScale = 1.25

// Renderer turns card images into ANSI art using upper half blocks,
// so every character cell carries two vertical pixels.
type Renderer struct {
	Width     int  // columns at normal size
	Height    int  // rows at normal size
	TrueColor bool // emit 24-bit colour escapes; plain blocks otherwise
	CacheDir  string
}

// NewRenderer returns a true-colour renderer of the given size.
func NewRenderer(width, height int, cacheDir string) *Renderer {
	return &Renderer{
		Width:     width,
		Height:    height,
		TrueColor: true,
		CacheDir:  cacheDir,
	}
}

// Size returns the art dimensions in cells for the given enlarge state.
func (r *Renderer) Size(enlarged bool) (int, int) {
	if !enlarged {
		return r.Width, r.Height
	}
	return int(float64(r.Width) * EnlargeScale), int(float64(r.Height) * EnlargeScale)
}

// Render converts img to ANSI art.
func (r *Renderer) Render(img image.Image, enlarged bool) string {
	width, height := r.Size(enlarged)
	if width <= 0 || height <= 0 {
		return ""
	}

	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var buffer strings.Builder
	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			fg, bg := halfBlock(resized, x, y)
			buffer.WriteString(r.cell('▀', fg, bg))
		}
		buffer.WriteString("\n")
	}

	return buffer.String()
}

// RenderFile renders the image at path, reusing a cached rendering when
// one exists for the same path and size.
func (r *Renderer) RenderFile(path string, enlarged bool) (string, error) {
	cachePath := ""
	if r.CacheDir != "" {
		width, height := r.Size(enlarged)
		key := fmt.Sprintf("%s|%dx%d|%t", path, width, height, r.TrueColor)
		cachePath = filepath.Join(r.CacheDir, fmt.Sprintf("%x.ansi", md5.Sum([]byte(key))))
		if data, err := os.ReadFile(cachePath); err == nil {
			return string(data), nil
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	art := r.Render(img, enlarged)

	if cachePath != "" {
		if err := os.MkdirAll(r.CacheDir, 0755); err != nil {
			return "", fmt.Errorf("failed to create ANSI cache directory: %w", err)
		}
		if err := os.WriteFile(cachePath, []byte(art), 0644); err != nil {
			return "", fmt.Errorf("failed to write ANSI art to cache: %w", err)
		}
	}

	return art, nil
}

func (r *Renderer) cell(char rune, fg, bg color.RGBA) string {
	if !r.TrueColor {
		return string(char)
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
		fg.R, fg.G, fg.B, bg.R, bg.G, bg.B, char)
}

// halfBlock blends the 2x2 pixel block at (x, y): the top pair becomes the
// foreground of an upper half block, the bottom pair its background.
func halfBlock(img image.Image, x, y int) (fg, bg color.RGBA) {
	top := pixel(img, x, y).BlendRgb(pixel(img, x+1, y), 0.5)
	bottom := pixel(img, x, y+1).BlendRgb(pixel(img, x+1, y+1), 0.5)
	return toRGBA(top), toRGBA(bottom)
}

// pixel reads img at (x, y); anything outside the image is black.
func pixel(img image.Image, x, y int) colorful.Color {
	if !image.Pt(x, y).In(img.Bounds()) {
		return colorful.Color{}
	}
	c, _ := colorful.MakeColor(img.At(x, y))
	return c
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
