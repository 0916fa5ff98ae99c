package inputdevice

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"
)

// CursorFrame is one decoded frame of an xcursor image at a given size.
type CursorFrame struct {
	Image   *image.RGBA
	HotspotX, HotspotY int
	DelayMS int
}

// CursorTheme is a loaded set of named cursor shapes, each with one or more
// animation frames, scaled for a target size (spec §4.5 "default cursor
// image").
type CursorTheme struct {
	Name string
	Size int
	Shapes map[string][]CursorFrame
}

// DecodePNGCursor decodes a single still PNG-encoded cursor image, as used
// by the headless/stub toolkit's bundled fallback theme when no xcursor
// theme is installed.
func DecodePNGCursor(data []byte, hotspotX, hotspotY int) (CursorFrame, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return CursorFrame{}, fmt.Errorf("decode cursor png: %w", err)
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return CursorFrame{Image: rgba, HotspotX: hotspotX, HotspotY: hotspotY}, nil
}

// Scaled returns a copy of f resized to size x size pixels, used when a
// theme's nearest recorded size doesn't match the requested cursor size
// (spec §4.4 per-device cursor sizing).
func (f CursorFrame) Scaled(size int) CursorFrame {
	b := f.Image.Bounds()
	if b.Dx() == size && b.Dy() == size {
		return f
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), f.Image, b, draw.Over, nil)
	scaleX := float64(size) / float64(b.Dx())
	scaleY := float64(size) / float64(b.Dy())
	return CursorFrame{
		Image:    dst,
		HotspotX: int(float64(f.HotspotX) * scaleX),
		HotspotY: int(float64(f.HotspotY) * scaleY),
		DelayMS:  f.DelayMS,
	}
}

// Shape returns the named shape's frames, falling back to "default" then
// "left_ptr" if the exact name is not present in the theme.
func (t *CursorTheme) Shape(name string) []CursorFrame {
	if frames, ok := t.Shapes[name]; ok {
		return frames
	}
	if frames, ok := t.Shapes["default"]; ok {
		return frames
	}
	if frames, ok := t.Shapes["left_ptr"]; ok {
		return frames
	}
	return nil
}
