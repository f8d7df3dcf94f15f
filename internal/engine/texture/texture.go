// Package texture loads image files into tightly packed RGB pixel data and
// uploads them as OpenGL textures.
package texture

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder registration
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"  // BMP decoder registration
	_ "golang.org/x/image/tiff" // TIFF decoder registration
	_ "golang.org/x/image/webp" // WebP decoder registration
)

// RGB is an 8-bit RGB image, 3 bytes per pixel, rows packed without padding.
// Row 0 is the top row until FlipVertical is applied.
type RGB struct {
	Width  int
	Height int
	Pix    []byte
}

// Channels is the number of bytes per RGB pixel.
const Channels = 3

// FromImage converts any image to packed RGB, dropping alpha.
func FromImage(img image.Image) *RGB {
	b := img.Bounds()
	out := &RGB{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    make([]byte, 0, b.Dx()*b.Dy()*Channels),
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			out.Pix = append(out.Pix, uint8(r>>8), uint8(g>>8), uint8(bl>>8))
		}
	}
	return out
}

// FlipVertical swaps rows in place so the first row becomes the last.
// Image files store the top row first; OpenGL expects the bottom row first.
func FlipVertical(pix []byte, width, height, channels int) {
	rowSize := width * channels
	tmp := make([]byte, rowSize)

	for j := 0; j < height/2; j++ {
		top := pix[j*rowSize : (j+1)*rowSize]
		bottom := pix[(height-1-j)*rowSize : (height-j)*rowSize]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

// FlipVertical flips the image rows in place.
func (t *RGB) FlipVertical() {
	FlipVertical(t.Pix, t.Width, t.Height, Channels)
}

// Decode decodes image data. TGA has no magic number, so name's extension
// is used to route it; everything else is sniffed by content.
func Decode(data []byte, name string) (image.Image, error) {
	if strings.EqualFold(filepath.Ext(name), ".tga") {
		return DecodeTGA(data)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Load reads and decodes an image file into packed RGB, top row first.
func Load(path string) (*RGB, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading texture: %w", err)
	}

	img, err := Decode(data, path)
	if err != nil {
		return nil, fmt.Errorf("decoding texture %s: %w", path, err)
	}

	rgb := FromImage(img)
	if rgb.Width == 0 || rgb.Height == 0 {
		return nil, fmt.Errorf("texture %s is empty", path)
	}
	return rgb, nil
}
