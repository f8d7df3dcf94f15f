package texture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestFlipVertical(t *testing.T) {
	// 1x3 image, one channel: rows 1, 2, 3
	pix := []byte{1, 2, 3}
	FlipVertical(pix, 1, 3, 1)
	if !bytes.Equal(pix, []byte{3, 2, 1}) {
		t.Errorf("odd height flip = %v, want [3 2 1]", pix)
	}

	// 2x2 RGB
	pix = []byte{
		1, 1, 1, 2, 2, 2,
		3, 3, 3, 4, 4, 4,
	}
	FlipVertical(pix, 2, 2, 3)
	want := []byte{
		3, 3, 3, 4, 4, 4,
		1, 1, 1, 2, 2, 2,
	}
	if !bytes.Equal(pix, want) {
		t.Errorf("2x2 flip = %v, want %v", pix, want)
	}
}

func TestFlipVerticalInvolution(t *testing.T) {
	orig := make([]byte, 5*7*3)
	for i := range orig {
		orig[i] = byte(i * 7)
	}
	pix := append([]byte(nil), orig...)

	FlipVertical(pix, 5, 7, 3)
	FlipVertical(pix, 5, 7, 3)
	if !bytes.Equal(pix, orig) {
		t.Error("flipping twice should restore the original")
	}
}

func TestFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	img.SetRGBA(1, 0, color.RGBA{R: 40, G: 50, B: 60, A: 255})

	rgb := FromImage(img)
	if rgb.Width != 2 || rgb.Height != 1 {
		t.Fatalf("size = %dx%d, want 2x1", rgb.Width, rgb.Height)
	}
	if !bytes.Equal(rgb.Pix, []byte{10, 20, 30, 40, 50, 60}) {
		t.Errorf("pix = %v", rgb.Pix)
	}
}

// makeTGA builds a 2x2 24-bit TGA. Pixels are given top row first.
func makeTGA(imageType byte, topToBottom bool, body []byte) []byte {
	header := make([]byte, 18)
	header[2] = imageType
	header[12] = 2
	header[14] = 2
	header[16] = 24
	if topToBottom {
		header[17] = 0x20
	}
	return append(header, body...)
}

func TestDecodeTGABottomUp(t *testing.T) {
	// File order is bottom row first: blue, blue, then red, red (BGR).
	body := []byte{
		255, 0, 0, 255, 0, 0,
		0, 0, 255, 0, 0, 255,
	}
	img, err := DecodeTGA(makeTGA(TGATypeUncompressed, false, body))
	if err != nil {
		t.Fatalf("DecodeTGA: %v", err)
	}

	r, _, b, _ := img.At(0, 0).RGBA()
	if r>>8 != 255 || b != 0 {
		t.Errorf("top-left should be red, got r=%d b=%d", r>>8, b>>8)
	}
	r, _, b, _ = img.At(1, 1).RGBA()
	if b>>8 != 255 || r != 0 {
		t.Errorf("bottom-right should be blue, got r=%d b=%d", r>>8, b>>8)
	}
}

func TestDecodeTGARLE(t *testing.T) {
	// One run packet of 4 green pixels.
	body := []byte{0x83, 0, 255, 0}
	img, err := DecodeTGA(makeTGA(TGATypeRLE, true, body))
	if err != nil {
		t.Fatalf("DecodeTGA: %v", err)
	}

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			_, g, _, a := img.At(x, y).RGBA()
			if g>>8 != 255 || a>>8 != 255 {
				t.Errorf("pixel (%d, %d) not opaque green", x, y)
			}
		}
	}
}

// tgaHeader builds a header declaring width x height followed by bodyLen
// zero bytes.
func tgaHeader(imageType byte, width, height int, bpp byte, bodyLen int) []byte {
	data := make([]byte, tgaHeaderSize+bodyLen)
	data[2] = imageType
	data[12], data[13] = byte(width), byte(width>>8)
	data[14], data[15] = byte(height), byte(height>>8)
	data[16] = bpp
	return data
}

func TestDecodeTGAErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"short header", []byte{0, 0, 2}},
		{"truncated raw", makeTGA(TGATypeUncompressed, false, []byte{1, 2, 3})},
		{"truncated rle", makeTGA(TGATypeRLE, false, []byte{0x80, 1})},
		{"bad type", makeTGA(3, false, nil)},
		{"huge raw header", tgaHeader(TGATypeUncompressed, 0xFFFF, 0xFFFF, 32, 3)},
		{"huge rle header", tgaHeader(TGATypeRLE, 0xFFFF, 0xFFFF, 24, 8)},
		{"zero width", tgaHeader(TGATypeUncompressed, 0, 2, 24, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeTGA(tt.data); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadPNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 200, A: 255})

	path := filepath.Join(t.TempDir(), "texture.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	rgb, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rgb.Width != 3 || rgb.Height != 2 || len(rgb.Pix) != 3*2*Channels {
		t.Fatalf("Load size = %dx%d (%d bytes)", rgb.Width, rgb.Height, len(rgb.Pix))
	}
	if rgb.Pix[0] != 200 {
		t.Errorf("first pixel red = %d, want 200", rgb.Pix[0])
	}

	rgb.FlipVertical()
	if rgb.Pix[0] != 0 || rgb.Pix[3*Channels] != 200 {
		t.Error("FlipVertical did not move the top row to the bottom")
	}
}

func TestLoadTGAByExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ground.TGA")
	data := makeTGA(TGATypeRLE, true, []byte{0x83, 9, 8, 7})
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	rgb, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(rgb.Pix[:3], []byte{7, 8, 9}) {
		t.Errorf("first pixel = %v, want [7 8 9]", rgb.Pix[:3])
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load("/nonexistent/texture.jpg"); err == nil {
		t.Error("expected error loading missing texture")
	}
}

func TestLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "texture.jpg")
	if err := os.WriteFile(path, []byte("definitely not a jpeg"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error loading corrupt texture")
	}
}

func TestLoadCorruptTGAHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "texture.tga")
	data := tgaHeader(TGATypeUncompressed, 0xFFFF, 0xFFFF, 32, 3)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, errTGATruncated) {
		t.Errorf("Load() error = %v, want wrapped %v", err, errTGATruncated)
	}
}
