package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/achilleasa/vista/asset"
)

func mockImage(t *testing.T, img image.Image) *asset.Resource {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return asset.NewResourceFromStream("mock.png", &buf)
}

func TestRgbaTexture(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 3))
	src.SetRGBA(1, 2, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	tex, err := New(mockImage(t, src))
	if err != nil {
		t.Fatal(err)
	}

	if tex.Width != 2 || tex.Height != 3 {
		t.Fatalf("expected tex dims to be 2x3; got %dx%d", tex.Width, tex.Height)
	}
	if expLen := 2 * 3 * 4; len(tex.Data) != expLen {
		t.Fatalf("expected tex data len to be %d; got %d", expLen, len(tex.Data))
	}

	offset := (2*2 + 1) * 4
	if tex.Data[offset] != 10 || tex.Data[offset+1] != 20 || tex.Data[offset+2] != 30 || tex.Data[offset+3] != 255 {
		t.Fatalf("unexpected pixel at (1,2): %v", tex.Data[offset:offset+4])
	}
}

func TestGrayTextureNormalizedToRgba(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 4))
	src.SetGray(0, 0, color.Gray{Y: 128})

	tex, err := New(mockImage(t, src))
	if err != nil {
		t.Fatal(err)
	}

	if expLen := 4 * 4 * 4; len(tex.Data) != expLen {
		t.Fatalf("expected tex data len to be %d; got %d", expLen, len(tex.Data))
	}
	if tex.Data[3] != 255 {
		t.Fatalf("expected opaque alpha for gray source; got %d", tex.Data[3])
	}
}

func TestMalformedTexture(t *testing.T) {
	res := asset.NewResourceFromStream("bogus.png", strings.NewReader("not an image"))

	_, err := New(res)
	if err == nil || !strings.Contains(err.Error(), "could not decode") {
		t.Fatalf("expected a decode error; got %v", err)
	}
}

func TestSupportedFormatsIncludePng(t *testing.T) {
	for _, format := range SupportedFormats() {
		if format.Name == "png" {
			return
		}
	}
	t.Fatal("expected png to be a supported format")
}
