package region

import (
	"image"
	"image/color"
	"testing"
)

func createUniformNRGBA(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestCrop_BoundingBoxDimensions(t *testing.T) {
	src := createUniformNRGBA(50, 40, color.NRGBA{R: 100, G: 100, B: 100, A: 255})
	poly := []image.Point{{10, 10}, {30, 10}, {10, 30}}

	out, err := Crop(src, poly, true, 255)
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}

	b := out.Bounds()
	if b.Dx() != 21 || b.Dy() != 21 {
		t.Errorf("dimensions: got %dx%d, want 21x21", b.Dx(), b.Dy())
	}
}

func TestCrop_GrayscaleSingleChannel(t *testing.T) {
	src := createUniformNRGBA(50, 40, color.NRGBA{R: 100, G: 100, B: 100, A: 255})
	poly := []image.Point{{10, 10}, {30, 10}, {10, 30}}

	out, err := Crop(src, poly, true, 255)
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	if _, ok := out.(*image.Gray); !ok {
		t.Fatalf("grayscale crop: got %T, want *image.Gray", out)
	}
}

func TestCrop_BackgroundFill(t *testing.T) {
	src := createUniformNRGBA(50, 40, color.NRGBA{R: 100, G: 100, B: 100, A: 255})
	// Triangle with the right angle at top-left; the bottom-right corner of
	// the bounding box is far outside the polygon.
	poly := []image.Point{{10, 10}, {30, 10}, {10, 30}}

	tests := []struct {
		name string
		fill uint8
	}{
		{"white background", 255},
		{"black background", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Crop(src, poly, true, tt.fill)
			if err != nil {
				t.Fatalf("Crop failed: %v", err)
			}
			gray := out.(*image.Gray)

			if got := gray.GrayAt(20, 20).Y; got != tt.fill {
				t.Errorf("outside-polygon pixel: got %d, want %d", got, tt.fill)
			}
			// Just inside the right angle the source value survives.
			if got := gray.GrayAt(2, 2).Y; got != 100 {
				t.Errorf("inside-polygon pixel: got %d, want 100", got)
			}
		})
	}
}

func TestCrop_ClampedToImage(t *testing.T) {
	src := createUniformNRGBA(30, 30, color.NRGBA{R: 50, G: 50, B: 50, A: 255})
	poly := []image.Point{{20, 20}, {100, 20}, {100, 100}, {20, 100}}

	out, err := Crop(src, poly, true, 0)
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	b := out.Bounds()
	if b.Dx() != 10 || b.Dy() != 10 {
		t.Errorf("clamped dimensions: got %dx%d, want 10x10", b.Dx(), b.Dy())
	}
}

func TestCrop_PolygonOutsideImage(t *testing.T) {
	src := createUniformNRGBA(30, 30, color.NRGBA{A: 255})
	tests := []struct {
		name string
		poly []image.Point
	}{
		{"empty polygon", nil},
		{"fully outside", []image.Point{{100, 100}, {120, 100}, {120, 120}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Crop(src, tt.poly, true, 0); err == nil {
				t.Error("Crop should fail")
			}
		})
	}
}

func TestSquareCrop(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		wantSide int
		wantX1   int
		wantY1   int
	}{
		{"landscape", 10, 5, 5, 3, 0},
		{"portrait", 5, 10, 5, 0, 3},
		{"already square", 8, 8, 8, 0, 0},
		{"odd sides", 21, 15, 15, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Encode the x coordinate in the pixel value to verify the
			// crop origin.
			src := image.NewGray(image.Rect(0, 0, tt.w, tt.h))
			for y := 0; y < tt.h; y++ {
				for x := 0; x < tt.w; x++ {
					src.SetGray(x, y, color.Gray{Y: uint8(x*10 + y)})
				}
			}

			out := SquareCrop(src)
			b := out.Bounds()
			if b.Dx() != tt.wantSide || b.Dy() != tt.wantSide {
				t.Fatalf("dimensions: got %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantSide, tt.wantSide)
			}

			gray, ok := out.(*image.Gray)
			if !ok {
				t.Fatalf("got %T, want *image.Gray", out)
			}
			if got, want := gray.GrayAt(0, 0).Y, uint8(tt.wantX1*10+tt.wantY1); got != want {
				t.Errorf("origin pixel: got %d, want %d (crop origin off)", got, want)
			}
		})
	}
}

func TestCircleCrop_CornersFlattened(t *testing.T) {
	src := createUniformGray(15, 15, 100)

	out := CircleCrop(src, color.White)

	gray, ok := out.(*image.Gray)
	if !ok {
		t.Fatalf("got %T, want *image.Gray", out)
	}
	if got := gray.GrayAt(0, 0).Y; got != 255 {
		t.Errorf("corner pixel: got %d, want background 255", got)
	}
	if got := gray.GrayAt(7, 7).Y; got != 100 {
		t.Errorf("center pixel: got %d, want 100", got)
	}
}

func TestCircleCrop_ColorInputOpaque(t *testing.T) {
	src := createUniformNRGBA(16, 16, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	out := CircleCrop(src, color.White)

	rgba, ok := out.(*image.RGBA)
	if !ok {
		t.Fatalf("got %T, want *image.RGBA", out)
	}
	if !rgba.Opaque() {
		t.Error("circular crop must be fully opaque")
	}
	if _, _, _, a := rgba.At(0, 0).RGBA(); a != 0xffff {
		t.Error("corner pixel must be opaque background")
	}
}
