package region

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// Crop extracts the polygon's bounding-box region from img. Pixels inside the
// box but outside the polygon are replaced by the uniform backgroundFill
// value. With grayscale set, the result is a single-channel *image.Gray;
// otherwise it keeps full color.
//
// The bounding box is clamped to the image. Crop fails only when the box does
// not intersect the image at all.
func Crop(img image.Image, poly []image.Point, grayscale bool, backgroundFill uint8) (image.Image, error) {
	b := img.Bounds()
	box, err := boundingBox(poly, b)
	if err != nil {
		return nil, err
	}

	bg := color.RGBA{R: backgroundFill, G: backgroundFill, B: backgroundFill, A: 255}
	canvas := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	mask := polygonMask(b.Dx(), b.Dy(), translated(poly, -b.Min.X, -b.Min.Y))
	draw.DrawMask(canvas, canvas.Bounds(), img, b.Min, mask, image.Point{}, draw.Over)

	cropped := imaging.Crop(canvas, box.Sub(b.Min))
	if !grayscale {
		return cropped, nil
	}

	gray := image.NewGray(image.Rect(0, 0, box.Dx(), box.Dy()))
	draw.Draw(gray, gray.Bounds(), cropped, cropped.Bounds().Min, draw.Src)
	return gray, nil
}

// SquareCrop returns the centered square sub-crop of img, with side length
// min(width, height). The square's origin uses floor division:
// x1 = w/2 - side/2, y1 = h/2 - side/2.
func SquareCrop(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	side := w
	if h < side {
		side = h
	}
	x1 := w/2 - side/2
	y1 := h/2 - side/2
	return cropRect(img, image.Rect(x1, y1, x1+side, y1+side).Add(b.Min))
}

// CircleCrop masks img with its inscribed ellipse and flattens the result
// onto an opaque background, so the returned image carries no transparency.
// Grayscale inputs stay single-channel.
func CircleCrop(img image.Image, background color.Color) image.Image {
	b := img.Bounds()
	mask := circleMask(b.Dx(), b.Dy())

	var dst draw.Image
	if _, ok := img.(*image.Gray); ok {
		dst = image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	} else {
		dst = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	}
	draw.Draw(dst, dst.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	draw.DrawMask(dst, dst.Bounds(), img, b.Min, mask, image.Point{}, draw.Over)
	return dst
}

// cropRect cuts a rectangle out of img, preserving single-channel images as
// *image.Gray (imaging.Crop would widen them to four channels).
func cropRect(img image.Image, rect image.Rectangle) image.Image {
	if g, ok := img.(*image.Gray); ok {
		out := image.NewGray(image.Rect(0, 0, rect.Dx(), rect.Dy()))
		draw.Draw(out, out.Bounds(), g, rect.Min, draw.Src)
		return out
	}
	return imaging.Crop(img, rect)
}

// boundingBox computes the pixel bounding box of the polygon, clamped to the
// given bounds. Vertex (x, y) covers pixel (x, y), so the box extends one past
// the maximum coordinates.
func boundingBox(poly []image.Point, within image.Rectangle) (image.Rectangle, error) {
	if len(poly) == 0 {
		return image.Rectangle{}, errors.New("empty polygon")
	}

	box := image.Rectangle{Min: poly[0], Max: poly[0].Add(image.Pt(1, 1))}
	for _, p := range poly[1:] {
		if p.X < box.Min.X {
			box.Min.X = p.X
		}
		if p.Y < box.Min.Y {
			box.Min.Y = p.Y
		}
		if p.X+1 > box.Max.X {
			box.Max.X = p.X + 1
		}
		if p.Y+1 > box.Max.Y {
			box.Max.Y = p.Y + 1
		}
	}

	box = box.Intersect(within)
	if box.Empty() {
		return image.Rectangle{}, fmt.Errorf("polygon bounding box lies outside image bounds %v", within)
	}
	return box, nil
}
