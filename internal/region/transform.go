package region

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/blur"
	"github.com/llgcode/draw2d/draw2dimg"
)

// Outline draws the polygon boundary over a copy of img using the given
// stroke color and width. The input image is not modified.
//
// Applying Outline repeatedly to its own output accumulates several polygon
// boundaries onto one image.
func Outline(img image.Image, poly []image.Point, c color.Color, width float64) *image.RGBA {
	dst := cloneRGBA(img)
	if len(poly) < 2 || width <= 0 {
		return dst
	}

	b := img.Bounds()
	gc := draw2dimg.NewGraphicContext(dst)
	gc.SetStrokeColor(c)
	gc.SetLineWidth(width)
	tracePolygon(gc, translated(poly, -b.Min.X, -b.Min.Y))
	gc.Stroke()
	return dst
}

// Fill paints the polygon interior with a solid color on a copy of img.
func Fill(img image.Image, poly []image.Point, c color.Color) *image.RGBA {
	dst := cloneRGBA(img)
	if len(poly) < 3 {
		return dst
	}

	b := img.Bounds()
	gc := draw2dimg.NewGraphicContext(dst)
	gc.SetFillColor(c)
	tracePolygon(gc, translated(poly, -b.Min.X, -b.Min.Y))
	gc.Fill()
	return dst
}

// Blur replaces the polygon interior on a copy of img with a Gaussian-blurred
// rendition of the whole image, leaving pixels outside the polygon untouched.
// The blur kernel therefore sees the surrounding context, so interior pixels
// near the boundary blend with what lies just outside it, matching how a
// region-local blur is usually expected to look.
func Blur(img image.Image, poly []image.Point, radius float64) *image.RGBA {
	dst := cloneRGBA(img)
	if len(poly) < 3 || radius <= 0 {
		return dst
	}

	b := img.Bounds()
	blurred := blur.Gaussian(dst, radius)
	mask := polygonMask(b.Dx(), b.Dy(), translated(poly, -b.Min.X, -b.Min.Y))
	draw.DrawMask(dst, dst.Bounds(), blurred, image.Point{}, mask, image.Point{}, draw.Over)
	return dst
}
