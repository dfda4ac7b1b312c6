package region

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/llgcode/draw2d/draw2dimg"
)

// cloneRGBA copies src into a fresh RGBA buffer with bounds normalized so the
// top-left pixel is (0, 0). All transforms draw into such a copy, never into
// the caller's image.
func cloneRGBA(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// renderMask rasterizes a filled path into an 8-bit alpha mask of the given
// size. Fully covered pixels are 255, uncovered pixels 0, and edge pixels
// carry the anti-aliased coverage in between.
func renderMask(w, h int, trace func(gc *draw2dimg.GraphicContext)) *image.Alpha {
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	gc := draw2dimg.NewGraphicContext(canvas)
	gc.SetFillColor(color.White)
	trace(gc)
	gc.Fill()

	mask := image.NewAlpha(canvas.Bounds())
	for i := range mask.Pix {
		mask.Pix[i] = canvas.Pix[i*4+3]
	}
	return mask
}

// polygonMask rasterizes the polygon interior into a w×h mask. Vertices are
// interpreted in the mask's own coordinate space; translate them first if the
// source image bounds do not start at (0, 0).
func polygonMask(w, h int, poly []image.Point) *image.Alpha {
	return renderMask(w, h, func(gc *draw2dimg.GraphicContext) {
		tracePolygon(gc, poly)
	})
}

// circleMask rasterizes the ellipse inscribed in a w×h canvas. For a square
// canvas this is the centered circle touching all four sides.
func circleMask(w, h int) *image.Alpha {
	return renderMask(w, h, func(gc *draw2dimg.GraphicContext) {
		gc.ArcTo(float64(w)/2, float64(h)/2, float64(w)/2, float64(h)/2, 0, 2*math.Pi)
		gc.Close()
	})
}

func tracePolygon(gc *draw2dimg.GraphicContext, poly []image.Point) {
	if len(poly) == 0 {
		return
	}
	gc.MoveTo(float64(poly[0].X), float64(poly[0].Y))
	for _, p := range poly[1:] {
		gc.LineTo(float64(p.X), float64(p.Y))
	}
	gc.Close()
}

// translated shifts every vertex by (dx, dy).
func translated(poly []image.Point, dx, dy int) []image.Point {
	out := make([]image.Point, len(poly))
	for i, p := range poly {
		out[i] = image.Pt(p.X+dx, p.Y+dy)
	}
	return out
}
