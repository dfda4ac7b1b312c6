// Package region implements the polygon-level image transforms used to build
// redaction artifacts: boundary outline, interior blur, solid fill, and the
// crop family (masked crop, centered square crop, circular crop).
//
// # Copy-on-Write
//
// Every transform treats its input image as read-only and returns a freshly
// allocated buffer. Callers can therefore apply several transforms to the same
// decoded image without re-decoding it, and apply one transform repeatedly to
// accumulate multiple polygons onto one output.
//
// # Coordinate System
//
// Polygon vertices are pixel coordinates with origin at the top-left corner,
// X increasing rightward and Y increasing downward, matching the decoded
// image. Vertices outside the image are legal; the rasterizer clips them.
//
// # Degenerate Polygons
//
// Polygons with fewer than three vertices, zero area, or self-intersections
// are not rejected. Outline, Blur and Fill simply affect few or no pixels.
// Crop fails only when the polygon's bounding box does not intersect the
// image at all.
//
// # Rasterization
//
// Polygon interiors and the circular mask are rasterized with draw2d, so
// edges are anti-aliased: pixels straddling a polygon edge blend between the
// affected and unaffected values.
package region
