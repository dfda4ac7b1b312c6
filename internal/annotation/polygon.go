package annotation

import (
	"fmt"
	"image"
	"strconv"
)

// Polygon is an ordered sequence of vertices in pixel coordinates.
type Polygon []image.Point

// instanceKeys are the region attributes consulted, in order, for an
// instance identifier.
var instanceKeys = []string{"instance_id", "id"}

// Polygons converts raw regions into matching slices of polygons and instance
// identifiers: polygon i belongs to instance ids[i]. Order follows the region
// order, so polygons of one instance keep their annotation order.
//
// Rectangle regions are converted to four-point polygons. A region without an
// instance attribute gets its region index as identifier, making it a
// single-polygon instance.
func Polygons(regions []Region) ([]Polygon, []int, error) {
	polys := make([]Polygon, 0, len(regions))
	ids := make([]int, 0, len(regions))

	for i, reg := range regions {
		poly, err := regionPolygon(reg.Shape)
		if err != nil {
			return nil, nil, fmt.Errorf("region %d: %w", i, err)
		}

		id, err := instanceID(reg.Attributes, i)
		if err != nil {
			return nil, nil, fmt.Errorf("region %d: %w", i, err)
		}

		polys = append(polys, poly)
		ids = append(ids, id)
	}

	return polys, ids, nil
}

func regionPolygon(s Shape) (Polygon, error) {
	switch s.Name {
	case "polygon", "polyline":
		if len(s.AllPointsX) != len(s.AllPointsY) {
			return nil, fmt.Errorf("point count mismatch: %d x-coords, %d y-coords",
				len(s.AllPointsX), len(s.AllPointsY))
		}
		poly := make(Polygon, len(s.AllPointsX))
		for i := range s.AllPointsX {
			poly[i] = image.Pt(s.AllPointsX[i], s.AllPointsY[i])
		}
		return poly, nil
	case "rect":
		return Polygon{
			image.Pt(s.X, s.Y),
			image.Pt(s.X+s.Width, s.Y),
			image.Pt(s.X+s.Width, s.Y+s.Height),
			image.Pt(s.X, s.Y+s.Height),
		}, nil
	default:
		return nil, fmt.Errorf("unsupported region shape %q", s.Name)
	}
}

// instanceID extracts the instance identifier from region attributes.
// VIA exports attribute values as strings or numbers depending on the
// project configuration, so both are accepted.
func instanceID(attrs map[string]any, fallback int) (int, error) {
	for _, key := range instanceKeys {
		v, ok := attrs[key]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case string:
			id, err := strconv.Atoi(t)
			if err != nil {
				return 0, fmt.Errorf("attribute %q is not an integer: %q", key, t)
			}
			return id, nil
		case float64:
			return int(t), nil
		default:
			return 0, fmt.Errorf("attribute %q has unsupported type %T", key, v)
		}
	}
	return fallback, nil
}
