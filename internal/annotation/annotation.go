package annotation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// Record is one annotated image: the image filename, the resolved path to the
// image file, and its regions in annotation order.
//
// Records are produced once by Load and are read-only afterwards.
type Record struct {
	// Filename is the image filename as recorded in the annotation file.
	Filename string

	// Filepath is the resolved location of the image on disk.
	Filepath string

	// Regions holds the annotated regions in their original order.
	// An image with no regions is valid; the driver counts it as skipped.
	Regions []Region
}

// Region is a single annotated shape with its free-form attributes.
type Region struct {
	// Shape describes the region geometry.
	Shape Shape

	// Attributes holds the VIA region_attributes verbatim. Values may be
	// JSON strings or numbers depending on how the annotator was configured.
	Attributes map[string]any
}

// Shape holds the VIA shape_attributes for a region.
//
// Polygon and polyline shapes carry their vertices in AllPointsX/AllPointsY
// (matching indices). Rectangle shapes carry X, Y, Width, Height instead.
type Shape struct {
	Name       string `json:"name"`
	AllPointsX []int  `json:"all_points_x"`
	AllPointsY []int  `json:"all_points_y"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
}

type rawRegion struct {
	Shape      Shape          `json:"shape_attributes"`
	Attributes map[string]any `json:"region_attributes"`
}

type rawRecord struct {
	Filename string          `json:"filename"`
	Filepath string          `json:"filepath"`
	Regions  json.RawMessage `json:"regions"`
}

// Load parses a VIA annotation file into a mapping from annotation key to
// Record. Image paths without an explicit "filepath" entry are resolved
// relative to the annotation file's directory.
//
// A missing or malformed file is an error; Load never returns partial results.
func Load(path string) (map[string]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read annotation file: %w", err)
	}

	var raw map[string]rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse annotation file %s: %w", path, err)
	}

	dir := filepath.Dir(path)

	records := make(map[string]Record, len(raw))
	for key, rr := range raw {
		if rr.Filename == "" {
			return nil, fmt.Errorf("annotation %q has no filename", key)
		}
		regions, err := parseRegions(rr.Regions)
		if err != nil {
			return nil, fmt.Errorf("annotation %q: %w", key, err)
		}
		fp := rr.Filepath
		if fp == "" {
			fp = filepath.Join(dir, rr.Filename)
		}
		records[key] = Record{
			Filename: rr.Filename,
			Filepath: fp,
			Regions:  regions,
		}
	}

	return records, nil
}

// parseRegions accepts both VIA layouts: an array of regions (v2) or an
// object keyed by region index (v1). For the object layout, regions are
// ordered by numeric key so downstream sub-indices stay stable.
func parseRegions(raw json.RawMessage) ([]Region, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var list []rawRegion
	if err := json.Unmarshal(raw, &list); err == nil {
		return convertRegions(list), nil
	}

	var keyed map[string]rawRegion
	if err := json.Unmarshal(raw, &keyed); err != nil {
		return nil, fmt.Errorf("regions are neither a list nor an object: %w", err)
	}

	keys := make([]string, 0, len(keyed))
	for k := range keyed {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ni, erri := strconv.Atoi(keys[i])
		nj, errj := strconv.Atoi(keys[j])
		if erri == nil && errj == nil {
			return ni < nj
		}
		return keys[i] < keys[j]
	})

	list = make([]rawRegion, 0, len(keys))
	for _, k := range keys {
		list = append(list, keyed[k])
	}
	return convertRegions(list), nil
}

func convertRegions(raw []rawRegion) []Region {
	regions := make([]Region, 0, len(raw))
	for _, rr := range raw {
		regions = append(regions, Region{Shape: rr.Shape, Attributes: rr.Attributes})
	}
	return regions
}
