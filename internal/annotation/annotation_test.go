package annotation

import (
	"os"
	"path/filepath"
	"testing"
)

func writeAnnoFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "annotations.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write annotation file: %v", err)
	}
	return path
}

func TestLoad_ListRegions(t *testing.T) {
	dir := t.TempDir()
	path := writeAnnoFile(t, dir, `{
		"cat.jpg12345": {
			"filename": "cat.jpg",
			"regions": [
				{"shape_attributes": {"name": "polygon", "all_points_x": [1, 2, 3], "all_points_y": [4, 5, 6]},
				 "region_attributes": {"instance_id": "0"}}
			]
		}
	}`)

	records, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	rec, ok := records["cat.jpg12345"]
	if !ok {
		t.Fatalf("missing record for key cat.jpg12345; got keys %v", keys(records))
	}
	if rec.Filename != "cat.jpg" {
		t.Errorf("Filename: got %q, want cat.jpg", rec.Filename)
	}
	if want := filepath.Join(dir, "cat.jpg"); rec.Filepath != want {
		t.Errorf("Filepath: got %q, want %q", rec.Filepath, want)
	}
	if len(rec.Regions) != 1 {
		t.Fatalf("regions: got %d, want 1", len(rec.Regions))
	}
	if got := rec.Regions[0].Shape.Name; got != "polygon" {
		t.Errorf("shape name: got %q, want polygon", got)
	}
}

func TestLoad_KeyedRegionsNumericOrder(t *testing.T) {
	// VIA v1 keys regions by index; numeric order must win over
	// lexicographic order ("10" after "2", not after "1").
	path := writeAnnoFile(t, t.TempDir(), `{
		"img": {
			"filename": "img.png",
			"regions": {
				"10": {"shape_attributes": {"name": "polygon", "all_points_x": [10], "all_points_y": [0]}},
				"0":  {"shape_attributes": {"name": "polygon", "all_points_x": [0],  "all_points_y": [0]}},
				"2":  {"shape_attributes": {"name": "polygon", "all_points_x": [2],  "all_points_y": [0]}},
				"1":  {"shape_attributes": {"name": "polygon", "all_points_x": [1],  "all_points_y": [0]}}
			}
		}
	}`)

	records, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	rec := records["img"]
	want := []int{0, 1, 2, 10}
	if len(rec.Regions) != len(want) {
		t.Fatalf("regions: got %d, want %d", len(rec.Regions), len(want))
	}
	for i, w := range want {
		if got := rec.Regions[i].Shape.AllPointsX[0]; got != w {
			t.Errorf("region %d: got x=%d, want %d", i, got, w)
		}
	}
}

func TestLoad_ExplicitFilepath(t *testing.T) {
	path := writeAnnoFile(t, t.TempDir(), `{
		"img": {"filename": "img.png", "filepath": "/data/images/img.png", "regions": []}
	}`)

	records, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := records["img"].Filepath; got != "/data/images/img.png" {
		t.Errorf("Filepath: got %q, want /data/images/img.png", got)
	}
}

func TestLoad_EmptyRegions(t *testing.T) {
	tests := []struct {
		name    string
		regions string
	}{
		{"empty list", `[]`},
		{"empty object", `{}`},
		{"null", `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeAnnoFile(t, t.TempDir(),
				`{"img": {"filename": "img.png", "regions": `+tt.regions+`}}`)
			records, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if n := len(records["img"].Regions); n != 0 {
				t.Errorf("regions: got %d, want 0", n)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid json", `{not json`},
		{"missing filename", `{"img": {"regions": []}}`},
		{"regions wrong type", `{"img": {"filename": "a.png", "regions": 42}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeAnnoFile(t, t.TempDir(), tt.content)
			if _, err := Load(path); err == nil {
				t.Error("Load should fail")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Load should fail for a missing file")
	}
}

func keys(m map[string]Record) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
