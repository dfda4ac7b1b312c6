package redactor

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/privacyfilters/redact/internal/annotation"
	"github.com/privacyfilters/redact/internal/imagery"
	"github.com/privacyfilters/redact/internal/region"
)

// Background fill values for the grayscale crops: the plain crop sits on a
// white background, the square/circular crop on black.
const (
	croppedFill   = 255
	sqCroppedFill = 0
)

// yellow is the default stroke and fill color.
var yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}

// Options controls the redaction transforms.
type Options struct {
	// OutlineColor is the stroke color for the outline artifact.
	OutlineColor color.Color

	// OutlineWidth is the outline stroke width in pixels.
	OutlineWidth float64

	// FillColor is the solid color for the redacted artifact.
	FillColor color.Color

	// BlurRadius is the Gaussian blur radius for the blurred artifact.
	BlurRadius float64

	// SkipUnreadable makes an image that fails to open a logged skip rather
	// than a fatal error for the whole run.
	SkipUnreadable bool
}

// DefaultOptions returns the standard parameters: yellow outline 4px wide,
// yellow fill, blur radius 10, unreadable images fatal.
func DefaultOptions() Options {
	return Options{
		OutlineColor: yellow,
		OutlineWidth: 4,
		FillColor:    yellow,
		BlurRadius:   10,
	}
}

// Summary reports what a run did.
type Summary struct {
	// Images is the number of images processed (decoded and redacted).
	Images int

	// Instances is the total number of instances across processed images.
	Instances int

	// Artifacts is the number of output files written.
	Artifacts int

	// Skipped counts images that produced no artifacts: those with an empty
	// region list, plus unreadable ones when SkipUnreadable is set.
	Skipped int
}

// Run loads the annotation file and writes every redaction artifact into
// outDir, creating the directory (recursively, with a logged notice) when it
// does not exist. It returns a summary of the run.
//
// Distinct images are processed once each, in no guaranteed order; polygon
// order within an instance follows the annotation file.
func Run(annoFile, outDir string, opts Options) (*Summary, error) {
	records, err := annotation.Load(annoFile)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(outDir); os.IsNotExist(err) {
		log.Printf("Path %s does not exist. Creating it...", outDir)
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Several annotation keys may reference the same file; process each
	// distinct filename once.
	byName := make(map[string]annotation.Record, len(records))
	for _, rec := range records {
		byName[rec.Filename] = rec
	}

	r := runner{outDir: outDir, opts: opts}
	sum := &Summary{}
	for _, rec := range byName {
		if len(rec.Regions) == 0 {
			sum.Skipped++
			continue
		}
		if err := r.image(rec, sum); err != nil {
			return nil, err
		}
	}
	return sum, nil
}

type runner struct {
	outDir string
	opts   Options
}

// image produces all artifacts for one annotated image. The image is decoded
// once and shared read-only across every transform.
func (r *runner) image(rec annotation.Record, sum *Summary) error {
	img, err := imagery.Open(rec.Filepath)
	if err != nil {
		if r.opts.SkipUnreadable {
			log.Printf("skipping %s: %v", rec.Filepath, err)
			sum.Skipped++
			return nil
		}
		return err
	}

	polys, ids, err := annotation.Polygons(rec.Regions)
	if err != nil {
		return fmt.Errorf("%s: %w", rec.Filename, err)
	}

	stem, ext := splitName(rec.Filename)

	// Group polygons by instance, keeping both first-seen instance order and
	// polygon order within each instance.
	var order []int
	groups := make(map[int][]annotation.Polygon)
	for i, id := range ids {
		if _, seen := groups[id]; !seen {
			order = append(order, id)
		}
		groups[id] = append(groups[id], polys[i])
	}

	for _, id := range order {
		n, err := r.instance(img, stem, ext, id, groups[id])
		if err != nil {
			return fmt.Errorf("%s instance %d: %w", rec.Filename, id, err)
		}
		sum.Instances++
		sum.Artifacts += n
	}
	sum.Images++
	return nil
}

// instance writes the six artifact kinds for one instance and returns the
// number of files written. The cumulative kinds (outline, blurred, redacted)
// apply every polygon to a single copy of the source; the crop kinds produce
// one sub-indexed file per polygon.
func (r *runner) instance(img image.Image, stem, ext string, id int, polys []annotation.Polygon) (int, error) {
	written := 0
	save := func(img image.Image, kind string) error {
		name := fmt.Sprintf("%s-%d-%s%s", stem, id, kind, ext)
		if err := imagery.Save(img, filepath.Join(r.outDir, name)); err != nil {
			return err
		}
		written++
		return nil
	}

	outlined := img
	for _, poly := range polys {
		outlined = region.Outline(outlined, poly, r.opts.OutlineColor, r.opts.OutlineWidth)
	}
	if err := save(outlined, "outline"); err != nil {
		return written, err
	}

	blurred := img
	for _, poly := range polys {
		blurred = region.Blur(blurred, poly, r.opts.BlurRadius)
	}
	if err := save(blurred, "blurred"); err != nil {
		return written, err
	}

	redacted := img
	for _, poly := range polys {
		redacted = region.Fill(redacted, poly, r.opts.FillColor)
	}
	if err := save(redacted, "redacted"); err != nil {
		return written, err
	}

	for idx, poly := range polys {
		cropped, err := region.Crop(img, poly, true, croppedFill)
		if err != nil {
			return written, fmt.Errorf("polygon %d: %w", idx, err)
		}
		if err := save(cropped, fmt.Sprintf("cropped-%d", idx)); err != nil {
			return written, err
		}
	}

	for idx, poly := range polys {
		cropped, err := region.Crop(img, poly, true, sqCroppedFill)
		if err != nil {
			return written, fmt.Errorf("polygon %d: %w", idx, err)
		}

		sq := region.SquareCrop(cropped)
		if err := save(sq, fmt.Sprintf("sq-cropped-%d", idx)); err != nil {
			return written, err
		}

		circ := region.CircleCrop(sq, color.White)
		if err := save(circ, fmt.Sprintf("circ-cropped-%d", idx)); err != nil {
			return written, err
		}
	}

	return written, nil
}

// splitName splits a filename into stem and extension, extension included in
// the second value with its dot ("cat.jpg" -> "cat", ".jpg").
func splitName(filename string) (stem, ext string) {
	ext = filepath.Ext(filename)
	return strings.TrimSuffix(filename, ext), ext
}
