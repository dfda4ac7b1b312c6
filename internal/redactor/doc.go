// Package redactor drives the per-instance redaction pipeline.
//
// Given an annotation file and an output directory, Run decodes each
// annotated image once and, for every instance in it (the set of polygons
// sharing one instance identifier), writes six artifact kinds:
//
//   - outline: all of the instance's polygon boundaries drawn on one copy
//   - blurred: all polygon interiors blurred on one copy
//   - redacted: all polygon interiors filled with a solid color on one copy
//   - cropped-<i>: per polygon, its bounding-box crop, grayscale, with the
//     area outside the polygon filled white
//   - sq-cropped-<i>: per polygon, the same crop with black background,
//     reduced to its centered square
//   - circ-cropped-<i>: per polygon, the square crop masked to the inscribed
//     circle and flattened onto an opaque background
//
// Output filenames follow {stem}-{instance}-{kind}[-{subindex}]{ext}, where
// stem and ext come from splitting the source filename and ext also selects
// the output encoding. The naming is collision-free across kinds and
// sub-indices within a run.
//
// Images whose region list is empty produce nothing and are counted as
// skipped. An image that fails to open aborts the run unless
// Options.SkipUnreadable is set, in which case it is logged and counted as
// skipped instead.
package redactor
