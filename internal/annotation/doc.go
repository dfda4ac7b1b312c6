// Package annotation loads polygon annotations and prepares them for redaction.
//
// The input format is the VIA (VGG Image Annotator) JSON export: a top-level
// object mapping an arbitrary key (usually filename plus file size) to a record
// containing the image filename and its annotated regions. Both the VIA v1
// layout (regions as an object keyed by index) and the VIA v2 layout (regions
// as an array) are accepted.
//
// # Region Ordering
//
// Region order is significant downstream: artifacts derived per polygon are
// sub-indexed by position. For the array layout the order is the array order;
// for the object layout regions are ordered by their numeric key.
//
// # Instances
//
// A region may carry an instance identifier in its region_attributes, under
// "instance_id" or "id", as either a JSON string or number. Regions sharing an
// identifier belong to the same instance (an instance may span multiple
// polygons). A region without an identifier forms its own single-polygon
// instance, identified by its position in the region list.
//
// # File Resolution
//
// A record may carry an explicit "filepath". When it does not, the image is
// resolved relative to the directory containing the annotation file.
package annotation
