// Package pipeline orchestrates adaptive room detection on floor plan images.
//
// Detection runs as a fixed sequence of stages, each consuming the previous
// stage's output:
//
//  1. Analyze: measure wall thickness, line density, contrast and noise.
//  2. Select: map the measurements to a detection configuration and style.
//  3. Preprocess: resize, denoise, contrast-enhance, binarize, morphology.
//  4. Detect: build the region containment tree, extract room candidates.
//  5. Filter: shape-quality thresholds, then statistical size outliers.
//  6. Dedup: non-maximum suppression over bounding-box overlap.
//  7. Normalize: map geometry to the original resolution and score rooms.
//
// # Concurrency
//
// Detect is stateless and side-effect free; any number of invocations may
// run concurrently. Identical input and configuration produce identical
// output.
//
// # Time Budget
//
// A wall-clock budget is checked between stages. When it runs out the
// invocation aborts with a TimeoutError naming the last completed stage;
// no partial room list is ever returned.
//
// # Error Model
//
// Only two failure kinds exist: ErrInvalidImage (nil, undecodable or
// below the minimum pixel count) and ErrTimeout. An image in which no
// rooms are found is a success with status StatusNoRegionsFound.
package pipeline
