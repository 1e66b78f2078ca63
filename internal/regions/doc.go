// Package regions extracts enclosed regions from a binary floor plan image
// and turns them into room candidates.
//
// The central structure is the containment tree: every connected ink region
// and every connected light region, linked parent to child by spatial
// nesting: walls contain rooms, rooms contain furniture. Ink regions are
// 8-connected and light regions 4-connected, the complementary pairing that
// keeps nesting topologically consistent on a square grid.
//
// Nodes live in a flat arena and reference parents by index; a parent's
// index is always smaller than its children's, so subtree aggregates are
// computed with a single reverse sweep. Area accounting uses filled areas
// (a region plus everything nested inside it), which is what the parent
// ratio test that separates rooms from furniture is defined over.
//
// The package also provides the downstream candidate stages: geometric
// shape filtering, statistical scale filtering, and duplicate suppression
// by bounding-box IoU.
package regions
