// Package rooms produces the final detection output: candidates mapped back
// to original-image resolution, normalized to resolution-independent
// coordinates, scored, and labeled with a type hint.
package rooms
