// Package params holds the detection configuration: the tunables consumed
// by every pipeline stage, the named presets, and the adaptive selector
// that maps measured blueprint characteristics to a configuration and a
// style label.
package params
