// Package analyzer measures the visual characteristics of a floor plan
// image: wall thickness, line density, contrast, and noise. The measurements
// drive adaptive parameter selection downstream.
package analyzer
