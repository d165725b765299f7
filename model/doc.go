// Package model adapts the coordinate-free module graph to geographic
// sampling. It holds only the two pieces of the original raster-sampling
// layer that are pure, cheap, and allocation-free: latitude/longitude
// conversion and the unit-sphere wrapper. The raster builders and the
// other surface models (line, plane, cylinder) are out of scope.
package model
