// Package primitives implements the integer, value, and gradient noise
// functions that every coherent-noise generator in module builds on top of.
// These are pure functions of integer lattice coordinates and a seed; they
// allocate nothing and have no notion of a module graph.
package primitives
