// Package module implements the noise-graph operators: generators that
// synthesize a value from coordinates alone, and modifiers, combiners, and
// transformers that build on one or more child modules.
//
// Every operator implements Module. The package stays flat rather than
// splitting generators/modifiers/combiners/transformers into sub-packages
// because every operator kind must be able to bind any other kind as a
// child slot; a generator, a combiner, and a transformer are all just
// Modules to whoever is wiring them together.
package module
