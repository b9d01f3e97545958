// Package unchecked mirrors the conversion API of the root package
// without any validation.
//
// Every function assumes its input was validated once already, for
// example by utfkit.Valid or by arriving through a checked conversion.
// Under that precondition the results are identical to the checked API,
// with no error returns to thread through hot paths.
//
// Feeding malformed input to this package yields unspecified codepoints
// or a runtime bounds panic. It never reads outside the given slices;
// the bounds checks of the runtime are the only guard left in place.
package unchecked
