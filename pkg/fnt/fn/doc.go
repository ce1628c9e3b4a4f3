// Package fn provides small function-composition helpers used throughout
// the module.
//
// Highlights:
// - Identity/Constant: trivial building blocks for laws and defaults
// - Compose: variadic right-to-left composition over one type
// - Pipe: value-first left-to-right application
// - Compose2/Compose3: right-to-left composition across changing types
package fn
