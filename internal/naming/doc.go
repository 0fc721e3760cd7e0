// Package naming builds normalized reference-image file names.
//
// A base name is extended with the descriptors selected by an option mask and
// then sanitized so that it is safe to use as a file name component. Two
// option vocabularies exist: AgnosticOption and IncludeOption. They share a
// bit layout and a resolution algorithm but are distinct types, and each
// entry point of Normalizer accepts exactly one of them.
//
// Descriptors are always appended in the order device model, OS version,
// screen size, separated by underscores. A descriptor the Environment cannot
// report is replaced with an empty segment rather than failing the call.
package naming
