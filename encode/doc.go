// Package encode renders document values in a human-readable indented
// form, optionally colored for terminals. It exists for debugging and the
// polydoc CLI; the lossless wire form lives in the doc package.
package encode
