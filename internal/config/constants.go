// Package config holds interpreter-wide constants: the canonical source
// file extension and a version string. Modeled on funvibe/funxy's
// internal/config/constants.go (SourceFileExtensions/TrimSourceExt/
// HasSourceExt), narrowed to this language's single extension.
package config

// Version is the current interpreter version.
var Version = "0.1.0"

// SourceExt is the canonical source file extension.
const SourceExt = ".lox"

// HasSourceExt reports whether path ends with the canonical extension.
func HasSourceExt(path string) bool {
	return len(path) >= len(SourceExt) && path[len(path)-len(SourceExt):] == SourceExt
}
