package dpiprobe

import (
	"errors"
	"fmt"
)

var (
	// ErrLibraryNotLoaded is reported when a symbol is requested from a
	// library slot that holds no handle.
	ErrLibraryNotLoaded = errors.New("library has not been loaded")

	// ErrSymbolNotFound is reported when a loaded library does not export
	// the requested name.
	ErrSymbolNotFound = errors.New("no entry point with that name")

	// ErrMissingFunctions is returned by FindScale when any required entry
	// point is unbound.
	ErrMissingFunctions = errors.New("missing required function(s)")
)

// LoadError is returned when a system library cannot be opened.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("dpiprobe: %s not found: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SymbolError is returned when an entry point cannot be bound. Err is
// ErrLibraryNotLoaded or ErrSymbolNotFound.
type SymbolError struct {
	Symbol string
	Err    error
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("dpiprobe: unable to find %s; %v", e.Symbol, e.Err)
}

func (e *SymbolError) Unwrap() error { return e.Err }
