package dpiprobe

// Loader opens shared libraries by name and resolves symbols from them.
// Handles are opaque; zero never denotes a loaded library.
type Loader interface {
	Open(name string) (uintptr, error)
	Lookup(handle uintptr, name string) (uintptr, error)
	Close(handle uintptr) error
}

// Library is a slot for one system library. A zero handle means the library
// has not been loaded.
type Library struct {
	// Name is what gets passed to the loader.
	Name string
	// File is the name used in diagnostics.
	File string

	handle uintptr
}

// Loaded reports whether the slot holds a live handle.
func (l *Library) Loaded() bool {
	return l.handle != 0
}

func newLibrary(name, file string) *Library {
	return &Library{Name: name, File: file}
}

// SystemLoader returns the loader backed by the operating system's dynamic
// linker.
func SystemLoader() Loader {
	return systemLoader{}
}

type systemLoader struct{}

func (systemLoader) Open(name string) (uintptr, error) {
	return openLibrary(name)
}

func (systemLoader) Lookup(handle uintptr, name string) (uintptr, error) {
	return findSymbol(handle, name)
}

func (systemLoader) Close(handle uintptr) error {
	return closeLibrary(handle)
}
