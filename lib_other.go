//go:build !windows && !darwin && !freebsd && !linux

package dpiprobe

import (
	"fmt"
	"runtime"
)

var errUnsupportedOS = fmt.Errorf("dynamic loading is not supported on %s", runtime.GOOS)

func openLibrary(name string) (uintptr, error) {
	return 0, errUnsupportedOS
}

func findSymbol(lib uintptr, name string) (uintptr, error) {
	return 0, errUnsupportedOS
}

func closeLibrary(lib uintptr) error {
	return nil
}

// Nothing resolves on this platform, so registerFunc is never reached.
func registerFunc(fptr any, addr uintptr) {}
