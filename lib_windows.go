//go:build windows

package dpiprobe

import (
	"errors"

	"github.com/ebitengine/purego"
	"golang.org/x/sys/windows"
)

func openLibrary(name string) (uintptr, error) {
	h, err := windows.LoadLibrary(name)
	if err != nil {
		return 0, err
	}
	if h == 0 {
		return 0, errors.New("LoadLibrary returned a null handle")
	}
	return uintptr(h), nil
}

func findSymbol(lib uintptr, name string) (uintptr, error) {
	proc, err := windows.GetProcAddress(windows.Handle(lib), name)
	if err != nil {
		return 0, err
	}
	return proc, nil
}

func closeLibrary(lib uintptr) error {
	if lib == 0 {
		return nil
	}
	return windows.FreeLibrary(windows.Handle(lib))
}

func registerFunc(fptr any, addr uintptr) {
	purego.RegisterFunc(fptr, addr)
}
