package dpiprobe

import "fmt"

// MonitorDpiType selects which DPI figure GetDpiForMonitor reports.
type MonitorDpiType int32

const (
	EffectiveDPI MonitorDpiType = 0
	AngularDPI   MonitorDpiType = 1
	RawDPI       MonitorDpiType = 2
)

func (t MonitorDpiType) String() string {
	switch t {
	case EffectiveDPI:
		return "MDT_EFFECTIVE_DPI"
	case AngularDPI:
		return "MDT_ANGULAR_DPI"
	case RawDPI:
		return "MDT_RAW_DPI"
	}
	return fmt.Sprintf("MonitorDpiType(%d)", int32(t))
}

// ProcessDpiAwareness is the PROCESS_DPI_AWARENESS enumeration.
type ProcessDpiAwareness int32

const (
	ProcessDpiUnaware         ProcessDpiAwareness = 0
	ProcessSystemDpiAware     ProcessDpiAwareness = 1
	ProcessPerMonitorDpiAware ProcessDpiAwareness = 2
)

func (a ProcessDpiAwareness) String() string {
	switch a {
	case ProcessDpiUnaware:
		return "PROCESS_DPI_UNAWARE"
	case ProcessSystemDpiAware:
		return "PROCESS_SYSTEM_DPI_AWARE"
	case ProcessPerMonitorDpiAware:
		return "PROCESS_PER_MONITOR_DPI_AWARE"
	}
	return fmt.Sprintf("ProcessDpiAwareness(%d)", int32(a))
}

// monitorLookupFlag is passed to MonitorFromPoint. Win32 calls the value
// MONITOR_DEFAULTTOPRIMARY; the origin is always on the primary monitor.
const monitorLookupFlag uint32 = 1

// Point is a screen coordinate, laid out like the Win32 POINT.
type Point struct {
	X int32
	Y int32
}

// pack returns p the way an 8-byte struct argument is passed by value on
// 64-bit Windows: a single integer register, X in the low half.
func (p Point) pack() uint64 {
	return uint64(uint32(p.X)) | uint64(uint32(p.Y))<<32
}

// Names of the resolved entry points.
const (
	symMonitorFromPoint         = "MonitorFromPoint"
	symSetProcessDpiAwareness   = "SetProcessDpiAwareness"
	symGetScaleFactorForMonitor = "GetScaleFactorForMonitor"
	symGetDpiForMonitor         = "GetDpiForMonitor"
)

// api holds the bound entry points. A nil field failed to resolve.
type api struct {
	monitorFromPoint         func(pt uint64, flags uint32) uintptr
	setProcessDpiAwareness   func(awareness int32) int32
	getScaleFactorForMonitor func(monitor uintptr, scale *int32) int32
	getDpiForMonitor         func(monitor uintptr, dpiType int32, dpiX, dpiY *uint32) int32
}

func (a *api) complete() bool {
	return a.monitorFromPoint != nil &&
		a.setProcessDpiAwareness != nil &&
		a.getScaleFactorForMonitor != nil &&
		a.getDpiForMonitor != nil
}

// symbol ties an entry point name to the library exporting it and the func
// field it binds to.
type symbol struct {
	lib  *Library
	name string
	fptr any
}

func hresult(code int32) string {
	return fmt.Sprintf("0x%08X", uint32(code))
}
