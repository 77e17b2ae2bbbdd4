package dpiprobe

import (
	"errors"
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// Probe resolves the Win32 DPI entry points at runtime and reads the DPI of
// the primary monitor. A Probe is not safe for concurrent use.
type Probe struct {
	opts options
	log  *zap.Logger

	user32 *Library
	shcore *Library

	api api
}

// New creates a probe. No library is touched until LoadLibraries.
func New(opts ...Option) *Probe {
	o := applyOptions(opts)
	return &Probe{
		opts:   o,
		log:    o.logger,
		user32: newLibrary("user32", "User32.dll"),
		shcore: newLibrary("shcore", "ShCore.dll"),
	}
}

// Libraries returns the library slots in load order.
func (p *Probe) Libraries() []*Library {
	return []*Library{p.user32, p.shcore}
}

// Run loads the libraries and entry points, prints the report and releases
// the libraries again. Every failure is printed as it happens; the returned
// error joins them for callers that want to inspect what went wrong.
func (p *Probe) Run() (report *Report, err error) {
	defer func() {
		err = errors.Join(err, p.FreeLibraries())
	}()

	loadErr := p.LoadLibraries()
	symErr := p.LoadFunctions()
	report, scaleErr := p.FindScale()
	return report, errors.Join(loadErr, symErr, scaleErr)
}

// LoadLibraries opens user32 and shcore. A library that fails to load is
// reported and left unloaded; the other is still attempted.
func (p *Probe) LoadLibraries() error {
	var errs []error
	for _, lib := range p.Libraries() {
		if err := p.loadLibrary(lib); err != nil {
			p.println(lib.File + " not found")
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (p *Probe) loadLibrary(lib *Library) error {
	if lib.Loaded() {
		return nil
	}
	h, err := p.opts.loader.Open(lib.Name)
	if err == nil && h == 0 {
		err = errors.New("loader returned a null handle")
	}
	if err != nil {
		p.log.Debug("library load failed", zap.String("library", lib.Name), zap.Error(err))
		return &LoadError{File: lib.File, Err: err}
	}
	lib.handle = h
	p.log.Debug("library loaded", zap.String("library", lib.Name), zap.Uintptr("handle", h))
	return nil
}

// FreeLibraries releases every library that was loaded and clears the
// entry points bound from it. Slots that never held a handle are skipped.
func (p *Probe) FreeLibraries() error {
	var errs []error
	for _, lib := range p.Libraries() {
		if !lib.Loaded() {
			continue
		}
		if err := p.opts.loader.Close(lib.handle); err != nil {
			p.log.Debug("library release failed", zap.String("library", lib.Name), zap.Error(err))
			errs = append(errs, fmt.Errorf("releasing %s: %w", lib.File, err))
		} else {
			p.log.Debug("library released", zap.String("library", lib.Name))
		}
		lib.handle = 0
		for _, s := range p.symbols() {
			if s.lib == lib {
				unbind(s.fptr)
			}
		}
	}
	return errors.Join(errs...)
}

func (p *Probe) symbols() []symbol {
	return []symbol{
		{lib: p.user32, name: symMonitorFromPoint, fptr: &p.api.monitorFromPoint},
		{lib: p.shcore, name: symSetProcessDpiAwareness, fptr: &p.api.setProcessDpiAwareness},
		{lib: p.shcore, name: symGetScaleFactorForMonitor, fptr: &p.api.getScaleFactorForMonitor},
		{lib: p.shcore, name: symGetDpiForMonitor, fptr: &p.api.getDpiForMonitor},
	}
}

// LoadFunctions binds the four entry points. Each one that cannot be bound
// is reported and left nil.
func (p *Probe) LoadFunctions() error {
	var errs []error
	for _, s := range p.symbols() {
		if err := p.LoadFunction(s.lib, s.name, s.fptr); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LoadFunction binds the entry point name exported by lib to fptr, which
// must be a pointer to a func variable. On failure the func is set to nil
// and a *SymbolError is returned. An unloaded library is never passed to
// the loader.
func (p *Probe) LoadFunction(lib *Library, name string, fptr any) error {
	if !lib.Loaded() {
		p.printf("Unable to find %s; library has not been loaded\n", name)
		unbind(fptr)
		return &SymbolError{Symbol: name, Err: ErrLibraryNotLoaded}
	}

	addr, err := p.opts.loader.Lookup(lib.handle, name)
	if err != nil || addr == 0 {
		p.printf("Unable to find %s; no entry point with that name\n", name)
		p.log.Debug("symbol lookup failed", zap.String("library", lib.Name), zap.String("symbol", name), zap.Error(err))
		unbind(fptr)
		return &SymbolError{Symbol: name, Err: ErrSymbolNotFound}
	}

	p.opts.binder(fptr, addr)
	p.log.Debug("symbol bound", zap.String("library", lib.Name), zap.String("symbol", name), zap.Uintptr("addr", addr))
	return nil
}

func unbind(fptr any) {
	v := reflect.ValueOf(fptr)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return
	}
	v.Elem().Set(reflect.Zero(v.Elem().Type()))
}

// FindScale reads the primary monitor's scale and DPI, declares the process
// per-monitor DPI aware, reads them again and prints both blocks followed by
// the scale derived from the two effective readings. If any entry point is
// unbound it prints a single line, makes no native call and returns
// ErrMissingFunctions.
func (p *Probe) FindScale() (*Report, error) {
	if !p.api.complete() {
		p.println("Missing required function(s)")
		return nil, ErrMissingFunctions
	}

	monitor := p.api.monitorFromPoint(Point{}.pack(), monitorLookupFlag)
	p.log.Debug("monitor resolved", zap.Uintptr("monitor", monitor))

	report := &Report{}

	p.println("Dpi unaware:")
	report.Unaware = p.snapshot(monitor)

	p.declareAwareness(ProcessPerMonitorDpiAware)
	p.println("\nDpi aware:")
	report.Aware = p.snapshot(monitor)

	report.CalculatedScale = calculateScale(report.Unaware.Effective.X, report.Aware.Effective.X)
	p.printf("\nCalculated scale factor: %s\n", formatPercent(report.CalculatedScale))

	return report, nil
}

func (p *Probe) snapshot(monitor uintptr) Snapshot {
	var s Snapshot
	s.Scale = p.scaleFactor(monitor)
	s.Raw = p.dpi(monitor, RawDPI)
	s.Effective = p.dpi(monitor, p.opts.effectiveType)
	s.Angular = p.dpi(monitor, AngularDPI)
	s.print(p.opts.out)
	return s
}

func (p *Probe) scaleFactor(monitor uintptr) int32 {
	var scale int32
	if hr := p.api.getScaleFactorForMonitor(monitor, &scale); hr != 0 {
		p.log.Debug(symGetScaleFactorForMonitor+" failed", zap.String("hresult", hresult(hr)))
	}
	return scale
}

func (p *Probe) dpi(monitor uintptr, t MonitorDpiType) DpiSample {
	var s DpiSample
	if hr := p.api.getDpiForMonitor(monitor, int32(t), &s.X, &s.Y); hr != 0 {
		p.log.Debug(symGetDpiForMonitor+" failed", zap.Stringer("type", t), zap.String("hresult", hresult(hr)))
	}
	return s
}

func (p *Probe) declareAwareness(a ProcessDpiAwareness) {
	if hr := p.api.setProcessDpiAwareness(int32(a)); hr != 0 {
		p.log.Debug(symSetProcessDpiAwareness+" failed", zap.Stringer("awareness", a), zap.String("hresult", hresult(hr)))
	}
}

func (p *Probe) printf(format string, args ...any) {
	fmt.Fprintf(p.opts.out, format, args...)
}

func (p *Probe) println(s string) {
	fmt.Fprintln(p.opts.out, s)
}
