// Package dpiprobe reports the DPI scaling of the primary monitor before and
// after the process declares itself per-monitor DPI aware. The Win32 entry
// points are resolved by name at runtime, so the package builds and degrades
// gracefully on systems that lack them.
package dpiprobe
