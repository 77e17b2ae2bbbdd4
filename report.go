package dpiprobe

import (
	"fmt"
	"io"
	"math"
)

// DpiSample is a DPI reading along both axes.
type DpiSample struct {
	X uint32
	Y uint32
}

// String returns the sample as "x|y".
func (s DpiSample) String() string {
	return fmt.Sprintf("%d|%d", s.X, s.Y)
}

// Snapshot holds the figures read for one monitor under one awareness state.
type Snapshot struct {
	Scale     int32
	Raw       DpiSample
	Effective DpiSample
	Angular   DpiSample
}

func (s Snapshot) print(w io.Writer) {
	fmt.Fprintf(w, "Scale:         %d%%\n", s.Scale)
	fmt.Fprintf(w, "Raw DPI:       %s\n", s.Raw)
	fmt.Fprintf(w, "Effective DPI: %s\n", s.Effective)
	fmt.Fprintf(w, "Angular DPI:   %s\n", s.Angular)
}

// Report is the result of FindScale.
type Report struct {
	Unaware Snapshot
	Aware   Snapshot

	// CalculatedScale is 100 * Aware.Effective.X / Unaware.Effective.X.
	// It is +Inf or NaN when the unaware reading is zero.
	CalculatedScale float32
}

func calculateScale(before, after uint32) float32 {
	return 100 * float32(after) / float32(before)
}

// formatPercent rounds half away from zero. Inf and NaN print as fmt
// renders them.
func formatPercent(v float32) string {
	return fmt.Sprintf("%.0f%%", math.Round(float64(v)))
}
