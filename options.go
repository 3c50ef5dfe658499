package colr

import (
	"log/slog"
	"math"
)

// InterpreterOption configures an Interpreter during creation.
// Use functional options to customize interpreter behavior.
//
// Example:
//
//	// Default configuration
//	interp := colr.NewInterpreter(font)
//
//	// Custom recursion limit and logger
//	interp := colr.NewInterpreter(font,
//		colr.WithRecursionLimit(32),
//		colr.WithLogger(slog.Default()))
type InterpreterOption func(*interpreterOptions)

// interpreterOptions holds optional configuration for Interpreter
// creation.
type interpreterOptions struct {
	logger          *slog.Logger
	maxSweepAngle   float64
	recursionLimit  int
	gouraudSweep    bool
}

// defaultInterpreterOptions returns the default interpreter options.
func defaultInterpreterOptions() interpreterOptions {
	return interpreterOptions{
		logger:         nil, // falls back to the package-wide Logger()
		maxSweepAngle:  0,   // falls back to the mode-appropriate sweep.go default
		recursionLimit: 64,
		gouraudSweep:   false,
	}
}

// WithLogger stores a logger private to this Interpreter. The
// interpreter's warnings and debug messages are written through the
// package-wide Logger(), not through this stored logger.
//
// Example:
//
//	interp := colr.NewInterpreter(font, colr.WithLogger(slog.Default()))
func WithLogger(l *slog.Logger) InterpreterOption {
	return func(o *interpreterOptions) {
		o.logger = l
	}
}

// WithMaxSweepAngle stores a per-patch angular bound for sweep
// gradients. Pass 0 (the default) to keep sweep.go's mode-appropriate
// default; any other value is clamped to [π/360, π/2]. The Interpreter
// passes sweep gradients to Canvas.DrawPathSweepGradient and does not
// call BuildSweepGradientPatches, so the stored bound does not change
// what DrawGlyph emits.
func WithMaxSweepAngle(radians float64) InterpreterOption {
	return func(o *interpreterOptions) {
		o.maxSweepAngle = radians
	}
}

// WithGouraudSweep records a preference for flat-triangle-fan sweep
// gradient patches over the default cubic-Bezier mesh patches. The
// Interpreter does not read this setting: sweep gradients are passed to
// Canvas.DrawPathSweepGradient unchanged.
func WithGouraudSweep() InterpreterOption {
	return func(o *interpreterOptions) {
		o.gouraudSweep = true
	}
}

// WithRecursionLimit caps the ColrGlyph recursion depth an Interpreter
// tolerates before returning a RecursionError, independent of actual
// cycle detection. The default is 64, generous for any legitimate
// nesting seen in practice while still bounding a pathological font.
func WithRecursionLimit(n int) InterpreterOption {
	return func(o *interpreterOptions) {
		if n > 0 {
			o.recursionLimit = n
		}
	}
}

func (o interpreterOptions) effectiveLogger() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return Logger()
}

func (o interpreterOptions) effectiveMaxSweepAngle() float64 {
	if o.maxSweepAngle == 0 {
		return 0
	}
	return math.Max(math.Min(o.maxSweepAngle, sweepMaxAngleCeiling), sweepMaxAngleFloor)
}
