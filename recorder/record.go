package recorder

import "github.com/blackfoundrycom/gocolr"

// Command is one entry in a RecordingCanvas's Log, a tagged union of
// every operation a colr.Canvas can receive. It exists so test code can
// assert against a golden command stream instead of pixels; the
// interpreter package's own recordingCanvas (interpreter_test.go) is
// the same idea reduced to plain counters for its own narrower needs.
type Command interface {
	isCommand()
}

// SaveCommand records a Canvas.SavedState scope entry.
type SaveCommand struct{}

func (SaveCommand) isCommand() {}

// RestoreCommand records the matching SavedState scope exit.
type RestoreCommand struct{}

func (RestoreCommand) isCommand() {}

// CompositeBeginCommand records a Canvas.CompositeLayer scope entry.
type CompositeBeginCommand struct {
	Mode colr.CompositeMode
}

func (CompositeBeginCommand) isCommand() {}

// CompositeEndCommand records the matching CompositeLayer scope exit.
type CompositeEndCommand struct{}

func (CompositeEndCommand) isCommand() {}

// TransformCommand records a Canvas.Transform call.
type TransformCommand struct {
	Affine colr.Affine
}

func (TransformCommand) isCommand() {}

// ClipCommand records a Canvas.ClipPath call.
type ClipCommand struct {
	Path colr.PathBuilderTarget
}

func (ClipCommand) isCommand() {}

// SolidCommand records a Canvas.DrawPathSolid call.
type SolidCommand struct {
	Path  colr.PathBuilderTarget
	Color colr.RGBA
}

func (SolidCommand) isCommand() {}

// LinearGradientCommand records a Canvas.DrawPathLinearGradient call.
type LinearGradientCommand struct {
	Path              colr.PathBuilderTarget
	Stops             []colr.ColorStop
	P1, P2            colr.Point
	Extend            colr.ExtendMode
	GradientTransform colr.Affine
}

func (LinearGradientCommand) isCommand() {}

// RadialGradientCommand records a Canvas.DrawPathRadialGradient call.
type RadialGradientCommand struct {
	Path              colr.PathBuilderTarget
	Stops             []colr.ColorStop
	C0                colr.Point
	R0                float64
	C1                colr.Point
	R1                float64
	Extend            colr.ExtendMode
	GradientTransform colr.Affine
}

func (RadialGradientCommand) isCommand() {}

// SweepGradientCommand records a Canvas.DrawPathSweepGradient call.
type SweepGradientCommand struct {
	Path                 colr.PathBuilderTarget
	Stops                []colr.ColorStop
	Center               colr.Point
	StartAngle, EndAngle float64
	Extend               colr.ExtendMode
	GradientTransform    colr.Affine
}

func (SweepGradientCommand) isCommand() {}

// RecordingCanvas is a colr.Canvas that appends every call it receives
// to Log instead of drawing anything, for tests that assert against a
// golden command stream. Save/composite scopes are still honored
// structurally (fn still runs, nested the same way a drawing canvas
// would see it), so paint-tree recursion and save-depth balance can be
// exercised exactly as they would against a real canvas.
type RecordingCanvas struct {
	Log []Command
}

// NewRecordingCanvas returns an empty RecordingCanvas.
func NewRecordingCanvas() *RecordingCanvas { return &RecordingCanvas{} }

func (c *RecordingCanvas) NewPath() colr.PathBuilderTarget { return colr.NewPath() }

func (c *RecordingCanvas) SavedState(fn func()) {
	c.Log = append(c.Log, SaveCommand{})
	fn()
	c.Log = append(c.Log, RestoreCommand{})
}

func (c *RecordingCanvas) CompositeLayer(mode colr.CompositeMode, fn func()) {
	c.Log = append(c.Log, CompositeBeginCommand{Mode: mode})
	fn()
	c.Log = append(c.Log, CompositeEndCommand{})
}

func (c *RecordingCanvas) Transform(affine colr.Affine) {
	c.Log = append(c.Log, TransformCommand{Affine: affine})
}

func (c *RecordingCanvas) ClipPath(path colr.PathBuilderTarget) {
	c.Log = append(c.Log, ClipCommand{Path: path})
}

func (c *RecordingCanvas) DrawPathSolid(path colr.PathBuilderTarget, color colr.RGBA) {
	c.Log = append(c.Log, SolidCommand{Path: path, Color: color})
}

func (c *RecordingCanvas) DrawPathLinearGradient(path colr.PathBuilderTarget, line []colr.ColorStop, p1, p2 colr.Point, extend colr.ExtendMode, gradientTransform colr.Affine) {
	c.Log = append(c.Log, LinearGradientCommand{
		Path: path, Stops: line, P1: p1, P2: p2, Extend: extend, GradientTransform: gradientTransform,
	})
}

func (c *RecordingCanvas) DrawPathRadialGradient(path colr.PathBuilderTarget, line []colr.ColorStop, c0 colr.Point, r0 float64, c1 colr.Point, r1 float64, extend colr.ExtendMode, gradientTransform colr.Affine) {
	c.Log = append(c.Log, RadialGradientCommand{
		Path: path, Stops: line, C0: c0, R0: r0, C1: c1, R1: r1, Extend: extend, GradientTransform: gradientTransform,
	})
}

func (c *RecordingCanvas) DrawPathSweepGradient(path colr.PathBuilderTarget, line []colr.ColorStop, center colr.Point, startAngle, endAngle float64, extend colr.ExtendMode, gradientTransform colr.Affine) {
	c.Log = append(c.Log, SweepGradientCommand{
		Path: path, Stops: line, Center: center, StartAngle: startAngle, EndAngle: endAngle,
		Extend: extend, GradientTransform: gradientTransform,
	})
}

var _ colr.Canvas = (*RecordingCanvas)(nil)
