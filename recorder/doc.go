// Package recorder supplies two reference colr.Canvas implementations:
// RecordingCanvas, which logs every call for golden-stream assertions,
// and RasterCanvas, which actually rasterizes glyphs into a Pixmap
// using golang.org/x/image/vector. Neither is required to use the colr
// package; they exist so the interpreter has something concrete to
// draw onto outside of tests.
package recorder
