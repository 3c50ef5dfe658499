// Package colr renders color glyphs from OpenType fonts carrying a COLR
// table (versions 0 and 1) and a CPAL palette table, driving an abstract
// 2D vector canvas.
//
// # Overview
//
// Given a font and a glyph identifier, an Interpreter emits a sequence of
// fill, clip, transform, composite, and state save/restore commands that
// reproduce the glyph's color artwork onto any Canvas implementation. The
// package covers the COLRv1 paint-tree walk, color-stop normalization, the
// sweep-gradient patch approximation used by canvases without a native
// conic gradient, and on-the-fly variation-store interpolation.
//
// # Quick Start
//
//	import "github.com/blackfoundrycom/gocolr"
//
//	interp := colr.NewInterpreter(font)
//	err := interp.DrawGlyph(canvas, glyphID, paletteIndex, textColor)
//
// # Scope
//
// This package does not parse OpenType binary tables, extract glyph
// outlines, or shape text — those are the font-loader collaborator's
// job, described by the FontData interface in font.go. It also does not
// ship a concrete Canvas implementation for any particular 2D library;
// see the recorder subpackage for a reference implementation used by
// this package's own tests.
//
// # Coordinate system
//
// Coordinates are in font design units (the integer EM grid); the caller
// scales the canvas CTM once before driving the interpreter.
package colr
