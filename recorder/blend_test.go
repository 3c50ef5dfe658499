package recorder

import (
	"testing"

	"github.com/blackfoundrycom/gocolr"
)

func TestCompositeSrcOverOpaqueSrcWins(t *testing.T) {
	got := composite(colr.Blue, colr.Red, colr.CompositeSrcOver)
	if !colorsClose(got, colr.Red, 1e-9) {
		t.Errorf("SrcOver(dst=Blue, src=opaque Red) = %+v, want Red", got)
	}
}

func TestCompositeClearIsFullyTransparent(t *testing.T) {
	got := composite(colr.Blue, colr.Red, colr.CompositeClear)
	if got.A != 0 {
		t.Errorf("Clear result alpha = %v, want 0", got.A)
	}
}

func TestCompositeDestIgnoresSource(t *testing.T) {
	got := composite(colr.Blue, colr.Red, colr.CompositeDest)
	if !colorsClose(got, colr.Blue, 1e-9) {
		t.Errorf("Dest(dst=Blue, src=Red) = %+v, want Blue", got)
	}
}

func TestCompositeMultiplyBlackYieldsBlack(t *testing.T) {
	got := composite(colr.White, colr.Black, colr.CompositeMultiply)
	if !colorsClose(got, colr.Black, 1e-9) {
		t.Errorf("Multiply(White, Black) = %+v, want Black", got)
	}
}

func TestCompositeScreenWhiteYieldsWhite(t *testing.T) {
	got := composite(colr.Black, colr.White, colr.CompositeScreen)
	if !colorsClose(got, colr.White, 1e-9) {
		t.Errorf("Screen(Black, White) = %+v, want White", got)
	}
}

func TestSetLumPreservesTargetLuminosity(t *testing.T) {
	c := rgb{0.8, 0.1, 0.1}
	out := setLum(c, 0.5)
	if got := lum(out); got < 0.49 || got > 0.51 {
		t.Errorf("lum(setLum(c, 0.5)) = %v, want ~0.5", got)
	}
}

func TestSetSatZeroInputYieldsZeroSaturation(t *testing.T) {
	out := setSat(rgb{0.2, 0.5, 0.9}, 0)
	if got := sat(out); got > 1e-9 {
		t.Errorf("sat(setSat(c, 0)) = %v, want 0", got)
	}
}
