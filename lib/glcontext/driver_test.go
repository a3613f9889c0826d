package glcontext_test

import (
	"slices"
	"testing"

	"github.com/fosdem/glwin/lib/glcontext"
)

func TestPixelFormatSurplus(t *testing.T) {
	req := glcontext.RequiredPixelFormat
	exact := glcontext.PixelFormat{DoubleBuffer: true, ColorBits: 32, DepthBits: 24}
	if got := req.Surplus(exact); len(got) != 0 {
		t.Fatalf("Surplus(%+v) = %v, want none", exact, got)
	}

	wasteful := glcontext.PixelFormat{DoubleBuffer: true, ColorBits: 32, DepthBits: 24, StencilBits: 8, AlphaBits: 8, AccumBits: 64}
	want := []string{"stencil 8", "alpha 8", "accumulation 64"}
	if got := req.Surplus(wasteful); !slices.Equal(got, want) {
		t.Fatalf("Surplus(%+v) = %v, want %v", wasteful, got, want)
	}
}
