package snapshot

import (
	"context"
	"errors"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/hherman1/worley/internal/worley"
)

func TestRenderMatchesField(t *testing.T) {
	params := worley.DefaultParams()
	params.Seed = 321
	img, err := Render(context.Background(), 48, 32, params, 0.75)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 48 || b.Dy() != 32 {
		t.Fatalf("bounds = %v", b)
	}
	for _, pt := range [][2]int{{0, 0}, {47, 31}, {13, 20}, {30, 5}} {
		x, y := pt[0], pt[1]
		want := uint8(worley.Value(float64(x)+0.5, float64(y)+0.5, 48, 32, params, 0.75)*255 + 0.5)
		if got := img.GrayAt(x, y).Y; got != want {
			t.Errorf("pixel (%d,%d) = %d, want %d", x, y, got, want)
		}
	}
}

func TestRenderVariesWithSeed(t *testing.T) {
	a := worley.DefaultParams()
	a.Seed = 1
	b := a
	b.Seed = 2
	ia, err := Render(context.Background(), 32, 32, a, 0)
	if err != nil {
		t.Fatal(err)
	}
	ib, err := Render(context.Background(), 32, 32, b, 0)
	if err != nil {
		t.Fatal(err)
	}
	same := true
	for i := range ia.Pix {
		if ia.Pix[i] != ib.Pix[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected different frames for different seeds")
	}
}

func TestRenderCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Render(ctx, 16, 16, worley.DefaultParams(), 0)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestRenderRejectsBadInput(t *testing.T) {
	if _, err := Render(context.Background(), 0, 10, worley.DefaultParams(), 0); err == nil {
		t.Fatal("expected error for empty frame")
	}
	p := worley.DefaultParams()
	p.Scale = 0
	if _, err := Render(context.Background(), 10, 10, p, 0); err == nil {
		t.Fatal("expected error for zero scale")
	}
	p = worley.DefaultParams()
	p.Seed = float32(math.NaN())
	if _, err := Render(context.Background(), 10, 10, p, 0); err == nil {
		t.Fatal("expected error for NaN seed")
	}
}

func TestWritePNG(t *testing.T) {
	img, err := Render(context.Background(), 20, 10, worley.DefaultParams(), 0)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := WritePNG(path, img); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Fatalf("decoded bounds %v, want %v", decoded.Bounds(), img.Bounds())
	}
}
