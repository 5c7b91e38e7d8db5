// Package snapshot renders single frames of the noise field without a GPU.
package snapshot

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hherman1/worley/internal/worley"
)

// Render evaluates every pixel of a w×h frame at animation time t. Rows are
// shared out between GOMAXPROCS workers.
func Render(ctx context.Context, w, h int, params worley.Params, t float64) (*image.Gray, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", w, h)
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("params: %w", err)
	}
	img := image.NewGray(image.Rect(0, 0, w, h))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for y := 0; y < h; y++ {
		y := y
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row := img.Pix[y*img.Stride : y*img.Stride+w]
			for x := range row {
				// sample at the pixel center, as the fragment shader does
				v := worley.Value(float64(x)+0.5, float64(y)+0.5, w, h, params, t)
				row[x] = uint8(v*255 + 0.5)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return img, nil
}

// WritePNG encodes img to path, replacing any existing file.
func WritePNG(path string, img image.Image) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("open file to save snapshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	return nil
}
