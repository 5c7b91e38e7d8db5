package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hherman1/worley/internal/config"
	"github.com/hherman1/worley/internal/snapshot"
	"github.com/hherman1/worley/resources"
)

func main() {
	if err := run(); err != nil {
		log.Fatalln(err)
	}
}

func run() error {
	cfg := config.Default()
	cfg.Register(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	params, err := cfg.Params(time.Now())
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	log.Printf("worley: %dx%d seed=%.0f scale=%v mode=%v", cfg.Width, cfg.Height, params.Seed, params.Scale, params.Mode)

	if cfg.Snapshot != "" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		img, err := snapshot.Render(ctx, cfg.Width, cfg.Height, params, cfg.SnapshotTime)
		if err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
		if err := snapshot.WritePNG(cfg.Snapshot, img); err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
		log.Printf("wrote %s", cfg.Snapshot)
		return nil
	}

	shader, err := resources.Shader(resources.WorleyShader)
	if err != nil {
		return fmt.Errorf("loading worley shader: %w", err)
	}
	defer resources.Release()

	ebiten.SetWindowTitle("Worley Noise")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(cfg.TPS)

	g := NewGame(cfg.Width, cfg.Height, shader, params)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
