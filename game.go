package main

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/hherman1/worley/internal/clock"
	"github.com/hherman1/worley/internal/worley"
)

// A game draws the noise field over the whole window every frame.
type Game struct {
	// fixed screen size in pixels
	w, h int

	shader *ebiten.Shader
	params worley.Params
	clock  *clock.Clock

	// Show the status line
	hud bool
}

func NewGame(w, h int, shader *ebiten.Shader, params worley.Params) *Game {
	return &Game{
		w:      w,
		h:      h,
		shader: shader,
		params: params,
		clock:  clock.New(),
	}
}

func (g *Game) Update() error {
	InputsUpdate()
	if Clicked(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if Clicked(ebiten.KeyP) || Clicked(ebiten.KeySpace) {
		g.clock.Toggle()
	}
	if Clicked(ebiten.KeyR) {
		g.params.Seed = worley.SeedFromTime(time.Now())
	}
	if Clicked(ebiten.KeyM) {
		g.params.Mode = g.params.Mode.Next()
	}
	if Clicked(ebiten.KeyH) {
		g.hud = !g.hud
	}
	if Clicked(ebiten.KeyUp) {
		g.params = g.params.Zoom(1.1)
	}
	if Clicked(ebiten.KeyDown) {
		g.params = g.params.Zoom(1 / 1.1)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	t := g.clock.Seconds()
	screen.Fill(color.Black)
	screen.DrawRectShader(g.w, g.h, g.shader, &ebiten.DrawRectShaderOptions{
		Uniforms: worley.Uniforms(g.params, g.w, g.h, t),
	})
	if g.hud {
		ebitenutil.DebugPrintAt(screen, hudLine(g.params, t, g.clock.Paused()), 10, g.h-20)
	}
}

// The window is not resizable, so the screen always has the configured size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.w, g.h
}
