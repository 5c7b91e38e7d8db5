package main

import "github.com/hajimehoshi/ebiten/v2"

// Global, single threaded map for easier input consumption
var (
	kdown  = make(map[ebiten.Key]int)
	iframe = 1
)

// Must be called once per Update, before any Clicked checks.
func InputsUpdate() {
	iframe++
	for k := range kdown {
		if !ebiten.IsKeyPressed(k) {
			delete(kdown, k)
		}
	}
}

// Returns true if a given k has just started to be pressed
func Clicked(k ebiten.Key) bool {
	if !ebiten.IsKeyPressed(k) {
		return false
	}
	f, ok := kdown[k]
	if f == iframe {
		return true
	}
	if ok {
		return false
	}
	kdown[k] = iframe
	return true
}
