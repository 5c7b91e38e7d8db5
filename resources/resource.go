package resources

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Path of the Worley noise fragment shader inside the embedded tree.
const WorleyShader = "shaders/worley.go"

//go:embed shaders
var shadersFS embed.FS
var shaders = map[string]*ebiten.Shader{}

// Returns the raw Kage source stored at the given shader path (shaders/*).
func ShaderSource(path string) ([]byte, error) {
	b, err := shadersFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return b, nil
}

// Loads a shader from the given shader path (shaders/*), reusing it if previously loaded. Not thread safe.
func Shader(path string) (*ebiten.Shader, error) {
	if s, ok := shaders[path]; ok {
		return s, nil
	}
	b, err := ShaderSource(path)
	if err != nil {
		return nil, err
	}
	shader, err := ebiten.NewShader(b)
	if err != nil {
		return nil, fmt.Errorf("compile shader %s: %w", path, err)
	}
	shaders[path] = shader
	return shader, nil
}

// Frees every cached shader. The cache is empty afterwards.
func Release() {
	for path, s := range shaders {
		s.Deallocate()
		delete(shaders, path)
	}
}
