package shader

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/gogpu/naga"
)

//go:embed shaders/plane.wgsl
var planeShaderSource string

//go:embed shaders/card.wgsl
var cardShaderSource string

// PlaneSource returns the WGSL source of the track plane program.
func PlaneSource() string {
	return planeShaderSource
}

// CardSource returns the WGSL source of the card program.
func CardSource() string {
	return cardShaderSource
}

type compiled struct {
	once  sync.Once
	spirv []uint32
	err   error
}

var (
	compileMu    sync.Mutex
	compileCache = map[string]*compiled{}
)

// Compile translates the program's WGSL to SPIR-V words. Results are cached
// per program name, so every program sharing a name must share a source.
func Compile(p Program) ([]uint32, error) {
	compileMu.Lock()
	c, ok := compileCache[p.Name()]
	if !ok {
		c = &compiled{}
		compileCache[p.Name()] = c
	}
	compileMu.Unlock()

	c.once.Do(func() {
		c.spirv, c.err = compileWGSL(p.Source())
		if c.err != nil {
			c.err = fmt.Errorf("shader: compile %s: %w", p.Name(), c.err)
		}
	})
	return c.spirv, c.err
}

func compileWGSL(src string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(src)
	if err != nil {
		return nil, err
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("SPIR-V length %d is not a multiple of 4", len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}
