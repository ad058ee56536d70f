package texture

import (
	"sync"

	"github.com/gogpu/carousel/item"
)

// Cache memoizes synthesized textures by item.Key so that repeated slots for
// the same item share one raster. Entries are never invalidated; an item
// whose fields change after it was first synthesized keeps its old artwork
// unless it has no ID, in which case the changed fields form a new key.
type Cache struct {
	synth *Synthesizer

	mu      sync.Mutex
	entries map[string]Texture
	misses  int
}

// NewCache creates an empty cache in front of synth.
func NewCache(synth *Synthesizer) *Cache {
	return &Cache{
		synth:   synth,
		entries: make(map[string]Texture),
	}
}

// Get returns the texture for it, synthesizing it on first use.
func (c *Cache) Get(it item.Item) Texture {
	key := it.Key()

	c.mu.Lock()
	defer c.mu.Unlock()
	if tex, ok := c.entries[key]; ok {
		return tex
	}
	c.misses++
	tex := c.synth.Synthesize(it)
	c.entries[key] = tex
	return tex
}

// Len returns the number of cached textures.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Misses returns how many times Get had to synthesize a texture.
func (c *Cache) Misses() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.misses
}
