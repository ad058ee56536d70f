package carousel

import (
	"github.com/gogpu/carousel/item"
	"github.com/gogpu/carousel/scene"
	"github.com/gogpu/carousel/shader"
	"github.com/gogpu/carousel/texture"
)

// cardDepth lifts the card off its plane so the two never z-fight.
const cardDepth = 0.01

// CardSurface shows one item's artwork on top of a track plane. It is built
// once and never updated.
type CardSurface struct {
	Item    item.Item
	Texture texture.Texture
	Node    *scene.Node
}

// NewCardSurface renders it through cache and attaches a card mesh to
// parent. The mesh copies the parent's scale at the time of the call; track
// items build their card before their first resize, so the card stays a unit
// quad in the plane's space and follows every later resize.
func NewCardSurface(parent *scene.Node, it item.Item, cache *texture.Cache) *CardSurface {
	tex := cache.Get(it)
	node := scene.NewMeshNode(shader.NewCardProgram(tex.Image))
	node.Scale = scene.Vec3{X: parent.Scale.X, Y: parent.Scale.Y, Z: 1}
	node.Position.Z = cardDepth
	node.SetParent(parent)
	return &CardSurface{Item: it, Texture: tex, Node: node}
}
