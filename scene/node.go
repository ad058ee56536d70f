package scene

import (
	"slices"

	"github.com/gogpu/gg"

	"github.com/gogpu/carousel/shader"
)

// Vec3 is a position or scale in world units.
type Vec3 struct {
	X, Y, Z float64
}

// Mesh is a unit quad drawn with a program.
type Mesh struct {
	Program shader.Program
}

// Node is a transformable element of the scene tree.
type Node struct {
	Position Vec3
	Scale    Vec3
	// Rotation is the angle about Z in radians.
	Rotation float64
	Mesh     *Mesh

	parent   *Node
	children []*Node
}

// NewNode creates a node at the origin with unit scale.
func NewNode() *Node {
	return &Node{Scale: Vec3{1, 1, 1}}
}

// NewMeshNode creates a node carrying a quad drawn with p.
func NewMeshNode(p shader.Program) *Node {
	n := NewNode()
	n.Mesh = &Mesh{Program: p}
	return n
}

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children in insertion order. The slice must
// not be modified.
func (n *Node) Children() []*Node { return n.children }

// SetParent moves n under p. A nil p detaches n.
func (n *Node) SetParent(p *Node) {
	if n.parent == p {
		return
	}
	if n.parent != nil {
		n.parent.children = slices.DeleteFunc(n.parent.children, func(c *Node) bool { return c == n })
	}
	n.parent = p
	if p != nil {
		p.children = append(p.children, n)
	}
}

// Detach removes n from its parent.
func (n *Node) Detach() {
	n.SetParent(nil)
}

// Local returns the node's transform relative to its parent.
func (n *Node) Local() Transform {
	m := gg.Translate(n.Position.X, n.Position.Y).
		Multiply(gg.Rotate(n.Rotation)).
		Multiply(gg.Scale(n.Scale.X, n.Scale.Y))
	return Transform{Matrix: m, Z: n.Position.Z}
}

// World returns the node's transform relative to the scene root.
func (n *Node) World() Transform {
	t := n.Local()
	if n.parent == nil {
		return t
	}
	return n.parent.World().Then(t)
}

// Walk visits n and its descendants depth-first, parents before children.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Transform maps local quad coordinates into world space.
type Transform struct {
	Matrix gg.Matrix
	Z      float64
}

// Then applies child after t.
func (t Transform) Then(child Transform) Transform {
	return Transform{Matrix: t.Matrix.Multiply(child.Matrix), Z: t.Z + child.Z}
}

// Apply maps the local point (x, y) to world XY.
func (t Transform) Apply(x, y float64) (wx, wy float64) {
	p := t.Matrix.TransformPoint(gg.Point{X: x, Y: y})
	return p.X, p.Y
}
