package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Node is one element of the scene graph. A node with a Geometry and a
// Material is drawable; a node with neither is a group. Label nodes are drawn
// as screen-facing text at their world position.
type Node struct {
	Name     string
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
	Visible  bool

	Geometry *Geometry
	Material *Material
	Label    string

	parent   *Node
	children []*Node
}

func NewGroup(name string) *Node {
	return &Node{
		Name:     name,
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
		Visible:  true,
	}
}

func NewMesh(name string, g *Geometry, m *Material) *Node {
	n := NewGroup(name)
	n.Geometry = g
	n.Material = m
	return n
}

func NewLabel(name, text string, m *Material) *Node {
	n := NewGroup(name)
	n.Label = text
	n.Material = m
	return n
}

// At sets the local position and returns the node for chaining.
func (n *Node) At(x, y, z float64) *Node {
	n.Position = mgl64.Vec3{x, y, z}
	return n
}

// Rotate applies a local-axis rotation on top of the current one.
func (n *Node) Rotate(axis mgl64.Vec3, angle float64) *Node {
	n.Rotation = n.Rotation.Mul(mgl64.QuatRotate(angle, axis)).Normalize()
	return n
}

func (n *Node) Scaled(x, y, z float64) *Node {
	n.Scale = mgl64.Vec3{x, y, z}
	return n
}

func (n *Node) SetUniformScale(s float64) {
	n.Scale = mgl64.Vec3{s, s, s}
}

func (n *Node) Add(children ...*Node) {
	for _, c := range children {
		if c == nil {
			continue
		}
		if c.parent != nil {
			c.parent.remove(c)
		}
		c.parent = n
		n.children = append(n.children, c)
	}
}

func (n *Node) remove(c *Node) {
	for i, ch := range n.children {
		if ch == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			return
		}
	}
}

func (n *Node) Children() []*Node {
	return n.children
}

func (n *Node) Parent() *Node {
	return n.parent
}

// Clone copies the node hierarchy. Geometries and materials are shared with
// the original, the same way a mirrored wing reuses its twin's buffers.
func (n *Node) Clone() *Node {
	c := *n
	c.parent = nil
	c.children = nil
	for _, ch := range n.children {
		c.Add(ch.Clone())
	}
	return &c
}

func (n *Node) LocalMatrix() mgl64.Mat4 {
	t := mgl64.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z())
	s := mgl64.Scale3D(n.Scale.X(), n.Scale.Y(), n.Scale.Z())
	return t.Mul4(n.Rotation.Mat4()).Mul4(s)
}

func (n *Node) WorldMatrix() mgl64.Mat4 {
	m := n.LocalMatrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul4(m)
	}
	return m
}

func (n *Node) WorldPosition() mgl64.Vec3 {
	return n.WorldMatrix().Mul4x1(mgl64.Vec4{0, 0, 0, 1}).Vec3()
}

// Walk visits the node and its descendants depth first, passing each node's
// world matrix. Invisible subtrees are still visited; fn decides what to skip.
func (n *Node) Walk(fn func(node *Node, world mgl64.Mat4)) {
	n.walk(mgl64.Ident4(), fn)
}

func (n *Node) walk(parent mgl64.Mat4, fn func(*Node, mgl64.Mat4)) {
	world := parent.Mul4(n.LocalMatrix())
	fn(n, world)
	for _, c := range n.children {
		c.walk(world, fn)
	}
}

// Count returns the number of nodes in the subtree, including n.
func (n *Node) Count() int {
	total := 0
	n.Walk(func(*Node, mgl64.Mat4) { total++ })
	return total
}
