package engine

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

var nextUID uint64

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    atomic.AddUint64(&nextUID, 1),
		Name:   name,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component assignable to T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (g *GameObject) AddChild(child *GameObject) {
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// rotationMatrix builds the parent rotation in the same convention the
// renderer uses: X then Y then Z.
func rotationMatrix(eulerDeg rl.Vector3) rl.Matrix {
	rx := rl.MatrixRotateX(eulerDeg.X * rl.Deg2rad)
	ry := rl.MatrixRotateY(eulerDeg.Y * rl.Deg2rad)
	rz := rl.MatrixRotateZ(eulerDeg.Z * rl.Deg2rad)
	return rl.MatrixMultiply(rl.MatrixMultiply(rx, ry), rz)
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parentPos := g.Parent.WorldPosition()
	parentRot := g.Parent.WorldRotation()
	parentScale := g.Parent.WorldScale()

	scaled := rl.Vector3{
		X: g.Transform.Position.X * parentScale.X,
		Y: g.Transform.Position.Y * parentScale.Y,
		Z: g.Transform.Position.Z * parentScale.Z,
	}

	rotated := rl.Vector3Transform(scaled, rotationMatrix(parentRot))
	return rl.Vector3Add(parentPos, rotated)
}

func (g *GameObject) WorldRotation() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.Vector3Add(g.Parent.WorldRotation(), g.Transform.Rotation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}

// SetWorldPosition moves the object so that WorldPosition() equals pos,
// converting back through the parent chain. Axes where the parent's world
// scale is zero are left unchanged (the local value is unrecoverable).
func (g *GameObject) SetWorldPosition(pos rl.Vector3) {
	if g.Parent == nil {
		g.Transform.Position = pos
		return
	}
	parentPos := g.Parent.WorldPosition()
	parentRot := g.Parent.WorldRotation()
	parentScale := g.Parent.WorldScale()

	offset := rl.Vector3Subtract(pos, parentPos)
	unrotated := rl.Vector3Transform(offset, rl.MatrixInvert(rotationMatrix(parentRot)))

	if parentScale.X != 0 {
		g.Transform.Position.X = unrotated.X / parentScale.X
	}
	if parentScale.Y != 0 {
		g.Transform.Position.Y = unrotated.Y / parentScale.Y
	}
	if parentScale.Z != 0 {
		g.Transform.Position.Z = unrotated.Z / parentScale.Z
	}
}

// SetWorldRotation sets the local Euler angles so that WorldRotation()
// equals eulerDeg.
func (g *GameObject) SetWorldRotation(eulerDeg rl.Vector3) {
	if g.Parent == nil {
		g.Transform.Rotation = eulerDeg
		return
	}
	g.Transform.Rotation = rl.Vector3Subtract(eulerDeg, g.Parent.WorldRotation())
}

// SetWorldScale sets the local scale so that WorldScale() equals scale.
// Axes where the parent's world scale is zero are left unchanged.
func (g *GameObject) SetWorldScale(scale rl.Vector3) {
	if g.Parent == nil {
		g.Transform.Scale = scale
		return
	}
	ps := g.Parent.WorldScale()
	if ps.X != 0 {
		g.Transform.Scale.X = scale.X / ps.X
	}
	if ps.Y != 0 {
		g.Transform.Scale.Y = scale.Y / ps.Y
	}
	if ps.Z != 0 {
		g.Transform.Scale.Z = scale.Z / ps.Z
	}
}
