package components

import "sway3d/internal/engine"

// Spinner rotates an object around the Y axis at a constant rate.
// It respects the scene pause state, standing in for the "main simulation"
// work that runs before the oscillators each frame.
type Spinner struct {
	engine.BaseComponent
	Speed float32 // degrees per second
}

func (s *Spinner) Update(deltaTime float32) {
	g := s.GetGameObject()
	if g == nil {
		return
	}
	if g.Scene != nil && g.Scene.Paused() {
		return
	}
	g.Transform.Rotation.Y += s.Speed * deltaTime
	if g.Transform.Rotation.Y > 360 {
		g.Transform.Rotation.Y -= 360
	}
}
