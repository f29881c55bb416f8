package world

import (
	"fmt"
	"sway3d/internal/components"
	"sway3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const FloorSize = 40.0

type World struct {
	Scene      *engine.Scene
	FloorModel rl.Model
}

func New() *World {
	return &World{
		Scene: engine.NewScene("Main"),
	}
}

// Initialize creates GPU-side resources and must run after the window is
// open. Scene content is loaded separately (LoadScene or BuildPlayground).
func (w *World) Initialize() {
	floorMesh := rl.GenMeshPlane(FloorSize, FloorSize, 1, 1)
	w.FloorModel = rl.LoadModelFromMesh(floorMesh)
	w.FloorModel.Materials.Maps.Color = rl.LightGray
}

// BuildPlayground populates the scene in code: one object per oscillator
// mode, plus a synchronized pair on the scene clock.
func (w *World) BuildPlayground() {
	// Free-swinging position sway.
	sway := w.addCube("Sway", rl.Vector3{X: -8, Y: 3, Z: 0}, rl.SkyBlue)
	osc := components.NewOscillate()
	osc.Amplitude = rl.Vector3{X: 2, Y: 1, Z: 2}
	osc.Frequency = rl.Vector3{X: 1, Y: 2, Z: 1}
	osc.StartValueAsBase = true
	sway.AddComponent(osc)

	// Rectified vertical bounce.
	bounce := w.addCube("Bounce", rl.Vector3{X: -4, Y: 1, Z: 0}, rl.Orange)
	osc = components.NewOscillate()
	osc.Amplitude = rl.Vector3{Y: 2}
	osc.Frequency = rl.Vector3{Y: 3}
	osc.BounceY = true
	osc.StartValueAsBase = true
	bounce.AddComponent(osc)

	// Isotropic scale pulse.
	pulse := w.addCube("Pulse", rl.Vector3{X: 0, Y: 2, Z: 0}, rl.Purple)
	osc = components.NewOscillate()
	osc.Affects = components.ChannelScale
	osc.Amplitude = rl.Vector3{X: 0.3}
	osc.Frequency = rl.Vector3{X: 4}
	osc.Uniform = true
	osc.BasePosition = rl.Vector3{X: 1, Y: 1, Z: 1}
	pulse.AddComponent(osc)
	pulse.AddComponent(&components.Spinner{Speed: 45})

	// Two instances on the shared clock stay in lockstep even though they
	// were created (and could have been randomized) independently.
	for i := 0; i < 2; i++ {
		twin := w.addCube(fmt.Sprintf("Twin_%d", i), rl.Vector3{X: 4 + float32(i)*3, Y: 3, Z: -3}, rl.Lime)
		osc = components.NewOscillate()
		osc.Amplitude = rl.Vector3{Y: 1.5}
		osc.Frequency = rl.Vector3{Y: 2}
		osc.UseSceneClock = true
		osc.RandomizeOnStart = true // ignored: clock mode disables randomization
		osc.StartValueAsBase = true
		twin.AddComponent(osc)
	}

	// Rotation wobble that keeps going while paused.
	wobble := w.addCube("Wobble", rl.Vector3{X: 8, Y: 2, Z: 3}, rl.Red)
	osc = components.NewOscillate()
	osc.Affects = components.ChannelRotation
	osc.Amplitude = rl.Vector3{Z: 25}
	osc.Frequency = rl.Vector3{Z: 2}
	osc.LocalSpace = true
	osc.IgnorePause = true
	wobble.AddComponent(osc)

	// Driver pushing another object's transform through a target override.
	puppet := w.addCube("Puppet", rl.Vector3{X: 0, Y: 5, Z: 5}, rl.Gold)
	driver := engine.NewGameObject("PuppetDriver")
	osc = components.NewOscillate()
	osc.Amplitude = rl.Vector3{X: 3}
	osc.Frequency = rl.Vector3{X: 0.5}
	osc.BasePosition = puppet.Transform.Position
	osc.Target.Set(puppet)
	driver.AddComponent(osc)
	w.Scene.AddGameObject(driver)
}

func (w *World) addCube(name string, pos rl.Vector3, color rl.Color) *engine.GameObject {
	cube := engine.NewGameObject(name)
	cube.Transform.Position = pos
	mesh := rl.GenMeshCube(1.5, 1.5, 1.5)
	renderer := components.NewModelRenderer(rl.LoadModelFromMesh(mesh), color)
	// Mesh metadata makes the renderer survive a save/load cycle.
	renderer.MeshType = "cube"
	renderer.MeshSize = []float32{1.5, 1.5, 1.5}
	cube.AddComponent(renderer)
	w.Scene.AddGameObject(cube)
	return cube
}

func (w *World) Start() {
	w.Scene.Start()
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

func (w *World) SetPaused(paused bool) {
	w.Scene.SetPaused(paused)
}

func (w *World) Paused() bool {
	return w.Scene.Paused()
}

func (w *World) Draw() {
	rl.DrawModel(w.FloorModel, rl.Vector3Zero(), 1.0, rl.White)
	rl.DrawGrid(int32(FloorSize/2), 2)

	for _, g := range w.Scene.GameObjects {
		for _, c := range g.Components() {
			if d, ok := c.(engine.Drawable); ok {
				d.Draw()
			}
		}
	}
}

func (w *World) Unload() {
	for _, g := range w.Scene.GameObjects {
		if renderer := engine.GetComponent[*components.ModelRenderer](g); renderer != nil {
			renderer.Unload()
		}
	}
	rl.UnloadModel(w.FloorModel)
}

// Oscillators returns every object carrying an Oscillate component, for the
// inspector's selection cycle.
func (w *World) Oscillators() []*engine.GameObject {
	var result []*engine.GameObject
	for _, g := range w.Scene.GameObjects {
		if engine.GetComponent[*components.Oscillate](g) != nil {
			result = append(result, g)
		}
	}
	return result
}
