package game

import (
	"fmt"
	"sway3d/internal/components"
	"sway3d/internal/engine"
	"sway3d/internal/world"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	panelWidth = 300
	rowHeight  = 24
	rowGap     = 6
)

// Inspector is a small raygui panel for live-editing the oscillator on the
// selected object. Amplitude and frequency edits flow straight into the
// component; an oscillator with RandomizeOnChange set re-randomizes its
// phase on the next frame via its own change detection.
type Inspector struct {
	world    *world.World
	visible  bool
	selected int
}

func NewInspector(w *world.World) *Inspector {
	return &Inspector{world: w}
}

func (in *Inspector) Toggle() {
	in.visible = !in.visible
}

func (in *Inspector) Draw() {
	if !in.visible {
		return
	}

	objects := in.world.Oscillators()
	if len(objects) == 0 {
		return
	}
	if in.selected >= len(objects) {
		in.selected = 0
	}
	obj := objects[in.selected]
	osc := engine.GetComponent[*components.Oscillate](obj)
	if osc == nil {
		return
	}

	x := float32(rl.GetScreenWidth() - panelWidth - 10)
	y := float32(10)

	gui.Panel(rl.Rectangle{X: x, Y: y, Width: panelWidth, Height: 430}, "Oscillator")
	y += 30

	row := func() rl.Rectangle {
		r := rl.Rectangle{X: x + 10, Y: y, Width: panelWidth - 20, Height: rowHeight}
		y += rowHeight + rowGap
		return r
	}

	if gui.Button(row(), fmt.Sprintf("%s (%d/%d)", obj.Name, in.selected+1, len(objects))) {
		in.selected = (in.selected + 1) % len(objects)
		return
	}

	// Edits go through the script property applier, the same path scene
	// tooling uses, instead of poking component fields directly.
	slider := func(label, prop string, value, min, max float32) {
		r := row()
		r.X += 80
		r.Width -= 80
		gui.Label(rl.Rectangle{X: x + 10, Y: r.Y, Width: 70, Height: rowHeight}, label)
		newVal := gui.Slider(r, "", fmt.Sprintf("%.2f", value), value, min, max)
		if newVal != value {
			engine.ApplyScriptProperty(osc, prop, float64(newVal))
		}
	}

	slider("Amp X", "amplitudeX", osc.Amplitude.X, -5, 5)
	slider("Amp Y", "amplitudeY", osc.Amplitude.Y, -5, 5)
	slider("Amp Z", "amplitudeZ", osc.Amplitude.Z, -5, 5)
	slider("Freq X", "frequencyX", osc.Frequency.X, 0, 10)
	slider("Freq Y", "frequencyY", osc.Frequency.Y, 0, 10)
	slider("Freq Z", "frequencyZ", osc.Frequency.Z, 0, 10)

	check := func(label, prop string, value bool) {
		r := row()
		r.Width = rowHeight
		if newVal := gui.CheckBox(r, label, value); newVal != value {
			engine.ApplyScriptProperty(osc, prop, newVal)
		}
	}

	check("Bounce X", "bounceX", osc.BounceX)
	check("Bounce Y", "bounceY", osc.BounceY)
	check("Bounce Z", "bounceZ", osc.BounceZ)
	check("Uniform", "uniform", osc.Uniform)
	check("Ignore pause", "ignorePause", osc.IgnorePause)

	if osc.UseSceneClock {
		gui.Label(row(), "Phase: scene clock")
	} else if gui.Button(row(), "Randomize phase") {
		osc.Randomize()
	}
}
