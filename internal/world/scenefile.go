package world

import (
	"encoding/json"
	"fmt"
	"os"
	"sway3d/internal/components"
	"sway3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type SceneFile struct {
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name       string            `json:"name"`
	Tags       []string          `json:"tags,omitempty"`
	Position   [3]float32        `json:"position"`
	Rotation   [3]float32        `json:"rotation,omitempty"`
	Scale      [3]float32        `json:"scale,omitempty"`
	Components []json.RawMessage `json:"components,omitempty"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type modelRendererDef struct {
	Type     string    `json:"type"`
	Mesh     string    `json:"mesh"`
	MeshSize []float32 `json:"meshSize,omitempty"`
	Color    string    `json:"color"`
}

type oscillateDef struct {
	Type              string     `json:"type"`
	Affects           []string   `json:"affects,omitempty"` // default: ["position"]
	Amplitude         [3]float32 `json:"amplitude"`
	Frequency         [3]float32 `json:"frequency"`
	PhaseShift        [3]float32 `json:"phaseShift,omitempty"`
	Bounce            [3]bool    `json:"bounce,omitempty"`
	Uniform           bool       `json:"uniform,omitempty"`
	LocalSpace        bool       `json:"localSpace,omitempty"`
	RandomizeOnStart  bool       `json:"randomizeOnStart,omitempty"`
	RandomizeOnChange bool       `json:"randomizeOnChange,omitempty"`
	UseSceneClock     bool       `json:"useSceneClock,omitempty"`
	StartValueAsBase  bool       `json:"startValueAsBase,omitempty"`
	BasePosition      [3]float32 `json:"basePosition,omitempty"`
	IgnorePause       bool       `json:"ignorePause,omitempty"`
	Target            string     `json:"target,omitempty"` // object name, resolved after load
}

type scriptDef struct {
	Type  string         `json:"type"`
	Name  string         `json:"name"`
	Props map[string]any `json:"props,omitempty"`
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Magenta":   rl.Magenta,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Gold":      rl.Gold,
}

var nameByColor map[rl.Color]string

func init() {
	nameByColor = make(map[rl.Color]string, len(colorByName))
	for name, c := range colorByName {
		nameByColor[c] = name
	}
}

func lookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.White
}

func lookupColorName(c rl.Color) string {
	if name, ok := nameByColor[c]; ok {
		return name
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func arr3(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

func channelsFromNames(names []string) components.Channel {
	var ch components.Channel
	for _, name := range names {
		switch name {
		case "position":
			ch |= components.ChannelPosition
		case "rotation":
			ch |= components.ChannelRotation
		case "scale":
			ch |= components.ChannelScale
		}
	}
	if ch == 0 {
		ch = components.ChannelPosition
	}
	return ch
}

func namesFromChannels(ch components.Channel) []string {
	var names []string
	if ch.Has(components.ChannelPosition) {
		names = append(names, "position")
	}
	if ch.Has(components.ChannelRotation) {
		names = append(names, "rotation")
	}
	if ch.Has(components.ChannelScale) {
		names = append(names, "scale")
	}
	return names
}

// --- Loading ---

// pendingTarget defers override resolution until every object exists, so a
// driver can name an object defined later in the file.
type pendingTarget struct {
	osc  *components.Oscillate
	name string
}

func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}

	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse scene: %w", err)
	}

	var pending []pendingTarget

	for _, objDef := range sf.Objects {
		g := engine.NewGameObject(objDef.Name)
		g.Tags = objDef.Tags
		g.Transform.Position = vec3(objDef.Position)
		g.Transform.Rotation = vec3(objDef.Rotation)

		// Default scale to 1 if zero
		if objDef.Scale == [3]float32{} {
			g.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
		} else {
			g.Transform.Scale = vec3(objDef.Scale)
		}

		for _, raw := range objDef.Components {
			var header componentHeader
			if err := json.Unmarshal(raw, &header); err != nil {
				continue
			}

			switch header.Type {
			case "ModelRenderer":
				w.loadModelRenderer(g, raw)
			case "Oscillate":
				pending = loadOscillate(g, raw, pending)
			case "Script":
				loadScript(g, raw)
			}
		}

		w.Scene.AddGameObject(g)
	}

	for _, p := range pending {
		if target := w.Scene.FindByName(p.name); target != nil {
			p.osc.Target.Set(target)
		}
	}

	return nil
}

func (w *World) loadModelRenderer(g *engine.GameObject, raw json.RawMessage) {
	var def modelRendererDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return
	}

	// Each mesh type needs enough size components; a def without them is
	// dropped rather than built from a zero model.
	var model rl.Model
	switch def.Mesh {
	case "cube":
		if len(def.MeshSize) < 3 {
			return
		}
		model = rl.LoadModelFromMesh(rl.GenMeshCube(def.MeshSize[0], def.MeshSize[1], def.MeshSize[2]))
	case "plane":
		if len(def.MeshSize) < 2 {
			return
		}
		model = rl.LoadModelFromMesh(rl.GenMeshPlane(def.MeshSize[0], def.MeshSize[1], 1, 1))
	case "sphere":
		if len(def.MeshSize) < 1 {
			return
		}
		model = rl.LoadModelFromMesh(rl.GenMeshSphere(def.MeshSize[0], 16, 16))
	default:
		return
	}

	renderer := components.NewModelRenderer(model, lookupColor(def.Color))
	renderer.MeshType = def.Mesh
	renderer.MeshSize = def.MeshSize
	g.AddComponent(renderer)
}

func loadOscillate(g *engine.GameObject, raw json.RawMessage, pending []pendingTarget) []pendingTarget {
	var def oscillateDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return pending
	}

	osc := components.NewOscillate()
	osc.Affects = channelsFromNames(def.Affects)
	osc.Amplitude = vec3(def.Amplitude)
	osc.Frequency = vec3(def.Frequency)
	osc.PhaseShift = vec3(def.PhaseShift)
	osc.BounceX = def.Bounce[0]
	osc.BounceY = def.Bounce[1]
	osc.BounceZ = def.Bounce[2]
	osc.Uniform = def.Uniform
	osc.LocalSpace = def.LocalSpace
	osc.RandomizeOnStart = def.RandomizeOnStart
	osc.RandomizeOnChange = def.RandomizeOnChange
	osc.UseSceneClock = def.UseSceneClock
	osc.StartValueAsBase = def.StartValueAsBase
	osc.BasePosition = vec3(def.BasePosition)
	osc.IgnorePause = def.IgnorePause
	g.AddComponent(osc)

	if def.Target != "" {
		pending = append(pending, pendingTarget{osc: osc, name: def.Target})
	}
	return pending
}

func loadScript(g *engine.GameObject, raw json.RawMessage) {
	var def scriptDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return
	}
	if comp := engine.CreateScript(def.Name, def.Props); comp != nil {
		g.AddComponent(comp)
	}
}

// --- Saving ---

func (w *World) SaveScene(path string) error {
	var sf SceneFile

	for _, g := range w.Scene.GameObjects {
		objDef := ObjectDef{
			Name:     g.Name,
			Tags:     g.Tags,
			Position: arr3(g.Transform.Position),
			Rotation: arr3(g.Transform.Rotation),
			Scale:    arr3(g.Transform.Scale),
		}

		for _, c := range g.Components() {
			if raw := w.serializeComponent(c); raw != nil {
				objDef.Components = append(objDef.Components, raw)
			}
		}

		sf.Objects = append(sf.Objects, objDef)
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}

	return nil
}

func (w *World) serializeComponent(c engine.Component) json.RawMessage {
	var def any

	switch comp := c.(type) {
	case *components.ModelRenderer:
		def = modelRendererDef{
			Type:     "ModelRenderer",
			Mesh:     comp.MeshType,
			MeshSize: comp.MeshSize,
			Color:    lookupColorName(comp.Color),
		}

	case *components.Oscillate:
		d := oscillateDef{
			Type:              "Oscillate",
			Affects:           namesFromChannels(comp.Affects),
			Amplitude:         arr3(comp.Amplitude),
			Frequency:         arr3(comp.Frequency),
			PhaseShift:        arr3(comp.PhaseShift),
			Bounce:            [3]bool{comp.BounceX, comp.BounceY, comp.BounceZ},
			Uniform:           comp.Uniform,
			LocalSpace:        comp.LocalSpace,
			RandomizeOnStart:  comp.RandomizeOnStart,
			RandomizeOnChange: comp.RandomizeOnChange,
			UseSceneClock:     comp.UseSceneClock,
			StartValueAsBase:  comp.StartValueAsBase,
			BasePosition:      arr3(comp.BasePosition),
			IgnorePause:       comp.IgnorePause,
		}
		if target := comp.Target.Get(w.Scene); target != nil {
			d.Target = target.Name
		}
		def = d

	default:
		// Try script registry
		if name, props, ok := engine.SerializeScript(c); ok {
			def = scriptDef{Type: "Script", Name: name, Props: props}
		} else {
			return nil
		}
	}

	data, err := json.Marshal(def)
	if err != nil {
		return nil
	}
	return data
}
