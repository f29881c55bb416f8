package game

import (
	"log"
	"sway3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	World     *world.World
	Inspector *Inspector

	camera rl.Camera3D
}

func New() *Game {
	return &Game{
		World: world.New(),
	}
}

// Run opens the window and drives the frame loop. scenePath may be empty, in
// which case the built-in playground scene is used.
func (g *Game) Run(scenePath string) {
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(1280, 720, "sway3d - oscillator playground")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)

	g.World.Initialize()
	defer g.World.Unload()

	if scenePath != "" {
		if err := g.World.LoadScene(scenePath); err != nil {
			log.Printf("load scene %s: %v (falling back to playground)", scenePath, err)
			g.World.BuildPlayground()
		}
	} else {
		g.World.BuildPlayground()
	}

	g.World.Scene.OnPauseChanged.AddListener(func(paused bool) {
		if paused {
			log.Println("scene paused")
		} else {
			log.Println("scene resumed")
		}
	})

	g.World.Start()
	g.Inspector = NewInspector(g.World)

	g.camera = rl.Camera3D{
		Position:   rl.Vector3{X: 16, Y: 12, Z: 16},
		Target:     rl.Vector3{Y: 2},
		Up:         rl.Vector3{Y: 1},
		Fovy:       50,
		Projection: rl.CameraPerspective,
	}

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

func (g *Game) Update() {
	deltaTime := rl.GetFrameTime()

	if rl.IsKeyPressed(rl.KeyP) {
		g.World.SetPaused(!g.World.Paused())
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.Inspector.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyF5) {
		if err := g.World.SaveScene("assets/scenes/saved.json"); err != nil {
			log.Printf("save scene: %v", err)
		} else {
			log.Println("scene saved to assets/scenes/saved.json")
		}
	}

	rl.UpdateCamera(&g.camera, rl.CameraOrbital)

	// Simulation first, oscillators included: they run as scene components
	// and overwrite transforms written earlier this frame.
	g.World.Update(deltaTime)
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	rl.BeginMode3D(g.camera)
	g.World.Draw()
	rl.EndMode3D()

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	rl.DrawText("P pause | Tab inspector | F5 save scene", 10, 10, 20, rl.DarkGray)
	rl.DrawFPS(10, 35)

	if g.World.Paused() {
		rl.DrawText("PAUSED", 10, 60, 20, rl.Orange)
	}

	g.Inspector.Draw()
}
