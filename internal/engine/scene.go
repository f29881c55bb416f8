package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject

	byUID  map[uint64]*GameObject
	clock  float32
	paused bool

	// OnPauseChanged fires whenever SetPaused flips the pause state.
	OnPauseChanged EventWithArg[bool]
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		byUID:       make(map[uint64]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.byUID[g.UID] = g
}

func (s *Scene) RemoveGameObject(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			delete(s.byUID, g.UID)
			g.Scene = nil
			return
		}
	}
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.byUID[uid]
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

// Update advances the shared scene clock and every active GameObject.
// The clock keeps running while paused so components that opt out of the
// pause state still animate; pause-aware components query Paused themselves.
func (s *Scene) Update(deltaTime float32) {
	s.clock += deltaTime
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}

// Clock returns seconds accumulated since the first Update, shared by every
// component in the scene.
func (s *Scene) Clock() float32 {
	return s.clock
}

func (s *Scene) Paused() bool {
	return s.paused
}

func (s *Scene) SetPaused(paused bool) {
	if s.paused == paused {
		return
	}
	s.paused = paused
	s.OnPauseChanged.Invoke(paused)
}
