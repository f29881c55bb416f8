package engine

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if obj.UID == 0 {
		t.Error("UID should not be 0")
	}

	if obj.Transform.Scale != (rl.Vector3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("Scale should default to 1, got %v", obj.Transform.Scale)
	}
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	obj1 := NewGameObject("First")
	obj2 := NewGameObject("Second")
	obj3 := NewGameObject("Third")

	if obj1.UID == obj2.UID || obj2.UID == obj3.UID || obj1.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Tags = []string{"driver", "decor"}

	if !obj.HasTag("driver") {
		t.Error("HasTag should return true for existing tag")
	}

	if obj.HasTag("player") {
		t.Error("HasTag should return false for non-existent tag")
	}

	obj2 := NewGameObject("Test2")
	if obj2.HasTag("anything") {
		t.Error("HasTag should return false when Tags is nil/empty")
	}
}

func TestGameObjectParentChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")

	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("Child.Parent should be set")
	}

	if len(parent.Children) != 1 || parent.Children[0] != child {
		t.Error("Child not added to parent's Children slice")
	}

	parent.RemoveChild(child)

	if len(parent.Children) != 0 {
		t.Errorf("Expected 0 children after removal, got %d", len(parent.Children))
	}

	if child.Parent != nil {
		t.Error("Removed child should have nil parent")
	}
}

func TestWorldPositionWithParent(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Position = rl.Vector3{X: 10, Y: 0, Z: 0}
	parent.Transform.Scale = rl.Vector3{X: 2, Y: 2, Z: 2}

	child := NewGameObject("Child")
	child.Transform.Position = rl.Vector3{X: 1, Y: 0, Z: 0}
	parent.AddChild(child)

	wp := child.WorldPosition()
	if !almostEqual(wp.X, 12) {
		t.Errorf("Expected world X 12 (10 + 1*2), got %f", wp.X)
	}
}

func TestWorldRotationAndScaleCompose(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Rotation = rl.Vector3{Y: 30}
	parent.Transform.Scale = rl.Vector3{X: 2, Y: 3, Z: 4}

	child := NewGameObject("Child")
	child.Transform.Rotation = rl.Vector3{Y: 15}
	child.Transform.Scale = rl.Vector3{X: 0.5, Y: 1, Z: 2}
	parent.AddChild(child)

	wr := child.WorldRotation()
	if !almostEqual(wr.Y, 45) {
		t.Errorf("Expected world rotation Y 45, got %f", wr.Y)
	}

	ws := child.WorldScale()
	if !almostEqual(ws.X, 1) || !almostEqual(ws.Y, 3) || !almostEqual(ws.Z, 8) {
		t.Errorf("Expected world scale (1, 3, 8), got %v", ws)
	}
}

func TestSetWorldPositionRoundTrip(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Position = rl.Vector3{X: 1, Y: 2, Z: 3}
	parent.Transform.Rotation = rl.Vector3{Y: 90}
	parent.Transform.Scale = rl.Vector3{X: 2, Y: 2, Z: 2}

	child := NewGameObject("Child")
	parent.AddChild(child)

	want := rl.Vector3{X: 5, Y: 6, Z: 7}
	child.SetWorldPosition(want)
	got := child.WorldPosition()

	if !almostEqual(got.X, want.X) || !almostEqual(got.Y, want.Y) || !almostEqual(got.Z, want.Z) {
		t.Errorf("SetWorldPosition round trip failed: want %v, got %v", want, got)
	}
}

func TestSetWorldPositionNoParent(t *testing.T) {
	obj := NewGameObject("Solo")
	obj.SetWorldPosition(rl.Vector3{X: 3, Y: 4, Z: 5})

	if obj.Transform.Position != (rl.Vector3{X: 3, Y: 4, Z: 5}) {
		t.Errorf("Expected direct local write without parent, got %v", obj.Transform.Position)
	}
}

func TestSetWorldRotationRoundTrip(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Rotation = rl.Vector3{X: 10, Y: 20, Z: 30}

	child := NewGameObject("Child")
	parent.AddChild(child)

	want := rl.Vector3{X: 15, Y: 50, Z: 30}
	child.SetWorldRotation(want)
	got := child.WorldRotation()

	if !almostEqual(got.X, want.X) || !almostEqual(got.Y, want.Y) || !almostEqual(got.Z, want.Z) {
		t.Errorf("SetWorldRotation round trip failed: want %v, got %v", want, got)
	}
}

func TestSetWorldScaleRoundTrip(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Scale = rl.Vector3{X: 2, Y: 4, Z: 8}

	child := NewGameObject("Child")
	parent.AddChild(child)

	want := rl.Vector3{X: 1, Y: 1, Z: 2}
	child.SetWorldScale(want)
	got := child.WorldScale()

	if !almostEqual(got.X, want.X) || !almostEqual(got.Y, want.Y) || !almostEqual(got.Z, want.Z) {
		t.Errorf("SetWorldScale round trip failed: want %v, got %v", want, got)
	}
}

// counterComponent records lifecycle calls for Start/Update tests.
type counterComponent struct {
	BaseComponent
	starts  int
	updates int
}

func (c *counterComponent) Start() { c.starts++ }

func (c *counterComponent) Update(deltaTime float32) { c.updates++ }

func TestStartRunsOnce(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &counterComponent{}
	obj.AddComponent(comp)

	obj.Start()
	obj.Start()

	if comp.starts != 1 {
		t.Errorf("Start should run components once, got %d", comp.starts)
	}
}

func TestInactiveObjectSkipsUpdate(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &counterComponent{}
	obj.AddComponent(comp)

	obj.Active = false
	obj.Update(0.016)

	if comp.updates != 0 {
		t.Errorf("Inactive object must not update components, got %d", comp.updates)
	}
}

func TestGetComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &counterComponent{}
	obj.AddComponent(comp)

	if GetComponent[*counterComponent](obj) != comp {
		t.Error("GetComponent should find the attached component")
	}

	if comp.GetGameObject() != obj {
		t.Error("AddComponent should set the owning GameObject")
	}
}
