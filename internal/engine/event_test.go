package engine

import "testing"

func TestEventInvoke(t *testing.T) {
	var e Event
	count := 0

	e.AddListener(func() { count++ })
	e.AddListener(func() { count++ })
	e.AddListener(nil) // ignored

	if e.ListenerCount() != 2 {
		t.Errorf("Expected 2 listeners, got %d", e.ListenerCount())
	}

	e.Invoke()
	if count != 2 {
		t.Errorf("Expected both listeners invoked, got %d", count)
	}

	e.RemoveAllListeners()
	e.Invoke()
	if count != 2 {
		t.Error("Cleared event must not invoke listeners")
	}
}

func TestEventWithArg(t *testing.T) {
	var e EventWithArg[int]
	var got []int

	e.AddListener(func(v int) { got = append(got, v) })
	e.Invoke(7)
	e.Invoke(9)

	if len(got) != 2 || got[0] != 7 || got[1] != 9 {
		t.Errorf("Expected [7 9], got %v", got)
	}
}
