package components

import (
	"math"
	"math/rand"
	"sway3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Channel selects which transform channels an Oscillate instance drives.
type Channel uint8

const (
	ChannelPosition Channel = 1 << iota
	ChannelRotation
	ChannelScale
)

func (c Channel) Has(ch Channel) bool {
	return c&ch != 0
}

// Oscillate drives a transform channel with independent sine/cosine waves on
// each axis: X and Z use cosine, Y uses sine. The output swings around
// BasePosition and is written every frame, after the rest of the scene has
// updated, so it wins over anything written earlier in the same frame.
//
// Enabling more than one channel is allowed but discouraged: all enabled
// channels receive the same computed vector, not independent signals.
type Oscillate struct {
	engine.BaseComponent

	Affects    Channel
	Amplitude  rl.Vector3
	Frequency  rl.Vector3
	PhaseShift rl.Vector3

	// Per-axis rectification: keeps that axis on one side of the base value.
	// The side follows the sign of the authored amplitude.
	BounceX bool
	BounceY bool
	BounceZ bool

	// Uniform mirrors the X result into Y and Z, whatever their own
	// amplitude/frequency say. Useful for isotropic scale pulses.
	Uniform bool

	// LocalSpace selects the local transform as the write target; otherwise
	// world space. Scale is always written locally.
	LocalSpace bool

	RandomizeOnStart  bool
	RandomizeOnChange bool

	// UseSceneClock replaces the private phase accumulators with the shared
	// scene clock on all three axes, so equally-configured instances stay in
	// lockstep. Randomization is disabled in this mode.
	UseSceneClock bool

	// StartValueAsBase captures BasePosition from the target's current
	// channel value at Start. With multiple channels enabled only the
	// highest-priority one is read: Position, then Rotation, then Scale.
	StartValueAsBase bool

	BasePosition rl.Vector3

	// IgnorePause keeps the oscillator running while the scene is paused.
	IgnorePause bool

	// Target optionally redirects the output to another object's transform.
	// When unset the owning object is driven.
	Target engine.GameObjectRef

	// Rand supplies unit-interval randoms for phase randomization.
	// Nil means math/rand.
	Rand func() float32

	index         rl.Vector3 // per-axis phase, seconds (or clock units)
	lastAmplitude rl.Vector3
	lastFrequency rl.Vector3
}

// NewOscillate returns an oscillator that sways the owning object's position
// on all three axes with unit amplitude and frequency.
func NewOscillate() *Oscillate {
	return &Oscillate{
		Affects:   ChannelPosition,
		Amplitude: rl.Vector3{X: 1, Y: 1, Z: 1},
		Frequency: rl.Vector3{X: 1, Y: 1, Z: 1},
	}
}

func (o *Oscillate) Start() {
	if o.StartValueAsBase {
		o.BasePosition = o.readBase()
	}
	if o.RandomizeOnStart {
		o.RandomizeIfChanged(true)
	}
}

// readBase picks the starting channel value in priority order
// Position > Rotation > Scale.
func (o *Oscillate) readBase() rl.Vector3 {
	target := o.target()
	if target == nil {
		return o.BasePosition
	}
	switch {
	case o.Affects.Has(ChannelPosition):
		if o.LocalSpace {
			return target.Transform.Position
		}
		return target.WorldPosition()
	case o.Affects.Has(ChannelRotation):
		if o.LocalSpace {
			return target.Transform.Rotation
		}
		return target.WorldRotation()
	case o.Affects.Has(ChannelScale):
		return target.Transform.Scale
	}
	return o.BasePosition
}

// Update satisfies engine.Component: it feeds Advance from the owning
// scene's shared clock and pause state.
func (o *Oscillate) Update(deltaTime float32) {
	var clock float32
	var paused bool
	if g := o.GetGameObject(); g != nil && g.Scene != nil {
		clock = g.Scene.Clock()
		paused = g.Scene.Paused()
	}
	o.Advance(deltaTime, clock, paused)
}

// Advance runs one frame of the oscillator: advance phase, evaluate the
// waveform per axis, write the result to every enabled channel of the
// target. While paused (and not IgnorePause) nothing moves, not even phase.
func (o *Oscillate) Advance(deltaTime, clockValue float32, paused bool) {
	if paused && !o.IgnorePause {
		return
	}

	if o.UseSceneClock {
		o.index = rl.Vector3{X: clockValue, Y: clockValue, Z: clockValue}
	} else {
		if o.RandomizeOnChange {
			o.RandomizeIfChanged(false)
		}
		o.index.X += deltaTime
		o.index.Y += deltaTime
		o.index.Z += deltaTime
	}

	pos := o.BasePosition
	pos.X = axisValue(math.Cos, o.BasePosition.X, o.Amplitude.X, o.Frequency.X, o.index.X, o.PhaseShift.X, o.BounceX)
	if o.Uniform {
		pos.Y = pos.X
		pos.Z = pos.X
	} else {
		pos.Y = axisValue(math.Sin, o.BasePosition.Y, o.Amplitude.Y, o.Frequency.Y, o.index.Y, o.PhaseShift.Y, o.BounceY)
		pos.Z = axisValue(math.Cos, o.BasePosition.Z, o.Amplitude.Z, o.Frequency.Z, o.index.Z, o.PhaseShift.Z, o.BounceZ)
	}

	o.write(pos)
}

// axisValue evaluates one axis. A zero amplitude or frequency disables the
// axis entirely: the output sits at the base value, with no bounce floor.
func axisValue(wave func(float64) float64, base, amp, freq, index, shift float32, bounce bool) float32 {
	if amp == 0 || freq == 0 {
		return base
	}
	raw := amp * float32(wave(float64(freq*(index+shift))))
	if bounce {
		mag := float32(math.Abs(float64(raw)))
		if amp >= 0 {
			return base + mag
		}
		return base - mag
	}
	return base + raw
}

func (o *Oscillate) write(pos rl.Vector3) {
	target := o.target()
	if target == nil {
		return
	}
	if o.Affects.Has(ChannelPosition) {
		if o.LocalSpace {
			target.Transform.Position = pos
		} else {
			target.SetWorldPosition(pos)
		}
	}
	if o.Affects.Has(ChannelRotation) {
		if o.LocalSpace {
			target.Transform.Rotation = pos
		} else {
			target.SetWorldRotation(pos)
		}
	}
	if o.Affects.Has(ChannelScale) {
		target.Transform.Scale = pos
	}
}

// target resolves the override reference, falling back to the owner.
func (o *Oscillate) target() *engine.GameObject {
	g := o.GetGameObject()
	if o.Target.IsValid() && g != nil {
		if override := o.Target.Get(g.Scene); override != nil {
			return override
		}
	}
	return g
}

// Randomize re-draws each axis phase uniformly from
// [0, 2*|frequency*1000|). No-op in scene-clock mode, where phase is not
// owned by this instance.
func (o *Oscillate) Randomize() {
	if o.UseSceneClock {
		return
	}
	o.index.X = o.randPhase(o.Frequency.X)
	o.index.Y = o.randPhase(o.Frequency.Y)
	o.index.Z = o.randPhase(o.Frequency.Z)
}

func (o *Oscillate) randPhase(freq float32) float32 {
	r := o.Rand
	if r == nil {
		r = rand.Float32
	}
	return r() * 2 * float32(math.Abs(float64(freq*1000)))
}

// RandomizeIfChanged randomizes the phase when amplitude or frequency differ
// from the last-seen values, or when forced. The comparison baseline is
// refreshed either way, so an unchanged frame stays a no-op.
func (o *Oscillate) RandomizeIfChanged(force bool) {
	if force || o.Amplitude != o.lastAmplitude || o.Frequency != o.lastFrequency {
		o.Randomize()
	}
	o.lastAmplitude = o.Amplitude
	o.lastFrequency = o.Frequency
}
