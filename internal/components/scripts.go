package components

import (
	"sway3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterScriptWithMetadata("Oscillate", oscillateFactory, oscillateSerializer, oscillateApplier,
		map[string]string{"target": "GameObjectRef"})
	engine.RegisterScript("Spinner", spinnerFactory, spinnerSerializer)
}

func propFloat(props map[string]any, key string, fallback float32) float32 {
	if v, ok := props[key].(float64); ok {
		return float32(v)
	}
	return fallback
}

func propBool(props map[string]any, key string, fallback bool) bool {
	if v, ok := props[key].(bool); ok {
		return v
	}
	return fallback
}

func propVec3(props map[string]any, key string, fallback rl.Vector3) rl.Vector3 {
	arr, ok := props[key].([]any)
	if !ok || len(arr) < 3 {
		return fallback
	}
	out := fallback
	if v, ok := arr[0].(float64); ok {
		out.X = float32(v)
	}
	if v, ok := arr[1].(float64); ok {
		out.Y = float32(v)
	}
	if v, ok := arr[2].(float64); ok {
		out.Z = float32(v)
	}
	return out
}

func propChannels(props map[string]any, key string, fallback Channel) Channel {
	arr, ok := props[key].([]any)
	if !ok {
		return fallback
	}
	var ch Channel
	for _, item := range arr {
		switch item {
		case "position":
			ch |= ChannelPosition
		case "rotation":
			ch |= ChannelRotation
		case "scale":
			ch |= ChannelScale
		}
	}
	if ch == 0 {
		return fallback
	}
	return ch
}

func channelNames(ch Channel) []any {
	var names []any
	if ch.Has(ChannelPosition) {
		names = append(names, "position")
	}
	if ch.Has(ChannelRotation) {
		names = append(names, "rotation")
	}
	if ch.Has(ChannelScale) {
		names = append(names, "scale")
	}
	return names
}

func oscillateFactory(props map[string]any) engine.Component {
	o := NewOscillate()
	o.Affects = propChannels(props, "affects", o.Affects)
	o.Amplitude = propVec3(props, "amplitude", o.Amplitude)
	o.Frequency = propVec3(props, "frequency", o.Frequency)
	o.PhaseShift = propVec3(props, "phaseShift", o.PhaseShift)
	o.BounceX = propBool(props, "bounceX", false)
	o.BounceY = propBool(props, "bounceY", false)
	o.BounceZ = propBool(props, "bounceZ", false)
	o.Uniform = propBool(props, "uniform", false)
	o.LocalSpace = propBool(props, "localSpace", false)
	o.RandomizeOnStart = propBool(props, "randomizeOnStart", false)
	o.RandomizeOnChange = propBool(props, "randomizeOnChange", false)
	o.UseSceneClock = propBool(props, "useSceneClock", false)
	o.StartValueAsBase = propBool(props, "startValueAsBase", false)
	o.BasePosition = propVec3(props, "basePosition", rl.Vector3{})
	o.IgnorePause = propBool(props, "ignorePause", false)
	return o
}

func oscillateSerializer(c engine.Component) map[string]any {
	o, ok := c.(*Oscillate)
	if !ok {
		return nil
	}
	return map[string]any{
		"affects":           channelNames(o.Affects),
		"amplitude":         []any{float64(o.Amplitude.X), float64(o.Amplitude.Y), float64(o.Amplitude.Z)},
		"frequency":         []any{float64(o.Frequency.X), float64(o.Frequency.Y), float64(o.Frequency.Z)},
		"phaseShift":        []any{float64(o.PhaseShift.X), float64(o.PhaseShift.Y), float64(o.PhaseShift.Z)},
		"bounceX":           o.BounceX,
		"bounceY":           o.BounceY,
		"bounceZ":           o.BounceZ,
		"uniform":           o.Uniform,
		"localSpace":        o.LocalSpace,
		"randomizeOnStart":  o.RandomizeOnStart,
		"randomizeOnChange": o.RandomizeOnChange,
		"useSceneClock":     o.UseSceneClock,
		"startValueAsBase":  o.StartValueAsBase,
		"basePosition":      []any{float64(o.BasePosition.X), float64(o.BasePosition.Y), float64(o.BasePosition.Z)},
		"ignorePause":       o.IgnorePause,
	}
}

func oscillateApplier(c engine.Component, propName string, value any) bool {
	o, ok := c.(*Oscillate)
	if !ok {
		return false
	}
	if v, ok := value.(bool); ok {
		switch propName {
		case "bounceX":
			o.BounceX = v
		case "bounceY":
			o.BounceY = v
		case "bounceZ":
			o.BounceZ = v
		case "uniform":
			o.Uniform = v
		case "localSpace":
			o.LocalSpace = v
		case "ignorePause":
			o.IgnorePause = v
		default:
			return false
		}
		return true
	}
	v, ok := value.(float64)
	if !ok {
		return false
	}
	switch propName {
	case "amplitudeX":
		o.Amplitude.X = float32(v)
	case "amplitudeY":
		o.Amplitude.Y = float32(v)
	case "amplitudeZ":
		o.Amplitude.Z = float32(v)
	case "frequencyX":
		o.Frequency.X = float32(v)
	case "frequencyY":
		o.Frequency.Y = float32(v)
	case "frequencyZ":
		o.Frequency.Z = float32(v)
	default:
		return false
	}
	return true
}

func spinnerFactory(props map[string]any) engine.Component {
	return &Spinner{Speed: propFloat(props, "speed", 90)}
}

func spinnerSerializer(c engine.Component) map[string]any {
	s, ok := c.(*Spinner)
	if !ok {
		return nil
	}
	return map[string]any{
		"speed": float64(s.Speed),
	}
}
