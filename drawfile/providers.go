package drawfile

import (
	"fmt"
	"math"

	"github.com/gogpu/gldraw"
	"github.com/gogpu/gldraw/uniforms"
)

// ProviderFactory builds a provider from the args of a uniform entry.
type ProviderFactory func(args []float64) (gldraw.Provider, error)

// Providers maps the provider names usable in pass files to their
// factories. Callers may add their own before loading passes.
var Providers = map[string]ProviderFactory{
	"time":         noArgs(uniforms.Time),
	"tick":         noArgs(uniforms.Tick),
	"viewport":     noArgs(uniforms.Viewport),
	"aspect":       noArgs(uniforms.Aspect),
	"orthographic": noArgs(func() gldraw.Provider { return uniforms.Orthographic() }),
	"perspective":  perspective,
	"rotation_z": func(args []float64) (gldraw.Provider, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("rotation_z takes [speed], got %v", args)
		}
		return uniforms.RotationZ(float32(args[0])), nil
	},
	"oscillate": func(args []float64) (gldraw.Provider, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("oscillate takes [frequency], got %v", args)
		}
		return uniforms.Oscillate(float32(args[0])), nil
	},
}

func noArgs(f func() gldraw.Provider) ProviderFactory {
	return func(args []float64) (gldraw.Provider, error) {
		if len(args) != 0 {
			return nil, fmt.Errorf("takes no args, got %v", args)
		}
		return f(), nil
	}
}

// perspective takes [fovy_degrees, near, far] and defaults to 60, 0.1, 100.
func perspective(args []float64) (gldraw.Provider, error) {
	switch len(args) {
	case 0:
		args = []float64{60, 0.1, 100}
	case 3:
	default:
		return nil, fmt.Errorf("perspective takes [fovy_degrees, near, far], got %v", args)
	}
	fovy, near, far := args[0], args[1], args[2]
	if fovy <= 0 || fovy >= 180 || near <= 0 || far <= near {
		return nil, fmt.Errorf("perspective: bad parameters %v", args)
	}
	return uniforms.Perspective(float32(fovy*math.Pi/180), float32(near), float32(far)), nil
}
