package gldraw

// Provider computes a uniform value for a frame. Command.Draw calls Compute
// once per bound uniform per invocation.
type Provider interface {
	Compute(env FrameEnvironment) Value
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(env FrameEnvironment) Value

// Compute calls f(env).
func (f ProviderFunc) Compute(env FrameEnvironment) Value { return f(env) }

type constProvider struct{ v Value }

func (c constProvider) Compute(FrameEnvironment) Value { return c.v }

// Const returns a provider that always yields v.
func Const(v Value) Provider { return constProvider{v} }
