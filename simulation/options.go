package simulation

import (
	"fmt"

	"github.com/milk9111/kickabout/ecs/system"
	"github.com/milk9111/kickabout/prefabs"
)

type options struct {
	physics      system.Physics
	scriptName   string
	scriptSource []byte
}

// Option configures a Simulation.
type Option func(*options)

// WithPhysics replaces the Chipmunk physics layer, typically with a fake in
// tests.
func WithPhysics(p system.Physics) Option {
	return func(o *options) {
		o.physics = p
	}
}

// WithScript drives actors from a prefab drill script.
func WithScript(name string) Option {
	return func(o *options) {
		o.scriptName = name
		o.scriptSource = nil
	}
}

// WithScriptSource drives actors from an in-memory tengo script.
func WithScriptSource(name string, src []byte) Option {
	return func(o *options) {
		o.scriptName = name
		o.scriptSource = src
	}
}

func (o *options) script(physics system.Physics) (*system.ScriptInputSystem, error) {
	if o.scriptName == "" {
		return nil, nil
	}
	src := o.scriptSource
	if src == nil {
		data, err := prefabs.LoadScript(o.scriptName)
		if err != nil {
			return nil, fmt.Errorf("simulation: load script %s: %w", o.scriptName, err)
		}
		src = data
	}
	return system.NewScriptInputSystem(o.scriptName, src, physics)
}
