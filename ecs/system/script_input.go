package system

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/kickabout/common"
	"github.com/milk9111/kickabout/ecs"
	"github.com/milk9111/kickabout/ecs/component"
)

const scriptDispatch = `
update(__engine, __state)
`

// ScriptInputSystem drives actors from a tengo script instead of a keyboard.
// The script defines update(engine, state); it runs once per tick before the
// rest of the pipeline, and the actions it queues are consumed the same tick.
type ScriptInputSystem struct {
	name     string
	compiled *tengo.Compiled
	state    *tengo.Map
	physics  Physics
	failed   bool
}

// NewScriptInputSystem compiles src. The physics layer may be nil; position
// queries then fall back to transforms.
func NewScriptInputSystem(name string, src []byte, physics Physics) (*ScriptInputSystem, error) {
	script := tengo.NewScript([]byte(string(src) + "\n" + scriptDispatch))
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script %s: compile: %w", name, err)
	}

	return &ScriptInputSystem{
		name:     name,
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
		physics:  physics,
	}, nil
}

// Failed reports whether the script hit a runtime error and was disabled.
func (s *ScriptInputSystem) Failed() bool {
	return s != nil && s.failed
}

func (s *ScriptInputSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.compiled == nil || s.failed {
		return
	}

	if err := s.compiled.Set("__engine", s.engine(w)); err != nil {
		s.fail(err)
		return
	}
	if err := s.compiled.Set("__state", s.state); err != nil {
		s.fail(err)
		return
	}
	if err := s.compiled.Run(); err != nil {
		s.fail(err)
	}
}

func (s *ScriptInputSystem) fail(err error) {
	s.failed = true
	log.Printf("script %s: disabled after error: %v", s.name, err)
}

func (s *ScriptInputSystem) engine(w *ecs.World) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	signal := func(name string, build func(args []tengo.Object) (component.Action, bool)) {
		values[name] = &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) < 1 {
				return tengo.FalseValue, nil
			}
			e, ok := ActorByName(w, objectAsString(args[0]))
			if !ok {
				return tengo.FalseValue, nil
			}
			action, ok := build(args[1:])
			if !ok {
				return tengo.FalseValue, nil
			}
			return boolObject(ApplySignal(w, e, action)), nil
		}}
	}

	withPoint := func(mk func(common.Vec2) component.Action) func([]tengo.Object) (component.Action, bool) {
		return func(args []tengo.Object) (component.Action, bool) {
			if len(args) < 2 {
				return component.Action{}, false
			}
			x, okX := objectAsFloat(args[0])
			y, okY := objectAsFloat(args[1])
			if !okX || !okY {
				return component.Action{}, false
			}
			return mk(common.V(x, y)), true
		}
	}
	plain := func(mk func() component.Action) func([]tengo.Object) (component.Action, bool) {
		return func([]tengo.Object) (component.Action, bool) { return mk(), true }
	}

	signal("move_to", withPoint(component.MoveTo))
	signal("face_pointer", withPoint(component.FacePointer))
	signal("shoot", plain(component.ShootInstant))
	signal("toggle_aim", plain(component.ToggleAim))
	signal("fire", plain(component.FireAimed))
	signal("recenter", plain(component.Recenter))

	values["position"] = &tengo.UserFunction{Name: "position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.UndefinedValue, nil
		}
		e, ok := ActorByName(w, objectAsString(args[0]))
		if !ok {
			return tengo.UndefinedValue, nil
		}
		return vecObject(s.positionOf(w, e)), nil
	}}

	values["ball_position"] = &tengo.UserFunction{Name: "ball_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		ball, ok := w.First(component.BallComponent.Kind())
		if !ok {
			return tengo.UndefinedValue, nil
		}
		return vecObject(s.positionOf(w, ball)), nil
	}}

	values["owner"] = &tengo.UserFunction{Name: "owner", Value: func(args ...tengo.Object) (tengo.Object, error) {
		ball, ok := w.First(component.BallComponent.Kind())
		if !ok {
			return &tengo.String{Value: ""}, nil
		}
		owner, ok := Owner(w, ball)
		if !ok {
			return &tengo.String{Value: ""}, nil
		}
		actor, _ := ecs.Get(w, owner, component.ActorComponent.Kind())
		return &tengo.String{Value: actor.Name}, nil
	}}

	values["score"] = &tengo.UserFunction{Name: "score", Value: func(args ...tengo.Object) (tengo.Object, error) {
		left, right := 0, 0
		if e, ok := w.First(component.MatchStateComponent.Kind()); ok {
			if state, ok := ecs.Get(w, e, component.MatchStateComponent.Kind()); ok {
				left, right = state.ScoreLeft, state.ScoreRight
			}
		}
		return &tengo.Array{Value: []tengo.Object{&tengo.Int{Value: int64(left)}, &tengo.Int{Value: int64(right)}}}, nil
	}}

	values["now"] = &tengo.UserFunction{Name: "now", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: w.Now()}, nil
	}}

	values["tick"] = &tengo.UserFunction{Name: "tick", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(w.Ticks())}, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func (s *ScriptInputSystem) positionOf(w *ecs.World, e ecs.Entity) common.Vec2 {
	if s.physics != nil {
		if pos, ok := s.physics.Position(e); ok {
			return pos
		}
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		return t.Position()
	}
	return common.Vec2{}
}

func vecObject(v common.Vec2) tengo.Object {
	return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: v.X}, &tengo.Float{Value: v.Y}}}
}

func boolObject(b bool) tengo.Object {
	if b {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}

func objectAsFloat(obj tengo.Object) (float64, bool) {
	switch v := obj.(type) {
	case *tengo.Float:
		return v.Value, true
	case *tengo.Int:
		return float64(v.Value), true
	default:
		return 0, false
	}
}
