package system

import (
	"github.com/milk9111/kickabout/ecs"
	"github.com/milk9111/kickabout/ecs/component"
)

// AnimationSystem advances playing clips by the tick delta.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.AnimationComponent.Kind(), func(e ecs.Entity, anim *component.Animation) {
		if !anim.Playing {
			return
		}

		def, ok := anim.Defs[anim.Current]
		if !ok || def.FrameCount <= 0 || def.FPS <= 0 {
			return
		}

		frameMs := int64(1000.0 / def.FPS)
		if frameMs < 1 {
			frameMs = 1
		}

		anim.FrameTimer += w.Delta()
		for anim.FrameTimer >= frameMs {
			anim.FrameTimer -= frameMs
			anim.Frame++
			if anim.Frame < def.FrameCount {
				continue
			}
			if def.Loop {
				anim.Frame = 0
				continue
			}
			anim.Frame = def.FrameCount - 1
			anim.Playing = false
			anim.FrameTimer = 0
			break
		}
	})
}
