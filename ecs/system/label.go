package system

import (
	"fmt"
	"math"

	"github.com/milk9111/kickabout/ecs"
	"github.com/milk9111/kickabout/ecs/component"
)

// LabelSystem refreshes the debug caption of every visible labeled entity.
type LabelSystem struct{}

func NewLabelSystem() *LabelSystem {
	return &LabelSystem{}
}

func (s *LabelSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.LabelComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, label *component.Label, t *component.Transform) {
		if !label.Visible {
			return
		}
		label.Text = LabelText(label.Name, t.X, t.Y)
	})
}

// LabelText formats a position caption with rounded coordinates.
func LabelText(name string, x, y float64) string {
	coords := fmt.Sprintf("X:%d, Y:%d", int(math.Round(x)), int(math.Round(y)))
	if name == "" {
		return coords
	}
	return name + ": " + coords
}
