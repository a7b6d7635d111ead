package system

import (
	"testing"

	"github.com/milk9111/kickabout/common"
	"github.com/milk9111/kickabout/ecs/component"
)

func TestAnimationFor(t *testing.T) {
	tests := []struct {
		name string
		dir  common.Vec2
		want component.AnimationID
	}{
		{"right", common.V(1, 0), component.AnimWalkRight},
		{"left", common.V(-1, 0), component.AnimWalkLeft},
		{"down", common.V(0, 1), component.AnimWalkDown},
		{"up", common.V(0, -1), component.AnimWalkUp},
		{"zero_defaults_down", common.Vec2{}, component.AnimWalkDown},
		{"mostly_vertical_down", common.V(0.3, 0.95), component.AnimWalkDown},
		{"mostly_vertical_up", common.V(-0.3, -0.95), component.AnimWalkUp},
		{"diagonal_right", common.V(0.5, -0.8), component.AnimWalkRight},
		{"raw_velocity_is_normalized", common.V(200, 0), component.AnimWalkRight},
		{"raw_steep_velocity", common.V(-100, -300), component.AnimWalkUp},
		{"raw_shallow_velocity", common.V(-300, 100), component.AnimWalkLeft},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := AnimationFor(tc.dir); got != tc.want {
				t.Fatalf("AnimationFor(%v) = %s, want %s", tc.dir, got, tc.want)
			}
		})
	}
}

func TestAnimationForThreshold(t *testing.T) {
	dir := common.V(0.6, 0.8)
	if got := AnimationForThreshold(dir, 0.4); got != component.AnimWalkRight {
		t.Fatalf("expected walk_right at threshold 0.4, got %s", got)
	}
	if got := AnimationForThreshold(dir, 0.7); got != component.AnimWalkDown {
		t.Fatalf("expected walk_down at threshold 0.7, got %s", got)
	}
}
