package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/kickabout/common"
	"gopkg.in/yaml.v3"
)

// MatchFile is the default match prefab.
const MatchFile = "match.yaml"

var (
	ErrNoActors   = errors.New("prefabs: match has no actors")
	ErrNoBall     = errors.New("prefabs: match has no ball")
	ErrBadSide    = errors.New("prefabs: goal side must be left or right")
	ErrBadField   = errors.New("prefabs: field size must be positive")
	ErrDupActor   = errors.New("prefabs: duplicate actor name")
	ErrBadShotMod = errors.New("prefabs: unknown shot mode")
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// MatchSpec describes one match: field, actors, ball, goals and tuning.
type MatchSpec struct {
	Name      string        `yaml:"name"`
	Field     FieldSpec     `yaml:"field"`
	RoundMs   int64         `yaml:"round_ms"`
	Tuning    TuningSpec    `yaml:"tuning"`
	Shot      ShotSpec      `yaml:"shot"`
	Animation AnimationSpec `yaml:"animation"`
	Actors    []ActorSpec   `yaml:"actors"`
	Ball      *BallSpec     `yaml:"ball"`
	Goals     []GoalSpec    `yaml:"goals"`
}

func LoadMatchSpec(filename string) (*MatchSpec, error) {
	if filename == "" {
		filename = MatchFile
	}
	spec, err := LoadSpec[MatchSpec](filename)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: validate %s: %w", filename, err)
	}
	return &spec, nil
}

// ParseMatchSpec decodes and validates a match spec held in memory.
func ParseMatchSpec(data []byte) (*MatchSpec, error) {
	var spec MatchSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal match: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (m *MatchSpec) Validate() error {
	if m.Field.Width <= 0 || m.Field.Height <= 0 {
		return ErrBadField
	}
	if len(m.Actors) == 0 {
		return ErrNoActors
	}
	if m.Ball == nil {
		return ErrNoBall
	}

	seen := make(map[string]bool, len(m.Actors))
	for _, a := range m.Actors {
		if seen[a.Name] {
			return fmt.Errorf("%w: %q", ErrDupActor, a.Name)
		}
		seen[a.Name] = true
	}

	for _, g := range m.Goals {
		if g.Side != "left" && g.Side != "right" {
			return fmt.Errorf("%w: %q", ErrBadSide, g.Side)
		}
	}

	for _, mode := range m.Shot.Modes {
		if mode != ShotInstant && mode != ShotCharge {
			return fmt.Errorf("%w: %q", ErrBadShotMod, mode)
		}
	}
	return nil
}

// RoundLength returns the configured round length or the default.
func (m *MatchSpec) RoundLength() int64 {
	if m == nil || m.RoundMs <= 0 {
		return common.RoundLengthMs
	}
	return m.RoundMs
}

// TuningValues resolves the match tuning on top of the defaults.
func (m *MatchSpec) TuningValues() common.Tuning {
	t := common.DefaultTuning()
	if m == nil {
		return t
	}
	m.Tuning.Apply(&t)
	m.Shot.Apply(&t)
	return t
}

type FieldSpec struct {
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Color  *YAMLColor `yaml:"color"`
}

// TuningSpec mirrors common.Tuning. Zero fields keep the default.
type TuningSpec struct {
	MoveSpeed            float64 `yaml:"move_speed"`
	BallOffset           float64 `yaml:"ball_offset"`
	ShotPower            float64 `yaml:"shot_power"`
	ArrivalRadius        float64 `yaml:"arrival_radius"`
	HorizontalDeflection float64 `yaml:"horizontal_deflection"`
	ImmunityMs           int64   `yaml:"immunity_ms"`
}

func (s TuningSpec) Apply(t *common.Tuning) {
	if t == nil {
		return
	}
	if s.MoveSpeed > 0 {
		t.MoveSpeed = s.MoveSpeed
	}
	if s.BallOffset > 0 {
		t.BallOffset = s.BallOffset
	}
	if s.ShotPower > 0 {
		t.ShotPower = s.ShotPower
	}
	if s.ArrivalRadius > 0 {
		t.ArrivalRadius = s.ArrivalRadius
	}
	if s.HorizontalDeflection > 0 {
		t.HorizontalDeflection = s.HorizontalDeflection
	}
	if s.ImmunityMs > 0 {
		t.ImmunityWindowMs = s.ImmunityMs
	}
}

const (
	ShotInstant = "instant"
	ShotCharge  = "charge"
)

// ShotSpec restricts the active shot modes. Empty means both.
type ShotSpec struct {
	Modes []string `yaml:"modes"`
}

func (s ShotSpec) Apply(t *common.Tuning) {
	if t == nil || len(s.Modes) == 0 {
		return
	}
	t.InstantShots, t.ChargeShots = false, false
	for _, mode := range s.Modes {
		switch mode {
		case ShotInstant:
			t.InstantShots = true
		case ShotCharge:
			t.ChargeShots = true
		}
	}
}

type ActorSpec struct {
	Name         string        `yaml:"name"`
	Transform    TransformSpec `yaml:"transform"`
	Collider     ColliderSpec  `yaml:"collider"`
	SensorRadius float64       `yaml:"sensor_radius"`
	Facing       *PointSpec    `yaml:"facing"`
	Label        bool          `yaml:"label"`
	Color        *YAMLColor    `yaml:"color"`
}

type BallSpec struct {
	Transform  TransformSpec `yaml:"transform"`
	Radius     float64       `yaml:"radius"`
	Mass       float64       `yaml:"mass"`
	Friction   float64       `yaml:"friction"`
	Elasticity float64       `yaml:"elasticity"`
	Damping    float64       `yaml:"damping"`
	Label      bool          `yaml:"label"`
	Color      *YAMLColor    `yaml:"color"`
}

type GoalSpec struct {
	Side      string        `yaml:"side"`
	Transform TransformSpec `yaml:"transform"`
	Collider  ColliderSpec  `yaml:"collider"`
	Color     *YAMLColor    `yaml:"color"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type AnimationSpec struct {
	Current string                      `yaml:"current"`
	Defs    map[string]AnimationDefSpec `yaml:"defs"`
}

type AnimationDefSpec struct {
	FrameCount int     `yaml:"frame_count"`
	FPS        float64 `yaml:"fps"`
	Loop       bool    `yaml:"loop"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// ColorOr returns the parsed color, or fallback when none was given.
func (c *YAMLColor) ColorOr(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
