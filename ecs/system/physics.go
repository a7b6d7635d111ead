package system

import (
	"log"
	"math"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/kickabout/common"
	"github.com/milk9111/kickabout/ecs"
	"github.com/milk9111/kickabout/ecs/component"
)

// Physics is the rigid-body layer the gameplay systems drive. Update steps
// the engine by the world's tick delta and publishes a ContactEvent for every
// pair still touching.
type Physics interface {
	ecs.System
	// Sync creates bodies for new entities and drops bodies of dead ones.
	Sync(w *ecs.World)
	Velocity(e ecs.Entity) common.Vec2
	SetVelocity(e ecs.Entity, v common.Vec2)
	SetAcceleration(e ecs.Entity, a common.Vec2)
	// MoveToward sets a constant-speed velocity aimed at dest.
	MoveToward(e ecs.Entity, dest common.Vec2, speed float64)
	Position(e ecs.Entity) (common.Vec2, bool)
	SetPosition(e ecs.Entity, p common.Vec2)
	BodyHalfHeight(e ecs.Entity) float64
	// SetOverlapEnabled turns an actor's possession sensor reports on or off.
	SetOverlapEnabled(e ecs.Entity, enabled bool)
}

const (
	collisionTypeWall cp.CollisionType = iota + 1
	collisionTypeActor
	collisionTypeActorSensor
	collisionTypeBall
	collisionTypeGoal
)

const (
	categoryWall uint = 1 << iota
	categoryActor
	categorySensor
	categoryBall
	categoryGoal
)

const (
	defaultActorSize    = 32.0
	defaultBallRadius   = 12.0
	defaultBallMass     = 0.5
	defaultSensorRadius = 14.0
)

// PhysicsSystem implements Physics on a Chipmunk space with no gravity: the
// field is seen from above.
type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool

	entities     map[ecs.Entity]*bodyInfo
	sensorShapes map[*cp.Shape]ecs.Entity
	ballShapes   map[*cp.Shape]ecs.Entity
	goalShapes   map[*cp.Shape]ecs.Entity

	overlaps   map[contactPair]struct{}
	goals      map[contactPair]struct{}
	accels     map[ecs.Entity]cp.Vector
	overlapOff map[ecs.Entity]bool
}

type bodyInfo struct {
	body        *cp.Body
	mainShape   *cp.Shape
	sensorShape *cp.Shape
	shapes      []*cp.Shape
	static      bool
	halfHeight  float64
}

type contactPair struct {
	subject ecs.Entity
	ball    ecs.Entity
}

func NewPhysicsSystem() *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})
	return &PhysicsSystem{
		space:        space,
		entities:     make(map[ecs.Entity]*bodyInfo),
		sensorShapes: make(map[*cp.Shape]ecs.Entity),
		ballShapes:   make(map[*cp.Shape]ecs.Entity),
		goalShapes:   make(map[*cp.Shape]ecs.Entity),
		overlaps:     make(map[contactPair]struct{}),
		goals:        make(map[contactPair]struct{}),
		accels:       make(map[ecs.Entity]cp.Vector),
		overlapOff:   make(map[ecs.Entity]bool),
	}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.Sync(w)

	for e, a := range ps.accels {
		info := ps.entities[e]
		if info == nil || info.static || info.body == nil {
			continue
		}
		info.body.SetForce(a.Mult(info.body.Mass()))
	}

	if dt := float64(w.Delta()) / 1000.0; dt > 0 {
		ps.space.Step(dt)
	}

	ps.syncTransforms(w)
	ps.publishContacts(w)
}

func (ps *PhysicsSystem) Sync(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	ps.ensureHandlers()
	ps.cleanupEntities(w)
	ps.syncEntities(w)
	ps.syncWorldBounds(w)
}

func (ps *PhysicsSystem) Velocity(e ecs.Entity) common.Vec2 {
	info := ps.dynamicBody(e)
	if info == nil {
		return common.Vec2{}
	}
	return fromVector(info.body.Velocity())
}

func (ps *PhysicsSystem) SetVelocity(e ecs.Entity, v common.Vec2) {
	info := ps.dynamicBody(e)
	if info == nil {
		return
	}
	info.body.SetVelocityVector(toVector(v))
}

func (ps *PhysicsSystem) SetAcceleration(e ecs.Entity, a common.Vec2) {
	info := ps.dynamicBody(e)
	if info == nil {
		return
	}
	ps.accels[e] = toVector(a)
	info.body.SetForce(toVector(a).Mult(info.body.Mass()))
}

func (ps *PhysicsSystem) MoveToward(e ecs.Entity, dest common.Vec2, speed float64) {
	pos, ok := ps.Position(e)
	if !ok {
		return
	}
	ps.SetVelocity(e, dest.Sub(pos).Normalize().Scale(speed))
}

func (ps *PhysicsSystem) Position(e ecs.Entity) (common.Vec2, bool) {
	info := ps.dynamicBody(e)
	if info == nil {
		return common.Vec2{}, false
	}
	return fromVector(info.body.Position()), true
}

func (ps *PhysicsSystem) SetPosition(e ecs.Entity, p common.Vec2) {
	info := ps.dynamicBody(e)
	if info == nil {
		return
	}
	info.body.SetPosition(toVector(p))
}

func (ps *PhysicsSystem) BodyHalfHeight(e ecs.Entity) float64 {
	if ps == nil {
		return 0
	}
	info := ps.entities[e]
	if info == nil {
		return 0
	}
	return info.halfHeight
}

func (ps *PhysicsSystem) SetOverlapEnabled(e ecs.Entity, enabled bool) {
	if ps == nil {
		return
	}
	if enabled {
		delete(ps.overlapOff, e)
		return
	}
	ps.overlapOff[e] = true
}

func (ps *PhysicsSystem) dynamicBody(e ecs.Entity) *bodyInfo {
	if ps == nil {
		return nil
	}
	info := ps.entities[e]
	if info == nil || info.static || info.body == nil {
		return nil
	}
	return info
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	sensorHandler := ps.space.NewCollisionHandler(collisionTypeActorSensor, collisionTypeBall)
	sensorHandler.UserData = ps
	sensorHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		if pair, ok := sys.pairFor(arb, sys.sensorShapes); ok {
			sys.overlaps[pair] = struct{}{}
		}
		return true
	}
	sensorHandler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return
		}
		if pair, ok := sys.pairFor(arb, sys.sensorShapes); ok {
			delete(sys.overlaps, pair)
		}
	}

	goalHandler := ps.space.NewCollisionHandler(collisionTypeGoal, collisionTypeBall)
	goalHandler.UserData = ps
	goalHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		if pair, ok := sys.pairFor(arb, sys.goalShapes); ok {
			sys.goals[pair] = struct{}{}
		}
		return true
	}
	goalHandler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return
		}
		if pair, ok := sys.pairFor(arb, sys.goalShapes); ok {
			delete(sys.goals, pair)
		}
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) pairFor(arb *cp.Arbiter, subjects map[*cp.Shape]ecs.Entity) (contactPair, bool) {
	shapeA, shapeB := arb.Shapes()
	subject, okS := subjects[shapeA]
	ball, okB := ps.ballShapes[shapeB]
	if !okS || !okB {
		subject, okS = subjects[shapeB]
		ball, okB = ps.ballShapes[shapeA]
	}
	if !okS || !okB {
		return contactPair{}, false
	}
	return contactPair{subject: subject, ball: ball}, true
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	if ps.space == nil {
		return
	}

	for _, e := range w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind()) {
		if _, exists := ps.entities[e]; exists {
			continue
		}
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}

		var info *bodyInfo
		switch bodyComp.Role {
		case component.BodyActor:
			info = ps.createActor(*transform, *bodyComp)
			ps.sensorShapes[info.sensorShape] = e
		case component.BodyBall:
			info = ps.createBall(*transform, *bodyComp)
			ps.ballShapes[info.mainShape] = e
		case component.BodyGoalZone:
			info = ps.createGoalZone(*transform, *bodyComp)
			ps.goalShapes[info.mainShape] = e
		default:
			log.Printf("physics: entity %s has no body role, skipping", e)
			continue
		}
		ps.entities[e] = info
	}
}

func (ps *PhysicsSystem) createActor(t component.Transform, bc component.PhysicsBody) *bodyInfo {
	width, height := bc.Width, bc.Height
	if width <= 0 || height <= 0 {
		width, height = defaultActorSize, defaultActorSize
	}
	mass := bc.Mass
	if mass <= 0 {
		mass = 1
	}

	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(cp.Vector{X: t.X, Y: t.Y})

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(bc.Friction)
	shape.SetElasticity(bc.Elasticity)
	shape.SetCollisionType(collisionTypeActor)
	shape.SetFilter(cp.NewShapeFilter(0, categoryActor, categoryWall|categoryActor))

	radius := bc.SensorRadius
	if radius <= 0 {
		radius = defaultSensorRadius
	}
	// the sensor sits at the feet, where the ball is juggled
	sensor := cp.NewCircle(body, radius, cp.Vector{X: 0, Y: height / 2})
	sensor.SetSensor(true)
	sensor.SetCollisionType(collisionTypeActorSensor)
	sensor.SetFilter(cp.NewShapeFilter(0, categorySensor, categoryBall))

	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	ps.space.AddShape(sensor)

	return &bodyInfo{
		body:        body,
		mainShape:   shape,
		sensorShape: sensor,
		shapes:      []*cp.Shape{shape, sensor},
		halfHeight:  height / 2,
	}
}

func (ps *PhysicsSystem) createBall(t component.Transform, bc component.PhysicsBody) *bodyInfo {
	radius := bc.Radius
	if radius <= 0 {
		radius = defaultBallRadius
	}
	mass := bc.Mass
	if mass <= 0 {
		mass = defaultBallMass
	}

	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
	body.SetPosition(cp.Vector{X: t.X, Y: t.Y})
	if keep := bc.Damping; keep > 0 && keep < 1 {
		body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
			cp.BodyUpdateVelocity(body, gravity, damping*math.Pow(keep, dt), dt)
		})
	}

	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetFriction(bc.Friction)
	shape.SetElasticity(bc.Elasticity)
	shape.SetCollisionType(collisionTypeBall)
	shape.SetFilter(cp.NewShapeFilter(0, categoryBall, categoryWall|categorySensor|categoryGoal))

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	return &bodyInfo{
		body:       body,
		mainShape:  shape,
		shapes:     []*cp.Shape{shape},
		halfHeight: radius,
	}
}

func (ps *PhysicsSystem) createGoalZone(t component.Transform, bc component.PhysicsBody) *bodyInfo {
	bb := cp.BB{
		L: t.X - bc.Width/2,
		B: t.Y - bc.Height/2,
		R: t.X + bc.Width/2,
		T: t.Y + bc.Height/2,
	}
	shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
	shape.SetSensor(true)
	shape.SetCollisionType(collisionTypeGoal)
	shape.SetFilter(cp.NewShapeFilter(0, categoryGoal, categoryBall))
	ps.space.AddShape(shape)

	return &bodyInfo{
		body:       ps.space.StaticBody,
		mainShape:  shape,
		shapes:     []*cp.Shape{shape},
		static:     true,
		halfHeight: bc.Height / 2,
	}
}

func (ps *PhysicsSystem) syncWorldBounds(w *ecs.World) {
	if ps.space == nil || w == nil {
		return
	}
	boundsEntity, ok := w.First(component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	if _, exists := ps.entities[boundsEntity]; exists {
		return
	}
	bounds, ok := ecs.Get(w, boundsEntity, component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}

	worldW := bounds.Width
	worldH := bounds.Height
	if worldW <= 0 || worldH <= 0 {
		return
	}

	thickness := 1.0
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: worldW, Y: 0}},           // top
		{a: cp.Vector{X: 0, Y: worldH}, b: cp.Vector{X: worldW, Y: worldH}}, // bottom
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: worldH}},           // left
		{a: cp.Vector{X: worldW, Y: 0}, b: cp.Vector{X: worldW, Y: worldH}}, // right
	}

	info := &bodyInfo{static: true, body: ps.space.StaticBody}
	for _, seg := range segments {
		shape := cp.NewSegment(ps.space.StaticBody, seg.a, seg.b, thickness)
		shape.SetFriction(0.8)
		shape.SetElasticity(1)
		shape.SetCollisionType(collisionTypeWall)
		shape.SetFilter(cp.NewShapeFilter(0, categoryWall, categoryActor|categoryBall))
		ps.space.AddShape(shape)
		info.shapes = append(info.shapes, shape)
	}

	ps.entities[boundsEntity] = info
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static || info.body == nil {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := info.body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		transform.Rotation = info.body.Angle()
	}
}

func (ps *PhysicsSystem) publishContacts(w *ecs.World) {
	events := w.Events()
	for _, pair := range sortedPairs(ps.overlaps) {
		if ps.overlapOff[pair.subject] {
			continue
		}
		events.Push(ecs.Event{Type: ecs.EventContact, Data: ecs.ContactEvent{
			Kind:    ecs.ContactOverlap,
			Subject: pair.subject,
			Ball:    pair.ball,
		}})
	}
	for _, pair := range sortedPairs(ps.goals) {
		events.Push(ecs.Event{Type: ecs.EventContact, Data: ecs.ContactEvent{
			Kind:    ecs.ContactGoal,
			Subject: pair.subject,
			Ball:    pair.ball,
		}})
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && (ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) || ecs.Has(w, e, component.LevelBoundsComponent.Kind())) {
			continue
		}

		for _, shape := range info.shapes {
			if shape == nil {
				continue
			}
			ps.space.RemoveShape(shape)
			delete(ps.sensorShapes, shape)
			delete(ps.ballShapes, shape)
			delete(ps.goalShapes, shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}

		delete(ps.entities, e)
		delete(ps.accels, e)
		delete(ps.overlapOff, e)
	}

	for pair := range ps.overlaps {
		if !w.IsAlive(pair.subject) || !w.IsAlive(pair.ball) {
			delete(ps.overlaps, pair)
		}
	}
	for pair := range ps.goals {
		if !w.IsAlive(pair.subject) || !w.IsAlive(pair.ball) {
			delete(ps.goals, pair)
		}
	}
}

// sortedPairs keeps contact order stable across ticks so ties resolve the
// same way every run.
func sortedPairs(set map[contactPair]struct{}) []contactPair {
	out := make([]contactPair, 0, len(set))
	for pair := range set {
		out = append(out, pair)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].subject != out[j].subject {
			return out[i].subject < out[j].subject
		}
		return out[i].ball < out[j].ball
	})
	return out
}

func toVector(v common.Vec2) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromVector(v cp.Vector) common.Vec2 {
	return common.Vec2{X: v.X, Y: v.Y}
}
