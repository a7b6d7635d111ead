package component

// BodyRole tells the physics layer how to build and filter an entity's shapes.
type BodyRole int

const (
	BodyActor BodyRole = iota + 1
	BodyBall
	BodyGoalZone
)

// PhysicsBody stores collider configuration. The runtime Chipmunk objects
// live inside the physics system, keyed by entity.
type PhysicsBody struct {
	Role       BodyRole
	Width      float64
	Height     float64
	Radius     float64
	Mass       float64
	Friction   float64
	Elasticity float64
	// Damping is the fraction of velocity a free body keeps per second.
	// Zero disables drag.
	Damping float64
	// SensorRadius sizes the possession sensor at an actor's feet.
	SensorRadius float64
	Static       bool
}

// HalfHeight returns half the collision body height.
func (b PhysicsBody) HalfHeight() float64 {
	if b.Radius > 0 {
		return b.Radius
	}
	return b.Height / 2
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
