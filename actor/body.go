package actor

import (
	"image"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// LateralThrust is added to or removed from acceleration.x per AccelerateLeft/Right call
	LateralThrust = 0.1
	// VerticalThrust overwrites acceleration.y on AccelerateUp/Down
	VerticalThrust = 0.2
)

// Texture is an opaque handle to a loaded image. Bodies share handles and never own them.
type Texture interface {
	Bounds() image.Rectangle
}

// Body represents one on-screen object: the player, a platform, a hazard or an overlay
type Body struct {
	Transform Transform

	Velocity     mgl64.Vec3
	Acceleration mgl64.Vec3
	// Movement is a commanded displacement direction, scaled by Speed
	Movement mgl64.Vec3
	Speed    float64
	// MaxSpeed clamps the velocity magnitude, 0 disables clamping
	MaxSpeed float64

	// Collision extents in world units, independent from Transform.Scale
	Width  float64
	Height float64

	Texture   Texture
	Animation *Animation

	contacts Contacts
}

// NewBody creates a static sprite body with unit extents
func NewBody(texture Texture, speed float64) *Body {
	b := &Body{
		Transform: NewTransform(),
		Speed:     speed,
		Width:     1,
		Height:    1,
		Texture:   texture,
	}
	b.Transform.Refresh()

	return b
}

// NewAnimatedBody creates a body drawn from a sprite sheet
func NewAnimatedBody(texture Texture, speed float64, animation *Animation) *Body {
	b := NewBody(texture, speed)
	b.Animation = animation

	return b
}

// Position is a shortcut for Transform.Position
func (b *Body) Position() mgl64.Vec3 {
	return b.Transform.Position
}

func (b *Body) SetPosition(position mgl64.Vec3) {
	b.Transform.Position = position
}

// SetSize sets scale and collision extents to the same width and height
func (b *Body) SetSize(width, height float64) {
	b.Transform.Scale = mgl64.Vec3{width, height, 0}
	b.Width = width
	b.Height = height
}

// Bounds returns the collision box around the current position
func (b *Body) Bounds() AABB {
	return NewAABB(b.Transform.Position, b.Width, b.Height)
}

// Collidable reports whether the extents are large enough to take part in overlap tests
func (b *Body) Collidable() bool {
	return b.Width > 0 && b.Height > 0
}

// Contacts returns the collision sides found by the last interactive Update
func (b *Body) Contacts() Contacts {
	return b.contacts
}

// Model returns the model matrix computed by the last Update
func (b *Body) Model() mgl64.Mat4 {
	return b.Transform.Model()
}

// Region returns the texture sub-rectangle to draw
func (b *Body) Region() Region {
	if b.Animation == nil {
		return FullRegion
	}
	return b.Animation.Region()
}

// Update advances the body by dt seconds.
// With a nil obstacles context the body only moves and animates. With a context it also resolves
// collisions against both obstacle sets and records the outcome; once the outcome has ended the call
// leaves the body untouched.
func (b *Body) Update(dt float64, obstacles *Obstacles) Contacts {
	if obstacles != nil && obstacles.ended() {
		return Contacts{}
	}

	b.Integrate(dt)

	var contacts Contacts
	if obstacles != nil {
		contacts = obstacles.resolve(b)
		b.contacts = contacts
	}

	b.Transform.Refresh()
	if b.Animation != nil && b.Movement.Len() != 0 {
		b.Animation.Advance(dt)
	}

	return contacts
}

// Integrate applies acceleration to velocity, then commanded movement and velocity to position
func (b *Body) Integrate(dt float64) {
	b.Velocity = b.Velocity.Add(b.Acceleration.Mul(dt))
	if b.MaxSpeed > 0 && b.Velocity.Len() > b.MaxSpeed {
		b.Velocity = b.Velocity.Normalize().Mul(b.MaxSpeed)
	}

	displacement := b.Movement.Mul(b.Speed).Add(b.Velocity)
	b.Transform.Position = b.Transform.Position.Add(displacement.Mul(dt))
}

// NormaliseMovement rescales the movement to unit length when it is longer than 1
func (b *Body) NormaliseMovement() {
	if b.Movement.Len() > 1 {
		b.Movement = b.Movement.Normalize()
	}
}

// Face switches the animation row, bodies without a sprite sheet ignore it
func (b *Body) Face(d Direction) {
	if b.Animation != nil {
		b.Animation.Face(d)
	}
}

func (b *Body) AccelerateLeft() {
	b.Acceleration[0] -= LateralThrust
}

func (b *Body) AccelerateRight() {
	b.Acceleration[0] += LateralThrust
}

// AccelerateUp overwrites the vertical acceleration, it does not add to it
func (b *Body) AccelerateUp() {
	b.Acceleration[1] = VerticalThrust
}

// AccelerateDown overwrites the vertical acceleration, it does not add to it
func (b *Body) AccelerateDown() {
	b.Acceleration[1] = -VerticalThrust
}
