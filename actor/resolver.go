package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// ContactTolerance lets a body resting exactly on a surface keep touching it
	ContactTolerance = 0.005
	// MaxLandingSpeed is the highest vertical speed at which touching a platform from above counts as a landing
	MaxLandingSpeed = 0.5
)

// ObstacleSet is a read-only view over static bodies
type ObstacleSet interface {
	Len() int
	Obstacle(i int) *Body
}

// Bodies is a contiguous, owned sequence of obstacles
type Bodies []Body

func (bodies Bodies) Len() int {
	return len(bodies)
}

func (bodies Bodies) Obstacle(i int) *Body {
	return &bodies[i]
}

// Refresh recomputes every model matrix, obstacles never move after that
func (bodies Bodies) Refresh() {
	for i := range bodies {
		bodies[i].Transform.Refresh()
	}
}

// Obstacles is the collision context handed to an interactive body
type Obstacles struct {
	// Platforms stop the body and can be landed on
	Platforms ObstacleSet
	// Hazards destroy the body on any overlap
	Hazards ObstacleSet
	// Outcome receives the landing or wreck, it may be nil
	Outcome *Outcome
}

// Contacts describes the collisions of one tick
type Contacts struct {
	Top    bool
	Bottom bool
	Left   bool
	Right  bool

	// Indices of the touched obstacles
	Platforms []int
	Hazards   []int

	Landed  bool
	Wrecked bool
}

// Any reports whether something was touched
func (c Contacts) Any() bool {
	return len(c.Platforms) > 0 || len(c.Hazards) > 0
}

func (o *Obstacles) ended() bool {
	return o.Outcome != nil && o.Outcome.Ended
}

func (o *Obstacles) resolve(b *Body) Contacts {
	var contacts Contacts
	if !b.Collidable() {
		return contacts
	}

	if o.Platforms != nil {
		for i := range o.Platforms.Len() {
			platform := o.Platforms.Obstacle(i)
			if !touches(b, platform) {
				continue
			}
			contacts.Platforms = append(contacts.Platforms, i)

			approach := b.Velocity.Y()
			if pushOut(b, platform, &contacts) == sideBottom && math.Abs(approach) <= MaxLandingSpeed {
				contacts.Landed = true
			}
		}
	}

	if o.Hazards != nil {
		for i := range o.Hazards.Len() {
			if touches(b, o.Hazards.Obstacle(i)) {
				contacts.Hazards = append(contacts.Hazards, i)
				contacts.Wrecked = true
			}
		}
	}

	if o.Outcome != nil {
		o.Outcome.Record(contacts.Landed, contacts.Wrecked)
	}

	return contacts
}

func touches(b, obstacle *Body) bool {
	return obstacle.Collidable() && b.Bounds().Overlaps(obstacle.Bounds(), ContactTolerance)
}

type side int

const (
	sideTop side = iota
	sideBottom
	sideLeft
	sideRight
)

// pushOut moves b along the axis of least penetration so it rests on the obstacle surface,
// and cancels the velocity along that axis
func pushOut(b, obstacle *Body, contacts *Contacts) side {
	penetration := b.Bounds().Penetration(obstacle.Bounds())
	offset := b.Transform.Position.Sub(obstacle.Transform.Position)
	position := b.Transform.Position

	if penetration.Y() <= penetration.X() {
		reach := (b.Height + obstacle.Height) / 2
		b.Velocity[1] = 0
		if offset.Y() >= 0 {
			b.Transform.Position = mgl64.Vec3{position.X(), obstacle.Transform.Position.Y() + reach, position.Z()}
			contacts.Bottom = true
			return sideBottom
		}
		b.Transform.Position = mgl64.Vec3{position.X(), obstacle.Transform.Position.Y() - reach, position.Z()}
		contacts.Top = true
		return sideTop
	}

	reach := (b.Width + obstacle.Width) / 2
	b.Velocity[0] = 0
	if offset.X() >= 0 {
		b.Transform.Position = mgl64.Vec3{obstacle.Transform.Position.X() + reach, position.Y(), position.Z()}
		contacts.Left = true
		return sideLeft
	}
	b.Transform.Position = mgl64.Vec3{obstacle.Transform.Position.X() - reach, position.Y(), position.Z()}
	contacts.Right = true
	return sideRight
}
