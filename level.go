package lander

import (
	"github.com/akmonengine/lander/actor"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	GRAVITY = -0.52
	// GRAVITY_SCALE damps gravity for the submarine sinking through water
	GRAVITY_SCALE = 0.1

	LEFT_BORDER  = -4.55
	RIGHT_BORDER = 4.55
)

const (
	SUBMARINE_TEXTURE    = "submarine.png"
	BACKGROUND_TEXTURE   = "deep-ocean.jpg"
	WIN_MESSAGE_TEXTURE  = "mission-Accomplish.png"
	LOSE_MESSAGE_TEXTURE = "eaten.png"
	PLATFORM_TEXTURE     = "winPlatform.png"
	HAZARD_TEXTURE       = "losePlatform.png"
)

var (
	playerStart = mgl64.Vec3{0, 4, 0}
	playerScale = mgl64.Vec3{1.37, 1, 0}

	backgroundScale  = mgl64.Vec3{15.8, 8, 0}
	winMessageScale  = mgl64.Vec3{4.53, 3, 0}
	loseMessageScale = mgl64.Vec3{3.93, 3, 0}
)

// placement is the compiled-in geometry of one obstacle
type placement struct {
	position mgl64.Vec3
	// degrees around +Z
	angle  float64
	scale  mgl64.Vec3
	width  float64
	height float64
}

var platformLayout = []placement{
	{position: mgl64.Vec3{3.2, -2.5, 0}, scale: mgl64.Vec3{1.5, 1.5, 0}, width: 0.3, height: 0.3},
	{position: mgl64.Vec3{-0.5, -2.8, 0}, scale: mgl64.Vec3{1.5, 1.5, 0}, width: 0.3, height: 0.3},
	{position: mgl64.Vec3{1.6, 1.5, 0}, scale: mgl64.Vec3{1.5, 1.5, 0}, width: 0.3, height: 0.3},
}

var hazardLayout = []placement{
	{position: mgl64.Vec3{-4.0, -1.0, 0}, angle: -30, scale: mgl64.Vec3{4.5, 0.5, 0}, width: 4.4, height: 0.4},
	{position: mgl64.Vec3{-3.1, -1.3, 0}, angle: 70, scale: mgl64.Vec3{1.2, 0.5, 0}, width: 1.1, height: 0.4},
	{position: mgl64.Vec3{-2.6, -1.1, 0}, angle: -20, scale: mgl64.Vec3{1.2, 0.5, 0}, width: 1.1, height: 0.4},
	{position: mgl64.Vec3{-1.62, -2.2, 0}, angle: -55, scale: mgl64.Vec3{4.8, 0.5, 0}, width: 1.0, height: 0.4},
	{position: mgl64.Vec3{1.2, -3.1, 0}, angle: 0, scale: mgl64.Vec3{4.8, 0.5, 0}, width: 4.7, height: 0.4},
	{position: mgl64.Vec3{2.4, -3.0, 0}, angle: 50, scale: mgl64.Vec3{1.1, 0.5, 0}, width: 1.0, height: 0.4},
	{position: mgl64.Vec3{4.4, -2.8, 0}, angle: 0, scale: mgl64.Vec3{2.6, 0.5, 0}, width: 2.5, height: 0.4},
}

// gravity is the per-frame baseline acceleration of the player
func gravity() mgl64.Vec3 {
	return mgl64.Vec3{0, GRAVITY * GRAVITY_SCALE, 0}
}

func (p placement) body(texture actor.Texture) actor.Body {
	b := actor.NewBody(texture, 1)
	b.Transform.Position = p.position
	b.Transform.Scale = p.scale
	if p.angle != 0 {
		b.Transform.Angle = mgl64.DegToRad(p.angle)
		b.Transform.Axis = mgl64.Vec3{0, 0, 1}
	}
	b.Width = p.width
	b.Height = p.height

	return *b
}

func layout(placements []placement, texture actor.Texture) actor.Bodies {
	bodies := make(actor.Bodies, 0, len(placements))
	for _, p := range placements {
		bodies = append(bodies, p.body(texture))
	}
	bodies.Refresh()

	return bodies
}

// buildLevel places every body of the level; textures must already be loaded
func (g *Game) buildLevel() {
	g.Player = actor.NewBody(g.textures[SUBMARINE_TEXTURE], 1)
	g.Player.Acceleration = gravity()
	g.Player.Transform.Position = playerStart
	g.Player.Transform.Scale = playerScale
	g.Player.Width = playerScale.X()
	g.Player.Height = playerScale.Y()
	g.Player.Transform.Refresh()

	g.Background = actor.NewBody(g.textures[BACKGROUND_TEXTURE], 1)
	g.Background.Transform.Scale = backgroundScale
	g.Background.Update(0, nil)

	g.Platforms = layout(platformLayout, g.textures[PLATFORM_TEXTURE])
	g.Hazards = layout(hazardLayout, g.textures[HAZARD_TEXTURE])

	g.WinMessage = actor.NewBody(g.textures[WIN_MESSAGE_TEXTURE], 1)
	g.WinMessage.Transform.Scale = winMessageScale
	g.WinMessage.Transform.Refresh()

	g.LoseMessage = actor.NewBody(g.textures[LOSE_MESSAGE_TEXTURE], 1)
	g.LoseMessage.Transform.Scale = loseMessageScale
	g.LoseMessage.Transform.Refresh()
}
