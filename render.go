package lander

import (
	"github.com/akmonengine/lander/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// Renderer draws a unit quad transformed by model, textured with a region of texture.
// A nil texture means nothing is bound and is left to the renderer.
type Renderer interface {
	Draw(model mgl64.Mat4, texture actor.Texture, region actor.Region)
}

// Render draws back to front: background, player, platforms, hazards, then the outcome message
func (g *Game) Render(r Renderer) {
	draw(r, g.Background)
	draw(r, g.Player)
	for i := range g.Platforms.Len() {
		draw(r, g.Platforms.Obstacle(i))
	}
	for i := range g.Hazards.Len() {
		draw(r, g.Hazards.Obstacle(i))
	}
	if overlay := g.overlay(); overlay != nil {
		draw(r, overlay)
	}
}

func draw(r Renderer, b *actor.Body) {
	r.Draw(b.Model(), b.Texture, b.Region())
}
