package platform

import (
	"time"

	"github.com/akmonengine/lander"
	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultBindings maps each game key to WASD, the arrows and Q/Escape
var DefaultBindings = map[lander.Key][]ebiten.Key{
	lander.KeyLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	lander.KeyRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	lander.KeyUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
	lander.KeyDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
	lander.KeyQuit:  {ebiten.KeyQ, ebiten.KeyEscape},
}

// Keyboard reads the held state of the bound keys
type Keyboard struct {
	Bindings map[lander.Key][]ebiten.Key
	// IsKeyPressed is ebiten.IsKeyPressed unless replaced
	IsKeyPressed func(key ebiten.Key) bool
}

func NewKeyboard() *Keyboard {
	return &Keyboard{
		Bindings:     DefaultBindings,
		IsKeyPressed: ebiten.IsKeyPressed,
	}
}

func (k *Keyboard) Pressed(key lander.Key) bool {
	for _, bound := range k.Bindings[key] {
		if k.IsKeyPressed(bound) {
			return true
		}
	}
	return false
}

// Clock counts milliseconds since it was created
type Clock struct {
	start time.Time
}

func NewClock() *Clock {
	return &Clock{start: time.Now()}
}

func (c *Clock) Milliseconds() int64 {
	return time.Since(c.start).Milliseconds()
}
