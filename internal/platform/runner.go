package platform

import (
	"image/color"

	"github.com/akmonengine/lander"
	"github.com/hajimehoshi/ebiten/v2"
)

// Background is the clear color behind the sprites
var Background = color.RGBA{0xf9, 0xf5, 0xf8, 0xff}

// Runner adapts a lander.Game to ebiten.Game
type Runner struct {
	Game     *lander.Game
	Keyboard lander.Keyboard
	Clock    lander.Clock
	Viewport Viewport
	Width    int
	Height   int

	renderer Renderer
}

func NewRunner(game *lander.Game, width, height int) *Runner {
	return &Runner{
		Game:     game,
		Keyboard: NewKeyboard(),
		Clock:    NewClock(),
		Viewport: DefaultViewport,
		Width:    width,
		Height:   height,
	}
}

// Update: input and physics, ebiten calls it at its own tick rate
func (r *Runner) Update() error {
	if r.Game.Frame(r.Keyboard, r.Clock) == lander.StatusTerminated {
		return ebiten.Termination
	}
	return nil
}

func (r *Runner) Draw(screen *ebiten.Image) {
	screen.Fill(Background)

	r.renderer.Screen = screen
	r.renderer.View = r.Viewport.View(r.Width, r.Height)
	r.Game.Render(&r.renderer)
}

// Layout: render at the configured size, let ebiten scale to the window
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.Width, r.Height
}
