package lander

import (
	"errors"
	"fmt"

	"github.com/akmonengine/lander/actor"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// ErrAssetLoad wraps every texture that could not be loaded. It is fatal for a run.
var ErrAssetLoad = errors.New("asset load failed")

// Filter is the sampling mode of a texture
type Filter int

const (
	FilterNearest Filter = iota
	FilterLinear
)

// TextureLoader turns an image file into a texture handle
type TextureLoader interface {
	LoadTexture(path string, filter Filter) (actor.Texture, error)
}

// Disposer is implemented by loaders whose textures hold resources to free
type Disposer interface {
	Dispose(texture actor.Texture)
}

type Status int

const (
	StatusRunning Status = iota
	StatusTerminated
)

// Game owns every body and texture of a run. It is driven from a single goroutine.
type Game struct {
	Player      *actor.Body
	Background  *actor.Body
	Platforms   actor.Bodies
	Hazards     actor.Bodies
	WinMessage  *actor.Body
	LoseMessage *actor.Body

	Outcome actor.Outcome
	Driver  Driver
	Events  Events

	status   Status
	drained  bool
	loader   TextureLoader
	textures map[string]actor.Texture
	log      *zap.Logger
}

type Option func(g *Game)

// WithLogger sets the logger, the default discards everything
func WithLogger(log *zap.Logger) Option {
	return func(g *Game) {
		g.log = log
	}
}

// WithRate sets the fixed steps per second
func WithRate(rate int) Option {
	return func(g *Game) {
		g.Driver.Rate = rate
	}
}

// NewGame loads the level textures and places every body
func NewGame(loader TextureLoader, opts ...Option) (*Game, error) {
	g := &Game{
		Events:   NewEvents(),
		loader:   loader,
		textures: make(map[string]actor.Texture),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}

	for _, path := range []string{
		SUBMARINE_TEXTURE,
		BACKGROUND_TEXTURE,
		PLATFORM_TEXTURE,
		HAZARD_TEXTURE,
		WIN_MESSAGE_TEXTURE,
		LOSE_MESSAGE_TEXTURE,
	} {
		if err := g.loadTexture(path, FilterNearest); err != nil {
			g.Close()
			return nil, err
		}
	}

	g.buildLevel()
	g.log.Info("level ready",
		zap.Int("platforms", g.Platforms.Len()),
		zap.Int("hazards", g.Hazards.Len()),
		zap.Int("rate", g.Driver.rate()),
	)

	return g, nil
}

// loadTexture loads a file once, later bodies share the same handle
func (g *Game) loadTexture(path string, filter Filter) error {
	if _, ok := g.textures[path]; ok {
		return nil
	}

	texture, err := g.loader.LoadTexture(path, filter)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrAssetLoad, path, err)
	}
	g.textures[path] = texture
	g.log.Debug("texture loaded", zap.String("path", path))

	return nil
}

func (g *Game) Status() Status {
	return g.status
}

// Frame polls input then runs the fixed steps due since the previous clock reading
func (g *Game) Frame(keyboard Keyboard, clock Clock) Status {
	if g.status == StatusTerminated {
		return g.status
	}

	g.HandleInput(keyboard)
	if g.status == StatusTerminated {
		return g.status
	}

	g.Driver.Frame(clock.Milliseconds(), g.Step)

	if !g.drained {
		g.Events.flush()
		g.drained = g.Outcome.Ended
	}

	return g.status
}

// HandleInput rebuilds the player intent from the keys currently held.
// Movement and acceleration restart from rest and gravity every frame.
func (g *Game) HandleInput(keyboard Keyboard) {
	if keyboard.Pressed(KeyQuit) {
		g.status = StatusTerminated
		g.log.Info("quit requested")
		return
	}

	player := g.Player
	player.Movement = mgl64.Vec3{}
	player.Acceleration = gravity()

	x := player.Position().X()
	if keyboard.Pressed(KeyLeft) {
		if x >= LEFT_BORDER {
			player.AccelerateLeft()
			player.Face(actor.DirectionLeft)
			player.Transform.Angle = 0
		}
	} else if keyboard.Pressed(KeyRight) {
		if x <= RIGHT_BORDER {
			player.AccelerateRight()
			player.Face(actor.DirectionRight)
			// half turn around +Y mirrors the sprite
			player.Transform.Angle = -mgl64.DegToRad(180)
		}
	}

	if keyboard.Pressed(KeyUp) {
		player.AccelerateUp()
		player.Face(actor.DirectionUp)
	} else if keyboard.Pressed(KeyDown) {
		player.AccelerateDown()
		player.Face(actor.DirectionDown)
	}

	player.NormaliseMovement()
}

// Step advances the simulation by one fixed step
func (g *Game) Step(dt float64) {
	if !g.Outcome.Ended {
		contacts := g.Player.Update(dt, &actor.Obstacles{
			Platforms: g.Platforms,
			Hazards:   g.Hazards,
			Outcome:   &g.Outcome,
		})
		g.Events.recordContacts(PLATFORM, contacts.Platforms, g.Platforms)
		g.Events.recordContacts(HAZARD, contacts.Hazards, g.Hazards)

		if g.Outcome.Ended {
			g.Events.emitOutcome(g.Outcome)
			g.log.Info("run ended",
				zap.Bool("won", g.Outcome.Won),
				zap.Bool("lost", g.Outcome.Lost),
				zap.Float64("x", g.Player.Position().X()),
				zap.Float64("y", g.Player.Position().Y()),
			)
		}
	}

	if overlay := g.overlay(); overlay != nil {
		overlay.Update(dt, nil)
	}
}

// overlay returns the message matching the outcome, a loss takes precedence
func (g *Game) overlay() *actor.Body {
	switch {
	case !g.Outcome.Ended:
		return nil
	case g.Outcome.Lost:
		return g.LoseMessage
	case g.Outcome.Won:
		return g.WinMessage
	}
	return nil
}

// Close releases the textures when the loader can dispose them
func (g *Game) Close() {
	disposer, ok := g.loader.(Disposer)
	if ok {
		for path, texture := range g.textures {
			disposer.Dispose(texture)
			g.log.Debug("texture disposed", zap.String("path", path))
		}
	}
	clear(g.textures)
}
