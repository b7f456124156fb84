package lander

// Key identifies one of the keys the game polls every frame
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyQuit
)

// Keyboard reports which keys are held right now
type Keyboard interface {
	Pressed(key Key) bool
}

// Clock is a monotonic millisecond counter
type Clock interface {
	Milliseconds() int64
}
