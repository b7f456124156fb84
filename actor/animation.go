package actor

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Direction selects a row of walking frames in a sprite sheet
type Direction int

const (
	DirectionLeft Direction = iota
	DirectionRight
	DirectionUp
	DirectionDown
)

var directions = [...]Direction{DirectionLeft, DirectionRight, DirectionUp, DirectionDown}

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

const (
	// FramesPerDirection is the length of every frame sequence
	FramesPerDirection = 4
	// FramesPerSecond is how fast a moving sprite cycles through its sequence
	FramesPerSecond = 4

	// absorbs rounding when the period is reached by summing fixed steps
	frameEpsilon = 1e-9
)

var ErrInvalidAnimation = errors.New("invalid animation")

// Region is a rectangle of a texture in normalized [0,1] coordinates, origin top-left
type Region struct {
	Min mgl64.Vec2
	Max mgl64.Vec2
}

// FullRegion covers the whole texture
var FullRegion = Region{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{1, 1}}

// AtlasRegion returns the cell holding frame index in a sheet of cols x rows cells, filled row by row
func AtlasRegion(index, cols, rows int) Region {
	if cols <= 0 || rows <= 0 {
		return FullRegion
	}
	u := float64(index%cols) / float64(cols)
	v := float64(index/cols) / float64(rows)

	return Region{
		Min: mgl64.Vec2{u, v},
		Max: mgl64.Vec2{u + 1.0/float64(cols), v + 1.0/float64(rows)},
	}
}

// Animation walks through per-direction frame sequences of a sprite sheet
type Animation struct {
	Cols int
	Rows int

	frames    map[Direction][]int
	direction Direction
	index     int
	elapsed   float64
}

// NewAnimation validates the frame table: every direction needs FramesPerDirection indices inside the sheet
func NewAnimation(cols, rows int, frames map[Direction][]int) (*Animation, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: sheet size %dx%d", ErrInvalidAnimation, cols, rows)
	}

	table := make(map[Direction][]int, len(directions))
	for _, d := range directions {
		sequence, ok := frames[d]
		if !ok {
			return nil, fmt.Errorf("%w: missing %s frames", ErrInvalidAnimation, d)
		}
		if len(sequence) != FramesPerDirection {
			return nil, fmt.Errorf("%w: %s has %d frames, want %d", ErrInvalidAnimation, d, len(sequence), FramesPerDirection)
		}
		for _, frame := range sequence {
			if frame < 0 || frame >= cols*rows {
				return nil, fmt.Errorf("%w: %s frame %d outside %dx%d sheet", ErrInvalidAnimation, d, frame, cols, rows)
			}
		}
		table[d] = append([]int(nil), sequence...)
	}

	return &Animation{
		Cols:      cols,
		Rows:      rows,
		frames:    table,
		direction: DirectionDown,
	}, nil
}

// Face switches to the sequence of d, keeping the position inside the sequence
func (a *Animation) Face(d Direction) {
	if _, ok := a.frames[d]; ok {
		a.direction = d
	}
}

func (a *Animation) Direction() Direction {
	return a.direction
}

// Frame returns the sheet index currently displayed
func (a *Animation) Frame() int {
	return a.frames[a.direction][a.index]
}

// Advance accumulates dt and steps one frame once a frame period has elapsed.
// It reports whether the displayed frame changed.
func (a *Animation) Advance(dt float64) bool {
	a.elapsed += dt
	if a.elapsed+frameEpsilon < 1.0/FramesPerSecond {
		return false
	}

	a.elapsed = 0
	a.index = (a.index + 1) % FramesPerDirection
	return true
}

// Region returns the atlas cell of the current frame
func (a *Animation) Region() Region {
	return AtlasRegion(a.Frame(), a.Cols, a.Rows)
}
