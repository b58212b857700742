// Package playback animates a play by interpolating player positions between
// adjacent frames. Frames are read, never written.
package playback

import (
	"errors"
	"time"

	"github.com/user/playsketch-cli/geom"
	"github.com/user/playsketch-cli/play"
)

// DefaultDuration is the length of one frame-to-frame transition.
const DefaultDuration = time.Second

// ErrNotEnoughFrames is returned when playback starts with fewer than two frames.
var ErrNotEnoughFrames = errors.New("need at least two frames to animate")

// Engine steps through the transitions of a play. It is driven by Tick and holds
// the last produced Scene.
type Engine struct {
	play     *play.Play
	duration time.Duration

	index   int
	elapsed time.Duration
	running bool
	done    bool
	scene   Scene
}

// New creates an engine for p. A non-positive duration selects DefaultDuration.
func New(p *play.Play, duration time.Duration) *Engine {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Engine{play: p, duration: duration}
}

// Start rewinds to the first transition and begins playing.
func (e *Engine) Start() error {
	if e.play.Len() < 2 {
		return ErrNotEnoughFrames
	}
	e.index = 0
	e.elapsed = 0
	e.running = true
	e.done = false
	e.scene = Interpolate(&e.play.Frames[0], 0)
	return nil
}

// Tick advances the clock by dt and returns the scene to display. When a
// transition completes the engine moves to the next pair; after the last pair it
// stops on the final frame.
func (e *Engine) Tick(dt time.Duration) Scene {
	if !e.running {
		return e.scene
	}
	// frames may have been removed underneath a running engine
	if e.index >= e.play.Len()-1 {
		e.finish()
		return e.scene
	}

	e.elapsed += dt
	progress := e.Progress()
	e.scene = Interpolate(&e.play.Frames[e.index], progress)
	e.scene.Index = e.index

	if progress >= 1 {
		e.index++
		if e.index >= e.play.Len()-1 {
			e.finish()
		} else {
			e.elapsed = 0
		}
	}
	return e.scene
}

func (e *Engine) finish() {
	last := e.play.Len() - 1
	e.running = false
	e.done = true
	e.index = last
	e.elapsed = e.duration
	e.scene = Static(&e.play.Frames[last])
	e.scene.Index = last
}

// Stop freezes the current scene. Index reports the frame that was playing.
func (e *Engine) Stop() {
	e.running = false
}

// Running reports whether the engine is advancing on Tick.
func (e *Engine) Running() bool {
	return e.running
}

// Done reports whether playback ran to the final frame.
func (e *Engine) Done() bool {
	return e.done
}

// Index returns the index of the frame the current transition starts from.
func (e *Engine) Index() int {
	return e.index
}

// Progress returns elapsed/duration clamped to [0, 1].
func (e *Engine) Progress() float64 {
	return geom.Clamp01(float64(e.elapsed) / float64(e.duration))
}

// Duration returns the length of one transition.
func (e *Engine) Duration() time.Duration {
	return e.duration
}

// Scene returns the last produced scene.
func (e *Engine) Scene() Scene {
	return e.scene
}
