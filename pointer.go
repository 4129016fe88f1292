package main

import (
	"time"
)

// PointerTracker keeps a one frame deep pointer history in the
// canvas local, Y flipped coordinate space the shaders expect.
//
// All times come from the global timer so tests can feed their own.
type PointerTracker struct {
	IdleTimeout time.Duration

	curX, curY   float64
	prevX, prevY float64

	lastMove time.Duration
	active   bool
}

func NewPointerTracker(idleTimeout time.Duration) PointerTracker {
	return PointerTracker{
		IdleTimeout: idleTimeout,
	}
}

// Move records a pointer position. The previous position is kept,
// one frame deep, so the quad carries the motion segment.
// Calls with an unchanged position are ignored and don't count
// as movement for the idle timeout.
func (pt *PointerTracker) Move(x, y float64, now time.Duration) {
	if pt.active && x == pt.curX && y == pt.curY {
		return
	}

	if !pt.active || now-pt.lastMove > pt.IdleTimeout {
		// fresh start, otherwise the first splat after going
		// idle would smear across the whole jump
		pt.prevX, pt.prevY = x, y
	} else {
		pt.prevX, pt.prevY = pt.curX, pt.curY
	}

	pt.curX, pt.curY = x, y
	pt.lastMove = now
	pt.active = true
}

// Leave forces the pointer idle immediately without waiting
// for the timeout.
func (pt *PointerTracker) Leave() {
	pt.active = false
}

// Quad returns (curX, curY, prevX, prevY) for the simulation pass,
// or the zero quad when the pointer has been idle for longer than
// IdleTimeout. Once idle it stays the zero quad for any later now.
func (pt *PointerTracker) Quad(now time.Duration) [4]float64 {
	if !pt.active {
		return [4]float64{}
	}

	if now-pt.lastMove > pt.IdleTimeout {
		return [4]float64{}
	}

	return [4]float64{pt.curX, pt.curY, pt.prevX, pt.prevY}
}

func (pt *PointerTracker) IsIdle(now time.Duration) bool {
	return !pt.active || now-pt.lastMove > pt.IdleTimeout
}
