package main

import (
	"testing"
	"time"
)

const testIdleTimeout = 100 * time.Millisecond

func TestPointerQuadCarriesMotionSegment(t *testing.T) {
	pt := NewPointerTracker(testIdleTimeout)

	pt.Move(100, 100, 0)
	pt.Move(150, 120, 50*time.Millisecond)

	got := pt.Quad(50 * time.Millisecond)
	want := [4]float64{150, 120, 100, 100}

	if got != want {
		t.Fatalf("quad = %v, want %v", got, want)
	}
}

func TestPointerFirstMoveHasNoHistory(t *testing.T) {
	pt := NewPointerTracker(testIdleTimeout)

	pt.Move(42, 24, 0)

	got := pt.Quad(0)
	want := [4]float64{42, 24, 42, 24}

	if got != want {
		t.Fatalf("quad = %v, want %v", got, want)
	}
}

func TestPointerIdleDecay(t *testing.T) {
	pt := NewPointerTracker(testIdleTimeout)

	pt.Move(100, 100, 0)

	if got := pt.Quad(150 * time.Millisecond); got != ([4]float64{}) {
		t.Fatalf("quad after 150ms idle = %v, want zero", got)
	}

	// idle is idempotent, more time changes nothing
	if got := pt.Quad(10 * time.Second); got != ([4]float64{}) {
		t.Fatalf("quad after 10s idle = %v, want zero", got)
	}
}

func TestPointerQuadBeforeTimeout(t *testing.T) {
	pt := NewPointerTracker(testIdleTimeout)

	pt.Move(10, 10, 0)

	if got := pt.Quad(90 * time.Millisecond); got == ([4]float64{}) {
		t.Fatal("pointer went idle before the timeout")
	}
}

func TestPointerLeaveForcesIdleImmediately(t *testing.T) {
	pt := NewPointerTracker(testIdleTimeout)

	pt.Move(100, 100, 0)
	pt.Leave()

	if got := pt.Quad(time.Millisecond); got != ([4]float64{}) {
		t.Fatalf("quad after leave = %v, want zero", got)
	}
}

func TestPointerHistoryIsOneFrameDeep(t *testing.T) {
	pt := NewPointerTracker(testIdleTimeout)

	pt.Move(1, 1, 0)
	pt.Move(2, 2, 10*time.Millisecond)
	pt.Move(3, 3, 20*time.Millisecond)

	got := pt.Quad(20 * time.Millisecond)
	want := [4]float64{3, 3, 2, 2}

	if got != want {
		t.Fatalf("quad = %v, want %v", got, want)
	}
}

func TestPointerUnchangedPositionIsNotMovement(t *testing.T) {
	pt := NewPointerTracker(testIdleTimeout)

	pt.Move(5, 5, 0)

	// polling the same position must not refresh the move time
	pt.Move(5, 5, 60*time.Millisecond)
	pt.Move(5, 5, 120*time.Millisecond)

	if got := pt.Quad(150 * time.Millisecond); got != ([4]float64{}) {
		t.Fatalf("quad = %v, want zero after idle despite repeated polls", got)
	}
}

func TestPointerMoveAfterIdleRestartsHistory(t *testing.T) {
	pt := NewPointerTracker(testIdleTimeout)

	pt.Move(1, 1, 0)
	pt.Move(500, 500, time.Second)

	got := pt.Quad(time.Second)
	want := [4]float64{500, 500, 500, 500}

	if got != want {
		t.Fatalf("quad = %v, want %v (no smear across the idle gap)", got, want)
	}
}

func TestPointerIsIdle(t *testing.T) {
	pt := NewPointerTracker(testIdleTimeout)

	if !pt.IsIdle(0) {
		t.Error("fresh tracker should be idle")
	}

	pt.Move(1, 1, 0)

	if pt.IsIdle(50 * time.Millisecond) {
		t.Error("tracker idle right after a move")
	}
	if !pt.IsIdle(200 * time.Millisecond) {
		t.Error("tracker not idle after the timeout")
	}
}
