package main

import (
	"testing"
)

type fakeSurface struct {
	W, H     int
	Disposed bool
}

func newFakePingPong(w, h int) (*PingPong[*fakeSurface], *[]*fakeSurface) {
	var allocated []*fakeSurface

	p := NewPingPong(
		w, h,
		func(w, h int) *fakeSurface {
			s := &fakeSurface{W: w, H: h}
			allocated = append(allocated, s)
			return s
		},
		func(s *fakeSurface) {
			s.Disposed = true
		},
	)

	return p, &allocated
}

func TestPingPongSwapAlternates(t *testing.T) {
	p, _ := newFakePingPong(800, 600)

	if p.Current() == p.Previous() {
		t.Fatal("current and previous must be distinct surfaces")
	}

	cur := p.Current()
	prev := p.Previous()

	for frame := 0; frame < 10; frame++ {
		p.Swap()
		p.Advance()

		if p.Current() != prev || p.Previous() != cur {
			t.Fatalf("frame %d: roles did not strictly alternate", frame)
		}

		cur, prev = p.Current(), p.Previous()
	}
}

func TestPingPongSwapIsItsOwnInverse(t *testing.T) {
	p, _ := newFakePingPong(8, 8)

	cur := p.Current()
	prev := p.Previous()

	p.Swap()
	p.Swap()

	if p.Current() != cur || p.Previous() != prev {
		t.Fatal("swap(swap(x)) != x")
	}
}

func TestPingPongAdvance(t *testing.T) {
	p, _ := newFakePingPong(8, 8)

	if p.FrameIndex() != 0 {
		t.Fatalf("fresh pair frame index = %d, want 0", p.FrameIndex())
	}

	for i := 0; i < 5; i++ {
		p.Swap()
		p.Advance()
	}

	if p.FrameIndex() != 5 {
		t.Fatalf("frame index = %d, want 5", p.FrameIndex())
	}
}

func TestPingPongResize(t *testing.T) {
	p, allocated := newFakePingPong(800, 600)

	old0, old1 := p.Current(), p.Previous()

	p.Swap()
	p.Advance()
	p.Advance()

	p.Resize(1024, 768)

	if p.FrameIndex() != 0 {
		t.Errorf("frame index after resize = %d, want 0", p.FrameIndex())
	}

	if !old0.Disposed || !old1.Disposed {
		t.Error("old surfaces were not disposed")
	}

	for _, s := range []*fakeSurface{p.Current(), p.Previous()} {
		if s.Disposed {
			t.Error("a live surface is disposed")
		}
		if s.W != 1024 || s.H != 768 {
			t.Errorf("surface size = %dx%d, want 1024x768", s.W, s.H)
		}
	}

	if w, h := p.Size(); w != 1024 || h != 768 {
		t.Errorf("pair size = %dx%d, want 1024x768", w, h)
	}

	if len(*allocated) != 4 {
		t.Errorf("allocations = %d, want 4", len(*allocated))
	}
}

func TestPingPongResizeSameSizeIsNoop(t *testing.T) {
	p, allocated := newFakePingPong(640, 480)

	p.Swap()
	p.Advance()

	cur := p.Current()

	p.Resize(640, 480)

	if p.Current() != cur {
		t.Error("same size resize reallocated surfaces")
	}
	if p.FrameIndex() != 1 {
		t.Errorf("same size resize reset frame index to %d", p.FrameIndex())
	}
	if len(*allocated) != 2 {
		t.Errorf("allocations = %d, want 2", len(*allocated))
	}
}

func TestPingPongDispose(t *testing.T) {
	p, allocated := newFakePingPong(16, 16)

	p.Dispose()

	for _, s := range *allocated {
		if !s.Disposed {
			t.Error("dispose left a surface alive")
		}
	}
}
