package main

// PingPong holds exactly two equally sized surfaces and a single
// toggling bit that decides which one gets written this frame.
//
// Surface allocation is injected so the swap and resize rules
// can be checked without an actual GPU surface.
type PingPong[S any] struct {
	surfaces [2]S
	front    int

	width  int
	height int

	frameIndex int64

	alloc   func(width, height int) S
	dispose func(S)
}

func NewPingPong[S any](
	width, height int,
	alloc func(width, height int) S,
	dispose func(S),
) *PingPong[S] {
	p := new(PingPong[S])

	p.alloc = alloc
	p.dispose = dispose

	p.width = width
	p.height = height

	p.surfaces[0] = alloc(width, height)
	p.surfaces[1] = alloc(width, height)

	return p
}

// Current is this frame's write target.
func (p *PingPong[S]) Current() S {
	return p.surfaces[p.front]
}

// Previous is this frame's read source.
func (p *PingPong[S]) Previous() S {
	return p.surfaces[p.front^1]
}

// Swap exchanges the write target and the read source.
// Call it exactly once per completed frame, never mid frame.
func (p *PingPong[S]) Swap() {
	p.front ^= 1
}

func (p *PingPong[S]) Advance() {
	p.frameIndex++
}

func (p *PingPong[S]) FrameIndex() int64 {
	return p.frameIndex
}

func (p *PingPong[S]) Size() (int, int) {
	return p.width, p.height
}

// Resize throws away both surfaces and allocates fresh ones.
// The field has no valid history after a resize so the frame
// index goes back to 0 and the simulation restarts cold.
func (p *PingPong[S]) Resize(width, height int) {
	if width == p.width && height == p.height {
		return
	}

	p.disposeSurfaces()

	p.surfaces[0] = p.alloc(width, height)
	p.surfaces[1] = p.alloc(width, height)

	p.width = width
	p.height = height

	p.front = 0
	p.frameIndex = 0
}

func (p *PingPong[S]) Dispose() {
	p.disposeSurfaces()

	var zero S
	p.surfaces[0] = zero
	p.surfaces[1] = zero
}

func (p *PingPong[S]) disposeSurfaces() {
	if p.dispose == nil {
		return
	}
	p.dispose(p.surfaces[0])
	p.dispose(p.surfaces[1])
}
