package main

import (
	"image"

	eb "github.com/hajimehoshi/ebiten/v2"
)

// FluidField owns the whole fluid gradient pipeline: the two
// offscreen targets, both shader passes and the pointer state.
// The caller holds the handle, there are no package globals.
type FluidField struct {
	Params SimParams

	Pointer PointerTracker

	pair *PingPong[*eb.Image]

	fieldShader   *eb.Shader
	displayShader *eb.Shader
	shaderErr     error

	running  bool
	disposed bool
}

func NewFluidField(width, height int, params SimParams) *FluidField {
	f := new(FluidField)

	f.Params = params
	f.Pointer = NewPointerTracker(params.PointerIdleTimeout)

	f.Init(width, height)

	return f
}

func allocFieldBuffer(width, height int) *eb.Image {
	// unmanaged, the texture is a feedback field and ebiten
	// must not try to sync its pixels back to the CPU
	return eb.NewImageWithOptions(
		image.Rect(0, 0, width, height),
		&eb.NewImageOptions{Unmanaged: true},
	)
}

func disposeFieldBuffer(img *eb.Image) {
	img.Deallocate()
}

// Init moves the field from uninitialized to running.
// Calling it again is a no-op.
func (f *FluidField) Init(width, height int) {
	if f.running || f.disposed {
		return
	}

	f.pair = NewPingPong(width, height, allocFieldBuffer, disposeFieldBuffer)

	f.ReloadShaders()

	f.running = true
}

// ReloadShaders compiles both passes. On failure the old programs
// stay, the error is logged and kept for the debug console.
func (f *FluidField) ReloadShaders() {
	compile := func(load func() ([]byte, error)) (*eb.Shader, error) {
		src, err := load()
		if err != nil {
			return nil, err
		}
		return eb.NewShader(src)
	}

	fieldShader, err := compile(FieldShaderSource)
	if err != nil {
		ErrorLogger.Printf("failed to load field shader : %v", err)
		f.shaderErr = err
		return
	}

	displayShader, err := compile(DisplayShaderSource)
	if err != nil {
		ErrorLogger.Printf("failed to load display shader : %v", err)
		f.shaderErr = err
		return
	}

	f.fieldShader = fieldShader
	f.displayShader = displayShader
	f.shaderErr = nil
}

func (f *FluidField) Update() {
	if !f.running || f.disposed {
		return
	}

	f.Pointer.IdleTimeout = f.Params.PointerIdleTimeout

	w, h := f.pair.Size()
	UpdatePointerInput(&f.Pointer, f64(w), f64(h))

	DebugPrint("frame", f.pair.FrameIndex())
	if f.Pointer.IsIdle(GlobalTimerNow()) {
		DebugPuts("pointer", "idle")
	} else {
		quad := f.Pointer.Quad(GlobalTimerNow())
		DebugPrintf("pointer", "%.0f %.0f", quad[0], quad[1])
	}
	if f.shaderErr != nil {
		DebugPrintf("shader error", "%v", f.shaderErr)
	}
}

// Resize reallocates both targets to the new size and restarts
// the simulation cold. It never pauses the loop.
func (f *FluidField) Resize(width, height int) {
	if !f.running || f.disposed {
		return
	}
	f.pair.Resize(width, height)
}

// Draw runs one full frame: the simulation pass writes the previous
// field into the current target, the display pass composites the
// current target to dst, then the buffer roles swap. Exactly one
// swap per completed frame.
func (f *FluidField) Draw(dst *eb.Image) {
	if !f.running || f.disposed {
		return
	}

	if f.fieldShader == nil || f.displayShader == nil {
		// shader never compiled, show the base color so the
		// page behind doesn't flash garbage
		dst.Fill(f.Params.Colors[0])
		return
	}

	// a tick must never read a buffer whose size disagrees with
	// the resolution uniform
	dstW, dstH := ImageSize(dst)
	f.pair.Resize(dstW, dstH)

	w, h := f.pair.Size()
	timeSec := GlobalTimerNow().Seconds()
	quad := f.Pointer.Quad(GlobalTimerNow())

	// simulation pass, previous -> current
	{
		op := &DrawRectShaderOptions{}
		op.Images[0] = f.pair.Previous()
		op.Uniforms = map[string]any{
			"Time":             timeSec,
			"Frame":            int(f.pair.FrameIndex()),
			"Pointer":          quad,
			"BrushRadius":      f.Params.BrushRadius,
			"BrushStrength":    f.Params.BrushStrength,
			"FieldDecay":       f.Params.FieldDecay,
			"TrailPersistence": f.Params.TrailPersistence,
			"StopDecay":        f.Params.StopDecay,
		}

		BeginBlend(eb.BlendCopy)
		DrawRectShader(f.pair.Current(), w, h, f.fieldShader, op)
		EndBlend()
	}

	// display pass, current -> screen
	{
		op := &DrawRectShaderOptions{}
		op.Images[0] = f.pair.Current()
		op.Uniforms = map[string]any{
			"Time":             timeSec,
			"DistortionAmount": f.Params.DistortionAmount,
			"ColorIntensity":   f.Params.ColorIntensity,
			"Softness":         f.Params.Softness,
			"Color0":           ColorNormalized(f.Params.Colors[0], true),
			"Color1":           ColorNormalized(f.Params.Colors[1], true),
			"Color2":           ColorNormalized(f.Params.Colors[2], true),
			"Color3":           ColorNormalized(f.Params.Colors[3], true),
		}

		DrawRectShader(dst, w, h, f.displayShader, op)
	}

	f.pair.Swap()
	f.pair.Advance()
}

// Dispose releases both targets. The field stops drawing, there
// is no restart.
func (f *FluidField) Dispose() {
	if f.disposed {
		return
	}
	if f.pair != nil {
		f.pair.Dispose()
	}
	f.running = false
	f.disposed = true
}
