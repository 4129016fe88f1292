package main

import (
	"fmt"
	"image/color"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebu "github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// TunerEntry adapts one SimParams scalar for the tuning HUD.
type TunerEntry struct {
	Name string

	Min, Max float64
	Step     float64

	Get func(*SimParams) float64
	Set func(*SimParams, float64)
}

// StepEntry nudges the entry by dir (-1 or +1) steps,
// clamped to the entry's range.
func StepEntry(entry TunerEntry, params *SimParams, dir float64) {
	v := entry.Get(params)
	v += entry.Step * dir
	v = Clamp(v, entry.Min, entry.Max)
	entry.Set(params, v)
}

func TunerEntries() []TunerEntry {
	return []TunerEntry{
		{
			Name: "brush radius", Min: 1, Max: 600, Step: 5,
			Get: func(sp *SimParams) float64 { return sp.BrushRadius },
			Set: func(sp *SimParams, v float64) { sp.BrushRadius = v },
		},
		{
			Name: "brush strength", Min: 0, Max: 1, Step: 0.05,
			Get: func(sp *SimParams) float64 { return sp.BrushStrength },
			Set: func(sp *SimParams, v float64) { sp.BrushStrength = v },
		},
		{
			Name: "field decay", Min: 0, Max: 1, Step: 0.005,
			Get: func(sp *SimParams) float64 { return sp.FieldDecay },
			Set: func(sp *SimParams, v float64) { sp.FieldDecay = v },
		},
		{
			Name: "trail persistence", Min: 0, Max: 1, Step: 0.005,
			Get: func(sp *SimParams) float64 { return sp.TrailPersistence },
			Set: func(sp *SimParams, v float64) { sp.TrailPersistence = v },
		},
		{
			Name: "stop decay", Min: 0, Max: 1, Step: 0.005,
			Get: func(sp *SimParams) float64 { return sp.StopDecay },
			Set: func(sp *SimParams, v float64) { sp.StopDecay = v },
		},
		{
			Name: "distortion", Min: 0, Max: 200, Step: 2,
			Get: func(sp *SimParams) float64 { return sp.DistortionAmount },
			Set: func(sp *SimParams, v float64) { sp.DistortionAmount = v },
		},
		{
			Name: "color intensity", Min: 0, Max: 4, Step: 0.1,
			Get: func(sp *SimParams) float64 { return sp.ColorIntensity },
			Set: func(sp *SimParams, v float64) { sp.ColorIntensity = v },
		},
		{
			Name: "softness", Min: 0, Max: 1, Step: 0.05,
			Get: func(sp *SimParams) float64 { return sp.Softness },
			Set: func(sp *SimParams, v float64) { sp.Softness = v },
		},
		{
			Name: "idle timeout ms", Min: 0, Max: 2000, Step: 10,
			Get: func(sp *SimParams) float64 {
				return f64(sp.PointerIdleTimeout) / f64(time.Millisecond)
			},
			Set: func(sp *SimParams, v float64) {
				sp.PointerIdleTimeout = time.Duration(v * f64(time.Millisecond))
			},
		},
	}
}

type Tuner struct {
	DoShow bool

	Selected int

	entries []TunerEntry

	notice      string
	noticeTimer Timer
}

func NewTuner() *Tuner {
	t := new(Tuner)

	t.entries = TunerEntries()
	t.noticeTimer.Duration = time.Second * 2

	return t
}

func (t *Tuner) ShowNotice(fmtStr string, values ...any) {
	t.notice = fmt.Sprintf(fmtStr, values...)
	t.noticeTimer.Current = t.noticeTimer.Duration
}

func (t *Tuner) Update(params *SimParams) {
	t.noticeTimer.TickDown()
	t.noticeTimer.ClampCurrent()

	if !t.DoShow {
		return
	}

	const firstRate = time.Millisecond * 300
	const repeatRate = time.Millisecond * 40

	if HandleKeyRepeat(firstRate, repeatRate, TunerUpKey) {
		t.Selected--
	}
	if HandleKeyRepeat(firstRate, repeatRate, TunerDownKey) {
		t.Selected++
	}
	t.Selected = Clamp(t.Selected, 0, len(t.entries)-1)

	if HandleKeyRepeat(firstRate, repeatRate, TunerDecreaseKey) {
		StepEntry(t.entries[t.Selected], params, -1)
	}
	if HandleKeyRepeat(firstRate, repeatRate, TunerIncreaseKey) {
		StepEntry(t.entries[t.Selected], params, +1)
	}
}

func (t *Tuner) Draw(dst *eb.Image, params *SimParams) {
	if t.noticeTimer.Current > 0 {
		_, screenH := ImageSizeF(dst)
		alpha := Lerp(0.0, 0.6, t.noticeTimer.Normalize())
		bg := FRect(0, screenH-28, 300, screenH)
		DrawFilledRect(dst, bg, ColorFade(color.NRGBA{0, 0, 0, 255}, alpha), false)
		ebu.DebugPrintAt(dst, t.notice, 8, int(screenH)-22)
	}

	if !t.DoShow {
		return
	}

	const lineHeight = 16
	const margin = 8
	const panelWidth = 280

	screenW, _ := ImageSizeF(dst)

	panel := FRect(
		screenW-panelWidth, 0,
		screenW, f64(len(t.entries)*lineHeight)+margin*2,
	)
	DrawFilledRect(dst, panel, color.NRGBA{0, 0, 0, 130}, false)
	StrokeRect(dst, panel, 1, color.NRGBA{255, 255, 255, 60}, false)

	for i, entry := range t.entries {
		cursor := "  "
		if i == t.Selected {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%-18s %.3f", cursor, entry.Name, entry.Get(params))

		ebu.DebugPrintAt(
			dst, line,
			int(panel.Min.X)+margin, margin+i*lineHeight,
		)
	}
}
