package main

import (
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
)

var globalTimer time.Duration

func UpdateDelta() time.Duration {
	tps := eb.TPS()
	if tps <= 0 {
		tps = eb.DefaultTPS
	}
	return time.Duration(f64(time.Second) / f64(tps))
}

func UpdateGlobalTimer() {
	globalTimer += UpdateDelta()
}

func GlobalTimerNow() time.Duration {
	return globalTimer
}

func TimeSinceNow(t time.Duration) time.Duration {
	return GlobalTimerNow() - t
}

type Timer struct {
	Duration time.Duration
	Current  time.Duration
}

func (t *Timer) TickUp() {
	t.Current += UpdateDelta()
}

func (t *Timer) TickDown() {
	t.Current -= UpdateDelta()
}

func (t *Timer) ClampCurrent() {
	t.Current = Clamp(t.Current, 0, t.Duration)
}

func (t *Timer) Normalize() float64 {
	return Clamp(f64(t.Current)/f64(t.Duration), 0, 1)
}
