package main

import (
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebi "github.com/hajimehoshi/ebiten/v2/inpututil"
)

var touchIdBuf []eb.TouchID

// UpdatePointerInput samples the mouse cursor (or the first active
// touch) once per tick and feeds it to the tracker in canvas local,
// Y flipped coordinates. A cursor outside the canvas counts as a
// pointer leave.
func UpdatePointerInput(pt *PointerTracker, width, height float64) {
	now := GlobalTimerNow()

	cursor := CursorFPt()

	touchIdBuf = eb.AppendTouchIDs(touchIdBuf[:0])
	if len(touchIdBuf) > 0 {
		tx, ty := eb.TouchPosition(touchIdBuf[0])
		cursor = FPt(f64(tx), f64(ty))
	}

	if !cursor.In(FRectWH(width, height)) {
		pt.Leave()
		return
	}

	pt.Move(cursor.X, height-cursor.Y, now)
}

func IsKeyPressed(key eb.Key) bool {
	return eb.IsKeyPressed(key)
}

func IsKeyJustPressed(key eb.Key) bool {
	return ebi.IsKeyJustPressed(key)
}

var keyRepeatMap = make(map[eb.Key]time.Duration)

func HandleKeyRepeat(
	firstRate, repeatRate time.Duration,
	key eb.Key,
) bool {
	if !IsKeyPressed(key) {
		keyRepeatMap[key] = 0
		return false
	}

	if IsKeyJustPressed(key) {
		keyRepeatMap[key] = GlobalTimerNow() + firstRate
		return true
	}

	time, ok := keyRepeatMap[key]

	if !ok {
		keyRepeatMap[key] = GlobalTimerNow() + firstRate
		return true
	} else {
		now := GlobalTimerNow()
		if now-time > repeatRate {
			keyRepeatMap[key] = now
			return true
		}
	}

	return false
}
