package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

const (
	ShowDebugConsoleKey = eb.KeyF1
	ShowTunerKey        = eb.KeyF2

	ReloadAssetsKey eb.Key = eb.KeyF5
	SaveParamsKey   eb.Key = eb.KeyF10

	CopyParamsKey  eb.Key = eb.KeyC
	PasteParamsKey eb.Key = eb.KeyV

	TunerUpKey       eb.Key = eb.KeyW
	TunerDownKey     eb.Key = eb.KeyS
	TunerDecreaseKey eb.Key = eb.KeyA
	TunerIncreaseKey eb.Key = eb.KeyD

	ScreenshotKey eb.Key = eb.KeyP
)
