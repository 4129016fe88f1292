package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/silbinarywolf/preferdiscretegpu"

	"net/http"
	_ "net/http/pprof"

	eb "github.com/hajimehoshi/ebiten/v2"
)

var (
	ScreenWidth  float64 = 1280
	ScreenHeight float64 = 720
)

var ErrorLogger *log.Logger = log.New(os.Stderr, "ERROR: ", log.Lshortfile)
var InfoLogger *log.Logger = log.New(os.Stdout, "INFO: ", log.Lshortfile)

var FlagHotReload bool
var FlagPProf bool

func init() {
	flag.BoolVar(&FlagHotReload, "hot", false, "reload shaders from disk on F5")
	flag.BoolVar(&FlagPProf, "pprof", false, "enable pprof")
}

type App struct {
	ShowDebugConsole bool

	Field *FluidField
	Tuner *Tuner

	screenshotQueued bool
}

func NewApp() *App {
	a := new(App)

	a.Field = NewFluidField(int(ScreenWidth), int(ScreenHeight), LoadSimParams())
	a.Tuner = NewTuner()

	return a
}

func (a *App) Update() error {
	ClearDebugMsgs()

	// ==========================
	// update global timer
	// ==========================
	UpdateGlobalTimer()

	fpsStr := fmt.Sprintf("%.2f", eb.ActualFPS())
	tpsStr := fmt.Sprintf("%.2f", eb.ActualTPS())

	// ==========================
	// update windows title
	// ==========================
	eb.SetWindowTitle("Gradient Flow FPS: " + fpsStr + " TPS: " + tpsStr)

	// ==========================
	// DebugPrint
	// ==========================
	DebugPrint("FPS", fpsStr)
	DebugPrint("TPS", tpsStr)

	// ==========================
	// hotkeys
	// ==========================
	if IsKeyJustPressed(ShowDebugConsoleKey) {
		a.ShowDebugConsole = !a.ShowDebugConsole
	}

	if IsKeyJustPressed(ShowTunerKey) {
		a.Tuner.DoShow = !a.Tuner.DoShow
	}

	if IsKeyJustPressed(ReloadAssetsKey) {
		a.Field.ReloadShaders()
		a.Field.Params = LoadSimParams()
		a.Tuner.ShowNotice("reloaded")
	}

	if IsKeyJustPressed(SaveParamsKey) {
		SaveSimParams(a.Field.Params)
		a.Tuner.ShowNotice("saved %s", SimParamsPath)
	}

	if IsKeyJustPressed(ScreenshotKey) {
		a.screenshotQueued = true
	}

	// clipboard only answers while the tuner is up, plain C or V
	// on a decorative background would be too easy to fat finger
	if a.Tuner.DoShow {
		if IsKeyJustPressed(CopyParamsKey) {
			if jsonBytes, err := SimParamsToJson(a.Field.Params); err == nil {
				ClipboardWriteText(string(jsonBytes))
				a.Tuner.ShowNotice("copied parameters")
			}
		}

		if IsKeyJustPressed(PasteParamsKey) {
			if sp, err := SimParamsFromJson([]byte(ClipboardReadText())); err == nil {
				a.Field.Params = sp
				a.Tuner.ShowNotice("pasted parameters")
			} else {
				a.Tuner.ShowNotice("paste failed : %v", err)
			}
		}
	}

	// ==========================
	// update components
	// ==========================
	a.Tuner.Update(&a.Field.Params)
	a.Field.Update()

	return nil
}

func (a *App) Draw(dst *eb.Image) {
	a.Field.Draw(dst)

	if a.screenshotQueued {
		a.screenshotQueued = false

		if filename, err := TakeScreenshot(dst); err == nil {
			InfoLogger.Printf("saved screenshot %s", filename)
			a.Tuner.ShowNotice("saved %s", filename)
		} else {
			ErrorLogger.Printf("failed to take screenshot : %v", err)
		}
	}

	a.Tuner.Draw(dst, &a.Field.Params)

	if a.ShowDebugConsole {
		DrawDebugMsgs(dst)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	ScreenWidth = f64(outsideWidth)
	ScreenHeight = f64(outsideHeight)

	a.Field.Resize(outsideWidth, outsideHeight)

	return outsideWidth, outsideHeight
}

func main() {
	flag.Parse()

	if FlagPProf {
		go func() {
			InfoLogger.Print("initializing pprof")
			InfoLogger.Print(http.ListenAndServe("localhost:6060", nil))
		}()
	}

	InitClipboardManager()

	app := NewApp()

	eb.SetVsyncEnabled(true)
	eb.SetWindowSize(int(ScreenWidth), int(ScreenHeight))
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	eb.SetWindowTitle("Gradient Flow")

	if err := eb.RunGame(app); err != nil {
		panic(err)
	}
}
