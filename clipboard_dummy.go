//go:build js || (!windows && !cgo)

package main

var TheClipboardManager struct {
	Initialized bool
}

func InitClipboardManager() {
	ErrorLogger.Printf("clipboard is disabled on this platform")
}

func ClipboardWriteText(str string) {
}

func ClipboardReadText() string {
	return ""
}
