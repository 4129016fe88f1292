package main

import (
	_ "embed"
	"os"
)

var (
	//go:embed assets/field_shader.go
	fieldShaderSrc []byte

	//go:embed assets/display_shader.go
	displayShaderSrc []byte
)

// FieldShaderSource returns the simulation pass source.
// With -hot it comes from disk so F5 picks up edits.
func FieldShaderSource() ([]byte, error) {
	if FlagHotReload {
		return os.ReadFile("assets/field_shader.go")
	}
	return fieldShaderSrc, nil
}

func DisplayShaderSource() ([]byte, error) {
	if FlagHotReload {
		return os.ReadFile("assets/display_shader.go")
	}
	return displayShaderSrc, nil
}
