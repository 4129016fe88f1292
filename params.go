package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"time"
)

const SimParamsPath = "params.json"

// SimParams are the live tunables of the fluid gradient.
// None of them are validated beyond being finite numbers,
// out of range values just look exaggerated.
type SimParams struct {
	// brush
	BrushRadius   float64 // pixel space radius
	BrushStrength float64 // expected in 0 to 1

	// field
	FieldDecay       float64 // velocity decay per frame, 0 to 1
	TrailPersistence float64 // trail decay per frame while moving
	StopDecay        float64 // trail decay per frame once the pointer idles

	// display
	DistortionAmount float64
	ColorIntensity   float64
	Softness         float64

	// gradient stops, dark to bright
	Colors [4]color.NRGBA

	// how long without movement before the pointer
	// quad collapses to zero
	PointerIdleTimeout time.Duration
}

func DefaultSimParams() SimParams {
	return SimParams{
		BrushRadius:   110,
		BrushStrength: 0.45,

		FieldDecay:       0.94,
		TrailPersistence: 0.965,
		StopDecay:        0.915,

		DistortionAmount: 28,
		ColorIntensity:   1.1,
		Softness:         0.6,

		Colors: [4]color.NRGBA{
			{10, 16, 42, 255},
			{32, 74, 135, 255},
			{64, 201, 193, 255},
			{238, 178, 106, 255},
		},

		PointerIdleTimeout: 100 * time.Millisecond,
	}
}

// IsFinite reports whether every scalar is an actual number.
// NaN or Inf in a uniform poisons the whole field buffer.
func (sp SimParams) IsFinite() bool {
	scalars := [...]float64{
		sp.BrushRadius,
		sp.BrushStrength,
		sp.FieldDecay,
		sp.TrailPersistence,
		sp.StopDecay,
		sp.DistortionAmount,
		sp.ColorIntensity,
		sp.Softness,
	}

	for _, s := range scalars {
		if !IsFinite(s) {
			return false
		}
	}

	return sp.PointerIdleTimeout >= 0
}

type simParamsJson struct {
	BrushRadius   float64 `json:"brushRadius"`
	BrushStrength float64 `json:"brushStrength"`

	FieldDecay       float64 `json:"fieldDecay"`
	TrailPersistence float64 `json:"trailPersistence"`
	StopDecay        float64 `json:"stopDecay"`

	DistortionAmount float64 `json:"distortionAmount"`
	ColorIntensity   float64 `json:"colorIntensity"`
	Softness         float64 `json:"softness"`

	Colors [4]string `json:"colors"`

	PointerIdleTimeoutMillis float64 `json:"pointerIdleTimeoutMillis"`
}

func SimParamsToJson(sp SimParams) ([]byte, error) {
	j := simParamsJson{
		BrushRadius:   sp.BrushRadius,
		BrushStrength: sp.BrushStrength,

		FieldDecay:       sp.FieldDecay,
		TrailPersistence: sp.TrailPersistence,
		StopDecay:        sp.StopDecay,

		DistortionAmount: sp.DistortionAmount,
		ColorIntensity:   sp.ColorIntensity,
		Softness:         sp.Softness,

		PointerIdleTimeoutMillis: f64(sp.PointerIdleTimeout) / f64(time.Millisecond),
	}

	for i, c := range sp.Colors {
		j.Colors[i] = ColorToString(c)
	}

	jsonBytes, err := json.MarshalIndent(j, "", "    ")
	if err != nil {
		return nil, err
	}

	return jsonBytes, nil
}

func SimParamsFromJson(jsonBytes []byte) (SimParams, error) {
	var j simParamsJson

	if err := json.Unmarshal(jsonBytes, &j); err != nil {
		return SimParams{}, err
	}

	sp := SimParams{
		BrushRadius:   j.BrushRadius,
		BrushStrength: j.BrushStrength,

		FieldDecay:       j.FieldDecay,
		TrailPersistence: j.TrailPersistence,
		StopDecay:        j.StopDecay,

		DistortionAmount: j.DistortionAmount,
		ColorIntensity:   j.ColorIntensity,
		Softness:         j.Softness,

		PointerIdleTimeout: time.Duration(j.PointerIdleTimeoutMillis * f64(time.Millisecond)),
	}

	for i, str := range j.Colors {
		c, err := ParseColorString(str)
		if err != nil {
			return SimParams{}, fmt.Errorf("color %d: %w", i, err)
		}
		sp.Colors[i] = c
	}

	if !sp.IsFinite() {
		return SimParams{}, fmt.Errorf("parameters contain NaN or Inf")
	}

	return sp, nil
}

// LoadSimParams reads SimParamsPath. A missing file is not an
// error, you just get the defaults back.
func LoadSimParams() SimParams {
	jsonBytes, err := os.ReadFile(SimParamsPath)
	if err != nil {
		if !os.IsNotExist(err) {
			ErrorLogger.Printf("failed to read %s : %v", SimParamsPath, err)
		}
		return DefaultSimParams()
	}

	sp, err := SimParamsFromJson(jsonBytes)
	if err != nil {
		ErrorLogger.Printf("failed to parse %s : %v", SimParamsPath, err)
		return DefaultSimParams()
	}

	InfoLogger.Printf("loaded parameters from %s", SimParamsPath)

	return sp
}

func SaveSimParams(sp SimParams) {
	jsonBytes, err := SimParamsToJson(sp)
	if err != nil {
		ErrorLogger.Printf("failed to serialize parameters : %v", err)
		return
	}

	if err := os.WriteFile(SimParamsPath, jsonBytes, 0644); err != nil {
		ErrorLogger.Printf("failed to save %s : %v", SimParamsPath, err)
		return
	}

	InfoLogger.Printf("saved parameters to %s", SimParamsPath)
}
