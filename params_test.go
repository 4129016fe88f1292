package main

import (
	"math"
	"testing"
	"time"
)

func TestDefaultSimParamsAreFinite(t *testing.T) {
	if !DefaultSimParams().IsFinite() {
		t.Fatal("defaults are not finite")
	}
}

func TestSimParamsJsonRoundTrip(t *testing.T) {
	sp := DefaultSimParams()
	sp.BrushRadius = 321
	sp.Softness = 0.25
	sp.PointerIdleTimeout = 250 * time.Millisecond

	jsonBytes, err := SimParamsToJson(sp)
	if err != nil {
		t.Fatalf("failed to serialize : %v", err)
	}

	got, err := SimParamsFromJson(jsonBytes)
	if err != nil {
		t.Fatalf("failed to parse : %v", err)
	}

	if got != sp {
		t.Fatalf("round trip mismatch\ngot  %+v\nwant %+v", got, sp)
	}
}

func TestSimParamsIsFiniteRejectsNaNAndInf(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*SimParams)
	}{
		{"nan brush", func(sp *SimParams) { sp.BrushRadius = math.NaN() }},
		{"inf decay", func(sp *SimParams) { sp.FieldDecay = math.Inf(1) }},
		{"neg inf softness", func(sp *SimParams) { sp.Softness = math.Inf(-1) }},
		{"negative timeout", func(sp *SimParams) { sp.PointerIdleTimeout = -time.Second }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sp := DefaultSimParams()
			tc.mutate(&sp)
			if sp.IsFinite() {
				t.Fatal("IsFinite accepted a poisoned value")
			}
		})
	}
}

func TestSimParamsFromJsonBadInput(t *testing.T) {
	testCases := []struct {
		name string
		json string
	}{
		{"not json", "hello"},
		{"bad color", `{"colors": ["#000000", "#111111", "#222222", "nope"]}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := SimParamsFromJson([]byte(tc.json)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
