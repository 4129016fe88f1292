package main

import (
	"testing"
)

func TestStepEntryClamps(t *testing.T) {
	entry := TunerEntry{
		Name: "test", Min: 0, Max: 1, Step: 0.5,
		Get: func(sp *SimParams) float64 { return sp.Softness },
		Set: func(sp *SimParams, v float64) { sp.Softness = v },
	}

	sp := SimParams{Softness: 0.5}

	StepEntry(entry, &sp, +1)
	StepEntry(entry, &sp, +1)
	StepEntry(entry, &sp, +1)

	if sp.Softness != 1 {
		t.Fatalf("softness = %v, want clamped to 1", sp.Softness)
	}

	for i := 0; i < 10; i++ {
		StepEntry(entry, &sp, -1)
	}

	if sp.Softness != 0 {
		t.Fatalf("softness = %v, want clamped to 0", sp.Softness)
	}
}

func TestTunerEntriesRoundTrip(t *testing.T) {
	sp := DefaultSimParams()

	for _, entry := range TunerEntries() {
		mid := (entry.Min + entry.Max) / 2

		entry.Set(&sp, mid)

		if got := entry.Get(&sp); got != mid {
			t.Errorf("%s: set %v, got back %v", entry.Name, mid, got)
		}
	}

	if !sp.IsFinite() {
		t.Error("tuner produced non finite parameters")
	}
}

func TestTunerEntriesStayInRange(t *testing.T) {
	sp := DefaultSimParams()

	for _, entry := range TunerEntries() {
		for i := 0; i < 1000; i++ {
			StepEntry(entry, &sp, +1)
		}
		if got := entry.Get(&sp); got != entry.Max {
			t.Errorf("%s: got %v after stepping up, want %v", entry.Name, got, entry.Max)
		}

		for i := 0; i < 1000; i++ {
			StepEntry(entry, &sp, -1)
		}
		if got := entry.Get(&sp); got != entry.Min {
			t.Errorf("%s: got %v after stepping down, want %v", entry.Name, got, entry.Min)
		}
	}
}
