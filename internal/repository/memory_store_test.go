package repository

import (
	"testing"

	"fundsim/internal/model"
	"fundsim/internal/simulate"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	res := &simulate.Result{
		Scenarios: []simulate.ScenarioResult{
			{Modality: model.ModalityCredit, ProjectsEffective: 6},
		},
	}
	if err := store.Save("abc123", res); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, ok := store.Get("abc123")
	if !ok {
		t.Fatal("expected stored result")
	}
	if got.Scenarios[0].ProjectsEffective != 6 {
		t.Errorf("expected 6 effective projects, got %v", got.Scenarios[0].ProjectsEffective)
	}
}

func TestMemoryStoreMiss(t *testing.T) {
	store := NewMemoryStore()
	if _, ok := store.Get("missing"); ok {
		t.Fatal("expected miss for unknown id")
	}
}
