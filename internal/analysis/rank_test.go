package analysis

import (
	"testing"

	"fundsim/internal/model"
	"fundsim/internal/simulate"
)

func params(subsidizedRate float64) model.PolicyParams {
	return model.PolicyParams{
		ProjectValue:        30_000_000,
		MarketRate:          0.078,
		SubsidizedRate:      subsidizedRate,
		DiscountRate:        0.12,
		FundAmount:          200_000_000,
		TermYears:           5,
		DemandElasticity:    1.5,
		AbatementTonnesCO2e: 12_000,
	}
}

func TestEvaluateAllSkipsInvalidVariations(t *testing.T) {
	bad := params(0.03)
	bad.ProjectValue = 0

	outcomes := EvaluateAll(simulate.New(), []Variation{
		{Name: "good", Params: params(0.03)},
		{Name: "bad", Params: bad},
	})
	if len(outcomes) != 1 {
		t.Fatalf("expected 1 outcome, got %d", len(outcomes))
	}
	if outcomes[0].Name != "good" {
		t.Errorf("expected the valid variation to survive, got %q", outcomes[0].Name)
	}
}

func TestRankByLeverage(t *testing.T) {
	// A shallower subsidy costs less per project, so it leverages more.
	outcomes := EvaluateAll(simulate.New(), []Variation{
		{Name: "deep", Params: params(0.01)},
		{Name: "shallow", Params: params(0.06)},
		{Name: "mid", Params: params(0.03)},
	})
	ranked := RankByLeverage(outcomes)
	if len(ranked) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(ranked))
	}
	want := []string{"shallow", "mid", "deep"}
	for i, name := range want {
		if ranked[i].Name != name {
			t.Errorf("rank %d: expected %q, got %q", i+1, name, ranked[i].Name)
		}
	}
}

func TestRankByCostPerTonne(t *testing.T) {
	noAbatement := params(0.03)
	noAbatement.AbatementTonnesCO2e = 0

	outcomes := EvaluateAll(simulate.New(), []Variation{
		{Name: "deep", Params: params(0.01)},
		{Name: "no-data", Params: noAbatement},
		{Name: "shallow", Params: params(0.06)},
	})
	ranked := RankByCostPerTonne(outcomes)
	if ranked[0].Name != "shallow" {
		t.Errorf("expected cheapest abatement first, got %q", ranked[0].Name)
	}
	if ranked[len(ranked)-1].Name != "no-data" {
		t.Errorf("expected missing abatement data last, got %q", ranked[len(ranked)-1].Name)
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	outcomes := EvaluateAll(simulate.New(), []Variation{
		{Name: "a", Params: params(0.06)},
		{Name: "b", Params: params(0.01)},
	})
	_ = RankByLeverage(outcomes)
	if outcomes[0].Name != "a" || outcomes[1].Name != "b" {
		t.Error("ranking must copy, not reorder the caller's slice")
	}
}
