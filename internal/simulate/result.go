package simulate

import (
	"fundsim/internal/finance"
	"fundsim/internal/model"
)

// ScenarioResult is the per-modality output of one evaluation.
// This is the primary artifact for "what the fund buys" under a modality.
type ScenarioResult struct {
	Modality model.Modality

	// ProjectsFinanceable is the fund's own capacity in whole projects.
	// When CapacityUnbounded is set (subsidy differential ~0) the capacity
	// is effectively infinite and ProjectsFinanceable is left at zero.
	ProjectsFinanceable float64
	CapacityUnbounded   bool

	// ProjectsDemanded is the elasticity-adjusted demand estimate.
	// Only meaningful for the subsidy modality; equals capacity otherwise.
	ProjectsDemanded  float64
	ProjectsEffective float64

	MonthlyPayment     float64
	TotalFinancingCost float64
	TotalInterest      float64
	BeneficiaryNPV     float64

	SubsidyPerProject float64
	FundOutlay        float64

	CostPerTonneCO2e     float64
	Leverage             float64
	AllocationEfficiency float64

	Schedule []finance.PaymentRow
}

type Result struct {
	Params    model.PolicyParams
	Scenarios []ScenarioResult
}

// Scenario returns the result for a modality, or nil if absent.
func (r *Result) Scenario(m model.Modality) *ScenarioResult {
	for i := range r.Scenarios {
		if r.Scenarios[i].Modality == m {
			return &r.Scenarios[i]
		}
	}
	return nil
}
