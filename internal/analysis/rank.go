package analysis

import (
	"sort"

	"fundsim/internal/model"
	"fundsim/internal/simulate"
)

// Variation is a named parameter set to evaluate alongside others.
type Variation struct {
	Name   string
	Params model.PolicyParams
}

// Outcome pairs a variation with its evaluated result.
type Outcome struct {
	Name   string
	Result *simulate.Result
}

// EvaluateAll runs every variation through the engine. Variations that fail
// validation are skipped rather than aborting the whole comparison.
func EvaluateAll(engine *simulate.Engine, variations []Variation) []Outcome {
	out := make([]Outcome, 0, len(variations))
	for _, v := range variations {
		res, err := engine.Evaluate(v.Params)
		if err != nil {
			continue
		}
		out = append(out, Outcome{Name: v.Name, Result: res})
	}
	return out
}

// RankByLeverage sorts outcomes descending by the subsidy scenario's
// private-capital leverage.
func RankByLeverage(outcomes []Outcome) []Outcome {
	ranked := append([]Outcome(nil), outcomes...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return subsidyOf(ranked[i]).Leverage > subsidyOf(ranked[j]).Leverage
	})
	return ranked
}

// RankByCostPerTonne sorts outcomes ascending by the subsidy scenario's cost
// per avoided tonne. Outcomes without an abatement figure sort last.
func RankByCostPerTonne(outcomes []Outcome) []Outcome {
	ranked := append([]Outcome(nil), outcomes...)
	sort.SliceStable(ranked, func(i, j int) bool {
		a := subsidyOf(ranked[i]).CostPerTonneCO2e
		b := subsidyOf(ranked[j]).CostPerTonneCO2e
		if a <= 0 {
			return false
		}
		if b <= 0 {
			return true
		}
		return a < b
	})
	return ranked
}

func subsidyOf(o Outcome) *simulate.ScenarioResult {
	if s := o.Result.Scenario(model.ModalitySubsidy); s != nil {
		return s
	}
	return &simulate.ScenarioResult{}
}
