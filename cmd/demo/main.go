package main

import (
	"flag"
	"fmt"

	"fundsim/internal/config"
	"fundsim/internal/model"
	"fundsim/internal/simulate"
)

// Demo:
// - Instantiate a policy (defaults, overridable via --config)
// - Evaluate the three financing modalities
// - Print the headline indicators to show how the pieces fit together
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	flag.Parse()

	// Defaults (can be overridden via --config).
	params := model.PolicyParams{
		ProjectValue:        30_000_000,
		MarketRate:          0.078,
		SubsidizedRate:      0.03,
		DiscountRate:        0.12,
		FundAmount:          200_000_000,
		TermYears:           5,
		DemandElasticity:    1.5,
		AbatementTonnesCO2e: 12_000,
	}

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		params = cfg.Policy.ToModelParams()
	}

	engine := simulate.New()
	res, err := engine.Evaluate(params)
	if err != nil {
		panic(err)
	}

	for _, s := range res.Scenarios {
		fmt.Printf("%s:\n", s.Modality)
		fmt.Printf("  projects (capacity/demand/effective): %.0f / %.1f / %.1f\n",
			s.ProjectsFinanceable, s.ProjectsDemanded, s.ProjectsEffective)
		fmt.Printf("  monthly payment: %.2f  beneficiary NPV: %.2f\n", s.MonthlyPayment, s.BeneficiaryNPV)
		fmt.Printf("  subsidy/project: %.2f  fund outlay: %.2f\n", s.SubsidyPerProject, s.FundOutlay)
		fmt.Printf("  cost/tCO2e: %.2f  leverage: %.2fx  efficiency: %.2f\n",
			s.CostPerTonneCO2e, s.Leverage, s.AllocationEfficiency)
	}
}
