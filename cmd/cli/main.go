package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"fundsim/internal/analysis"
	"fundsim/internal/config"
	"fundsim/internal/model"
	"fundsim/internal/simulate"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "compare":
		cmdCompare(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --config examples/config.yaml --out results/scenarios.csv")
	fmt.Println("  cli compare --config examples/config.yaml --by leverage")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate evaluates one policy across CREDIT/SUBSIDY/GRANT modalities")
	fmt.Println("  - compare ranks the config's variations by an indicator (leverage or cost_per_tonne)")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("out", "", "Optional: scenario summary CSV path")
	schedulePath := fs.String("schedule", "", "Optional: subsidy amortization schedule CSV path")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	engine := simulate.New()
	res, err := engine.Evaluate(cfg.Policy.ToModelParams())
	if err != nil {
		panic(err)
	}

	printScenarios(res)

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			panic(err)
		}
		if err := simulate.WriteScenarioCSV(*outPath, res.Scenarios); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote %d scenarios to %s\n", len(res.Scenarios), *outPath)
	}

	if *schedulePath != "" {
		sub := res.Scenario(model.ModalitySubsidy)
		if err := os.MkdirAll(filepath.Dir(*schedulePath), 0o755); err != nil {
			panic(err)
		}
		if err := simulate.WriteScheduleCSV(*schedulePath, sub.Schedule); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote %d schedule rows to %s\n", len(sub.Schedule), *schedulePath)
	}
}

func cmdCompare(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config with variations")
	by := fs.String("by", "leverage", "Indicator to rank by: leverage or cost_per_tonne")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	if len(cfg.Variations) == 0 {
		fmt.Println("config has no variations to compare")
		os.Exit(2)
	}

	variations := make([]analysis.Variation, 0, len(cfg.Variations))
	for _, v := range cfg.Variations {
		merged := config.MergePolicy(cfg.Policy, v.Policy)
		variations = append(variations, analysis.Variation{
			Name:   v.Name,
			Params: merged.ToModelParams(),
		})
	}

	outcomes := analysis.EvaluateAll(simulate.New(), variations)
	switch *by {
	case "leverage":
		outcomes = analysis.RankByLeverage(outcomes)
	case "cost_per_tonne":
		outcomes = analysis.RankByCostPerTonne(outcomes)
	default:
		fmt.Printf("unknown indicator %q\n", *by)
		os.Exit(2)
	}

	fmt.Printf("%-4s %-24s %-10s %-12s %-14s %-12s\n", "rank", "variation", "projects", "leverage", "$/tCO2e", "efficiency")
	for i, o := range outcomes {
		sub := o.Result.Scenario(model.ModalitySubsidy)
		fmt.Printf(
			"%-4d %-24s %-10.0f %-12.2f %-14.2f %-12.2f\n",
			i+1,
			o.Name,
			sub.ProjectsEffective,
			sub.Leverage,
			sub.CostPerTonneCO2e,
			sub.AllocationEfficiency,
		)
	}
}

func printScenarios(res *simulate.Result) {
	fmt.Printf("%-9s %-10s %-12s %-14s %-14s %-12s %-10s\n",
		"modality", "projects", "payment", "npv", "subsidy/proj", "$/tCO2e", "leverage")
	for _, s := range res.Scenarios {
		projects := fmt.Sprintf("%.0f", s.ProjectsEffective)
		if s.CapacityUnbounded {
			projects = fmt.Sprintf("%.0f*", s.ProjectsEffective)
		}
		fmt.Printf("%-9s %-10s %-12.2f %-14.2f %-14.2f %-12.2f %-10.2f\n",
			s.Modality,
			projects,
			s.MonthlyPayment,
			s.BeneficiaryNPV,
			s.SubsidyPerProject,
			s.CostPerTonneCO2e,
			s.Leverage,
		)
	}
}
