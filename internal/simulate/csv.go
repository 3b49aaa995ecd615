package simulate

import (
	"encoding/csv"
	"os"
	"strconv"

	"fundsim/internal/finance"
)

// WriteScenarioCSV writes one row per financing modality.
func WriteScenarioCSV(path string, scenarios []ScenarioResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"modality",
		"projects_financeable",
		"capacity_unbounded",
		"projects_demanded",
		"projects_effective",
		"monthly_payment",
		"total_financing_cost",
		"total_interest",
		"beneficiary_npv",
		"subsidy_per_project",
		"fund_outlay",
		"cost_per_tonne_co2e",
		"leverage",
		"allocation_efficiency",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, s := range scenarios {
		row := []string{
			string(s.Modality),
			fmtFloat(s.ProjectsFinanceable),
			strconv.FormatBool(s.CapacityUnbounded),
			fmtFloat(s.ProjectsDemanded),
			fmtFloat(s.ProjectsEffective),
			fmtFloat(s.MonthlyPayment),
			fmtFloat(s.TotalFinancingCost),
			fmtFloat(s.TotalInterest),
			fmtFloat(s.BeneficiaryNPV),
			fmtFloat(s.SubsidyPerProject),
			fmtFloat(s.FundOutlay),
			fmtFloat(s.CostPerTonneCO2e),
			fmtFloat(s.Leverage),
			fmtFloat(s.AllocationEfficiency),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

// WriteScheduleCSV writes a per-period amortization schedule.
func WriteScheduleCSV(path string, rows []finance.PaymentRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"period", "payment", "interest", "principal", "balance"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.Period),
			fmtFloat(r.Payment),
			fmtFloat(r.Interest),
			fmtFloat(r.Principal),
			fmtFloat(r.Balance),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
