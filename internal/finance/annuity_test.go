package finance

import (
	"math"
	"testing"
)

func TestAnnuityPaymentKnownValue(t *testing.T) {
	// $10,000 at 1% per period over 24 periods is the textbook $470.73.
	got := AnnuityPayment(10000, 0.01, 24)
	if math.Abs(got-470.73) > 0.01 {
		t.Fatalf("expected ~470.73, got %.4f", got)
	}
}

func TestAnnuityPaymentZeroRate(t *testing.T) {
	got := AnnuityPayment(12000, 0, 12)
	if got != 1000 {
		t.Fatalf("expected 1000, got %.4f", got)
	}
}

func TestAnnuityPaymentNearZeroRate(t *testing.T) {
	got := AnnuityPayment(12000, 1e-12, 12)
	if got != 1000 {
		t.Fatalf("expected zero-rate fallback 1000, got %.4f", got)
	}
}

func TestAnnuityPaymentNoPeriods(t *testing.T) {
	if got := AnnuityPayment(10000, 0.01, 0); !math.IsInf(got, 1) {
		t.Fatalf("expected +Inf for zero periods, got %.4f", got)
	}
}

func TestMonthlyRateCompoundsBackToAnnual(t *testing.T) {
	annual := 0.12
	m := MonthlyRate(annual)
	back := math.Pow(1+m, 12) - 1
	if math.Abs(back-annual) > 1e-9 {
		t.Fatalf("monthly rate %.10f does not compound back to %.2f (got %.10f)", m, annual, back)
	}
}

func TestMonthlyRateZero(t *testing.T) {
	if got := MonthlyRate(0); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestNPVZeroRateIsSum(t *testing.T) {
	flows := []float64{100, -30, -30, -30}
	if got := NPV(flows, 0); math.Abs(got-10) > 1e-9 {
		t.Fatalf("expected 10, got %.6f", got)
	}
}

func TestNPVDiscountsLaterFlows(t *testing.T) {
	got := NPV([]float64{0, 110}, 0.10)
	if math.Abs(got-100) > 1e-6 {
		t.Fatalf("expected 100, got %.6f", got)
	}
}

func TestLoanFlows(t *testing.T) {
	flows := LoanFlows(1000, 100, 12)
	if len(flows) != 12 {
		t.Fatalf("expected 12 flows, got %d", len(flows))
	}
	if flows[0] != 900 {
		t.Errorf("expected first flow 900 (principal minus payment), got %.2f", flows[0])
	}
	for t0 := 1; t0 < 12; t0++ {
		if flows[t0] != -100 {
			t.Fatalf("expected flow %d to be -100, got %.2f", t0, flows[t0])
		}
	}
}

func TestAmortizationScheduleBalancesOut(t *testing.T) {
	principal := 50000.0
	rows := AmortizationSchedule(principal, 0.008, 36)
	if len(rows) != 36 {
		t.Fatalf("expected 36 rows, got %d", len(rows))
	}

	var amortized float64
	for _, r := range rows {
		if math.Abs(r.Payment-(r.Interest+r.Principal)) > 1e-6 {
			t.Fatalf("period %d: payment %.6f != interest %.6f + principal %.6f",
				r.Period, r.Payment, r.Interest, r.Principal)
		}
		amortized += r.Principal
	}
	if math.Abs(amortized-principal) > 1e-6 {
		t.Errorf("amortized %.6f, expected full principal %.2f", amortized, principal)
	}
	if last := rows[len(rows)-1].Balance; math.Abs(last) > 1e-9 {
		t.Errorf("expected closing balance 0, got %.9f", last)
	}
}

func TestAmortizationScheduleEmptyForBadInputs(t *testing.T) {
	if rows := AmortizationSchedule(1000, 0.01, 0); rows != nil {
		t.Errorf("expected nil schedule for zero periods")
	}
	if rows := AmortizationSchedule(0, 0.01, 12); rows != nil {
		t.Errorf("expected nil schedule for zero principal")
	}
}
