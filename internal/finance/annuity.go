package finance

import "math"

// rateEpsilon treats rates this close to zero as zero for numerical stability.
const rateEpsilon = 1e-9

// MonthlyRate converts an annual rate (fraction) to its compound-equivalent
// monthly rate: (1+r)^(1/12) - 1.
func MonthlyRate(annual float64) float64 {
	if annual <= 0 {
		return 0
	}
	return math.Pow(1+annual, 1.0/12) - 1
}

// AnnuityPayment computes the fixed per-period payment of a Price-system
// (French amortization) loan.
//
// periodRate is the rate per period as a fraction. A non-positive period
// count has no meaningful payment and returns +Inf.
func AnnuityPayment(principal, periodRate float64, periods int) float64 {
	if periods <= 0 {
		return math.Inf(1)
	}
	if periodRate <= rateEpsilon {
		return principal / float64(periods)
	}
	den := 1 - math.Pow(1+periodRate, -float64(periods))
	if math.Abs(den) < rateEpsilon {
		return principal / float64(periods)
	}
	return principal * periodRate / den
}

// NPV computes the net present value of a cash-flow series. flows[0] is at
// t=0 and is not discounted.
func NPV(flows []float64, periodRate float64) float64 {
	if math.Abs(periodRate) < rateEpsilon {
		sum := 0.0
		for _, f := range flows {
			sum += f
		}
		return sum
	}
	npv := 0.0
	for t, f := range flows {
		// exp/log form is stable for long horizons.
		df := 1.0
		if t > 0 {
			df = math.Exp(-float64(t) * math.Log(1+periodRate))
		}
		npv += f * df
	}
	return npv
}

// LoanFlows builds the beneficiary cash-flow series of a financed project:
// the principal is received at t=0 net of the first payment, and the fixed
// payment recurs through the remaining periods.
func LoanFlows(principal, payment float64, periods int) []float64 {
	if periods <= 0 {
		return nil
	}
	flows := make([]float64, periods)
	for t := range flows {
		flows[t] = -payment
	}
	flows[0] += principal
	return flows
}
