package finance

// PaymentRow is one period of an amortization schedule.
type PaymentRow struct {
	Period    int     `json:"period"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

// AmortizationSchedule expands a Price-system loan into its per-period
// payment breakdown. The final period absorbs rounding drift so the closing
// balance is exactly zero.
func AmortizationSchedule(principal, periodRate float64, periods int) []PaymentRow {
	if periods <= 0 || principal <= 0 {
		return nil
	}
	payment := AnnuityPayment(principal, periodRate, periods)
	rows := make([]PaymentRow, 0, periods)
	balance := principal
	for t := 1; t <= periods; t++ {
		interest := balance * periodRate
		amort := payment - interest
		if t == periods {
			amort = balance
			payment = amort + interest
		}
		balance -= amort
		rows = append(rows, PaymentRow{
			Period:    t,
			Payment:   payment,
			Interest:  interest,
			Principal: amort,
			Balance:   balance,
		})
	}
	return rows
}
