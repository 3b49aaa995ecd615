package model

import (
	"errors"
	"fmt"
)

// PolicyParams defines the policy and economic parameters of one evaluation.
// Units:
//   - ProjectValue, FundAmount: currency units
//   - MarketRate, SubsidizedRate, DiscountRate: annual fractions (0.078 = 7.8% a.a.)
//   - TermYears: amortization term in years
//   - DemandElasticity: demand response to the relative rate reduction; positive
//     values increase demand when the subsidized rate drops below the market rate
//   - AbatementTonnesCO2e: avoided tCO2e per project (0 = unknown)
type PolicyParams struct {
	ProjectValue        float64
	MarketRate          float64
	SubsidizedRate      float64
	DiscountRate        float64
	FundAmount          float64
	TermYears           int
	DemandElasticity    float64
	AbatementTonnesCO2e float64
}

// InvalidParameterError reports a policy parameter that fails validation.
type InvalidParameterError struct {
	Param  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Param, e.Reason)
}

// IsInvalidParameter reports whether err is (or wraps) an InvalidParameterError.
func IsInvalidParameter(err error) bool {
	var ipe *InvalidParameterError
	return errors.As(err, &ipe)
}

func NewPolicy(params PolicyParams) (*PolicyParams, error) {
	p := params
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p PolicyParams) Validate() error {
	if p.ProjectValue <= 0 {
		return &InvalidParameterError{Param: "project_value", Reason: "must be > 0"}
	}
	if p.FundAmount < 0 {
		return &InvalidParameterError{Param: "fund_amount", Reason: "must be >= 0"}
	}
	if p.MarketRate < 0 {
		return &InvalidParameterError{Param: "market_rate", Reason: "must be >= 0"}
	}
	if p.SubsidizedRate < 0 {
		return &InvalidParameterError{Param: "subsidized_rate", Reason: "must be >= 0"}
	}
	if p.DiscountRate < 0 {
		return &InvalidParameterError{Param: "discount_rate", Reason: "must be >= 0"}
	}
	if p.TermYears <= 0 {
		return &InvalidParameterError{Param: "term_years", Reason: "must be > 0"}
	}
	if p.AbatementTonnesCO2e < 0 {
		return &InvalidParameterError{Param: "abatement_tonnes_co2e", Reason: "must be >= 0"}
	}
	return nil
}

// TermMonths converts the amortization term to monthly periods.
func (p PolicyParams) TermMonths() int {
	return p.TermYears * 12
}

// RateReduction is the relative drop from the market rate to the subsidized
// rate, in [0,1] when the subsidized rate does not exceed the market rate.
// Zero when the market rate is zero (no reduction is expressible).
func (p PolicyParams) RateReduction() float64 {
	if p.MarketRate <= 0 {
		return 0
	}
	return (p.MarketRate - p.SubsidizedRate) / p.MarketRate
}
