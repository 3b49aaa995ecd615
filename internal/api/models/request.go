package models

// SimulateRequest represents the request body for running a simulation
type SimulateRequest struct {
	Config  SimulationConfig `json:"config" binding:"required"`
	Options SimulateOptions  `json:"options,omitempty"`
}

// SimulationConfig contains the policy configuration
type SimulationConfig struct {
	PolicyFile string       `json:"policy_file,omitempty"`
	Policy     PolicyConfig `json:"policy,omitempty"`
}

// PolicyConfig defines policy and economic parameters
type PolicyConfig struct {
	Name                string  `json:"name,omitempty"`
	ProjectValue        float64 `json:"project_value"`
	MarketRate          float64 `json:"market_rate"`
	SubsidizedRate      float64 `json:"subsidized_rate"`
	DiscountRate        float64 `json:"discount_rate,omitempty"`
	FundAmount          float64 `json:"fund_amount"`
	TermYears           int     `json:"term_years"`
	DemandElasticity    float64 `json:"demand_elasticity,omitempty"`
	AbatementTonnesCO2e float64 `json:"abatement_tonnes_co2e,omitempty"`
}

// SimulateOptions contains optional simulation parameters
type SimulateOptions struct {
	IncludeSchedules bool `json:"include_schedules,omitempty"` // default: false
}

// CompareRequest represents a request to compare multiple policy variations
type CompareRequest struct {
	BaseConfig SimulationConfig      `json:"base_config" binding:"required"`
	Variations []SimulationVariation `json:"variations" binding:"required"`
}

// SimulationVariation defines a variation to evaluate
type SimulationVariation struct {
	Name   string           `json:"name" binding:"required"`
	Config SimulationConfig `json:"config" binding:"required"`
}
