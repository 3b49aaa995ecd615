package models

// SimulateResponse represents the response from a simulation run
type SimulateResponse struct {
	ID        string            `json:"id,omitempty"`
	Status    string            `json:"status"`
	Scenarios []ScenarioSummary `json:"scenarios"`
}

// ScenarioSummary contains the indicators of one financing modality
type ScenarioSummary struct {
	Modality             string       `json:"modality"`
	ProjectsFinanceable  float64      `json:"projects_financeable"`
	CapacityUnbounded    bool         `json:"capacity_unbounded,omitempty"`
	ProjectsDemanded     float64      `json:"projects_demanded"`
	ProjectsEffective    float64      `json:"projects_effective"`
	MonthlyPayment       float64      `json:"monthly_payment"`
	TotalFinancingCost   float64      `json:"total_financing_cost"`
	TotalInterest        float64      `json:"total_interest"`
	BeneficiaryNPV       float64      `json:"beneficiary_npv"`
	SubsidyPerProject    float64      `json:"subsidy_per_project"`
	FundOutlay           float64      `json:"fund_outlay"`
	CostPerTonneCO2e     float64      `json:"cost_per_tonne_co2e"`
	Leverage             float64      `json:"leverage"`
	AllocationEfficiency float64      `json:"allocation_efficiency"`
	Schedule             []PaymentRow `json:"schedule,omitempty"`
}

// PaymentRow represents one period of an amortization schedule
type PaymentRow struct {
	Period    int     `json:"period"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

// CompareResponse represents the response from a comparison
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one variation
type ComparisonResult struct {
	Name      string            `json:"name"`
	Scenarios []ScenarioSummary `json:"scenarios"`
}

// ModalityInfo describes a financing modality
type ModalityInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// IndicatorInfo describes a computed indicator
type IndicatorInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Unit        string `json:"unit"`
	Description string `json:"description"`
}

// SectorInfo represents information about a sector preset
type SectorInfo struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	File     string      `json:"file"`
	Defaults SectorSpecs `json:"defaults"`
}

// SectorSpecs contains the headline defaults of a sector preset
type SectorSpecs struct {
	ProjectValue        float64 `json:"project_value"`
	AbatementTonnesCO2e float64 `json:"abatement_tonnes_co2e"`
	DemandElasticity    float64 `json:"demand_elasticity"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
