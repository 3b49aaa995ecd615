package simulate

import (
	"math"

	"fundsim/internal/finance"
	"fundsim/internal/model"
)

// subsidyEpsilon is the threshold below which a per-project subsidy is
// treated as zero, making the fund's capacity unbounded.
const subsidyEpsilon = 1e-9

type Engine struct{}

func New() *Engine { return &Engine{} }

// Evaluate computes one ScenarioResult per financing modality
// (credit at market rate, interest subsidy, full grant).
func (e *Engine) Evaluate(p model.PolicyParams) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	months := p.TermMonths()
	rateMarket := finance.MonthlyRate(p.MarketRate)
	rateSub := finance.MonthlyRate(p.SubsidizedRate)
	rateDisc := finance.MonthlyRate(p.DiscountRate)

	payMarket := finance.AnnuityPayment(p.ProjectValue, rateMarket, months)
	paySub := finance.AnnuityPayment(p.ProjectValue, rateSub, months)

	credit := e.creditScenario(p, payMarket, rateMarket, rateDisc, months)
	subsidy := e.subsidyScenario(p, payMarket, paySub, rateSub, rateDisc, months)
	grant := e.grantScenario(p)

	return &Result{
		Params:    p,
		Scenarios: []ScenarioResult{credit, subsidy, grant},
	}, nil
}

func (e *Engine) creditScenario(p model.PolicyParams, payment, periodRate, discRate float64, months int) ScenarioResult {
	capacity := wholeProjects(p.FundAmount, p.ProjectValue)
	totalCost := payment * float64(months)

	s := ScenarioResult{
		Modality:            model.ModalityCredit,
		ProjectsFinanceable: capacity,
		ProjectsDemanded:    capacity,
		ProjectsEffective:   capacity,
		MonthlyPayment:      payment,
		TotalFinancingCost:  totalCost,
		TotalInterest:       totalCost - p.ProjectValue,
		BeneficiaryNPV:      finance.NPV(finance.LoanFlows(p.ProjectValue, payment, months), discRate),
		SubsidyPerProject:   0,
		FundOutlay:          capacity * p.ProjectValue,
		// Lending the full value mobilizes no private capital.
		Leverage: 0,
		Schedule: finance.AmortizationSchedule(p.ProjectValue, periodRate, months),
	}
	if capacity > 0 {
		s.AllocationEfficiency = 1
	}
	return s
}

func (e *Engine) subsidyScenario(p model.PolicyParams, payMarket, paySub, periodRate, discRate float64, months int) ScenarioResult {
	subsidyPerProject := (payMarket - paySub) * float64(months)
	totalCost := paySub * float64(months)

	s := ScenarioResult{
		Modality:           model.ModalitySubsidy,
		MonthlyPayment:     paySub,
		TotalFinancingCost: totalCost,
		TotalInterest:      totalCost - p.ProjectValue,
		BeneficiaryNPV:     finance.NPV(finance.LoanFlows(p.ProjectValue, paySub, months), discRate),
		Schedule:           finance.AmortizationSchedule(p.ProjectValue, periodRate, months),
	}

	// Demand response: the baseline is what the fund could lend at the
	// market rate; the rate reduction scales it through the elasticity.
	baseDemand := wholeProjects(p.FundAmount, p.ProjectValue)
	demand := baseDemand * (1 + p.DemandElasticity*p.RateReduction())
	if demand < 0 {
		demand = 0
	}
	s.ProjectsDemanded = demand

	if subsidyPerProject <= subsidyEpsilon || math.IsInf(subsidyPerProject, 1) {
		// Zero (or negative) subsidy cost: the fund can back any number of
		// projects, so demand is the only limit.
		s.CapacityUnbounded = true
		s.SubsidyPerProject = 0
		s.ProjectsEffective = demand
	} else {
		capacity := wholeProjects(p.FundAmount, subsidyPerProject)
		s.SubsidyPerProject = subsidyPerProject
		s.ProjectsFinanceable = capacity
		s.ProjectsEffective = math.Min(demand, capacity)
		s.Leverage = p.ProjectValue / subsidyPerProject
	}

	s.FundOutlay = s.SubsidyPerProject * s.ProjectsEffective
	if p.AbatementTonnesCO2e > 0 {
		s.CostPerTonneCO2e = s.SubsidyPerProject / p.AbatementTonnesCO2e
	}
	if baseDemand > 0 {
		s.AllocationEfficiency = s.ProjectsEffective / baseDemand
	}
	return s
}

func (e *Engine) grantScenario(p model.PolicyParams) ScenarioResult {
	capacity := wholeProjects(p.FundAmount, p.ProjectValue)

	s := ScenarioResult{
		Modality:            model.ModalityGrant,
		ProjectsFinanceable: capacity,
		ProjectsDemanded:    capacity,
		ProjectsEffective:   capacity,
		// The value is donated: no payments, no interest, NPV is the value received.
		BeneficiaryNPV:    p.ProjectValue,
		SubsidyPerProject: p.ProjectValue,
		FundOutlay:        capacity * p.ProjectValue,
		Leverage:          0,
	}
	if p.AbatementTonnesCO2e > 0 {
		s.CostPerTonneCO2e = p.ProjectValue / p.AbatementTonnesCO2e
	}
	if capacity > 0 {
		s.AllocationEfficiency = 1
	}
	return s
}

// wholeProjects counts the whole projects an amount buys at a given unit
// cost. The epsilon keeps exact multiples from flooring one short.
func wholeProjects(amount, unitCost float64) float64 {
	if unitCost <= 0 {
		return 0
	}
	return math.Floor(amount/unitCost + 1e-9)
}
