package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"fundsim/internal/api/models"
	"fundsim/internal/config"
	"fundsim/internal/finance"
	"fundsim/internal/model"
	"fundsim/internal/repository"
	"fundsim/internal/simulate"

	"github.com/gin-gonic/gin"
)

// SimulateHandler handles simulation requests
type SimulateHandler struct {
	store repository.ResultStore
}

// NewSimulateHandler creates a new simulate handler backed by the given store
func NewSimulateHandler(store repository.ResultStore) *SimulateHandler {
	return &SimulateHandler{store: store}
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	cfg, err := h.buildConfig(req.Config)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return
	}

	engine := simulate.New()
	result, err := engine.Evaluate(cfg.Policy.ToModelParams())
	if err != nil {
		status := http.StatusInternalServerError
		code := "SIMULATION_ERROR"
		if model.IsInvalidParameter(err) {
			status = http.StatusBadRequest
			code = "INVALID_PARAMETER"
		}
		c.JSON(status, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    code,
				Message: err.Error(),
			},
		})
		return
	}

	id := requestID(req)
	// Saving is best-effort: a failed store must not fail the run.
	if err := h.store.Save(id, result); err != nil {
		log.Printf("SimulateHandler: failed to store result %s: %v", id, err)
		id = ""
	}

	c.JSON(http.StatusOK, models.SimulateResponse{
		ID:        id,
		Status:    "completed",
		Scenarios: buildScenarios(result, req.Options.IncludeSchedules),
	})
}

// GetSimulation handles GET /api/v1/simulations/:id
func (h *SimulateHandler) GetSimulation(c *gin.Context) {
	id := c.Param("id")
	result, ok := h.store.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SIMULATION_NOT_FOUND",
				Message: "No stored simulation with that id. Results expire; re-run the simulation.",
			},
		})
		return
	}
	c.JSON(http.StatusOK, models.SimulateResponse{
		ID:        id,
		Status:    "completed",
		Scenarios: buildScenarios(result, true),
	})
}

// CompareSimulations handles POST /api/v1/simulate/compare
func (h *SimulateHandler) CompareSimulations(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	engine := simulate.New()
	comparison := make([]models.ComparisonResult, 0, len(req.Variations))

	for _, variation := range req.Variations {
		merged := h.mergeConfig(req.BaseConfig, variation.Config)

		cfg, err := h.buildConfig(merged)
		if err != nil {
			continue // Skip invalid configs
		}
		result, err := engine.Evaluate(cfg.Policy.ToModelParams())
		if err != nil {
			continue // Skip failed evaluations
		}

		comparison = append(comparison, models.ComparisonResult{
			Name:      variation.Name,
			Scenarios: buildScenarios(result, false),
		})
	}

	c.JSON(http.StatusOK, models.CompareResponse{Comparison: comparison})
}

// Helper methods

func (h *SimulateHandler) buildConfig(req models.SimulationConfig) (*config.Config, error) {
	cfg := &config.Config{
		PolicyFile: req.PolicyFile,
		Policy: config.PolicyConfig{
			Name:                req.Policy.Name,
			ProjectValue:        req.Policy.ProjectValue,
			MarketRate:          req.Policy.MarketRate,
			SubsidizedRate:      req.Policy.SubsidizedRate,
			DiscountRate:        req.Policy.DiscountRate,
			FundAmount:          req.Policy.FundAmount,
			TermYears:           req.Policy.TermYears,
			DemandElasticity:    req.Policy.DemandElasticity,
			AbatementTonnesCO2e: req.Policy.AbatementTonnesCO2e,
		},
	}

	// If policy_file is set, it names a sector preset (e.g. "industry") under
	// the sector directory; the request config overrides its fields.
	if cfg.PolicyFile != "" {
		policyPath := filepath.Join(sectorDir(), cfg.PolicyFile+".yaml")
		loaded, err := config.LoadUnchecked(policyPath)
		if err == nil {
			cfg.Policy = config.MergePolicy(loaded.Policy, cfg.Policy)
		} else {
			log.Printf("SimulateHandler: failed to load sector preset %s: %v", policyPath, err)
		}
	}

	// Apply default DiscountRate if not set (default to the market rate).
	if cfg.Policy.DiscountRate == 0 {
		cfg.Policy.DiscountRate = cfg.Policy.MarketRate
	}

	return cfg, nil
}

func (h *SimulateHandler) mergeConfig(base, override models.SimulationConfig) models.SimulationConfig {
	merged := base
	if override.PolicyFile != "" {
		merged.PolicyFile = override.PolicyFile
	}
	merged.Policy = mergePolicy(base.Policy, override.Policy)
	return merged
}

func mergePolicy(base, override models.PolicyConfig) models.PolicyConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.ProjectValue != 0 {
		out.ProjectValue = override.ProjectValue
	}
	if override.MarketRate != 0 {
		out.MarketRate = override.MarketRate
	}
	if override.SubsidizedRate != 0 {
		out.SubsidizedRate = override.SubsidizedRate
	}
	if override.DiscountRate != 0 {
		out.DiscountRate = override.DiscountRate
	}
	if override.FundAmount != 0 {
		out.FundAmount = override.FundAmount
	}
	if override.TermYears != 0 {
		out.TermYears = override.TermYears
	}
	if override.DemandElasticity != 0 {
		out.DemandElasticity = override.DemandElasticity
	}
	if override.AbatementTonnesCO2e != 0 {
		out.AbatementTonnesCO2e = override.AbatementTonnesCO2e
	}
	return out
}

func buildScenarios(result *simulate.Result, includeSchedules bool) []models.ScenarioSummary {
	out := make([]models.ScenarioSummary, len(result.Scenarios))
	for i, s := range result.Scenarios {
		summary := models.ScenarioSummary{
			Modality:             string(s.Modality),
			ProjectsFinanceable:  s.ProjectsFinanceable,
			CapacityUnbounded:    s.CapacityUnbounded,
			ProjectsDemanded:     s.ProjectsDemanded,
			ProjectsEffective:    s.ProjectsEffective,
			MonthlyPayment:       s.MonthlyPayment,
			TotalFinancingCost:   s.TotalFinancingCost,
			TotalInterest:        s.TotalInterest,
			BeneficiaryNPV:       s.BeneficiaryNPV,
			SubsidyPerProject:    s.SubsidyPerProject,
			FundOutlay:           s.FundOutlay,
			CostPerTonneCO2e:     s.CostPerTonneCO2e,
			Leverage:             s.Leverage,
			AllocationEfficiency: s.AllocationEfficiency,
		}
		if includeSchedules {
			summary.Schedule = convertSchedule(s.Schedule)
		}
		out[i] = summary
	}
	return out
}

func convertSchedule(rows []finance.PaymentRow) []models.PaymentRow {
	if len(rows) == 0 {
		return nil
	}
	out := make([]models.PaymentRow, len(rows))
	for i, r := range rows {
		out[i] = models.PaymentRow{
			Period:    r.Period,
			Payment:   r.Payment,
			Interest:  r.Interest,
			Principal: r.Principal,
			Balance:   r.Balance,
		}
	}
	return out
}

// requestID derives a stable ID from the request payload so identical runs
// share a cache entry.
func requestID(req models.SimulateRequest) string {
	raw, err := json.Marshal(req.Config)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])[:16]
}

func sectorDir() string {
	dir := os.Getenv("SECTOR_DIR")
	if dir == "" {
		wd, err := os.Getwd()
		if err == nil {
			dir = filepath.Join(wd, "examples", "sectors")
		} else {
			dir = "./examples/sectors"
		}
	}
	return dir
}
