package handlers

import (
	"net/http"

	"fundsim/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ListModalities handles GET /api/v1/modalities
func ListModalities(c *gin.Context) {
	modalities := []models.ModalityInfo{
		{
			ID:          "CREDIT",
			Name:        "Credit at market rate",
			Description: "The fund lends the full project value at the market interest rate. Capital is recovered through repayment; no subsidy cost.",
		},
		{
			ID:          "SUBSIDY",
			Name:        "Interest subsidy",
			Description: "Private lenders finance the project; the fund pays the payment differential between the market and the subsidized rate over the term.",
		},
		{
			ID:          "GRANT",
			Name:        "Full grant",
			Description: "The fund donates the full project value. No repayment and no private capital involved.",
		},
	}
	c.JSON(http.StatusOK, gin.H{"modalities": modalities})
}

// ListIndicators handles GET /api/v1/indicators
func ListIndicators(c *gin.Context) {
	indicators := []models.IndicatorInfo{
		{
			ID:          "projects_effective",
			Name:        "Effective projects",
			Unit:        "projects",
			Description: "Projects actually financeable once demand and fund capacity are both accounted for.",
		},
		{
			ID:          "beneficiary_npv",
			Name:        "Beneficiary NPV",
			Unit:        "currency",
			Description: "Net present value of the financing to the beneficiary at their discount rate.",
		},
		{
			ID:          "subsidy_per_project",
			Name:        "Subsidy cost per project",
			Unit:        "currency",
			Description: "What the fund spends per project under the modality.",
		},
		{
			ID:          "cost_per_tonne_co2e",
			Name:        "Cost per avoided tonne",
			Unit:        "currency/tCO2e",
			Description: "Fund cost per project divided by the avoided emissions per project.",
		},
		{
			ID:          "leverage",
			Name:        "Private-capital leverage",
			Unit:        "x",
			Description: "Private capital mobilized per unit of fund outlay.",
		},
		{
			ID:          "allocation_efficiency",
			Name:        "Allocation efficiency",
			Unit:        "fraction",
			Description: "Effective projects relative to the baseline demand at the market rate.",
		},
	}
	c.JSON(http.StatusOK, gin.H{"indicators": indicators})
}
