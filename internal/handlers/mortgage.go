package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"homescout-listings/internal/models"
	"homescout-listings/internal/services"
)

type MortgageHandler struct {
	mortgageService *services.MortgageService
}

func NewMortgageHandler(mortgageService *services.MortgageService) *MortgageHandler {
	return &MortgageHandler{mortgageService: mortgageService}
}

// CalculationResponse pairs the reconciled input with its result so the UI
// can re-render both down-payment views.
type CalculationResponse struct {
	Input  models.LoanInput  `json:"input"`
	Result models.LoanResult `json:"result"`
}

// Calculate godoc
// @Summary Calculate mortgage payments
// @Description Compute the monthly payment, principal/interest split and totals for a loan
// @Tags Mortgage
// @Accept json
// @Produce json
// @Param input body models.LoanInput true "Loan parameters"
// @Success 200 {object} CalculationResponse
// @Failure 400 {object} map[string]interface{}
// @Router /mortgage/calculate [post]
func (h *MortgageHandler) Calculate(c *gin.Context) {
	var input models.LoanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{
			"message": "invalid loan input payload",
			"code":    "INVALID_PARAMETERS",
		}})
		return
	}

	normalized, result := h.mortgageService.Calculate(input)
	c.JSON(http.StatusOK, CalculationResponse{
		Input:  normalized,
		Result: result,
	})
}
