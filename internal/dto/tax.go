package dto

import (
	"github.com/akaunku/akaunku-backend/internal/core/domain"
	"github.com/akaunku/akaunku-backend/internal/utils/finance"
	"github.com/shopspring/decimal"
)

// TaxComputationRequest is the payload for creating or replacing the tax
// computation linked to a statement.
type TaxComputationRequest struct {
	BusinessIncome       decimal.Decimal `json:"businessIncome"`
	DisallowableExpenses decimal.Decimal `json:"disallowableExpenses"`
	CapitalAllowance     decimal.Decimal `json:"capitalAllowance"`
	PersonalRelief       decimal.Decimal `json:"personalRelief"`
	TaxRebate            decimal.Decimal `json:"taxRebate"`
	TaxRate              decimal.Decimal `json:"taxRate" binding:"required"`
}

// TaxComputationResponse is a computation with its derived figures.
type TaxComputationResponse struct {
	Computation domain.TaxComputation `json:"computation"`
	Result      finance.TaxResult     `json:"result"`
}

// ToTaxComputationResponse derives the tax figures for one computation.
func ToTaxComputationResponse(c domain.TaxComputation) TaxComputationResponse {
	return TaxComputationResponse{
		Computation: c,
		Result:      finance.ComputeTax(c),
	}
}
