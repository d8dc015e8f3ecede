package dto

import (
	"github.com/akaunku/akaunku-backend/internal/core/domain"
	"github.com/akaunku/akaunku-backend/internal/utils/finance"
	"github.com/shopspring/decimal"
)

// CreateStatementRequest is the payload for creating a financial statement.
// An optional embedded tax block is written atomically with the statement.
type CreateStatementRequest struct {
	StatementID string `json:"statementID"` // Optional; server generates when empty. Resubmits upsert.
	ClientID    string `json:"clientID" binding:"required"`
	Year        int    `json:"year" binding:"required,gte=1990,lte=2100"`

	Revenue  decimal.Decimal `json:"revenue"`
	Cost     decimal.Decimal `json:"cost"`
	Expenses decimal.Decimal `json:"expenses"`

	FixedAsset       decimal.Decimal `json:"fixedAsset"`
	CurrentAsset     decimal.Decimal `json:"currentAsset"`
	FixedLiability   decimal.Decimal `json:"fixedLiability"`
	CurrentLiability decimal.Decimal `json:"currentLiability"`
	OwnersEquity     decimal.Decimal `json:"ownersEquity"`

	Tax *TaxComputationRequest `json:"tax,omitempty"`
}

// UpdateStatementRequest is the payload for updating statement figures.
type UpdateStatementRequest struct {
	Revenue  *decimal.Decimal `json:"revenue"`
	Cost     *decimal.Decimal `json:"cost"`
	Expenses *decimal.Decimal `json:"expenses"`

	FixedAsset       *decimal.Decimal `json:"fixedAsset"`
	CurrentAsset     *decimal.Decimal `json:"currentAsset"`
	FixedLiability   *decimal.Decimal `json:"fixedLiability"`
	CurrentLiability *decimal.Decimal `json:"currentLiability"`
	OwnersEquity     *decimal.Decimal `json:"ownersEquity"`
}

// ListStatementsParams defines query parameters for listing statements.
// ClientID is honoured only for bookkeepers; clients are always scoped to
// their own rows.
type ListStatementsParams struct {
	ClientID string `form:"clientID"`
	Year     int    `form:"year"`
	Limit    int    `form:"limit,default=20"`
	Offset   int    `form:"offset,default=0"`
}

// StatementResponse is one statement with its derived metrics.
type StatementResponse struct {
	Statement domain.FinancialStatement `json:"statement"`
	Metrics   finance.StatementMetrics  `json:"metrics"`
}

// StatementDetailResponse additionally carries the linked tax computation
// when one exists.
type StatementDetailResponse struct {
	Statement domain.FinancialStatement `json:"statement"`
	Metrics   finance.StatementMetrics  `json:"metrics"`
	Tax       *TaxComputationResponse   `json:"tax,omitempty"`
}

// ListStatementsResponse wraps the list of statements.
type ListStatementsResponse struct {
	Statements []StatementResponse `json:"statements"`
}

// ToStatementResponse derives metrics for one statement.
func ToStatementResponse(s domain.FinancialStatement) StatementResponse {
	return StatementResponse{
		Statement: s,
		Metrics:   finance.ComputeStatementMetrics(s),
	}
}

// ToListStatementsResponse derives metrics for a slice of statements.
func ToListStatementsResponse(statements []domain.FinancialStatement) ListStatementsResponse {
	out := make([]StatementResponse, len(statements))
	for i, s := range statements {
		out[i] = ToStatementResponse(s)
	}
	return ListStatementsResponse{Statements: out}
}
