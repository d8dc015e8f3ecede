package domain

import (
	"github.com/shopspring/decimal"
)

// TaxComputation holds the inputs for deriving a client's tax liability for
// one financial statement. One-to-one with FinancialStatement, enforced by a
// unique constraint on statement_id.
type TaxComputation struct {
	ComputationID string `json:"computationID"` // Primary Key (UUID)
	StatementID   string `json:"statementID"`   // FK -> financial_statements, UNIQUE

	BusinessIncome       decimal.Decimal `json:"businessIncome"`
	DisallowableExpenses decimal.Decimal `json:"disallowableExpenses"`
	CapitalAllowance     decimal.Decimal `json:"capitalAllowance"`
	PersonalRelief       decimal.Decimal `json:"personalRelief"`
	TaxRebate            decimal.Decimal `json:"taxRebate"`
	TaxRate              decimal.Decimal `json:"taxRate"` // percentage, e.g. 24 for 24%

	AuditFields
}
