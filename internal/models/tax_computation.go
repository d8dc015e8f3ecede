package models

import (
	"github.com/shopspring/decimal"
)

// TaxComputation is the database representation of a tax computation row.
// UNIQUE(statement_id) keeps the relationship one-to-one.
type TaxComputation struct {
	ComputationID string `db:"computation_id"`
	StatementID   string `db:"statement_id"`

	BusinessIncome       decimal.Decimal `db:"business_income"`
	DisallowableExpenses decimal.Decimal `db:"disallowable_expenses"`
	CapitalAllowance     decimal.Decimal `db:"capital_allowance"`
	PersonalRelief       decimal.Decimal `db:"personal_relief"`
	TaxRebate            decimal.Decimal `db:"tax_rebate"`
	TaxRate              decimal.Decimal `db:"tax_rate"`

	AuditFields
}
