package models

import (
	"github.com/shopspring/decimal"
)

// FinancialStatement is the database representation of a financial
// statement row. UNIQUE(client_id, year) is enforced by the schema.
type FinancialStatement struct {
	StatementID  string `db:"statement_id"`
	ClientID     string `db:"client_id"`
	BookkeeperID string `db:"bookkeeper_id"`
	Year         int    `db:"year"`

	Revenue  decimal.Decimal `db:"revenue"`
	Cost     decimal.Decimal `db:"cost"`
	Expenses decimal.Decimal `db:"expenses"`

	FixedAsset       decimal.Decimal `db:"fixed_asset"`
	CurrentAsset     decimal.Decimal `db:"current_asset"`
	FixedLiability   decimal.Decimal `db:"fixed_liability"`
	CurrentLiability decimal.Decimal `db:"current_liability"`
	OwnersEquity     decimal.Decimal `db:"owners_equity"`

	AuditFields
}
