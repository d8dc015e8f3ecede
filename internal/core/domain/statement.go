package domain

import (
	"github.com/shopspring/decimal"
)

// FinancialStatement is the annual revenue/cost/expense and balance-sheet
// record for one client, maintained by one bookkeeper. Exactly one row may
// exist per (client, year); the schema enforces this with a unique
// constraint.
type FinancialStatement struct {
	StatementID  string `json:"statementID"` // Primary Key (UUID)
	ClientID     string `json:"clientID"`    // FK -> profiles.profile_id (role=client)
	BookkeeperID string `json:"bookkeeperID"`
	Year         int    `json:"year"`

	// Income statement
	Revenue  decimal.Decimal `json:"revenue"`
	Cost     decimal.Decimal `json:"cost"`
	Expenses decimal.Decimal `json:"expenses"`

	// Balance sheet
	FixedAsset       decimal.Decimal `json:"fixedAsset"`
	CurrentAsset     decimal.Decimal `json:"currentAsset"`
	FixedLiability   decimal.Decimal `json:"fixedLiability"`
	CurrentLiability decimal.Decimal `json:"currentLiability"`
	OwnersEquity     decimal.Decimal `json:"ownersEquity"`

	AuditFields
}
