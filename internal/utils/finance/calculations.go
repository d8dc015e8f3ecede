// Package finance holds the pure derivation functions shared by services and
// handlers: profit figures, margin percentages and balance-sheet ratios over
// a financial statement, and the tax liability arithmetic. Keeping them in
// one place avoids each caller re-deriving the same figures ad hoc.
package finance

import (
	"encoding/json"

	"github.com/akaunku/akaunku-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// pctPrecision is the number of decimal places percentages are rounded to.
const pctPrecision = 2

var hundred = decimal.NewFromInt(100)

// Ratio is a balance-sheet ratio that may be undefined. A zero denominator
// yields Valid=false rather than a silently misleading number; it marshals
// to JSON null in that case.
type Ratio struct {
	Value decimal.Decimal
	Valid bool
}

// MarshalJSON renders an undefined ratio as null.
func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(r.Value)
}

// UnmarshalJSON accepts null for an undefined ratio.
func (r *Ratio) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Ratio{}
		return nil
	}
	if err := json.Unmarshal(data, &r.Value); err != nil {
		return err
	}
	r.Valid = true
	return nil
}

// GrossProfit is revenue less cost of sales.
func GrossProfit(revenue, cost decimal.Decimal) decimal.Decimal {
	return revenue.Sub(cost)
}

// GrossProfitPct is gross profit as a percentage of revenue, zero when
// revenue is not positive.
func GrossProfitPct(revenue, grossProfit decimal.Decimal) decimal.Decimal {
	if !revenue.IsPositive() {
		return decimal.Zero
	}
	return grossProfit.Div(revenue).Mul(hundred).Round(pctPrecision)
}

// NetProfit is gross profit less operating expenses.
func NetProfit(grossProfit, expenses decimal.Decimal) decimal.Decimal {
	return grossProfit.Sub(expenses)
}

// NetProfitPct is net profit as a percentage of revenue, zero when revenue
// is not positive.
func NetProfitPct(revenue, netProfit decimal.Decimal) decimal.Decimal {
	if !revenue.IsPositive() {
		return decimal.Zero
	}
	return netProfit.Div(revenue).Mul(hundred).Round(pctPrecision)
}

// WorkingCapital is current assets less current liabilities.
func WorkingCapital(currentAsset, currentLiability decimal.Decimal) decimal.Decimal {
	return currentAsset.Sub(currentLiability)
}

// CurrentRatio is current assets over current liabilities. Undefined when
// the entity has no current liabilities.
func CurrentRatio(currentAsset, currentLiability decimal.Decimal) Ratio {
	if currentLiability.IsZero() {
		return Ratio{}
	}
	return Ratio{Value: currentAsset.Div(currentLiability).Round(pctPrecision), Valid: true}
}

// DebtToEquity is fixed (long-term) liabilities over owners' equity.
// Undefined when equity is zero.
func DebtToEquity(fixedLiability, ownersEquity decimal.Decimal) Ratio {
	if ownersEquity.IsZero() {
		return Ratio{}
	}
	return Ratio{Value: fixedLiability.Div(ownersEquity).Round(pctPrecision), Valid: true}
}

// ReturnOnAssets is net profit as a percentage of total assets. Undefined
// when total assets are zero.
func ReturnOnAssets(netProfit, fixedAsset, currentAsset decimal.Decimal) Ratio {
	totalAssets := fixedAsset.Add(currentAsset)
	if totalAssets.IsZero() {
		return Ratio{}
	}
	return Ratio{Value: netProfit.Div(totalAssets).Mul(hundred).Round(pctPrecision), Valid: true}
}

// StatementMetrics bundles every figure derived from one financial statement.
type StatementMetrics struct {
	GrossProfit    decimal.Decimal `json:"grossProfit"`
	GrossProfitPct decimal.Decimal `json:"grossProfitPct"`
	NetProfit      decimal.Decimal `json:"netProfit"`
	NetProfitPct   decimal.Decimal `json:"netProfitPct"`
	WorkingCapital decimal.Decimal `json:"workingCapital"`
	CurrentRatio   Ratio           `json:"currentRatio"`
	DebtToEquity   Ratio           `json:"debtToEquity"`
	ReturnOnAssets Ratio           `json:"returnOnAssets"`
}

// ComputeStatementMetrics derives all metrics for one statement in a single
// pass.
func ComputeStatementMetrics(s domain.FinancialStatement) StatementMetrics {
	gross := GrossProfit(s.Revenue, s.Cost)
	net := NetProfit(gross, s.Expenses)
	return StatementMetrics{
		GrossProfit:    gross,
		GrossProfitPct: GrossProfitPct(s.Revenue, gross),
		NetProfit:      net,
		NetProfitPct:   NetProfitPct(s.Revenue, net),
		WorkingCapital: WorkingCapital(s.CurrentAsset, s.CurrentLiability),
		CurrentRatio:   CurrentRatio(s.CurrentAsset, s.CurrentLiability),
		DebtToEquity:   DebtToEquity(s.FixedLiability, s.OwnersEquity),
		ReturnOnAssets: ReturnOnAssets(net, s.FixedAsset, s.CurrentAsset),
	}
}
