package finance

import (
	"github.com/akaunku/akaunku-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TaxableIncome is business income plus disallowable expenses less capital
// allowance and personal relief. It may be negative.
func TaxableIncome(businessIncome, disallowableExpenses, capitalAllowance, personalRelief decimal.Decimal) decimal.Decimal {
	return businessIncome.
		Add(disallowableExpenses).
		Sub(capitalAllowance).
		Sub(personalRelief)
}

// TaxPayable applies the flat rate to taxable income, deducts the rebate and
// floors the result at zero. A negative taxable income never produces a
// refund.
func TaxPayable(taxableIncome, taxRate, taxRebate decimal.Decimal) decimal.Decimal {
	payable := taxableIncome.Mul(taxRate).Div(hundred).Sub(taxRebate)
	if payable.IsNegative() {
		return decimal.Zero
	}
	return payable
}

// EffectiveTaxRate is tax payable as a percentage of taxable income, zero
// when taxable income is not positive.
func EffectiveTaxRate(taxableIncome, taxPayable decimal.Decimal) decimal.Decimal {
	if !taxableIncome.IsPositive() {
		return decimal.Zero
	}
	return taxPayable.Div(taxableIncome).Mul(hundred).Round(pctPrecision)
}

// TaxResult bundles the figures derived from one tax computation.
type TaxResult struct {
	TaxableIncome    decimal.Decimal `json:"taxableIncome"`
	TaxPayable       decimal.Decimal `json:"taxPayable"`
	EffectiveTaxRate decimal.Decimal `json:"effectiveTaxRate"`
}

// ComputeTax derives taxable income, tax payable and the effective rate from
// one computation record.
func ComputeTax(c domain.TaxComputation) TaxResult {
	taxable := TaxableIncome(c.BusinessIncome, c.DisallowableExpenses, c.CapitalAllowance, c.PersonalRelief)
	payable := TaxPayable(taxable, c.TaxRate, c.TaxRebate)
	return TaxResult{
		TaxableIncome:    taxable,
		TaxPayable:       payable,
		EffectiveTaxRate: EffectiveTaxRate(taxable, payable),
	}
}
