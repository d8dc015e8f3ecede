package finance_test

import (
	"testing"

	"github.com/akaunku/akaunku-backend/internal/core/domain"
	"github.com/akaunku/akaunku-backend/internal/utils/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeTaxReferenceFigures(t *testing.T) {
	c := domain.TaxComputation{
		BusinessIncome:       d(50000),
		DisallowableExpenses: d(5000),
		CapitalAllowance:     d(3000),
		PersonalRelief:       d(2000),
		TaxRate:              d(24),
		TaxRebate:            d(1000),
	}
	r := finance.ComputeTax(c)

	assert.True(t, r.TaxableIncome.Equal(d(50000)), "taxableIncome = %s", r.TaxableIncome)
	assert.True(t, r.TaxPayable.Equal(d(11000)), "taxPayable = %s", r.TaxPayable)
	assert.Equal(t, "22", r.EffectiveTaxRate.String())
}

func TestTaxPayableNeverNegative(t *testing.T) {
	cases := []struct {
		name          string
		taxableIncome decimal.Decimal
		rate          decimal.Decimal
		rebate        decimal.Decimal
	}{
		{"negative taxable income", d(-10000), d(24), d(0)},
		{"rebate exceeds liability", d(1000), d(24), d(5000)},
		{"zero everything", d(0), d(0), d(0)},
		{"rebate on zero income", d(0), d(24), d(400)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payable := finance.TaxPayable(tc.taxableIncome, tc.rate, tc.rebate)
			assert.False(t, payable.IsNegative(), "taxPayable = %s", payable)
		})
	}
}

func TestEffectiveTaxRateZeroWhenNoTaxableIncome(t *testing.T) {
	assert.True(t, finance.EffectiveTaxRate(d(0), d(0)).IsZero())
	assert.True(t, finance.EffectiveTaxRate(d(-5000), d(0)).IsZero())
}

func TestTaxableIncomeMayGoNegative(t *testing.T) {
	taxable := finance.TaxableIncome(d(1000), d(0), d(5000), d(2000))
	assert.True(t, taxable.Equal(d(-6000)))

	r := finance.ComputeTax(domain.TaxComputation{
		BusinessIncome:   d(1000),
		CapitalAllowance: d(5000),
		PersonalRelief:   d(2000),
		TaxRate:          d(24),
	})
	assert.True(t, r.TaxPayable.IsZero())
	assert.True(t, r.EffectiveTaxRate.IsZero())
}
