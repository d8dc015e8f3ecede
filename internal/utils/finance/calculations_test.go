package finance_test

import (
	"encoding/json"
	"testing"

	"github.com/akaunku/akaunku-backend/internal/core/domain"
	"github.com/akaunku/akaunku-backend/internal/utils/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestGrossProfit(t *testing.T) {
	assert.True(t, finance.GrossProfit(d(100000), d(40000)).Equal(d(60000)))
	assert.True(t, finance.GrossProfit(d(0), d(500)).Equal(d(-500)), "cost above revenue yields negative gross profit")
}

func TestNetProfitIdentity(t *testing.T) {
	// netProfit must equal grossProfit - expenses for arbitrary figures.
	cases := []struct{ revenue, cost, expenses int64 }{
		{100000, 40000, 20000},
		{0, 0, 0},
		{5000, 8000, 1000},
		{123456, 654, 321},
	}
	for _, tc := range cases {
		gross := finance.GrossProfit(d(tc.revenue), d(tc.cost))
		net := finance.NetProfit(gross, d(tc.expenses))
		assert.True(t, net.Equal(gross.Sub(d(tc.expenses))))
	}
}

func TestStatementMetricsReferenceFigures(t *testing.T) {
	s := domain.FinancialStatement{
		Revenue:  d(100000),
		Cost:     d(40000),
		Expenses: d(20000),
	}
	m := finance.ComputeStatementMetrics(s)

	assert.True(t, m.GrossProfit.Equal(d(60000)), "grossProfit = %s", m.GrossProfit)
	assert.Equal(t, "60", m.GrossProfitPct.String())
	assert.True(t, m.NetProfit.Equal(d(40000)), "netProfit = %s", m.NetProfit)
	assert.Equal(t, "40", m.NetProfitPct.String())
}

func TestMarginPctZeroRevenue(t *testing.T) {
	assert.True(t, finance.GrossProfitPct(d(0), d(100)).IsZero())
	assert.True(t, finance.NetProfitPct(d(-5), d(100)).IsZero())
}

func TestWorkingCapital(t *testing.T) {
	assert.True(t, finance.WorkingCapital(d(70000), d(30000)).Equal(d(40000)))
	assert.True(t, finance.WorkingCapital(d(10000), d(25000)).Equal(d(-15000)))
}

func TestCurrentRatio(t *testing.T) {
	r := finance.CurrentRatio(d(50000), d(20000))
	require.True(t, r.Valid)
	assert.Equal(t, "2.5", r.Value.String())

	// No current liabilities: the ratio is undefined, not a huge number.
	r = finance.CurrentRatio(d(50000), d(0))
	assert.False(t, r.Valid)
}

func TestDebtToEquity(t *testing.T) {
	r := finance.DebtToEquity(d(30000), d(60000))
	require.True(t, r.Valid)
	assert.Equal(t, "0.5", r.Value.String())

	r = finance.DebtToEquity(d(30000), d(0))
	assert.False(t, r.Valid)
}

func TestReturnOnAssets(t *testing.T) {
	r := finance.ReturnOnAssets(d(40000), d(150000), d(50000))
	require.True(t, r.Valid)
	assert.Equal(t, "20", r.Value.String())

	r = finance.ReturnOnAssets(d(40000), d(0), d(0))
	assert.False(t, r.Valid)
}

func TestRatioJSON(t *testing.T) {
	undefined, err := json.Marshal(finance.Ratio{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(undefined))

	defined, err := json.Marshal(finance.Ratio{Value: decimal.NewFromFloat(1.25), Valid: true})
	require.NoError(t, err)
	assert.Equal(t, `"1.25"`, string(defined))

	var roundTripped finance.Ratio
	require.NoError(t, json.Unmarshal(defined, &roundTripped))
	assert.True(t, roundTripped.Valid)
	assert.True(t, roundTripped.Value.Equal(decimal.NewFromFloat(1.25)))

	require.NoError(t, json.Unmarshal([]byte("null"), &roundTripped))
	assert.False(t, roundTripped.Valid)
}
