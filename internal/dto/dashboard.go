package dto

import (
	"github.com/akaunku/akaunku-backend/internal/core/domain"
	"github.com/akaunku/akaunku-backend/internal/utils/finance"
	"github.com/shopspring/decimal"
)

// ClientSummary is one row of the bookkeeper's client roster: the client
// plus headline figures from their most recent statement.
type ClientSummary struct {
	Client     ProfileResponse  `json:"client"`
	LatestYear int              `json:"latestYear,omitempty"`
	Revenue    *decimal.Decimal `json:"revenue,omitempty"`
	NetProfit  *decimal.Decimal `json:"netProfit,omitempty"`
}

// BookkeeperDashboard is the payload assembled for role=bookkeeper.
type BookkeeperDashboard struct {
	Clients          []ClientSummary                 `json:"clients"`
	StatementCount   int                             `json:"statementCount"`
	SubmissionCounts map[domain.SubmissionStatus]int `json:"submissionCounts"`
	PendingDocuments int                             `json:"pendingDocuments"`
}

// ClientYear is one year of a client's own dashboard: the statement, its
// metrics and the derived tax figures when a computation exists.
type ClientYear struct {
	Statement domain.FinancialStatement `json:"statement"`
	Metrics   finance.StatementMetrics  `json:"metrics"`
	Tax       *finance.TaxResult        `json:"tax,omitempty"`
}

// ClientDashboard is the payload assembled for role=client.
type ClientDashboard struct {
	Years       []ClientYear           `json:"years"`
	Submissions []domain.TaxSubmission `json:"submissions"`
}

// DashboardResponse is the role-dispatched dashboard envelope. Exactly one
// of Bookkeeper and Client is set, matching the profile's role.
type DashboardResponse struct {
	Role       domain.UserRole      `json:"role"`
	Bookkeeper *BookkeeperDashboard `json:"bookkeeper,omitempty"`
	Client     *ClientDashboard     `json:"client,omitempty"`
}
