package services

import (
	"context"

	"github.com/akaunku/akaunku-backend/internal/core/domain"
	"github.com/akaunku/akaunku-backend/internal/dto"
)

// DashboardSvcFacade assembles the role-dispatched dashboard payload.
// Exactly one of the two disjoint subtrees is built, chosen by the
// profile's role; a client profile never receives bookkeeper data.
type DashboardSvcFacade interface {
	BuildDashboard(ctx context.Context, requester *domain.Profile) (*dto.DashboardResponse, error)
}
