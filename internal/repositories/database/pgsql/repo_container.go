package pgsql

import (
	portsrepo "github.com/akaunku/akaunku-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	profileRepo := newPgxProfileRepository(dbPool)
	statementRepo := newPgxStatementRepository(dbPool)
	taxComputationRepo := newPgxTaxComputationRepository(dbPool)
	taxSubmissionRepo := newPgxTaxSubmissionRepository(dbPool)
	blogRepo := newPgxBlogRepository(dbPool)
	contactRepo := newPgxContactRepository(dbPool)
	documentRepo := newPgxDocumentRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ProfileRepo:        profileRepo,
		StatementRepo:      statementRepo,
		TaxComputationRepo: taxComputationRepo,
		TaxSubmissionRepo:  taxSubmissionRepo,
		BlogRepo:           blogRepo,
		ContactRepo:        contactRepo,
		DocumentRepo:       documentRepo,
	}
}
