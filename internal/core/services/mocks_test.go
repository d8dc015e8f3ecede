package services_test

import (
	"context"
	"time"

	"github.com/akaunku/akaunku-backend/internal/core/domain"
	portsrepo "github.com/akaunku/akaunku-backend/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock ProfileRepository ---

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) SaveProfile(ctx context.Context, profile domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	args := m.Called(ctx, profileID)
	var profile *domain.Profile
	if args.Get(0) != nil {
		profile = args.Get(0).(*domain.Profile)
	}
	return profile, args.Error(1)
}

func (m *MockProfileRepository) FindProfileByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	args := m.Called(ctx, email)
	var profile *domain.Profile
	if args.Get(0) != nil {
		profile = args.Get(0).(*domain.Profile)
	}
	return profile, args.Error(1)
}

func (m *MockProfileRepository) FindProfiles(ctx context.Context, role domain.UserRole, limit, offset int) ([]domain.Profile, error) {
	args := m.Called(ctx, role, limit, offset)
	var profiles []domain.Profile
	if args.Get(0) != nil {
		profiles = args.Get(0).([]domain.Profile)
	}
	return profiles, args.Error(1)
}

func (m *MockProfileRepository) UpdateProfile(ctx context.Context, profile domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdateRefreshToken(ctx context.Context, profileID string, refreshTokenHash string, expiryTime time.Time) error {
	args := m.Called(ctx, profileID, refreshTokenHash, expiryTime)
	return args.Error(0)
}

func (m *MockProfileRepository) ClearRefreshToken(ctx context.Context, profileID string) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

func (m *MockProfileRepository) MarkProfileDeleted(ctx context.Context, profileID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, profileID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Mock StatementRepository ---

type MockStatementRepository struct {
	mock.Mock
}

func (m *MockStatementRepository) SaveStatement(ctx context.Context, statement domain.FinancialStatement) error {
	args := m.Called(ctx, statement)
	return args.Error(0)
}

func (m *MockStatementRepository) SaveStatementWithComputation(ctx context.Context, statement domain.FinancialStatement, computation domain.TaxComputation) error {
	args := m.Called(ctx, statement, computation)
	return args.Error(0)
}

func (m *MockStatementRepository) FindStatementByID(ctx context.Context, statementID string) (*domain.FinancialStatement, error) {
	args := m.Called(ctx, statementID)
	var statement *domain.FinancialStatement
	if args.Get(0) != nil {
		statement = args.Get(0).(*domain.FinancialStatement)
	}
	return statement, args.Error(1)
}

func (m *MockStatementRepository) FindStatements(ctx context.Context, filter portsrepo.StatementFilter) ([]domain.FinancialStatement, error) {
	args := m.Called(ctx, filter)
	var statements []domain.FinancialStatement
	if args.Get(0) != nil {
		statements = args.Get(0).([]domain.FinancialStatement)
	}
	return statements, args.Error(1)
}

func (m *MockStatementRepository) UpdateStatement(ctx context.Context, statement domain.FinancialStatement) error {
	args := m.Called(ctx, statement)
	return args.Error(0)
}

func (m *MockStatementRepository) DeleteStatement(ctx context.Context, statementID string) error {
	args := m.Called(ctx, statementID)
	return args.Error(0)
}

// --- Mock TaxComputationRepository ---

type MockTaxComputationRepository struct {
	mock.Mock
}

func (m *MockTaxComputationRepository) SaveComputation(ctx context.Context, computation domain.TaxComputation) error {
	args := m.Called(ctx, computation)
	return args.Error(0)
}

func (m *MockTaxComputationRepository) FindComputationByStatementID(ctx context.Context, statementID string) (*domain.TaxComputation, error) {
	args := m.Called(ctx, statementID)
	var computation *domain.TaxComputation
	if args.Get(0) != nil {
		computation = args.Get(0).(*domain.TaxComputation)
	}
	return computation, args.Error(1)
}

func (m *MockTaxComputationRepository) FindComputationsByStatementIDs(ctx context.Context, statementIDs []string) (map[string]domain.TaxComputation, error) {
	args := m.Called(ctx, statementIDs)
	var computations map[string]domain.TaxComputation
	if args.Get(0) != nil {
		computations = args.Get(0).(map[string]domain.TaxComputation)
	}
	return computations, args.Error(1)
}

// --- Mock TaxSubmissionRepository ---

type MockTaxSubmissionRepository struct {
	mock.Mock
}

func (m *MockTaxSubmissionRepository) SaveSubmission(ctx context.Context, submission domain.TaxSubmission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockTaxSubmissionRepository) FindSubmissionByID(ctx context.Context, submissionID string) (*domain.TaxSubmission, error) {
	args := m.Called(ctx, submissionID)
	var submission *domain.TaxSubmission
	if args.Get(0) != nil {
		submission = args.Get(0).(*domain.TaxSubmission)
	}
	return submission, args.Error(1)
}

func (m *MockTaxSubmissionRepository) FindSubmissions(ctx context.Context, filter portsrepo.SubmissionFilter) ([]domain.TaxSubmission, error) {
	args := m.Called(ctx, filter)
	var submissions []domain.TaxSubmission
	if args.Get(0) != nil {
		submissions = args.Get(0).([]domain.TaxSubmission)
	}
	return submissions, args.Error(1)
}

func (m *MockTaxSubmissionRepository) UpdateSubmission(ctx context.Context, submission domain.TaxSubmission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockTaxSubmissionRepository) DeleteSubmission(ctx context.Context, submissionID string) error {
	args := m.Called(ctx, submissionID)
	return args.Error(0)
}

func (m *MockTaxSubmissionRepository) CountSubmissionsByStatus(ctx context.Context, bookkeeperID string) (map[domain.SubmissionStatus]int, error) {
	args := m.Called(ctx, bookkeeperID)
	var counts map[domain.SubmissionStatus]int
	if args.Get(0) != nil {
		counts = args.Get(0).(map[domain.SubmissionStatus]int)
	}
	return counts, args.Error(1)
}

// --- Mock DocumentRepository ---

type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) SaveDocument(ctx context.Context, document domain.Document) error {
	args := m.Called(ctx, document)
	return args.Error(0)
}

func (m *MockDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID)
	var document *domain.Document
	if args.Get(0) != nil {
		document = args.Get(0).(*domain.Document)
	}
	return document, args.Error(1)
}

func (m *MockDocumentRepository) FindDocuments(ctx context.Context, filter portsrepo.DocumentFilter) ([]domain.Document, error) {
	args := m.Called(ctx, filter)
	var documents []domain.Document
	if args.Get(0) != nil {
		documents = args.Get(0).([]domain.Document)
	}
	return documents, args.Error(1)
}

func (m *MockDocumentRepository) UpdateDocumentStatus(ctx context.Context, documentID string, status domain.DocumentStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, documentID, status, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockDocumentRepository) CountDocumentsByStatus(ctx context.Context, bookkeeperID string, status domain.DocumentStatus) (int, error) {
	args := m.Called(ctx, bookkeeperID, status)
	return args.Int(0), args.Error(1)
}
