package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/vendornet/vendor_management_app/internal/apperrors"
	"github.com/vendornet/vendor_management_app/internal/core/domain"
	portssvc "github.com/vendornet/vendor_management_app/internal/core/ports/services"
	"github.com/vendornet/vendor_management_app/internal/core/services"
	"github.com/vendornet/vendor_management_app/internal/dto"
)

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoicesByVendor(ctx context.Context, vendorID string, limit, offset int) ([]domain.Invoice, error) {
	args := m.Called(ctx, vendorID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateValidationFields(ctx context.Context, invoiceID string, expectedAmount, discrepancy, toleranceThreshold decimal.Decimal, updatedBy string) error {
	args := m.Called(ctx, invoiceID, expectedAmount, discrepancy, toleranceThreshold, updatedBy)
	return args.Error(0)
}

// --- Mock VendorRepository ---
type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

func (m *MockVendorRepository) ListVendors(ctx context.Context, limit, offset int) ([]domain.Vendor, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vendor), args.Error(1)
}

// --- Mock TeamMemberRepository (reader) ---
type MockTeamMemberReader struct {
	mock.Mock
}

func (m *MockTeamMemberReader) FindTeamMemberByID(ctx context.Context, teamMemberID string) (*domain.TeamMember, error) {
	args := m.Called(ctx, teamMemberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamMember), args.Error(1)
}

func (m *MockTeamMemberReader) ListActiveTeamMembersByVendor(ctx context.Context, vendorID string) ([]domain.TeamMember, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TeamMember), args.Error(1)
}

func (m *MockTeamMemberReader) ListTeamMembersByVendor(ctx context.Context, vendorID string) ([]domain.TeamMember, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TeamMember), args.Error(1)
}

// --- Mock TimesheetRepository (reader) ---
type MockTimesheetReader struct {
	mock.Mock
}

func (m *MockTimesheetReader) ListEntriesForMembers(ctx context.Context, teamMemberIDs []string, start, end time.Time) ([]domain.TimesheetEntry, error) {
	args := m.Called(ctx, teamMemberIDs, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimesheetEntry), args.Error(1)
}

func (m *MockTimesheetReader) ListEntriesForMember(ctx context.Context, teamMemberID string, start, end time.Time) ([]domain.TimesheetEntry, error) {
	args := m.Called(ctx, teamMemberID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimesheetEntry), args.Error(1)
}

// --- Test Suite ---
type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo    *MockInvoiceRepository
	mockVendorRepo     *MockVendorRepository
	mockTeamMemberRepo *MockTeamMemberReader
	mockTimesheetRepo  *MockTimesheetReader
	service            portssvc.InvoiceSvcFacade

	vendorID    string
	periodStart time.Time
	periodEnd   time.Time
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockVendorRepo = new(MockVendorRepository)
	suite.mockTeamMemberRepo = new(MockTeamMemberReader)
	suite.mockTimesheetRepo = new(MockTimesheetReader)
	suite.service = services.NewInvoiceService(
		suite.mockInvoiceRepo,
		suite.mockVendorRepo,
		suite.mockTeamMemberRepo,
		suite.mockTimesheetRepo,
	)

	suite.vendorID = uuid.NewString()
	suite.periodStart = time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	suite.periodEnd = time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)
}

func (suite *InvoiceServiceTestSuite) activeMember(id, rate string) domain.TeamMember {
	return domain.TeamMember{
		TeamMemberID: id,
		VendorID:     suite.vendorID,
		FirstName:    "Test",
		LastName:     id,
		DailyRate:    decimal.RequireFromString(rate),
		CurrencyCode: "GBP",
		Status:       domain.TeamMemberActive,
	}
}

func workEntry(memberID string, day int, hours string) domain.TimesheetEntry {
	return domain.TimesheetEntry{
		EntryID:      uuid.NewString(),
		TeamMemberID: memberID,
		EntryDate:    time.Date(2025, 5, day, 0, 0, 0, 0, time.UTC),
		Hours:        decimal.NewNullDecimal(decimal.RequireFromString(hours)),
	}
}

func timeOffEntry(memberID string, day int) domain.TimesheetEntry {
	return domain.TimesheetEntry{
		EntryID:      uuid.NewString(),
		TeamMemberID: memberID,
		EntryDate:    time.Date(2025, 5, day, 0, 0, 0, 0, time.UTC),
		TimeOffCode:  "PTO",
	}
}

func (suite *InvoiceServiceTestSuite) invoiceFor(amount string) *domain.Invoice {
	return &domain.Invoice{
		InvoiceID:          uuid.NewString(),
		VendorID:           suite.vendorID,
		InvoiceNumber:      "INV-001",
		Amount:             decimal.RequireFromString(amount),
		CurrencyCode:       "GBP",
		BillingPeriodStart: suite.periodStart,
		BillingPeriodEnd:   suite.periodEnd,
	}
}

func decimalEq(expected string) interface{} {
	want := decimal.RequireFromString(expected)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

// --- CreateInvoice ---

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateInvoiceRequest{
		VendorID:           suite.vendorID,
		InvoiceNumber:      "INV-001",
		Amount:             decimal.RequireFromString("130"),
		CurrencyCode:       "GBP",
		BillingPeriodStart: suite.periodStart,
		BillingPeriodEnd:   suite.periodEnd,
	}

	suite.mockVendorRepo.On("FindVendorByID", ctx, suite.vendorID).Return(&domain.Vendor{VendorID: suite.vendorID}, nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.VendorID == suite.vendorID && inv.InvoiceNumber == "INV-001" &&
			inv.Amount.Equal(req.Amount) && inv.CreatedBy == creatorUserID &&
			!inv.ToleranceThreshold.Valid
	})).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	suite.NotEmpty(invoice.InvoiceID)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_PeriodEndBeforeStart() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		VendorID:           suite.vendorID,
		InvoiceNumber:      "INV-002",
		Amount:             decimal.NewFromInt(100),
		CurrencyCode:       "GBP",
		BillingPeriodStart: suite.periodEnd,
		BillingPeriodEnd:   suite.periodStart,
	}

	invoice, err := suite.service.CreateInvoice(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

// --- CalculateExpectedSpend ---

func (suite *InvoiceServiceTestSuite) TestCalculateExpectedSpend_NoActiveMembers() {
	ctx := context.Background()

	suite.mockTeamMemberRepo.On("ListActiveTeamMembersByVendor", ctx, suite.vendorID).Return([]domain.TeamMember{}, nil).Once()

	spend, err := suite.service.CalculateExpectedSpend(ctx, suite.vendorID, suite.periodStart, suite.periodEnd)

	suite.Require().NoError(err)
	suite.True(spend.Total.IsZero())
	suite.NotNil(spend.Breakdown)
	suite.Empty(spend.Breakdown)
	suite.mockTimesheetRepo.AssertNotCalled(suite.T(), "ListEntriesForMembers", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCalculateExpectedSpend_ProratesDailyRate() {
	ctx := context.Background()
	member := suite.activeMember("m1", "100")

	suite.mockTeamMemberRepo.On("ListActiveTeamMembersByVendor", ctx, suite.vendorID).Return([]domain.TeamMember{member}, nil).Once()
	suite.mockTimesheetRepo.On("ListEntriesForMembers", ctx, []string{"m1"}, suite.periodStart, suite.periodEnd).Return([]domain.TimesheetEntry{
		workEntry("m1", 1, "8"),
		workEntry("m1", 2, "2"),
	}, nil).Once()

	spend, err := suite.service.CalculateExpectedSpend(ctx, suite.vendorID, suite.periodStart, suite.periodEnd)

	suite.Require().NoError(err)
	// 10 hours at 100/day over an 8-hour day is 1.25 days, so 125.00.
	suite.True(spend.Total.Equal(decimal.RequireFromString("125")), "got %s", spend.Total)
	suite.Require().Len(spend.Breakdown, 1)
	suite.Equal("m1", spend.Breakdown[0].TeamMemberID)
	suite.True(spend.Breakdown[0].TotalHours.Equal(decimal.NewFromInt(10)))
	suite.True(spend.Breakdown[0].Spend.Equal(decimal.RequireFromString("125")))
}

func (suite *InvoiceServiceTestSuite) TestCalculateExpectedSpend_ExcludesTimeOffAndZeroHourMembers() {
	ctx := context.Background()
	worker := suite.activeMember("m1", "100")
	absent := suite.activeMember("m2", "200")

	suite.mockTeamMemberRepo.On("ListActiveTeamMembersByVendor", ctx, suite.vendorID).Return([]domain.TeamMember{worker, absent}, nil).Once()
	suite.mockTimesheetRepo.On("ListEntriesForMembers", ctx, []string{"m1", "m2"}, suite.periodStart, suite.periodEnd).Return([]domain.TimesheetEntry{
		workEntry("m1", 1, "8"),
		timeOffEntry("m1", 2),
		timeOffEntry("m2", 1),
	}, nil).Once()

	spend, err := suite.service.CalculateExpectedSpend(ctx, suite.vendorID, suite.periodStart, suite.periodEnd)

	suite.Require().NoError(err)
	suite.True(spend.Total.Equal(decimal.NewFromInt(100)), "got %s", spend.Total)
	suite.Require().Len(spend.Breakdown, 1)
	suite.Equal("m1", spend.Breakdown[0].TeamMemberID)
}

func (suite *InvoiceServiceTestSuite) TestCalculateExpectedSpend_TotalRoundsAfterSumming() {
	ctx := context.Background()
	m1 := suite.activeMember("m1", "10.005")
	m2 := suite.activeMember("m2", "10.005")

	suite.mockTeamMemberRepo.On("ListActiveTeamMembersByVendor", ctx, suite.vendorID).Return([]domain.TeamMember{m1, m2}, nil).Once()
	suite.mockTimesheetRepo.On("ListEntriesForMembers", ctx, []string{"m1", "m2"}, suite.periodStart, suite.periodEnd).Return([]domain.TimesheetEntry{
		workEntry("m1", 1, "8"),
		workEntry("m2", 1, "8"),
	}, nil).Once()

	spend, err := suite.service.CalculateExpectedSpend(ctx, suite.vendorID, suite.periodStart, suite.periodEnd)

	suite.Require().NoError(err)
	// Each member's display spend rounds 10.005 up to 10.01, but the total is
	// the exact sum 20.01, not the 20.02 the rounded breakdown would suggest.
	suite.True(spend.Total.Equal(decimal.RequireFromString("20.01")), "got %s", spend.Total)
	suite.Require().Len(spend.Breakdown, 2)
	suite.True(spend.Breakdown[0].Spend.Equal(decimal.RequireFromString("10.01")))
	suite.True(spend.Breakdown[1].Spend.Equal(decimal.RequireFromString("10.01")))
}

// --- ValidateInvoiceAgainstTimesheet ---

func (suite *InvoiceServiceTestSuite) expectSpendLookup(ctx context.Context, members []domain.TeamMember, entries []domain.TimesheetEntry) {
	memberIDs := make([]string, len(members))
	for i, m := range members {
		memberIDs[i] = m.TeamMemberID
	}
	suite.mockTeamMemberRepo.On("ListActiveTeamMembersByVendor", ctx, suite.vendorID).Return(members, nil).Once()
	suite.mockTimesheetRepo.On("ListEntriesForMembers", ctx, memberIDs, suite.periodStart, suite.periodEnd).Return(entries, nil).Once()
}

func (suite *InvoiceServiceTestSuite) TestValidateInvoice_WithinTolerance() {
	ctx := context.Background()
	validatorUserID := uuid.NewString()
	invoice := suite.invoiceFor("130")

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoice.InvoiceID).Return(invoice, nil).Once()
	suite.expectSpendLookup(ctx,
		[]domain.TeamMember{suite.activeMember("m1", "100")},
		[]domain.TimesheetEntry{workEntry("m1", 1, "8"), workEntry("m1", 2, "2")},
	)
	suite.mockInvoiceRepo.On("UpdateValidationFields", ctx, invoice.InvoiceID,
		decimalEq("125"), decimalEq("5"), decimalEq("5"), validatorUserID).Return(nil).Once()

	result, err := suite.service.ValidateInvoiceAgainstTimesheet(ctx, invoice.InvoiceID, validatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.True(result.ExpectedAmount.Equal(decimal.RequireFromString("125")))
	suite.True(result.Discrepancy.Equal(decimal.RequireFromString("5")))
	suite.True(result.DiscrepancyPercentage.Equal(decimal.RequireFromString("4")), "got %s", result.DiscrepancyPercentage)
	suite.True(result.IsWithinTolerance)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestValidateInvoice_ToleranceBoundaryIsInclusive() {
	ctx := context.Background()
	validatorUserID := uuid.NewString()
	// Expected spend 125; 131.25 is exactly 5% over.
	invoice := suite.invoiceFor("131.25")

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoice.InvoiceID).Return(invoice, nil).Once()
	suite.expectSpendLookup(ctx,
		[]domain.TeamMember{suite.activeMember("m1", "100")},
		[]domain.TimesheetEntry{workEntry("m1", 1, "8"), workEntry("m1", 2, "2")},
	)
	suite.mockInvoiceRepo.On("UpdateValidationFields", ctx, invoice.InvoiceID,
		decimalEq("125"), decimalEq("6.25"), decimalEq("5"), validatorUserID).Return(nil).Once()

	result, err := suite.service.ValidateInvoiceAgainstTimesheet(ctx, invoice.InvoiceID, validatorUserID)

	suite.Require().NoError(err)
	suite.True(result.DiscrepancyPercentage.Equal(decimal.NewFromInt(5)), "got %s", result.DiscrepancyPercentage)
	suite.True(result.IsWithinTolerance)
}

func (suite *InvoiceServiceTestSuite) TestValidateInvoice_UsesInvoiceTolerance() {
	ctx := context.Background()
	validatorUserID := uuid.NewString()
	invoice := suite.invoiceFor("130")
	invoice.ToleranceThreshold = decimal.NewNullDecimal(decimal.NewFromInt(3))

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoice.InvoiceID).Return(invoice, nil).Once()
	suite.expectSpendLookup(ctx,
		[]domain.TeamMember{suite.activeMember("m1", "100")},
		[]domain.TimesheetEntry{workEntry("m1", 1, "8"), workEntry("m1", 2, "2")},
	)
	suite.mockInvoiceRepo.On("UpdateValidationFields", ctx, invoice.InvoiceID,
		decimalEq("125"), decimalEq("5"), decimalEq("3"), validatorUserID).Return(nil).Once()

	result, err := suite.service.ValidateInvoiceAgainstTimesheet(ctx, invoice.InvoiceID, validatorUserID)

	suite.Require().NoError(err)
	// 4% discrepancy against the invoice's own 3% threshold.
	suite.False(result.IsWithinTolerance)
	suite.True(result.ToleranceThreshold.Equal(decimal.NewFromInt(3)))
}

func (suite *InvoiceServiceTestSuite) TestValidateInvoice_ZeroExpectedPositiveInvoice() {
	ctx := context.Background()
	validatorUserID := uuid.NewString()
	invoice := suite.invoiceFor("100")

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoice.InvoiceID).Return(invoice, nil).Once()
	suite.mockTeamMemberRepo.On("ListActiveTeamMembersByVendor", ctx, suite.vendorID).Return([]domain.TeamMember{}, nil).Once()
	suite.mockInvoiceRepo.On("UpdateValidationFields", ctx, invoice.InvoiceID,
		decimalEq("0"), decimalEq("100"), decimalEq("5"), validatorUserID).Return(nil).Once()

	result, err := suite.service.ValidateInvoiceAgainstTimesheet(ctx, invoice.InvoiceID, validatorUserID)

	suite.Require().NoError(err)
	suite.True(result.DiscrepancyPercentage.Equal(decimal.NewFromInt(100)))
	suite.False(result.IsWithinTolerance)
}

func (suite *InvoiceServiceTestSuite) TestValidateInvoice_MissingInvoiceReturnsNilNil() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	notFound := fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, invoiceID)

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(nil, notFound).Once()

	result, err := suite.service.ValidateInvoiceAgainstTimesheet(ctx, invoiceID, uuid.NewString())

	suite.Require().NoError(err)
	suite.Nil(result)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "UpdateValidationFields",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- BatchValidateInvoices ---

func (suite *InvoiceServiceTestSuite) TestBatchValidateInvoices_SkipsMissingKeepsOrder() {
	ctx := context.Background()
	validatorUserID := uuid.NewString()
	first := suite.invoiceFor("130")
	second := suite.invoiceFor("120")
	missingID := uuid.NewString()

	for _, invoice := range []*domain.Invoice{first, second} {
		suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoice.InvoiceID).Return(invoice, nil).Once()
		suite.expectSpendLookup(ctx,
			[]domain.TeamMember{suite.activeMember("m1", "100")},
			[]domain.TimesheetEntry{workEntry("m1", 1, "8"), workEntry("m1", 2, "2")},
		)
		suite.mockInvoiceRepo.On("UpdateValidationFields", ctx, invoice.InvoiceID,
			mock.Anything, mock.Anything, mock.Anything, validatorUserID).Return(nil).Once()
	}
	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, missingID).
		Return(nil, fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, missingID)).Once()

	results, err := suite.service.BatchValidateInvoices(ctx, []string{first.InvoiceID, missingID, second.InvoiceID}, validatorUserID)

	suite.Require().NoError(err)
	suite.Require().Len(results, 2)
	suite.Equal(first.InvoiceID, results[0].InvoiceID)
	suite.Equal(second.InvoiceID, results[1].InvoiceID)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
