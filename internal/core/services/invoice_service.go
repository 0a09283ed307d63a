package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vendornet/vendor_management_app/internal/apperrors"
	"github.com/vendornet/vendor_management_app/internal/core/currency"
	"github.com/vendornet/vendor_management_app/internal/core/domain"
	portsrepo "github.com/vendornet/vendor_management_app/internal/core/ports/repositories"
	"github.com/vendornet/vendor_management_app/internal/dto"
	"github.com/vendornet/vendor_management_app/internal/utils/moneymath"
)

// fullWorkingDayHours is the canonical full working day used to prorate a
// team member's daily rate against logged hours.
var fullWorkingDayHours = decimal.NewFromInt(8)

// defaultToleranceThreshold is the percentage discrepancy an invoice may show
// before it is flagged, used when the invoice has no threshold of its own.
var defaultToleranceThreshold = decimal.NewFromInt(5)

// InvoiceService provides invoice CRUD plus the validation engine that
// compares invoice amounts against timesheet-derived expected spend.
type InvoiceService struct {
	invoiceRepo      portsrepo.InvoiceRepositoryFacade
	vendorRepo       portsrepo.VendorReader
	teamMemberRepo   portsrepo.TeamMemberReader
	timesheetRepo    portsrepo.TimesheetReader
	defaultTolerance decimal.Decimal
}

// InvoiceServiceOption customises an InvoiceService.
type InvoiceServiceOption func(*InvoiceService)

// WithDefaultToleranceThreshold overrides the built-in 5% default.
func WithDefaultToleranceThreshold(threshold decimal.Decimal) InvoiceServiceOption {
	return func(s *InvoiceService) {
		if threshold.IsPositive() {
			s.defaultTolerance = threshold
		}
	}
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	vendorRepo portsrepo.VendorReader,
	teamMemberRepo portsrepo.TeamMemberReader,
	timesheetRepo portsrepo.TimesheetReader,
	opts ...InvoiceServiceOption,
) *InvoiceService {
	s := &InvoiceService{
		invoiceRepo:      invoiceRepo,
		vendorRepo:       vendorRepo,
		teamMemberRepo:   teamMemberRepo,
		timesheetRepo:    timesheetRepo,
		defaultTolerance: defaultToleranceThreshold,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateInvoice records a new vendor invoice after validating the vendor,
// currency and billing period.
func (s *InvoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error) {
	if req.BillingPeriodEnd.Before(req.BillingPeriodStart) {
		return nil, fmt.Errorf("%w: billing period end must not precede its start", apperrors.ErrValidation)
	}
	if !currency.IsValidCurrencyCode(req.CurrencyCode) {
		return nil, fmt.Errorf("%w: unknown currency code %q", apperrors.ErrValidation, req.CurrencyCode)
	}
	if req.ToleranceThreshold != nil && req.ToleranceThreshold.IsNegative() {
		return nil, fmt.Errorf("%w: tolerance threshold must not be negative", apperrors.ErrValidation)
	}

	if _, err := s.vendorRepo.FindVendorByID(ctx, req.VendorID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: vendor %q not found", apperrors.ErrValidation, req.VendorID)
		}
		return nil, fmt.Errorf("failed to validate vendor %q: %w", req.VendorID, err)
	}

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID:          uuid.NewString(),
		VendorID:           req.VendorID,
		InvoiceNumber:      req.InvoiceNumber,
		Amount:             req.Amount,
		CurrencyCode:       req.CurrencyCode,
		BillingPeriodStart: req.BillingPeriodStart,
		BillingPeriodEnd:   req.BillingPeriodEnd,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if req.ToleranceThreshold != nil {
		invoice.ToleranceThreshold = decimal.NewNullDecimal(*req.ToleranceThreshold)
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to create invoice in service: %w", err)
	}
	return &invoice, nil
}

// GetInvoiceByID retrieves a single invoice.
func (s *InvoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice in service: %w", err)
	}
	return invoice, nil
}

// ListInvoicesByVendor retrieves a vendor's invoices with pagination.
func (s *InvoiceService) ListInvoicesByVendor(ctx context.Context, vendorID string, limit, offset int) ([]domain.Invoice, error) {
	if limit <= 0 {
		limit = 50
	}
	invoices, err := s.invoiceRepo.ListInvoicesByVendor(ctx, vendorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices in service: %w", err)
	}
	if invoices == nil {
		invoices = []domain.Invoice{}
	}
	return invoices, nil
}

// CalculateExpectedSpend sums the billable hours logged by a vendor's active
// team members within [periodStart, periodEnd] inclusive, prorating each
// member's daily rate over an 8-hour day.
//
// The vendor total is rounded to 2 places only after summing the exact
// per-member spends. Breakdown entries are individually rounded to 2 places
// for display, so the breakdown may differ from the total by a cent; both
// figures are intentional and serve different purposes.
func (s *InvoiceService) CalculateExpectedSpend(ctx context.Context, vendorID string, periodStart, periodEnd time.Time) (*domain.ExpectedSpend, error) {
	if periodEnd.Before(periodStart) {
		return nil, fmt.Errorf("%w: period end must not precede its start", apperrors.ErrValidation)
	}

	members, err := s.teamMemberRepo.ListActiveTeamMembersByVendor(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active team members for vendor %s: %w", vendorID, err)
	}
	if len(members) == 0 {
		return &domain.ExpectedSpend{Total: decimal.Zero, Breakdown: []domain.TeamMemberSpendBreakdown{}}, nil
	}

	memberIDs := make([]string, len(members))
	for i, m := range members {
		memberIDs[i] = m.TeamMemberID
	}

	entries, err := s.timesheetRepo.ListEntriesForMembers(ctx, memberIDs, periodStart, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheet entries for vendor %s: %w", vendorID, err)
	}

	hoursByMember := make(map[string]decimal.Decimal, len(members))
	for _, entry := range entries {
		if !entry.IsBillable() {
			// Time-off entries are non-billable absence, not zero-hour work.
			continue
		}
		hoursByMember[entry.TeamMemberID] = hoursByMember[entry.TeamMemberID].Add(entry.Hours.Decimal)
	}

	preciseTotal := decimal.Zero
	breakdown := make([]domain.TeamMemberSpendBreakdown, 0, len(members))
	for _, member := range members {
		totalHours, ok := hoursByMember[member.TeamMemberID]
		if !ok || totalHours.IsZero() {
			// Zero billable hours: omitted from the breakdown, contributes
			// zero to the total.
			continue
		}
		days, divErr := moneymath.Divide(totalHours, fullWorkingDayHours)
		if divErr != nil {
			return nil, fmt.Errorf("failed to prorate hours for member %s: %w", member.TeamMemberID, divErr)
		}
		spend := moneymath.Multiply(days, member.DailyRate)
		preciseTotal = moneymath.Add(preciseTotal, spend)
		breakdown = append(breakdown, domain.TeamMemberSpendBreakdown{
			TeamMemberID: member.TeamMemberID,
			Name:         member.FullName(),
			TotalHours:   totalHours,
			DailyRate:    member.DailyRate,
			CurrencyCode: member.CurrencyCode,
			Spend:        spend.Round(2),
		})
	}

	return &domain.ExpectedSpend{Total: preciseTotal.Round(2), Breakdown: breakdown}, nil
}

// ValidateInvoiceAgainstTimesheet compares an invoice's amount to the
// timesheet-derived expected spend for its billing period and classifies the
// discrepancy against the tolerance threshold.
//
// Returns (nil, nil) when the invoice does not exist.
//
// Side effect: the derived expectedAmount, discrepancy and the (possibly
// defaulted) toleranceThreshold are written back onto the invoice record.
// The write-back is last-writer-wins; concurrent validations of the same
// invoice may race.
func (s *InvoiceService) ValidateInvoiceAgainstTimesheet(ctx context.Context, invoiceID string, validatorUserID string) (*domain.InvoiceValidationResult, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load invoice %s: %w", invoiceID, err)
	}

	expected, err := s.CalculateExpectedSpend(ctx, invoice.VendorID, invoice.BillingPeriodStart, invoice.BillingPeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate expected spend for invoice %s: %w", invoiceID, err)
	}

	discrepancy := moneymath.Subtract(invoice.Amount, expected.Total)

	var percentage decimal.Decimal
	if expected.Total.IsZero() {
		// Guard division by zero while still flagging any positive invoice
		// against zero expected spend as maximally discrepant.
		if invoice.Amount.IsPositive() {
			percentage = decimal.NewFromInt(100)
		} else {
			percentage = decimal.Zero
		}
	} else {
		ratio, divErr := moneymath.Divide(discrepancy.Abs(), expected.Total)
		if divErr != nil {
			return nil, fmt.Errorf("failed to compute discrepancy percentage for invoice %s: %w", invoiceID, divErr)
		}
		percentage = moneymath.Multiply(ratio, decimal.NewFromInt(100))
	}

	tolerance := s.defaultTolerance
	if invoice.ToleranceThreshold.Valid {
		tolerance = invoice.ToleranceThreshold.Decimal
	}
	withinTolerance := percentage.LessThanOrEqual(tolerance)

	if err := s.invoiceRepo.UpdateValidationFields(ctx, invoice.InvoiceID, expected.Total, discrepancy.Round(2), tolerance, validatorUserID); err != nil {
		return nil, fmt.Errorf("failed to persist validation fields for invoice %s: %w", invoiceID, err)
	}

	return &domain.InvoiceValidationResult{
		InvoiceID:             invoice.InvoiceID,
		InvoiceAmount:         invoice.Amount,
		ExpectedAmount:        expected.Total,
		Discrepancy:           discrepancy.Round(2),
		DiscrepancyPercentage: percentage.Round(2),
		ToleranceThreshold:    tolerance,
		IsWithinTolerance:     withinTolerance,
		Breakdown:             expected.Breakdown,
		ValidatedAt:           time.Now(),
	}, nil
}

// BatchValidateInvoices validates invoice IDs sequentially via the
// single-invoice validator. Invoices that were not found are skipped, not
// errored; any other failure aborts the batch. Results keep input order.
func (s *InvoiceService) BatchValidateInvoices(ctx context.Context, invoiceIDs []string, validatorUserID string) ([]domain.InvoiceValidationResult, error) {
	results := make([]domain.InvoiceValidationResult, 0, len(invoiceIDs))
	for _, id := range invoiceIDs {
		result, err := s.ValidateInvoiceAgainstTimesheet(ctx, id, validatorUserID)
		if err != nil {
			return nil, fmt.Errorf("failed to validate invoice %s: %w", id, err)
		}
		if result == nil {
			continue
		}
		results = append(results, *result)
	}
	return results, nil
}
