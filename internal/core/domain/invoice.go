package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a bill submitted by a vendor for a billing period.
// Invariant: BillingPeriodEnd >= BillingPeriodStart.
//
// ExpectedAmount and Discrepancy are derived fields written back by the
// validation engine after each run; they are stale until the invoice has been
// validated at least once.
type Invoice struct {
	InvoiceID          string              `json:"invoiceID"`
	VendorID           string              `json:"vendorID"`
	InvoiceNumber      string              `json:"invoiceNumber"`
	Amount             decimal.Decimal     `json:"amount"`
	CurrencyCode       string              `json:"currencyCode"`
	BillingPeriodStart time.Time           `json:"billingPeriodStart"`
	BillingPeriodEnd   time.Time           `json:"billingPeriodEnd"`
	ToleranceThreshold decimal.NullDecimal `json:"toleranceThreshold"` // percent; engine defaults when unset
	ExpectedAmount     decimal.NullDecimal `json:"expectedAmount"`
	Discrepancy        decimal.NullDecimal `json:"discrepancy"`
	AuditFields
}

// TeamMemberSpendBreakdown is the per-member contribution to a vendor's
// expected spend over a billing period. Ephemeral, never persisted.
// Spend is rounded to 2 places for display.
type TeamMemberSpendBreakdown struct {
	TeamMemberID string          `json:"teamMemberID"`
	Name         string          `json:"name"`
	TotalHours   decimal.Decimal `json:"totalHours"`
	DailyRate    decimal.Decimal `json:"dailyRate"`
	CurrencyCode string          `json:"currencyCode"`
	Spend        decimal.Decimal `json:"spend"`
}

// ExpectedSpend is the timesheet-derived amount a vendor should have invoiced
// for a period. Total is rounded to 2 places only after summing the exact
// per-member spends; the individually rounded Breakdown entries may therefore
// differ from Total by a cent.
type ExpectedSpend struct {
	Total     decimal.Decimal            `json:"total"`
	Breakdown []TeamMemberSpendBreakdown `json:"breakdown"`
}

// InvoiceValidationResult is the outcome of validating an invoice against
// timesheet-derived expected spend.
type InvoiceValidationResult struct {
	InvoiceID             string                     `json:"invoiceID"`
	InvoiceAmount         decimal.Decimal            `json:"invoiceAmount"`
	ExpectedAmount        decimal.Decimal            `json:"expectedAmount"`
	Discrepancy           decimal.Decimal            `json:"discrepancy"` // signed: invoice - expected
	DiscrepancyPercentage decimal.Decimal            `json:"discrepancyPercentage"`
	ToleranceThreshold    decimal.Decimal            `json:"toleranceThreshold"`
	IsWithinTolerance     bool                       `json:"isWithinTolerance"`
	Breakdown             []TeamMemberSpendBreakdown `json:"breakdown"`
	ValidatedAt           time.Time                  `json:"validatedAt"`
}
