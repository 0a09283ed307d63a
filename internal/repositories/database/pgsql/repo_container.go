package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/vendornet/vendor_management_app/internal/core/ports/repositories"
)

// NewRepositoryProvider builds all pgx-backed repositories sharing one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		ExchangeRateRepo: NewPgxExchangeRateRepository(pool),
		VendorRepo:       NewPgxVendorRepository(pool),
		TeamMemberRepo:   NewPgxTeamMemberRepository(pool),
		TimesheetRepo:    NewPgxTimesheetRepository(pool),
		InvoiceRepo:      NewPgxInvoiceRepository(pool),
		UserRepo:         NewPgxUserRepository(pool),
	}
}
