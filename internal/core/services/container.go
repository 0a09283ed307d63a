package services

import (
	portsrepo "github.com/vendornet/vendor_management_app/internal/core/ports/repositories"
	portssvc "github.com/vendornet/vendor_management_app/internal/core/ports/services"
	"github.com/vendornet/vendor_management_app/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Conversion = NewConversionService(repos.ExchangeRateRepo)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo)
	container.Vendor = NewVendorService(repos.VendorRepo)
	container.TeamMember = NewTeamMemberService(repos.TeamMemberRepo, repos.VendorRepo)
	container.Timesheet = NewTimesheetService(repos.TimesheetRepo, repos.TeamMemberRepo)
	container.Invoice = NewInvoiceService(
		repos.InvoiceRepo,
		repos.VendorRepo,
		repos.TeamMemberRepo,
		repos.TimesheetRepo,
		WithDefaultToleranceThreshold(cfg.DefaultToleranceThreshold),
	)
	container.User = NewUserService(repos.UserRepo)

	return container
}

// Compile-time checks that the concrete services satisfy their facades.
var (
	_ portssvc.ConversionSvcFacade   = (*ConversionService)(nil)
	_ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)
	_ portssvc.VendorSvcFacade       = (*VendorService)(nil)
	_ portssvc.TeamMemberSvcFacade   = (*TeamMemberService)(nil)
	_ portssvc.TimesheetSvcFacade    = (*TimesheetService)(nil)
	_ portssvc.InvoiceSvcFacade      = (*InvoiceService)(nil)
	_ portssvc.UserSvcFacade         = (*UserService)(nil)
)
