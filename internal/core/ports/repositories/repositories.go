package repositories

// RepositoryProvider bundles all repository facades needed to build the
// service container. Wired from the pgsql implementations at startup and from
// mocks in tests.
type RepositoryProvider struct {
	ExchangeRateRepo ExchangeRateRepositoryFacade
	VendorRepo       VendorRepositoryFacade
	TeamMemberRepo   TeamMemberRepositoryFacade
	TimesheetRepo    TimesheetRepositoryFacade
	InvoiceRepo      InvoiceRepositoryFacade
	UserRepo         UserRepositoryFacade
}
