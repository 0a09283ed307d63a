package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/vendornet/vendor_management_app/cmd/docs"
	"github.com/vendornet/vendor_management_app/internal/core/currency"
	portssvc "github.com/vendornet/vendor_management_app/internal/core/ports/services"
	"github.com/vendornet/vendor_management_app/internal/middleware"
	"github.com/vendornet/vendor_management_app/pkg/config"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	analytics middleware.EventSink,
) {
	registerCustomValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services.User)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, analytics)

	// Swagger routes (not available in production)
	setupSwaggerRoutes(r, cfg)
}

// registerCustomValidators wires registry-backed validations into gin's binding engine.
// Tagged fields reject currency codes the application does not know about
// before the request ever reaches a service.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
			return currency.IsValidCurrencyCode(fl.Field().String())
		})
	}
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	analytics middleware.EventSink,
) {
	// Apply auth and analytics middleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret), middleware.AnalyticsMiddleware(analytics))

	// Delegate route registration to specific handlers, passing required services
	registerExampleRoutes(v1)
	registerCurrencyRoutes(v1)
	registerExchangeRateRoutes(v1, services.ExchangeRate)
	RegisterConversionRoutes(v1, services.Conversion)
	registerVendorRoutes(v1, services.Vendor, services.TeamMember, services.Invoice)
	registerTeamMemberRoutes(v1, services.TeamMember, services.Timesheet)
	registerTimesheetRoutes(v1, services.Timesheet)
	registerInvoiceRoutes(v1, services.Invoice)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
