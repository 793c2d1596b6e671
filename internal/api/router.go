package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/estatedesk/crm-api/docs"
	"github.com/estatedesk/crm-api/internal/api/handler"
	"github.com/estatedesk/crm-api/internal/api/middleware"
	"github.com/estatedesk/crm-api/internal/core/domain"
	"github.com/estatedesk/crm-api/internal/core/service"
	"github.com/estatedesk/crm-api/internal/infrastructure/config"
	mongodb "github.com/estatedesk/crm-api/internal/infrastructure/db/mongo"
	redisdb "github.com/estatedesk/crm-api/internal/infrastructure/db/redis"
	"github.com/estatedesk/crm-api/internal/pkg/password"
	"github.com/estatedesk/crm-api/internal/pkg/token"
)

// NewRouter builds the Echo instance with all routes registered. runner may
// be nil, in which case password verification happens on the request
// goroutine.
func NewRouter(
	cfg *config.Config,
	db *mongo.Database,
	rdb *redis.Client,
	runner service.VerifyRunner,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	// Browser frontends are served from a different origin.
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("crm"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	hasher := password.NewHasher(cfg.Auth.BcryptCost)
	issuer := token.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	userRepo := mongodb.NewUserRepository(db)
	leadRepo := mongodb.NewLeadRepository(db)
	siteRepo := mongodb.NewSiteRepository(db)
	buildingRepo := mongodb.NewBuildingRepository(db)
	unitRepo := mongodb.NewUnitRepository(db)
	ownerRepo := mongodb.NewOwnerRepository(db)

	throttle := redisdb.NewThrottle(rdb, int(cfg.Auth.MaxFailures), cfg.Auth.FailureWindow)

	authService := service.NewAuthService(userRepo, hasher, issuer, throttle, runner, log)
	userService := service.NewUserService(userRepo, hasher, log)
	leadService := service.NewLeadService(leadRepo, userRepo, log)
	propertyService := service.NewPropertyService(siteRepo, buildingRepo, unitRepo, ownerRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	leadHandler := handler.NewLeadHandler(leadService)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	authRequired := middleware.Auth(issuer, log)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	adminOrManager := middleware.RBAC(domain.RoleAdmin, domain.RoleManager)

	// --- Probes and operational endpoints (no auth) ---
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/docs/*", echoSwagger.WrapHandler)

	v1 := e.Group("/api/v1")

	// --- Auth ---
	v1.POST("/auth/login", authHandler.Login)
	v1.GET("/auth/me", authHandler.Me, authRequired)

	// --- Users (administration) ---
	users := v1.Group("/users", authRequired, adminOnly)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Leads (any authenticated role) ---
	leads := v1.Group("/leads", authRequired)
	leads.GET("", leadHandler.List)
	leads.POST("", leadHandler.Create)
	leads.GET("/:id", leadHandler.Get)
	leads.PUT("/:id", leadHandler.Update)
	leads.DELETE("/:id", leadHandler.Delete)
	leads.PATCH("/:id/assign", leadHandler.Assign)
	leads.PATCH("/:id/status", leadHandler.UpdateStatus)

	// --- Portfolio: reads for any role, writes for admin and manager ---
	sites := v1.Group("/sites", authRequired)
	sites.GET("", propertyHandler.ListSites)
	sites.GET("/:id", propertyHandler.GetSite)
	sites.GET("/:id/buildings", propertyHandler.ListSiteBuildings)
	sites.POST("", propertyHandler.CreateSite, adminOrManager)
	sites.PUT("/:id", propertyHandler.UpdateSite, adminOrManager)
	sites.DELETE("/:id", propertyHandler.DeleteSite, adminOrManager)

	buildings := v1.Group("/buildings", authRequired)
	buildings.GET("", propertyHandler.ListBuildings)
	buildings.POST("", propertyHandler.CreateBuilding, adminOrManager)
	buildings.PUT("/:id", propertyHandler.UpdateBuilding, adminOrManager)
	buildings.DELETE("/:id", propertyHandler.DeleteBuilding, adminOrManager)

	units := v1.Group("/units", authRequired)
	units.GET("", propertyHandler.ListUnits)
	units.GET("/:id", propertyHandler.GetUnit)
	units.POST("", propertyHandler.CreateUnit, adminOrManager)
	units.PUT("/:id", propertyHandler.UpdateUnit, adminOrManager)
	units.PATCH("/:id/status", propertyHandler.UpdateUnitStatus, adminOrManager)
	units.PATCH("/:id/owner", propertyHandler.AssignUnitOwner, adminOrManager)
	units.DELETE("/:id", propertyHandler.DeleteUnit, adminOrManager)

	owners := v1.Group("/owners", authRequired)
	owners.GET("", propertyHandler.ListOwners)
	owners.GET("/:id", propertyHandler.GetOwner)
	owners.POST("", propertyHandler.CreateOwner, adminOrManager)
	owners.PUT("/:id", propertyHandler.UpdateOwner, adminOrManager)
	owners.DELETE("/:id", propertyHandler.DeleteOwner, adminOrManager)

	return e
}
