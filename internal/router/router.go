package router

import (
	"time"

	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/config"
	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/handler"
	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/middleware"
	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/repository"
	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	eventRepo := repository.NewEventRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	gameRepo := repository.NewGameRepository(db)
	toyTypeRepo := repository.NewToyTypeRepository(db)
	toyClauseRepo := repository.NewToyClauseRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	fuelPriceRepo := repository.NewFuelPriceRepository(db)
	usageRepo := repository.NewUsageRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	expenseCategoryRepo := repository.NewExpenseCategoryRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	eventSvc := service.NewEventService(eventRepo, packageRepo)
	packageSvc := service.NewPackageService(packageRepo, gameRepo)
	gameSvc := service.NewGameService(gameRepo, toyTypeRepo, toyClauseRepo)
	toyTypeSvc := service.NewToyTypeService(toyTypeRepo)
	toyClauseSvc := service.NewToyClauseService(toyClauseRepo)
	fuelPriceSvc := service.NewFuelPriceService(fuelPriceRepo, rdb)
	vehicleSvc := service.NewVehicleService(vehicleRepo, fuelPriceSvc)
	usageSvc := service.NewUsageService(usageRepo, expenseRepo, expenseCategoryRepo, eventRepo, vehicleRepo, vehicleSvc)
	expenseSvc := service.NewExpenseService(expenseRepo, expenseCategoryRepo)
	expenseCategorySvc := service.NewExpenseCategoryService(expenseCategoryRepo)
	dashboardSvc := service.NewDashboardService(dashboardRepo, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	eventsH := handler.NewEventsHandler(eventSvc)
	packagesH := handler.NewPackagesHandler(packageSvc)
	gamesH := handler.NewGamesHandler(gameSvc)
	toyTypesH := handler.NewToyTypesHandler(toyTypeSvc)
	toyClausesH := handler.NewToyClausesHandler(toyClauseSvc)
	vehiclesH := handler.NewVehiclesHandler(vehicleSvc)
	fuelPricesH := handler.NewFuelPricesHandler(fuelPriceSvc)
	usagesH := handler.NewUsagesHandler(usageSvc)
	expensesH := handler.NewExpensesHandler(expenseSvc)
	expenseCategoriesH := handler.NewExpenseCategoriesHandler(expenseCategorySvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	api := r.Group("/api")
	{
		events := api.Group("/events")
		{
			events.POST("", eventsH.Create)
			events.GET("", eventsH.List)
			// Quoting endpoints must register before /:id so gin does not
			// swallow them as path parameters.
			events.POST("/calculate-extras-cost", eventsH.CalculateExtras)
			events.POST("/calculate-end-time", eventsH.CalculateEndTime)
			events.GET("/:id", eventsH.Get)
			events.PUT("/:id", eventsH.Update)
			events.DELETE("/:id", eventsH.Delete)
		}

		packages := api.Group("/packages")
		{
			packages.POST("", packagesH.Create)
			packages.GET("", packagesH.List)
			packages.GET("/:id", packagesH.Get)
			packages.PUT("/:id", packagesH.Update)
			packages.DELETE("/:id", packagesH.Delete)
		}

		games := api.Group("/games")
		{
			games.POST("", gamesH.Create)
			games.GET("", gamesH.List)
			games.GET("/:id", gamesH.Get)
			games.PUT("/:id", gamesH.Update)
			games.PATCH("/:id/counters", gamesH.UpdateCounters)
			games.PUT("/:id/clauses", gamesH.AssignClauses)
			games.DELETE("/:id", gamesH.Delete)
		}

		toyTypes := api.Group("/toy-types")
		{
			toyTypes.POST("", toyTypesH.Create)
			toyTypes.GET("", toyTypesH.List)
			toyTypes.GET("/:id", toyTypesH.Get)
			toyTypes.PUT("/:id", toyTypesH.Update)
			toyTypes.DELETE("/:id", toyTypesH.Delete)
		}

		toyClauses := api.Group("/toy-clauses")
		{
			toyClauses.POST("", toyClausesH.Create)
			toyClauses.GET("", toyClausesH.List)
			toyClauses.GET("/:id", toyClausesH.Get)
			toyClauses.PUT("/:id", toyClausesH.Update)
			toyClauses.DELETE("/:id", toyClausesH.Delete)
		}

		vehicles := api.Group("/vehicles")
		{
			vehicles.POST("", vehiclesH.Create)
			vehicles.GET("", vehiclesH.List)
			vehicles.POST("/calculate-fuel-cost", vehiclesH.CalculateFuelCost)
			vehicles.GET("/:id", vehiclesH.Get)
			vehicles.PUT("/:id", vehiclesH.Update)
			vehicles.DELETE("/:id", vehiclesH.Delete)
		}

		fuelPrices := api.Group("/fuel-prices")
		{
			fuelPrices.POST("", fuelPricesH.SetPrice)
			fuelPrices.GET("", fuelPricesH.List)
			fuelPrices.GET("/current", fuelPricesH.CurrentAll)
			fuelPrices.GET("/current/:fuelType", fuelPricesH.Current)
			fuelPrices.PUT("/:id", fuelPricesH.Update)
			fuelPrices.DELETE("/:id", fuelPricesH.Delete)
		}

		usages := api.Group("/vehicle-usages")
		{
			usages.POST("", usagesH.Record)
			usages.GET("", usagesH.List)
			usages.GET("/:id", usagesH.Get)
			usages.PUT("/:id", usagesH.Update)
			usages.PATCH("/:id/mark-paid", usagesH.MarkPaid)
			usages.DELETE("/:id", usagesH.Delete)
		}

		expenses := api.Group("/expenses")
		{
			expenses.POST("", expensesH.Create)
			expenses.GET("", expensesH.List)
			expenses.GET("/summary", expensesH.Summary)
			expenses.GET("/:id", expensesH.Get)
			expenses.PUT("/:id", expensesH.Update)
			expenses.PATCH("/:id/mark-paid", expensesH.MarkPaid)
			expenses.DELETE("/:id", expensesH.Delete)
		}

		expenseCategories := api.Group("/expense-categories")
		{
			expenseCategories.POST("", expenseCategoriesH.Create)
			expenseCategories.GET("", expenseCategoriesH.List)
			expenseCategories.GET("/:id", expenseCategoriesH.Get)
			expenseCategories.PUT("/:id", expenseCategoriesH.Update)
			expenseCategories.DELETE("/:id", expenseCategoriesH.Delete)
		}

		api.GET("/dashboard/stats", dashboardH.Stats)
	}

	return r
}
