package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"homescout-listings/internal/handlers"
	"homescout-listings/internal/middleware"
	"homescout-listings/internal/repositories"
	"homescout-listings/internal/services"
	"homescout-listings/internal/validators"
	"homescout-listings/pkg/cache"
	"homescout-listings/pkg/config"
	"homescout-listings/pkg/database"
	"homescout-listings/pkg/logger"
	"homescout-listings/pkg/metrics"
	"homescout-listings/pkg/tablestore"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// App represents the application structure
type App struct {
	Config          *config.Config
	Router          *gin.Engine
	PropertyHandler *handlers.PropertyHandler
	MortgageHandler *handlers.MortgageHandler
	SavedHandler    *handlers.SavedPropertyHandler
	RateLimiter     *middleware.RateLimiter
	Server          *http.Server

	propertyRepo repositories.PropertyRepository
	savedRepo    repositories.SavedPropertyRepository
	listingCache repositories.ListingCache
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	// Initialize infrastructure
	app.initializeStores()
	app.initializeMetrics()
	app.initializeRateLimiter()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
}

// initializeStores wires the property and saved-property stores for the
// configured mode. Mongo mode also brings up the Redis listing cache; the
// other modes run cacheless.
func (a *App) initializeStores() {
	switch a.Config.Store.Mode {
	case config.StoreModeMongo:
		a.initializeDatabase()
		a.initializeCache()
		a.propertyRepo = repositories.NewMongoPropertyRepository(database.DB)
		a.savedRepo = repositories.NewMongoSavedRepository(database.DB)
		a.listingCache = repositories.NewListingCache()
		a.purgeStaleQueryCache()

	case config.StoreModeTable:
		client := tablestore.NewClient(
			a.Config.TableAPI.BaseURL,
			a.Config.TableAPI.ProjectID,
			a.Config.TableAPI.PublicKey,
		)
		a.propertyRepo = repositories.NewTablePropertyRepository(client)
		a.savedRepo = repositories.NewMemorySavedRepository()
		a.listingCache = repositories.NewNoopCache()

	default:
		repo, err := repositories.NewMemoryPropertyRepository(a.Config.Store.SeedFile)
		if err != nil {
			logger.GlobalLogger.Errorf("Failed to load seed file %s: %v", a.Config.Store.SeedFile, err)
			os.Exit(1)
		}
		a.propertyRepo = repo
		a.savedRepo = repositories.NewMemorySavedRepository()
		a.listingCache = repositories.NewNoopCache()
	}

	logger.GlobalLogger.Printf("Store initialized in %s mode", a.Config.Store.Mode)
}

// initialize the database connection
func (a *App) initializeDatabase() {
	if err := database.InitDB(a.Config.Database.URI, a.Config.Database.DBName); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize database: %v", err)
		os.Exit(1)
	}
}

// initialize the Redis cache
func (a *App) initializeCache() {
	redisCfg := &cache.RedisConfig{
		Host:        a.Config.Redis.Host,
		Port:        a.Config.Redis.Port,
		Password:    a.Config.Redis.Password,
		DB:          a.Config.Redis.DB,
		TLSEnabled:  a.Config.Redis.TLSEnabled,
		TLSCertFile: a.Config.Redis.TLSCertFile,
	}
	if err := cache.InitRedis(redisCfg); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize Redis: %v", err)
		os.Exit(1)
	}
}

// purgeStaleQueryCache drops cached query results left over from a previous
// run. Listings can change while the server is down, and cached browse
// results would otherwise survive until their TTL.
func (a *App) purgeStaleQueryCache() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.listingCache.InvalidateQueries(ctx); err != nil {
		logger.GlobalLogger.Errorf("Failed to purge stale query cache: %v", err)
	}
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the rate limiter
func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(rate.Limit(100/60.0), 10)
	go a.RateLimiter.Cleanup()
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	// validators
	filterValidator := validators.NewFilterValidator()
	loanValidator := validators.NewLoanValidator()

	// services
	listingService := services.NewListingService(a.propertyRepo, a.listingCache)
	propertyService := services.NewPropertyService(a.propertyRepo, a.listingCache)
	suggestionService := services.NewSuggestionService(a.propertyRepo, a.listingCache,
		time.Duration(a.Config.Suggestions.DebounceMS)*time.Millisecond)
	savedService := services.NewSavedPropertyService(a.savedRepo, a.propertyRepo, a.listingCache)
	mortgageService := services.NewMortgageService(loanValidator,
		time.Duration(a.Config.Mortgage.PacingMS)*time.Millisecond)

	// handlers
	a.PropertyHandler = handlers.NewPropertyHandler(listingService, propertyService, suggestionService, filterValidator)
	a.MortgageHandler = handlers.NewMortgageHandler(mortgageService)
	a.SavedHandler = handlers.NewSavedPropertyHandler(savedService)
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

// cleanup operations
func (a *App) cleanup() {
	if a.Config.Store.Mode == config.StoreModeMongo {
		database.CloseDB()
		cache.CloseRedis()
	}
}
