package routes

import (
	"context"
	"fmt"
	"log"
	"time"

	_ "construction_quote/docs"
	"construction_quote/internal/adapter/http/handlers"
	"construction_quote/internal/adapter/http/middleware"
	"construction_quote/internal/adapter/persistence/repository"
	"construction_quote/internal/infrastructure/auth"
	"construction_quote/internal/infrastructure/database"
	"construction_quote/internal/usecase"
	"construction_quote/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	ctx := context.Background()
	limiter, err := getRoutes(ctx)
	if err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}
	defer limiter.Stop()

	if err := router.Run(":" + getenvDefault("PORT", defaultPort)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// stores is one complete set of repositories backed by the same driver.
type stores struct {
	configs interfaces.IBuildingTypeConfigRepository
	options interfaces.ICalculatorOptionRepository
	regions interfaces.IRegionModifierRepository
	leads   interfaces.ILeadRepository
}

func getRoutes(ctx context.Context) (*middleware.RateLimiter, error) {
	st, err := openStores(ctx)
	if err != nil {
		return nil, err
	}

	cache, err := openCatalogCache(ctx)
	if err != nil {
		return nil, err
	}

	perMinute, err := envInt("RATE_LIMIT_PER_MINUTE", 30)
	if err != nil {
		return nil, err
	}
	limiter := middleware.NewRateLimiter(perMinute, time.Minute)

	calculatorUseCase := usecase.NewCalculatorUseCase(st.configs, st.options, st.regions, cache)
	adminUseCase := usecase.NewAdminConfigUseCase(st.configs, st.options, st.regions, cache)
	leadUseCase := usecase.NewLeadUseCase(st.leads)

	h := routeHandlers{
		calculator: handlers.NewCalculatorHandler(calculatorUseCase),
		leads:      handlers.NewLeadHandler(leadUseCase),
		admin:      handlers.NewAdminConfigHandler(adminUseCase),
	}

	registerRoutes(router, h, limiter, auth.NewTokenAuthorizerFromEnv())
	return limiter, nil
}

type routeHandlers struct {
	calculator *handlers.CalculatorHandler
	leads      *handlers.LeadHandler
	admin      *handlers.AdminConfigHandler
}

func registerRoutes(r gin.IRouter, h routeHandlers, limiter *middleware.RateLimiter, authorizer interfaces.IAdminAuthorizer) {
	// Rotas publicas
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addCalculatorRoutes(v1, h.calculator, h.leads, middleware.RateLimit(limiter))

	// Rotas administrativas
	admin := v1.Group(PathAdmin, middleware.AdminGuard(authorizer))
	addAdminRoutes(admin, h.admin, h.leads)
}

func openStores(ctx context.Context) (stores, error) {
	switch driver := getenvDefault("STORE_DRIVER", "dynamodb"); driver {
	case "dynamodb":
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return stores{}, err
		}
		tables := database.TableNamesFromEnv()
		if getenvDefault("DYNAMODB_AUTO_CREATE", "false") == "true" {
			if err := database.EnsureDynamoTables(ctx, ddb, tables); err != nil {
				return stores{}, err
			}
		}
		log.Printf("[store][dynamodb] using tables configs=%s options=%s regions=%s leads=%s",
			tables.Configs, tables.Options, tables.Regions, tables.Leads)
		return stores{
			configs: repository.NewBuildingTypeConfigDynamoRepository(ddb, tables),
			options: repository.NewCalculatorOptionDynamoRepository(ddb, tables),
			regions: repository.NewRegionModifierDynamoRepository(ddb, tables),
			leads:   repository.NewLeadDynamoRepository(ddb, tables),
		}, nil

	case "postgres":
		db, err := database.ConnectPostgres(ctx)
		if err != nil {
			return stores{}, err
		}
		if err := database.EnsurePostgresSchema(ctx, db); err != nil {
			return stores{}, err
		}
		return stores{
			configs: repository.NewBuildingTypeConfigPostgresRepository(db),
			options: repository.NewCalculatorOptionPostgresRepository(db),
			regions: repository.NewRegionModifierPostgresRepository(db),
			leads:   repository.NewLeadPostgresRepository(db),
		}, nil

	default:
		return stores{}, fmt.Errorf("unknown STORE_DRIVER %q: use dynamodb or postgres", driver)
	}
}

func openCatalogCache(ctx context.Context) (interfaces.ICatalogCache, error) {
	ttl, err := envDuration("CATALOG_CACHE_TTL", 5*time.Minute)
	if err != nil {
		return nil, err
	}

	rdb, err := database.ConnectRedis(ctx)
	if err != nil {
		return nil, err
	}
	if rdb == nil {
		log.Printf("[cache] REDIS_ADDR not set, catalog cache disabled")
		return repository.NoopCatalogCache{}, nil
	}

	log.Printf("[cache][redis] catalog cache enabled ttl=%s", ttl)
	return repository.NewRedisCatalogCache(rdb, ttl), nil
}

func setMiddlewares() {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
