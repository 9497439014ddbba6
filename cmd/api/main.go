package main

import (
	"context"
	"net/http"

	"github.com/monicodev/orbidi-challenge/docs"
	"github.com/monicodev/orbidi-challenge/internal/auth"
	"github.com/monicodev/orbidi-challenge/internal/cache"
	"github.com/monicodev/orbidi-challenge/internal/config"
	"github.com/monicodev/orbidi-challenge/internal/handler"
	"github.com/monicodev/orbidi-challenge/internal/repository"
	"github.com/monicodev/orbidi-challenge/internal/scoring"
	"github.com/monicodev/orbidi-challenge/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Orbidi Business Ranking API
//	@version		1.0
//	@description	Ranks commercial venues near a point by conversion likelihood and finds same-sector competitors.
//	@BasePath		/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	ctx := context.Background()

	// Database connection
	conn, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	repo := repository.NewRepository(conn)

	if err := repo.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot create schema")
	}
	if err := repo.Seed(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot seed database")
	}

	// Cache connection
	store, err := cache.NewRedisStore(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to redis")
	}
	defer store.Close()

	// Initialize layers
	calc := scoring.NewCalculator()
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenDuration)

	searchService := service.NewCachedSearchService(
		service.NewSearchService(repo, calc), store, cfg.CacheTTL)
	competitorService := service.NewCachedCompetitorService(
		service.NewCompetitorService(repo, calc), store, cfg.CacheTTL)
	iaeService := service.NewIAEService(repo)

	authHandler := handler.NewAuthHandler(tokens)
	searchHandler := handler.NewSearchHandler(searchService)
	competitorHandler := handler.NewCompetitorHandler(competitorService)
	iaeHandler := handler.NewIAEHandler(iaeService)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	docs.SwaggerInfo.BasePath = "/api/v1"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.POST("/auth/token", authHandler.Token)

	protected := v1.Group("", handler.RequireAuth(tokens))
	protected.GET("/businesses/search", searchHandler.Search)
	protected.GET("/businesses/:id/competitors", competitorHandler.Competitors)
	protected.POST("/iae", iaeHandler.Upsert)

	r.Run(cfg.ServerAddress)
}
