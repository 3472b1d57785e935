package app

import (
	"context"
	"net/http"

	"github.com/colinjeanne/mealplan/internal/auth/cache"
	"github.com/colinjeanne/mealplan/internal/auth/resolver"
	"github.com/colinjeanne/mealplan/internal/auth/verifier/google"
	"github.com/colinjeanne/mealplan/internal/config"
	"github.com/colinjeanne/mealplan/internal/middleware"
	"github.com/colinjeanne/mealplan/internal/store"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	googleVerifier, err := google.New(
		ctx,
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
	)
	if err != nil {
		return nil, nil, err
	}

	var verificationCache cache.Store
	if infra.Redis != nil {
		verificationCache = cache.NewRedisStore(infra.Redis.Client, cfg.CacheTTL)
	} else {
		verificationCache = cache.NewMemory(cfg.CacheTTL)
	}

	claims := store.NewPostgres(infra.DB)

	identityResolver := resolver.New(resolver.Config{
		Verifier:            googleVerifier,
		Exchanger:           googleVerifier,
		Claims:              claims,
		Cache:               verificationCache,
		DisableProvisioning: cfg.DisableProvisioning,
	})

	authMiddleware := middleware.NewAuthMiddleware(identityResolver)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	// ----------------------------
	// Public Routes
	// ----------------------------

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Protected API Routes
	// ----------------------------

	api := router.Group("/api")
	api.Use(middleware.GinRequireAuth(authMiddleware))

	api.GET("/me", func(c *gin.Context) {
		userID, _ := middleware.UserIDFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"user_id": userID,
		})
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.DB.Close()
	}, nil
}
