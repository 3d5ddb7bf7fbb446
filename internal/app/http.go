package app

import (
	"context"
	"net/http"

	"news-service/internal/account"
	"news-service/internal/article"
	"news-service/internal/config"
	"news-service/internal/middleware"
	"news-service/internal/session"
	"news-service/internal/web"

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

	sessionStore := session.NewRedisStore(infra.Redis.Client)

	accountService := account.NewService(account.NewPostgresStore(infra.DB))
	articleService := article.NewService(article.NewPostgresStore(infra.DB))

	cookieOpts := session.CookieOptions{
		SameSite: http.SameSiteLaxMode,
	}

	sessionMiddleware := middleware.NewSessionMiddleware(
		sessionStore,
		cfg.SessionTTL,
		cookieOpts,
	)

	webHandler := web.NewHandler(
		accountService,
		articleService,
		sessionStore,
		cfg.SessionTTL,
		cookieOpts,
	)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(web.Templates())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	webHandler.RegisterRoutes(router, sessionMiddleware)

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.DB.Close()
	}, nil
}
