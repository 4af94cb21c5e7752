package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/yhoon3002/schedule-bot/internal/middleware"
	pageHTTP "github.com/yhoon3002/schedule-bot/internal/page/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	mw := middleware.New(srv.l)
	srv.gin.Use(mw.CORS(srv.allowedOrigins))
	srv.gin.Use(mw.RateLimit(srv.rateLimitPerMin))

	ctx := context.Background()
	srv.l.Infof(ctx, "CORS origins: %v", srv.allowedOrigins)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	if srv.pageHandler != nil {
		api := srv.gin.Group("/api/v1")
		pageHTTP.RegisterRoutes(api, srv.gin, srv.pageHandler)
		srv.l.Infof(ctx, "Page API registered under /api/v1")
	} else {
		srv.l.Infof(ctx, "Page handler not configured, skipping page routes")
	}

	return nil
}
