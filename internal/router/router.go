// Package router builds the echo instance: global middleware, error
// handler and the route table.
package router

import (
	"github.com/deppfellow/newsletter-api/internal/handler"
	"github.com/deppfellow/newsletter-api/internal/middleware"
	"github.com/deppfellow/newsletter-api/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the echo instance. Order matters: the context logger
// needs the request id and the New Relic transaction, and the request
// logger must wrap Recover.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.Secure(),
		middlewares.Global.CORS(),
	)

	registerSystemRoutes(router, h)
	registerNewsletterRoutes(router, h)

	return router
}
