package router

import (
	"github.com/deppfellow/newsletter-api/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerNewsletterRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.Home.Welcome)

	newsletters := r.Group("/newsletters")
	newsletters.GET("", h.Newsletter.ListNewsletters)
	newsletters.POST("", h.Newsletter.CreateNewsletter)
	newsletters.GET("/:id", h.Newsletter.GetNewsletter)
	newsletters.PATCH("/:id", h.Newsletter.UpdateNewsletter)
	newsletters.DELETE("/:id", h.Newsletter.DeleteNewsletter)
}
