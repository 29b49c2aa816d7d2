package handler

import (
	"github.com/deppfellow/newsletter-api/internal/server"
	"github.com/deppfellow/newsletter-api/internal/service"
)

// Handlers groups every HTTP handler for the router.
type Handlers struct {
	Home       *HomeHandler
	Newsletter *NewsletterHandler
	Health     *HealthHandler
	OpenAPI    *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Home:       NewHomeHandler(s),
		Newsletter: NewNewsletterHandler(s, services.Newsletter),
		Health:     NewHealthHandler(s),
		OpenAPI:    NewOpenAPIHandler(s),
	}
}
