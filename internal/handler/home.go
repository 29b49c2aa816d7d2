package handler

import (
	"net/http"

	"github.com/deppfellow/newsletter-api/internal/server"
	"github.com/labstack/echo/v4"
)

const welcomeMessage = "Welcome to the Newsletter RESTful API"

type HomeHandler struct {
	Handler
}

func NewHomeHandler(s *server.Server) *HomeHandler {
	return &HomeHandler{
		Handler: NewHandler(s),
	}
}

func (h *HomeHandler) Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: welcomeMessage})
}
