package handler

import (
	"context"
	"net/http"

	"github.com/deppfellow/newsletter-api/internal/model"
	"github.com/deppfellow/newsletter-api/internal/server"
	"github.com/labstack/echo/v4"
)

const deletedMessage = "record successfully deleted"

// NewsletterService is the business API the newsletter routes call.
type NewsletterService interface {
	List(ctx context.Context) ([]model.Newsletter, error)
	Create(ctx context.Context, n model.Newsletter) (*model.Newsletter, error)
	Get(ctx context.Context, id int) (*model.Newsletter, error)
	Update(ctx context.Context, id int, changes map[string]string) (*model.Newsletter, error)
	Delete(ctx context.Context, id int) error
}

// MessageResponse is the body of responses that carry no record.
type MessageResponse struct {
	Message string `json:"message"`
}

type NewsletterHandler struct {
	Handler
	service NewsletterService
}

func NewNewsletterHandler(s *server.Server, service NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{
		Handler: NewHandler(s),
		service: service,
	}
}

func (h *NewsletterHandler) ListNewsletters(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.ListNewsletterPayload) ([]model.Newsletter, error) {
			return h.service.List(c.Request().Context())
		},
		http.StatusOK,
		&model.ListNewsletterPayload{},
	)(c)
}

func (h *NewsletterHandler) CreateNewsletter(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.CreateNewsletterPayload) (*model.Newsletter, error) {
			return h.service.Create(c.Request().Context(), payload.Newsletter())
		},
		http.StatusCreated,
		&model.CreateNewsletterPayload{},
	)(c)
}

func (h *NewsletterHandler) GetNewsletter(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.GetNewsletterPayload) (*model.Newsletter, error) {
			return h.service.Get(c.Request().Context(), payload.ID)
		},
		http.StatusOK,
		&model.GetNewsletterPayload{},
	)(c)
}

// UpdateNewsletter answers 201 rather than 200; existing clients of the
// API depend on that status.
func (h *NewsletterHandler) UpdateNewsletter(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.UpdateNewsletterPayload) (*model.Newsletter, error) {
			return h.service.Update(c.Request().Context(), payload.ID, payload.Changes)
		},
		http.StatusCreated,
		&model.UpdateNewsletterPayload{},
	)(c)
}

func (h *NewsletterHandler) DeleteNewsletter(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.DeleteNewsletterPayload) (MessageResponse, error) {
			if err := h.service.Delete(c.Request().Context(), payload.ID); err != nil {
				return MessageResponse{}, err
			}
			return MessageResponse{Message: deletedMessage}, nil
		},
		http.StatusOK,
		&model.DeleteNewsletterPayload{},
	)(c)
}
