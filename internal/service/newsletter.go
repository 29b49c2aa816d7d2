package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/newsletter-api/internal/errs"
	"github.com/deppfellow/newsletter-api/internal/model"
	"github.com/deppfellow/newsletter-api/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const newsletterNotFoundCode = "NEWSLETTER_NOT_FOUND"

// Notifier schedules side effects of newsletter changes.
type Notifier interface {
	EnqueueNewsletterCreated(ctx context.Context, n model.Newsletter) error
}

type NewsletterService struct {
	store    repository.NewsletterStore
	notifier Notifier
}

// NewNewsletterService builds the service. notifier may be nil, in which
// case no notifications are scheduled.
func NewNewsletterService(store repository.NewsletterStore, notifier Notifier) *NewsletterService {
	return &NewsletterService{
		store:    store,
		notifier: notifier,
	}
}

func (s *NewsletterService) List(ctx context.Context) ([]model.Newsletter, error) {
	newsletters, err := s.store.ListNewsletters(ctx)
	if err != nil {
		return nil, fmt.Errorf("list newsletters: %w", err)
	}
	return newsletters, nil
}

// Create stores a newsletter and, once committed, schedules its
// notification. A failed enqueue is logged and does not fail the call.
func (s *NewsletterService) Create(ctx context.Context, n model.Newsletter) (*model.Newsletter, error) {
	var created *model.Newsletter

	err := s.store.WithinTx(ctx, func(store repository.NewsletterStore) error {
		var err error
		created, err = store.CreateNewsletter(ctx, n)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create newsletter: %w", err)
	}

	if s.notifier != nil {
		if err := s.notifier.EnqueueNewsletterCreated(ctx, *created); err != nil {
			zerolog.Ctx(ctx).Error().
				Err(err).
				Int("newsletter_id", created.ID).
				Msg("failed to enqueue newsletter notification")
		}
	}

	return created, nil
}

func (s *NewsletterService) Get(ctx context.Context, id int) (*model.Newsletter, error) {
	n, err := s.store.GetNewsletterByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(id, err)
	}
	return n, nil
}

// Update applies changes to the newsletter while holding its row lock.
// An empty change set returns the record untouched.
func (s *NewsletterService) Update(ctx context.Context, id int, changes map[string]string) (*model.Newsletter, error) {
	var updated *model.Newsletter

	err := s.store.WithinTx(ctx, func(store repository.NewsletterStore) error {
		current, err := store.GetNewsletterForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if len(changes) == 0 {
			updated = current
			return nil
		}

		if !current.Apply(changes) {
			return errs.NewBadRequestError("Unknown newsletter field", false, nil, nil, nil)
		}

		updated, err = store.UpdateNewsletter(ctx, *current)
		return err
	})
	if err != nil {
		return nil, mapNotFound(id, err)
	}

	return updated, nil
}

func (s *NewsletterService) Delete(ctx context.Context, id int) error {
	err := s.store.WithinTx(ctx, func(store repository.NewsletterStore) error {
		return store.DeleteNewsletter(ctx, id)
	})
	if err != nil {
		return mapNotFound(id, err)
	}
	return nil
}

func mapNotFound(id int, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		code := newsletterNotFoundCode
		return errs.NewNotFoundError(fmt.Sprintf("newsletter %d not found", id), true, &code)
	}
	return fmt.Errorf("newsletter %d: %w", id, err)
}
