package repository

import (
	"context"
	"fmt"
	"math"

	"github.com/deppfellow/newsletter-api/internal/model"
	"github.com/jackc/pgx/v5"
)

const (
	listNewslettersQuery  = `SELECT id, title, body FROM newsletters`
	getNewsletterQuery    = `SELECT id, title, body FROM newsletters WHERE id = $1`
	lockNewsletterQuery   = `SELECT id, title, body FROM newsletters WHERE id = $1 FOR UPDATE`
	createNewsletterQuery = `INSERT INTO newsletters (title, body) VALUES ($1, $2) RETURNING id, title, body`
	updateNewsletterQuery = `UPDATE newsletters SET title = $2, body = $3 WHERE id = $1 RETURNING id, title, body`
	deleteNewsletterQuery = `DELETE FROM newsletters WHERE id = $1`
)

// NewsletterStore is the persistence contract of the newsletter service.
type NewsletterStore interface {
	ListNewsletters(ctx context.Context) ([]model.Newsletter, error)
	CreateNewsletter(ctx context.Context, n model.Newsletter) (*model.Newsletter, error)
	GetNewsletterByID(ctx context.Context, id int) (*model.Newsletter, error)
	GetNewsletterForUpdate(ctx context.Context, id int) (*model.Newsletter, error)
	UpdateNewsletter(ctx context.Context, n model.Newsletter) (*model.Newsletter, error)
	DeleteNewsletter(ctx context.Context, id int) error
	WithinTx(ctx context.Context, fn func(store NewsletterStore) error) error
}

// NewsletterRepository implements NewsletterStore on PostgreSQL.
//
// Lookups of a missing id return an error wrapping pgx.ErrNoRows. Ids outside
// the range of the int4 id column cannot exist and are reported the same way
// without a round trip.
type NewsletterRepository struct {
	db DBTX
}

var _ NewsletterStore = (*NewsletterRepository)(nil)

func NewNewsletterRepository(db DBTX) *NewsletterRepository {
	return &NewsletterRepository{db: db}
}

// ListNewsletters returns every newsletter in storage order.
func (r *NewsletterRepository) ListNewsletters(ctx context.Context) ([]model.Newsletter, error) {
	rows, err := r.db.Query(ctx, listNewslettersQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list newsletters: %w", err)
	}

	newsletters, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Newsletter])
	if err != nil {
		return nil, fmt.Errorf("failed to scan newsletters: %w", err)
	}

	return newsletters, nil
}

func (r *NewsletterRepository) CreateNewsletter(ctx context.Context, n model.Newsletter) (*model.Newsletter, error) {
	rows, err := r.db.Query(ctx, createNewsletterQuery, n.Title, n.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to create newsletter: %w", err)
	}

	created, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Newsletter])
	if err != nil {
		return nil, fmt.Errorf("failed to create newsletter: %w", err)
	}

	return created, nil
}

func (r *NewsletterRepository) GetNewsletterByID(ctx context.Context, id int) (*model.Newsletter, error) {
	return r.getOne(ctx, getNewsletterQuery, id)
}

// GetNewsletterForUpdate reads a newsletter and locks its row until the
// surrounding transaction ends. Outside a transaction the lock is released
// immediately.
func (r *NewsletterRepository) GetNewsletterForUpdate(ctx context.Context, id int) (*model.Newsletter, error) {
	return r.getOne(ctx, lockNewsletterQuery, id)
}

func (r *NewsletterRepository) UpdateNewsletter(ctx context.Context, n model.Newsletter) (*model.Newsletter, error) {
	if !storableID(n.ID) {
		return nil, errNoNewsletter(n.ID)
	}

	rows, err := r.db.Query(ctx, updateNewsletterQuery, n.ID, n.Title, n.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to update newsletter %d: %w", n.ID, err)
	}

	updated, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Newsletter])
	if err != nil {
		return nil, fmt.Errorf("failed to update newsletter %d: %w", n.ID, err)
	}

	return updated, nil
}

func (r *NewsletterRepository) DeleteNewsletter(ctx context.Context, id int) error {
	if !storableID(id) {
		return errNoNewsletter(id)
	}

	tag, err := r.db.Exec(ctx, deleteNewsletterQuery, id)
	if err != nil {
		return fmt.Errorf("failed to delete newsletter %d: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return errNoNewsletter(id)
	}

	return nil
}

// WithinTx runs fn with a store bound to a single transaction.
func (r *NewsletterRepository) WithinTx(ctx context.Context, fn func(store NewsletterStore) error) error {
	return inTx(ctx, r.db, func(tx pgx.Tx) error {
		return fn(&NewsletterRepository{db: tx})
	})
}

func (r *NewsletterRepository) getOne(ctx context.Context, query string, id int) (*model.Newsletter, error) {
	if !storableID(id) {
		return nil, errNoNewsletter(id)
	}

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get newsletter %d: %w", id, err)
	}

	n, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Newsletter])
	if err != nil {
		return nil, fmt.Errorf("failed to get newsletter %d: %w", id, err)
	}

	return n, nil
}

// storableID reports whether id fits the SERIAL (int4) primary key.
func storableID(id int) bool {
	return id >= math.MinInt32 && id <= math.MaxInt32
}

func errNoNewsletter(id int) error {
	return fmt.Errorf("newsletter %d: %w", id, pgx.ErrNoRows)
}
