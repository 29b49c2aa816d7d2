package repository

import (
	"github.com/deppfellow/newsletter-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Newsletter *NewsletterRepository
}

// NewRepositories builds every repository on the server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Newsletter: NewNewsletterRepository(s.DB.Pool),
	}
}
