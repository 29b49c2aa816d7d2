package service

import (
	"github.com/deppfellow/newsletter-api/internal/lib/job"
	"github.com/deppfellow/newsletter-api/internal/repository"
	"github.com/deppfellow/newsletter-api/internal/server"
)

type Services struct {
	Newsletter *NewsletterService
	Job        *job.JobService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	// A nil *job.JobService must not end up as a non-nil Notifier.
	var notifier Notifier
	if s.Job != nil {
		notifier = s.Job
	}

	return &Services{
		Newsletter: NewNewsletterService(repos.Newsletter, notifier),
		Job:        s.Job,
	}, nil
}
