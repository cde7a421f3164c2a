package service

import (
	"context"

	"github.com/deppfellow/people-api/internal/model"
	"github.com/deppfellow/people-api/internal/server"
	"github.com/rs/zerolog"
)

type ContactService struct {
	server *server.Server
}

func NewContactService(s *server.Server) *ContactService {
	return &ContactService{
		server: s,
	}
}

// Submit accepts a contact message and returns the caller's user agent,
// which is nil when the header was absent. The ads cookie is only logged.
func (s *ContactService) Submit(ctx context.Context, form model.ContactForm) *string {
	zerolog.Ctx(ctx).Info().
		Str("email", form.Email).
		Int("message_length", len(form.Message)).
		Bool("ads_cookie", form.Ads != nil).
		Msg("contact message received")

	return form.UserAgent
}
