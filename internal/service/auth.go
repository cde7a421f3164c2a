package service

import (
	"context"

	"github.com/deppfellow/people-api/internal/model"
	"github.com/deppfellow/people-api/internal/server"
	"github.com/rs/zerolog"
)

// AuthService handles the login form. There is no user store: any
// well-formed username/password pair logs in.
type AuthService struct {
	server *server.Server
}

func NewAuthService(s *server.Server) *AuthService {
	return &AuthService{
		server: s,
	}
}

// Login returns the username with the success message. The password is
// accepted and discarded.
func (s *AuthService) Login(ctx context.Context, form model.LoginForm) model.LoginOut {
	zerolog.Ctx(ctx).Info().
		Str("username", form.Username).
		Msg("login accepted")

	return model.NewLoginOut(form.Username)
}
