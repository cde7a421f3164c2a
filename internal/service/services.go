package service

import (
	"github.com/deppfellow/people-api/internal/repository"
	"github.com/deppfellow/people-api/internal/server"
)

type Services struct {
	Person  *PersonService
	Auth    *AuthService
	Contact *ContactService
	Upload  *UploadService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Person:  NewPersonService(s, repos.Persons),
		Auth:    NewAuthService(s),
		Contact: NewContactService(s),
		Upload:  NewUploadService(s),
	}
}
