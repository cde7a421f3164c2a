package service

import (
	"context"
	"fmt"
	"maps"

	"github.com/deppfellow/people-api/internal/errs"
	"github.com/deppfellow/people-api/internal/model"
	"github.com/deppfellow/people-api/internal/repository"
	"github.com/deppfellow/people-api/internal/server"
	"github.com/rs/zerolog"
)

// personNotFoundCode is the machine-readable code logged for unknown IDs.
const personNotFoundCode = "PERSON_NOT_FOUND"

type PersonService struct {
	server  *server.Server
	persons repository.PersonDirectory
}

func NewPersonService(s *server.Server, persons repository.PersonDirectory) *PersonService {
	return &PersonService{
		server:  s,
		persons: persons,
	}
}

// Create echoes person back in its response shape. Nothing is stored.
func (s *PersonService) Create(ctx context.Context, person model.Person) model.PersonOut {
	zerolog.Ctx(ctx).Debug().
		Str("email", person.Email).
		Msg("person accepted")

	return person.Out()
}

// Detail echoes the detail query.
func (s *PersonService) Detail(query model.PersonDetailQuery) model.PersonDetailOut {
	return model.PersonDetailOut{
		Person: model.PersonDetail{
			Name: query.Name,
			Age:  query.Age,
		},
	}
}

// Lookup confirms that id is in the person directory.
//
// Unknown IDs yield a 404 whose body is model.PersonNotFound.
func (s *PersonService) Lookup(ctx context.Context, id int) (model.PersonLookupOut, error) {
	exists, err := s.persons.Exists(ctx, id)
	if err != nil {
		return model.PersonLookupOut{}, fmt.Errorf("looking up person: %w", err)
	}

	if !exists {
		code := personNotFoundCode
		return model.PersonLookupOut{}, errs.NewNotFoundError(model.PersonNotFoundMessage, true, &code).
			WithBody(model.PersonNotFound{
				Error:   true,
				Message: model.PersonNotFoundMessage,
			})
	}

	return model.PersonLookupOut{
		Person: model.PersonLookup{
			ID:      id,
			Message: model.PersonExistsMessage,
		},
	}, nil
}

// Update merges person and location into one mapping. Location is merged
// last and wins on key collisions. Nothing is stored.
//
// The password is part of the result, like every other submitted field.
func (s *PersonService) Update(ctx context.Context, id int, person model.Person, location model.Location) map[string]any {
	zerolog.Ctx(ctx).Debug().
		Int("person_id", id).
		Msg("person update accepted")

	results := person.Fields()
	maps.Copy(results, location.Fields())

	return results
}
