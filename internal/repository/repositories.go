package repository

import (
	"context"

	"github.com/deppfellow/people-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Persons PersonDirectory
}

// NewRepositories constructs the repository container.
//
// With a Redis client on the server the directory is backed by Redis and
// seeded with DefaultPersonIDs; otherwise it is the in-memory set.
func NewRepositories(ctx context.Context, s *server.Server) (*Repositories, error) {
	if s.Redis == nil {
		return &Repositories{Persons: NewStaticDirectory(DefaultPersonIDs...)}, nil
	}

	directory := NewRedisDirectory(s.Redis, s.Config.Redis.PersonsKey)
	if err := directory.Seed(ctx, DefaultPersonIDs...); err != nil {
		return nil, err
	}

	s.Logger.Info().
		Str("key", s.Config.Redis.PersonsKey).
		Ints("ids", DefaultPersonIDs).
		Msg("seeded person directory in redis")

	return &Repositories{Persons: directory}, nil
}
