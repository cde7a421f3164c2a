package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// DefaultPersonIDs are the IDs that exist for the lifetime of the process.
var DefaultPersonIDs = []int{1, 2, 3, 4, 5}

// PersonDirectory answers membership questions about person IDs.
type PersonDirectory interface {
	Exists(ctx context.Context, id int) (bool, error)
}

// StaticDirectory is an immutable in-memory PersonDirectory.
type StaticDirectory struct {
	ids map[int]struct{}
}

// NewStaticDirectory builds a directory holding exactly ids.
func NewStaticDirectory(ids ...int) *StaticDirectory {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return &StaticDirectory{ids: set}
}

func (d *StaticDirectory) Exists(_ context.Context, id int) (bool, error) {
	_, ok := d.ids[id]
	return ok, nil
}

// RedisDirectory keeps the IDs in a Redis set.
type RedisDirectory struct {
	client *redis.Client
	key    string
}

// NewRedisDirectory returns a directory reading the set stored at key.
func NewRedisDirectory(client *redis.Client, key string) *RedisDirectory {
	return &RedisDirectory{client: client, key: key}
}

func (d *RedisDirectory) Exists(ctx context.Context, id int) (bool, error) {
	ok, err := d.client.SIsMember(ctx, d.key, strconv.Itoa(id)).Result()
	if err != nil {
		return false, fmt.Errorf("checking person %d in %s: %w", id, d.key, err)
	}
	return ok, nil
}

// Seed adds ids to the set. SADD is idempotent, so seeding on every start-up
// leaves an already seeded set unchanged.
func (d *RedisDirectory) Seed(ctx context.Context, ids ...int) error {
	if len(ids) == 0 {
		return nil
	}

	members := make([]any, len(ids))
	for i, id := range ids {
		members[i] = strconv.Itoa(id)
	}

	if err := d.client.SAdd(ctx, d.key, members...).Err(); err != nil {
		return fmt.Errorf("seeding %s: %w", d.key, err)
	}
	return nil
}
