package user

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

// Getter is the slice of Repository the cache needs.
type Getter interface {
	GetByID(id uint64) (*User, error)
}

// Cache is a fetch-through cache of player id to username. Usernames are
// immutable once registered, so entries never need invalidation.
type Cache struct {
	cache *lru.Cache
	users Getter
}

func NewCache(size int, users Getter) (*Cache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to initialize username cache")
	}
	return &Cache{
		cache: c,
		users: users,
	}, nil
}

// Username resolves the display name for a player id, hitting the user
// store only on a cache miss.
func (c *Cache) Username(playerID uint64) (string, error) {
	v, exists := c.cache.Get(playerID)
	if exists {
		return v.(string), nil
	}
	u, err := c.users.GetByID(playerID)
	if err != nil {
		return "", err
	}
	c.cache.Add(playerID, u.Username)
	return u.Username, nil
}
