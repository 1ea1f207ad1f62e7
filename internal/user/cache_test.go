package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGetter struct {
	users   map[uint64]*User
	fetches int
}

func (f *fakeGetter) GetByID(id uint64) (*User, error) {
	f.fetches++
	u, ok := f.users[id]
	if !ok {
		return nil, NotFoundError{Query: "fake"}
	}
	return u, nil
}

func TestCacheFetchThrough(t *testing.T) {
	getter := &fakeGetter{users: map[uint64]*User{
		1: {ID: 1, Username: "alpha"},
	}}
	cache, err := NewCache(10, getter)
	require.NoError(t, err)

	name, err := cache.Username(1)
	require.NoError(t, err)
	assert.Equal(t, "alpha", name)
	assert.Equal(t, 1, getter.fetches)

	// Second lookup is served from the cache.
	name, err = cache.Username(1)
	require.NoError(t, err)
	assert.Equal(t, "alpha", name)
	assert.Equal(t, 1, getter.fetches)
}

func TestCacheMiss(t *testing.T) {
	getter := &fakeGetter{users: map[uint64]*User{}}
	cache, err := NewCache(10, getter)
	require.NoError(t, err)

	_, err = cache.Username(99)
	require.Error(t, err)
	assert.IsType(t, NotFoundError{}, err)
}
