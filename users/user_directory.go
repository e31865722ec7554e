package users

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

type UserRepository interface {
	FindByID(ctx context.Context, id string) (User, error)
	FindByUsername(ctx context.Context, username string) (User, error)
}

// CachedDirectory serves user lookups from a short lived cache in front of a repository.
type CachedDirectory struct {
	repo  UserRepository
	cache *cache.Cache
}

func NewCachedDirectory(repo UserRepository, ttl time.Duration) *CachedDirectory {
	return &CachedDirectory{
		repo:  repo,
		cache: cache.New(ttl, 5*ttl),
	}
}

func (d *CachedDirectory) FindByID(ctx context.Context, id string) (User, error) {
	if cached, found := d.cache.Get("id:" + id); found {
		return cached.(User), nil
	}

	user, err := d.repo.FindByID(ctx, id)

	if err != nil {
		return User{}, err
	}

	d.store(user)

	return user, nil
}

func (d *CachedDirectory) FindByUsername(ctx context.Context, username string) (User, error) {
	if cached, found := d.cache.Get("username:" + username); found {
		return cached.(User), nil
	}

	user, err := d.repo.FindByUsername(ctx, username)

	if err != nil {
		return User{}, err
	}

	d.store(user)

	return user, nil
}

func (d *CachedDirectory) store(user User) {
	d.cache.Set("id:"+user.ID, user, cache.DefaultExpiration)
	d.cache.Set("username:"+user.Username, user, cache.DefaultExpiration)
}
