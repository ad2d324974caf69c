package repository

import (
	"context"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/snnyvrz/bookverse/internal/model"
)

// CachedAuthorRepository keeps recently read authors in an LRU keyed by id.
// Writes through it evict the affected id. A lookup that overlaps any write
// returns its result without caching it.
type CachedAuthorRepository struct {
	AuthorRepository
	cache *lru.Cache[uint, model.Author]

	mu  sync.Mutex
	gen uint64
}

func NewCachedAuthorRepository(next AuthorRepository, size int) (*CachedAuthorRepository, error) {
	cache, err := lru.New[uint, model.Author](size)
	if err != nil {
		return nil, fmt.Errorf("author cache: %w", err)
	}
	return &CachedAuthorRepository{AuthorRepository: next, cache: cache}, nil
}

func (r *CachedAuthorRepository) FindByID(ctx context.Context, id uint) (*model.Author, error) {
	if a, ok := r.cache.Get(id); ok {
		return &a, nil
	}

	r.mu.Lock()
	gen := r.gen
	r.mu.Unlock()

	a, err := r.AuthorRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	if r.gen == gen {
		r.cache.Add(id, *a)
	}
	r.mu.Unlock()

	return a, nil
}

// invalidate must run after the underlying write has finished.
func (r *CachedAuthorRepository) invalidate(id uint) {
	r.mu.Lock()
	r.gen++
	r.cache.Remove(id)
	r.mu.Unlock()
}

func (r *CachedAuthorRepository) Upsert(ctx context.Context, a *model.Author) error {
	defer r.invalidate(a.ID)
	return r.AuthorRepository.Upsert(ctx, a)
}

func (r *CachedAuthorRepository) Update(ctx context.Context, a *model.Author) error {
	defer r.invalidate(a.ID)
	return r.AuthorRepository.Update(ctx, a)
}

func (r *CachedAuthorRepository) SetActive(ctx context.Context, id uint, active bool) (*model.Author, error) {
	defer r.invalidate(id)
	return r.AuthorRepository.SetActive(ctx, id, active)
}

func (r *CachedAuthorRepository) Delete(ctx context.Context, id uint) error {
	defer r.invalidate(id)
	return r.AuthorRepository.Delete(ctx, id)
}

func (r *CachedAuthorRepository) Len() int {
	return r.cache.Len()
}
