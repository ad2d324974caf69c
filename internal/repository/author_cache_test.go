package repository

import (
	"context"
	"testing"
	"time"

	"github.com/snnyvrz/bookverse/internal/model"
	"github.com/snnyvrz/bookverse/internal/testutil"
)

type countingAuthorRepo struct {
	AuthorRepository
	finds int
}

func (r *countingAuthorRepo) FindByID(ctx context.Context, id uint) (*model.Author, error) {
	r.finds++
	return r.AuthorRepository.FindByID(ctx, id)
}

func TestCachedAuthorRepository_FindByIDHitsCache(t *testing.T) {
	db := testutil.NewTestDB(t)
	inner := &countingAuthorRepo{AuthorRepository: NewAuthorRepository(db)}

	repo, err := NewCachedAuthorRepository(inner, 8)
	if err != nil {
		t.Fatalf("NewCachedAuthorRepository returned error: %v", err)
	}

	author := testutil.SeedAuthor(t, db, "Cached")
	ctx := context.Background()

	for range 3 {
		if _, err := repo.FindByID(ctx, author.ID); err != nil {
			t.Fatalf("FindByID returned error: %v", err)
		}
	}

	if inner.finds != 1 {
		t.Fatalf("expected 1 underlying lookup, got %d", inner.finds)
	}
	if repo.Len() != 1 {
		t.Fatalf("expected 1 cached entry, got %d", repo.Len())
	}
}

func TestCachedAuthorRepository_WritesEvict(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo, err := NewCachedAuthorRepository(NewAuthorRepository(db), 8)
	if err != nil {
		t.Fatalf("NewCachedAuthorRepository returned error: %v", err)
	}

	author := testutil.SeedAuthor(t, db, "Stale")
	ctx := context.Background()

	if _, err := repo.FindByID(ctx, author.ID); err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}

	if _, err := repo.SetActive(ctx, author.ID, false); err != nil {
		t.Fatalf("SetActive returned error: %v", err)
	}

	found, err := repo.FindByID(ctx, author.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if found.Active {
		t.Fatalf("expected fresh inactive author after eviction")
	}

	if err := repo.Delete(ctx, author.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := repo.FindByID(ctx, author.ID); err == nil {
		t.Fatalf("expected deleted author to be gone from cache")
	}
}

// stallingAuthorRepo holds the result of its first lookup until released.
type stallingAuthorRepo struct {
	AuthorRepository
	loaded  chan struct{}
	release chan struct{}
	stalled bool
}

func (r *stallingAuthorRepo) FindByID(ctx context.Context, id uint) (*model.Author, error) {
	a, err := r.AuthorRepository.FindByID(ctx, id)
	if !r.stalled {
		r.stalled = true
		close(r.loaded)
		<-r.release
	}
	return a, err
}

func TestCachedAuthorRepository_WriteDuringLoadIsNotCached(t *testing.T) {
	db := testutil.NewTestDB(t)
	inner := &stallingAuthorRepo{
		AuthorRepository: NewAuthorRepository(db),
		loaded:           make(chan struct{}),
		release:          make(chan struct{}),
	}

	repo, err := NewCachedAuthorRepository(inner, 8)
	if err != nil {
		t.Fatalf("NewCachedAuthorRepository returned error: %v", err)
	}

	author := testutil.SeedAuthor(t, db, "Old")
	ctx := context.Background()

	type result struct {
		author *model.Author
		err    error
	}
	done := make(chan result, 1)
	go func() {
		a, err := repo.FindByID(ctx, author.ID)
		done <- result{a, err}
	}()

	select {
	case <-inner.loaded:
	case <-time.After(5 * time.Second):
		t.Fatalf("lookup never reached the database")
	}

	renamed := author
	renamed.Name = "New"
	if err := repo.Update(ctx, &renamed); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	close(inner.release)
	res := <-done
	if res.err != nil {
		t.Fatalf("FindByID returned error: %v", res.err)
	}
	if res.author.Name != "Old" {
		t.Fatalf("expected the overlapping lookup to see the old row, got %q", res.author.Name)
	}

	if repo.Len() != 0 {
		t.Fatalf("expected the overlapping lookup not to be cached, got %d entries", repo.Len())
	}

	fresh, err := repo.FindByID(ctx, author.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if fresh.Name != "New" {
		t.Fatalf("expected fresh name New, got %q", fresh.Name)
	}
}

func TestNewCachedAuthorRepository_InvalidSize(t *testing.T) {
	if _, err := NewCachedAuthorRepository(nil, 0); err == nil {
		t.Fatalf("expected error for zero cache size")
	}
}
