package main

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/snnyvrz/bookverse/internal/model"
	"github.com/snnyvrz/bookverse/internal/repository"
	"github.com/snnyvrz/bookverse/internal/testutil"
)

func TestSeedAuthors(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewAuthorRepository(db)

	f, err := os.Open("../../data/authors.json")
	if err != nil {
		t.Fatalf("failed to open fixture: %v", err)
	}
	defer f.Close()

	n, err := seedAuthors(context.Background(), repo, f)
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if n != 4 {
		t.Fatalf("expected 4 authors, got %d", n)
	}

	shelley, err := repo.FindByID(context.Background(), 4)
	if err != nil {
		t.Fatalf("failed to load author 4: %v", err)
	}
	if shelley.Name != "Mary Shelley" || shelley.Active {
		t.Errorf("unexpected author: %+v", shelley)
	}
	if shelley.Biography != nil {
		t.Errorf("expected no biography, got %q", *shelley.Biography)
	}
}

func TestSeedAuthors_Idempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewAuthorRepository(db)

	first := `[{"id":7,"name":"Jane Doe","active":true}]`
	second := `[{"id":7,"name":"Jane Doe","biography":"Now with a bio","active":false}]`

	for _, fixture := range []string{first, second} {
		if _, err := seedAuthors(context.Background(), repo, strings.NewReader(fixture)); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	var count int64
	db.Model(&model.Author{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 author, got %d", count)
	}

	got, err := repo.FindByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("failed to load author: %v", err)
	}
	if got.Active || got.Biography == nil || *got.Biography != "Now with a bio" {
		t.Errorf("expected second fixture to win, got %+v", got)
	}
}

func TestSeedAuthors_InvalidShapeWritesNothing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewAuthorRepository(db)

	fixture := `[{"id":1,"name":"Jane Doe","active":true},{"id":2,"active":true}]`

	_, err := seedAuthors(context.Background(), repo, strings.NewReader(fixture))
	if !errors.Is(err, model.ErrInvalidAuthorShape) {
		t.Fatalf("expected ErrInvalidAuthorShape, got %v", err)
	}

	var count int64
	db.Model(&model.Author{}).Count(&count)
	if count != 0 {
		t.Errorf("expected nothing to be written, got %d authors", count)
	}
}
