// Command seed loads authors from a JSON fixture into the configured database.
// Every entry must carry id, name and active; existing ids are overwritten.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/snnyvrz/bookverse/internal/config"
	"github.com/snnyvrz/bookverse/internal/db"
	"github.com/snnyvrz/bookverse/internal/model"
	"github.com/snnyvrz/bookverse/internal/repository"
)

func main() {
	file := flag.String("file", "data/authors.json", "JSON array of authors to load")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	database, err := db.ConnectWithRetry(ctx, cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("open fixture: %v", err)
	}
	defer f.Close()

	n, err := seedAuthors(ctx, repository.NewAuthorRepository(database), f)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}

	if database.Dialector.Name() == "postgres" {
		if err := database.Exec(
			"SELECT setval(pg_get_serial_sequence('authors', 'id'), (SELECT MAX(id) FROM authors))",
		).Error; err != nil {
			log.Fatalf("advance author id sequence: %v", err)
		}
	}

	log.Printf("seeded %d authors from %s", n, *file)
}

// seedAuthors validates the whole fixture before writing anything.
func seedAuthors(ctx context.Context, repo repository.AuthorRepository, r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("read fixture: %w", err)
	}

	authors, err := model.DecodeAuthors(data)
	if err != nil {
		return 0, err
	}

	for i := range authors {
		if err := repo.Upsert(ctx, &authors[i]); err != nil {
			return i, fmt.Errorf("upsert author %d: %w", authors[i].ID, err)
		}
	}

	return len(authors), nil
}
