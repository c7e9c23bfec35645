package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"bartrender/pkg/database"
)

func main() {
	var (
		cocktailsIn = flag.String("cocktails", "data/cocktails.csv", "input CSV path for cocktails")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	if err := importCocktails(ctx, db, *cocktailsIn); err != nil {
		log.Fatalf("import cocktails failed: %v", err)
	}

	log.Printf("✅ imported cocktails from %s", *cocktailsIn)
}

func importCocktails(ctx context.Context, db *sql.DB, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := readHeader(r)
	if err != nil {
		return err
	}

	// Summary columns only: the doc column is left alone so imports never
	// clobber a generated recipe with a summary-only row.
	stmt, err := db.PrepareContext(ctx, `
		INSERT INTO cocktails (id, name, description, tags, special_label, likes, source)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
		  name = excluded.name,
		  description = excluded.description,
		  tags = excluded.tags,
		  special_label = excluded.special_label,
		  likes = excluded.likes,
		  source = excluded.source,
		  updated_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if len(row) == 0 {
			continue
		}

		id := valueAt(header, row, "id")
		name := valueAt(header, row, "name")
		if id == "" || name == "" {
			continue
		}

		tags := valueAt(header, row, "tags")
		if tags == "" {
			tags = "[]"
		}

		likes, err := parseLikes(valueAt(header, row, "likes"))
		if err != nil {
			return fmt.Errorf("parse likes for %s: %w", id, err)
		}

		source := valueAt(header, row, "source")
		if source == "" {
			source = "generated"
		}

		if _, err := stmt.ExecContext(
			ctx,
			id,
			name,
			nullString(valueAt(header, row, "description")),
			tags,
			nullString(valueAt(header, row, "special_label")),
			likes,
			source,
		); err != nil {
			return err
		}
	}

	return nil
}

func readHeader(r *csv.Reader) (map[string]int, error) {
	row, err := r.Read()
	if err != nil {
		return nil, err
	}
	header := make(map[string]int, len(row))
	for idx, name := range row {
		header[strings.TrimSpace(strings.ToLower(name))] = idx
	}
	return header, nil
}

func valueAt(header map[string]int, row []string, key string) string {
	idx, ok := header[key]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseLikes(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		n = 0
	}
	return n, nil
}

func nullString(raw string) sql.NullString {
	if raw == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: raw, Valid: true}
}
