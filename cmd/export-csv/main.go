package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"bartrender/pkg/database"
)

func main() {
	var (
		cocktailsOut = flag.String("cocktails", "data/cocktails.csv", "output CSV path for cocktails")
		favoritesOut = flag.String("favorites", "data/favorites.csv", "output CSV path for favorites")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	if err := exportCocktails(ctx, db, *cocktailsOut); err != nil {
		log.Fatalf("export cocktails failed: %v", err)
	}
	if err := exportFavorites(ctx, db, *favoritesOut); err != nil {
		log.Fatalf("export favorites failed: %v", err)
	}

	log.Printf("✅ exported cocktails to %s and favorites to %s", *cocktailsOut, *favoritesOut)
}

func exportCocktails(ctx context.Context, db *sql.DB, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "name", "description", "tags", "special_label", "likes", "source"}); err != nil {
		return err
	}

	rows, err := db.QueryContext(ctx, `
        SELECT id, name, description, tags, special_label, likes, source
        FROM cocktails
        ORDER BY name
    `)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id           string
			name         string
			description  sql.NullString
			tags         string
			specialLabel sql.NullString
			likes        int64
			source       string
		)

		if err := rows.Scan(&id, &name, &description, &tags, &specialLabel, &likes, &source); err != nil {
			return err
		}

		if err := w.Write([]string{
			id,
			name,
			description.String,
			tags,
			specialLabel.String,
			strconv.FormatInt(likes, 10),
			source,
		}); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}

func exportFavorites(ctx context.Context, db *sql.DB, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"device_id", "cocktail_key", "created_at"}); err != nil {
		return err
	}

	rows, err := db.QueryContext(ctx, `
        SELECT device_id, cocktail_key, created_at
        FROM favorites
        ORDER BY created_at DESC
    `)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			deviceID    string
			cocktailKey string
			createdAt   sql.NullTime
		)

		if err := rows.Scan(&deviceID, &cocktailKey, &createdAt); err != nil {
			return err
		}

		created := ""
		if createdAt.Valid {
			created = createdAt.Time.Format(time.RFC3339)
		}

		if err := w.Write([]string{deviceID, cocktailKey, created}); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}
