package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bartrender/pkg/database"
)

// MirrorDrink is the offline-snapshot form of a catalog row: summaries
// only, with a URL-safe slug, for kiosks that cannot reach the API.
type MirrorDrink struct {
	Slug         string   `json:"slug"`
	Name         string   `json:"name"`
	Summary      string   `json:"summary"`
	Tags         []string `json:"tags"`
	SpecialLabel string   `json:"special_label,omitempty"`
	Likes        int64    `json:"likes"`
	Source       string   `json:"source"`
}

func main() {
	var (
		outPath = flag.String("out", "data/mirror.json", "output JSON path")
		limit   = flag.Int("limit", 200, "how many drinks to export")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, name, description, tags, special_label, likes, source
		FROM cocktails
		ORDER BY name
		LIMIT ?
	`, *limit)
	if err != nil {
		log.Fatalf("query failed: %v", err)
	}
	defer rows.Close()

	var out []MirrorDrink
	for rows.Next() {
		var (
			id           string
			name         string
			desc         sql.NullString
			tagsJSON     string
			specialLabel sql.NullString
			likes        int64
			source       string
		)

		if err := rows.Scan(&id, &name, &desc, &tagsJSON, &specialLabel, &likes, &source); err != nil {
			log.Fatalf("scan failed: %v", err)
		}

		var tags []string
		_ = json.Unmarshal([]byte(tagsJSON), &tags)

		out = append(out, MirrorDrink{
			Slug:         slugify(id),
			Name:         name,
			Summary:      desc.String,
			Tags:         tags,
			SpecialLabel: specialLabel.String,
			Likes:        likes,
			Source:       source,
		})
	}
	if err := rows.Err(); err != nil {
		log.Fatalf("rows error: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		log.Fatalf("mkdir failed: %v", err)
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatalf("marshal failed: %v", err)
	}

	if err := os.WriteFile(*outPath, b, 0o644); err != nil {
		log.Fatalf("write failed: %v", err)
	}

	log.Printf("✅ exported %d drinks to %s", len(out), *outPath)
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastDash = false
		} else {
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		out = "untitled"
	}
	return out
}
