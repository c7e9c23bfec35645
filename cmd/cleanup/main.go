// Command cleanup removes rows whose ids carry doubled variant
// suffixes (mojito_virgin_virgin and friends), left behind by clients
// that derived keys from already-suffixed ids.
package main

import (
	"context"
	"log"
	"time"

	"bartrender/internal/store"
	"bartrender/pkg/database"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	n, err := store.NewRepo(db).CleanupVariantIDs(ctx)
	if err != nil {
		log.Fatalf("cleanup failed: %v", err)
	}
	log.Printf("removed %d rows", n)
}
