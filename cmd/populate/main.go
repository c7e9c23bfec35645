// Command populate pre-resolves the built-in catalog so the store and
// image cache are warm before the first user arrives. Safe to re-run:
// entries that already resolved are served from cache and skipped by
// the generator.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bartrender/internal/blob"
	"bartrender/internal/cache"
	"bartrender/internal/cocktail"
	"bartrender/internal/gen"
	"bartrender/internal/populate"
	"bartrender/internal/store"
	"bartrender/pkg/database"
	"bartrender/pkg/models"
	"bartrender/pkg/utils"
)

func main() {
	pause := flag.Duration("pause", 2*time.Second, "delay between entries")
	virgin := flag.Bool("virgin", false, "resolve mocktail variants")
	shots := flag.Bool("shots", false, "resolve shot variants")
	flag.Parse()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	genCfg := utils.LoadGenConfig()

	repo := store.NewRepo(db)
	diskStore, err := blob.NewDiskStore(genCfg.ImageDir)
	if err != nil {
		log.Fatalf("image store: %v", err)
	}
	docCache, err := cache.NewDocuments(256, repo)
	if err != nil {
		log.Fatalf("doc cache: %v", err)
	}
	imgCache, err := cache.NewImages(128, diskStore)
	if err != nil {
		log.Fatalf("image cache: %v", err)
	}

	client := gen.NewClient(genCfg.BaseURL, genCfg.APIKey)
	queue := gen.NewQueue(genCfg.Interval, genCfg.Retries)
	svc := cocktail.NewService(docCache, imgCache, repo, queue, client, client)

	sweeper := populate.NewSweeper(svc)
	sweeper.Pause = *pause

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("stopping after current entry")
		sweeper.Stop()
		cancel()
	}()

	mode := models.Mode{NonAlcoholic: *virgin, Shots: *shots}
	items := cocktail.SeedSummaries()

	log.Printf("sweeping %d entries", len(items))
	done := sweeper.Run(ctx, items, mode)
	log.Printf("resolved %d entries", done)
}
