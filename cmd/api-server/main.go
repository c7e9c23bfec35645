package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"bartrender/internal/blob"
	"bartrender/internal/cache"
	"bartrender/internal/cocktail"
	"bartrender/internal/favorites"
	"bartrender/internal/gen"
	"bartrender/internal/live"
	"bartrender/internal/promo"
	"bartrender/internal/search"
	"bartrender/internal/seasonal"
	"bartrender/internal/store"
	"bartrender/pkg/database"
	"bartrender/pkg/utils"
)

func main() {
	cfg := database.DefaultConfig()
	db := database.MustOpen(cfg)
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	genCfg := utils.LoadGenConfig()

	router := gin.Default()

	// Optional: avoid “trusted all proxies” warning
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	// Start the event hub first (so you notice binding errors early)
	hub := live.NewHub()
	router.GET("/ws", live.WSHandler(hub))
	tcpSrv := live.NewServer(":7070", hub)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": cfg.Path})
	})

	router.GET("/ready", func(c *gin.Context) {
		stats := hub.Stats()
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":      "not_ready",
				"db_error":    err.Error(),
				"tcp_clients": stats.TCPClients,
				"ws_clients":  stats.WSClients,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":      "ready",
			"db":          "ok",
			"tcp_clients": stats.TCPClients,
			"ws_clients":  stats.WSClients,
		})
	})

	router.GET("/debug", func(c *gin.Context) {
		stats := hub.Stats()
		c.JSON(http.StatusOK, gin.H{
			"db":          cfg.Path,
			"images":      genCfg.ImageDir,
			"tcp_clients": stats.TCPClients,
			"ws_clients":  stats.WSClients,
		})
	})

	// Stores and caches
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

	// Generation pipeline
	client := gen.NewClient(genCfg.BaseURL, genCfg.APIKey)
	queue := gen.NewQueue(genCfg.Interval, genCfg.Retries)

	// Cocktails (public)
	cocktailSvc := cocktail.NewService(docCache, imgCache, repo, queue, client, client)
	cocktail.NewHandler(cocktailSvc).RegisterRoutes(router.Group("/cocktails"))

	// Seasonal feed
	feed := seasonal.NewFeed(repo, queue, client, hub, genCfg.SeasonalQuota)
	seasonal.NewHandler(feed).RegisterRoutes(router.Group("/seasonal"))

	// Search
	search.NewHandler(search.NewResolver(repo)).RegisterRoutes(router.Group("/search"))

	// Favorites
	favSvc := favorites.NewService(favorites.NewRepo(db), repo, hub)
	favorites.NewHandler(favSvc).RegisterRoutes(router.Group("/favorites"))

	// Promo codes / entitlement
	authCfg := utils.LoadAuthConfig()
	tokenSvc := promo.TokenService{
		Secret:   []byte(authCfg.JWTSecret),
		Issuer:   authCfg.JWTIssuer,
		Duration: authCfg.JWTDuration,
	}
	promo.NewHandler(promo.NewRepo(db), tokenSvc).RegisterRoutes(router.Group("/promo"))

	httpSrv := &http.Server{
		Addr:    ":8080",
		Handler: router,
	}

	errCh := make(chan error, 2)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := tcpSrv.Run(); err != nil {
			errCh <- err
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Println("HTTP API server listening on :8080")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	log.Println("shutting down servers")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	if err := tcpSrv.Close(); err != nil {
		log.Printf("tcp shutdown error: %v", err)
	}

	// Let in-flight like counters land before the DB closes.
	favSvc.Flush()

	wg.Wait()
	log.Println("servers stopped")
}
