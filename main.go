package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"smarttoll/internal/cache"
	intconfig "smarttoll/internal/config"
	router "smarttoll/internal/http"
	"smarttoll/internal/http/handlers"
	"smarttoll/internal/services"
	"smarttoll/internal/sim"
	"smarttoll/internal/store"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	st := store.New()
	wallets := services.NewWalletService()
	auth := services.NewAuthService([]byte(env.JWTSecret))
	seed(st, wallets, auth)

	rdb := intconfig.ConnectRedis(env)
	if rdb != nil {
		defer rdb.Close()
	}

	decide := services.RandomDecision(rand.NewSource(time.Now().UnixNano()), 0.9)

	h := &handlers.Handlers{
		Store:       st,
		Wallets:     wallets,
		Auth:        auth,
		StatsCache:  cache.New[services.AdminStats](rdb, services.CacheTTL),
		Decide:      decide,
		DetectDelay: env.DetectDelay,
	}

	r := router.NewRouter(env, h)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Lane driver lives as long as the server; canceling the context stops
	// its ticks with no partial-tick rollback needed.
	driverCtx, stopDriver := context.WithCancel(context.Background())
	driver := sim.Driver{
		Toll:     services.TollService{Store: st},
		Decide:   decide,
		Interval: env.SimTick,
	}
	go driver.Run(driverCtx)

	go func() {
		log.Printf("Server listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	stopDriver()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly.")
}
