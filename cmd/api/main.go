package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nourishnet/internal/board"
	"nourishnet/internal/config"
	"nourishnet/internal/listing"
	"nourishnet/internal/llm"
	"nourishnet/internal/mealidea"
	"nourishnet/internal/realtime"
	"nourishnet/internal/router"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ %v", err)
	}

	// ───────────────────────── LLM ─────────────────────────
	geminiClient := llm.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL)
	requester := mealidea.NewRequester(geminiClient, log.Default())

	// ───────────────────────── STATE ─────────────────────────
	hub := realtime.NewHub()
	listingRepo := listing.NewInMemoryRepository()
	boardService := board.NewService(listingRepo, requester, hub, cfg.ProviderName)

	if cfg.SeedListings {
		if err := boardService.Seed(listing.DemoListings()); err != nil {
			log.Fatalf("❌ seed failed: %v", err)
		}
	}

	// ───────────────────────── HTTP ─────────────────────────
	boardHandler := board.NewHandler(boardService, board.ImageBounds{
		MaxWidth:  cfg.ImageMaxWidth,
		MaxHeight: cfg.ImageMaxHeight,
	})

	r := router.NewRouter(router.Deps{
		Board:       boardHandler,
		Hub:         hub,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		log.Printf("🚀 API running at http://localhost%s (model %s)", cfg.Addr(), geminiClient.Model())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// ───────────────────────── SHUTDOWN ─────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	log.Println("server stopped")
}
