package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"github.com/adkotun/tg-memory/memory-backend/config"
	"github.com/adkotun/tg-memory/memory-backend/handlers"
	"github.com/adkotun/tg-memory/memory-backend/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment variables directly")
	}

	cfg := config.LoadConfig()
	if cfg.BotToken == "" {
		log.Fatal("TG_BOT_TOKEN must be set")
	}

	db, err := repository.ConnectToPostgreSQL(cfg)
	if err != nil {
		log.Fatalln(err)
	}
	defer db.Close()

	store := repository.NewStore(db)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to ensure database schema:", err)
	}
	cancel()

	h, err := handlers.New(cfg, store)
	if err != nil {
		log.Fatalln(err)
	}

	log.Printf("Server running on %s in %s-flip mode", cfg.Addr, cfg.GameMode)
	log.Fatalln(http.ListenAndServe(cfg.Addr, h.NewRouter()))
}
