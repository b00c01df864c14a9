package main

import (
	"log"

	"github.com/joho/godotenv"

	"agenthub_backend/internal/app"
)

func main() {
	// Missing .env is fine outside local development.
	_ = godotenv.Load()

	if err := app.Run(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
