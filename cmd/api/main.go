package main

import (
	"log"

	"github.com/galinashashina/api-final-yatube/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring (ports + adapters + services).
// 3) Start HTTP server.
func main() {
	app, err := bootstrap.BuildAPI()
	if err != nil {
		log.Fatalf("bootstrap api: %v", err)
	}
	if err := app.Run(); err != nil {
		log.Fatalf("run api: %v", err)
	}
}
