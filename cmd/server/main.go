package main

import (
	"log"
	"net/http"
	"strconv"

	sentry "github.com/getsentry/sentry-go"

	"idrive/internal/config"
	"idrive/internal/logger"
	"idrive/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()

	if dsn := config.SentryDSN(); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Printf("sentry init failed: %v", err)
		}
	}

	// Setup Gin router
	r := routes.SetupRouter()

	addr := ":" + strconv.Itoa(config.Port())
	log.Printf("IDrive API listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}
