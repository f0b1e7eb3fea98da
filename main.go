package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/acme/company-api/app"
	"github.com/acme/company-api/config"
	"github.com/acme/company-api/models"
)

func main() {
	cfg := config.Load()

	port := flag.Int("port", cfg.Port, "server listen port")
	flag.Parse()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Idempotent; creates the tables on first run.
	if err := db.AutoMigrate(&models.Customer{}, &models.Product{}, &models.Order{}); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	log.Printf("listening on port %d", *port)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", *port), app.NewRouter(db)); err != nil {
		log.Fatal(err)
	}
}
