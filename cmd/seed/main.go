// Command seed loads a class catalog from a JSON file into the remote store.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"yoga_storefront/internal/feature/catalog/adapters"
	"yoga_storefront/internal/feature/catalog/domain/entity"
	infradb "yoga_storefront/internal/platform/db"
)

func main() {
	path := flag.String("file", "classes.json", "JSON array of classes with their instances")
	flag.Parse()

	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	raw, err := os.ReadFile(*path)
	if err != nil {
		log.Fatalf("failed to read %s: %v", *path, err)
	}
	var classes []entity.YogaClass
	if err := json.Unmarshal(raw, &classes); err != nil {
		log.Fatalf("failed to parse %s: %v", *path, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cfg := infradb.LoadConfigFromEnv()
	cfg.RunMigrations = true
	db, err := infradb.OpenDB(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := adapters.NewCatalogRepository(db).Seed(ctx, classes); err != nil {
		log.Fatal(err)
	}
	log.Printf("seed ok: %d classes", len(classes))
}
