package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"group-trip-planner/internal/adapters/repositories"
	"group-trip-planner/internal/platform/db"
)

// dbtool initializes the plan storage schema and can dump the latest
// stored plan for an event, for local inspection.
func main() {
	eventID := flag.String("event", "", "dump the latest stored plan for this event id")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()

	pool, err := db.Open(ctx, databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(ctx, pool); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	if *eventID == "" {
		return
	}

	repo := repositories.NewPostgresPlanRepository(pool)
	plan, err := repo.Latest(ctx, *eventID)
	if err != nil {
		log.Fatalf("load plan for %q: %v", *eventID, err)
	}

	out, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		log.Fatalf("encode plan: %v", err)
	}
	fmt.Println(string(out))
}
