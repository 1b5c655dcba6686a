// Command main runs the demo-data seeder for Reentry Buddy.
package main

import (
	"context"
	"flag"
	"log"

	"reentrybuddy/internal/config"
	"reentrybuddy/internal/repository"
	"reentrybuddy/internal/seed"
	"reentrybuddy/internal/storage"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 5, "Number of demo users to create")
	numDays := flag.Int("days", 14, "Days of check-in history per user")
	flag.Parse()

	log.Println("🌱 Check-In Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, %d days of history each\n", *numUsers, *numDays)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open storage
	var kv storage.KV
	switch cfg.StorageDriver {
	case config.DriverRedis:
		kv, err = storage.NewRedisKV(cfg.RedisURL)
	default:
		kv, err = storage.NewSQLiteKV(cfg.SQLitePath)
	}
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer func() { _ = kv.Close() }()

	// Run seeder
	store := repository.NewRecordStore(kv, cfg.StorageNamespace)
	s := seed.NewSeeder(store)

	if err := s.SeedDemo(context.Background(), *numUsers, *numDays); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! The store is populated with demo check-ins.")
}
