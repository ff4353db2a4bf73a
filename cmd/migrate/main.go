package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"coachbook/internal/database"
)

func main() {
	showVersion := flag.Bool("version", false, "print current migration version and exit")
	flag.Parse()

	_ = godotenv.Load(".env")

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	if !database.IsPostgres(dsn) {
		log.Fatal("goose migrations target PostgreSQL; SQLite uses AutoMigrate")
	}

	ctx := context.Background()

	if *showVersion {
		v, err := database.MigrateVersion(ctx, dsn)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("migration version: %d", v)
		return
	}

	if err := database.MigrateUp(ctx, dsn); err != nil {
		log.Fatal(err)
	}
	log.Println("migrations applied")
}
