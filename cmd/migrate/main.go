package main

import (
	"context"
	"flag"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/payfitlite/nesthr-backend-go/internal/config"
)

func main() {
	var (
		dir     = flag.String("dir", "migrations", "sql migrations directory")
		command = flag.String("command", "up", "goose command: up, down, status, version")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := goose.OpenDBWithDriver("pgx", cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("goose: failed to open DB: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Fatalf("goose: failed to close DB: %v", err)
		}
	}()

	goose.SetTableName("schema_migrations")

	if err := goose.RunContext(context.Background(), *command, db, *dir); err != nil {
		log.Fatalf("goose %s: %v", *command, err)
	}
}
