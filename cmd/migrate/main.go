package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/jackc/pgx/v5"
	_ "modernc.org/sqlite"

	"fave/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	files, err := readMigrations(cfg.Store.Driver)
	if err != nil {
		log.Fatal(err)
	}

	switch cfg.Store.Driver {
	case config.StorePostgres:
		runPostgres(cfg.Store.DatabaseURL, files)
	case config.StoreSQLite:
		runSQLite(cfg.Store.Path, files)
	default:
		log.Fatalf("store driver %q has no migrations", cfg.Store.Driver)
	}

	fmt.Println("\nAll migrations completed!")
}

func readMigrations(driver string) ([]string, error) {
	dir := filepath.Join("store", "migrations", driver)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %w", err)
	}

	var sqlFiles []string
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) == ".sql" {
			sqlFiles = append(sqlFiles, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(sqlFiles)
	return sqlFiles, nil
}

func runPostgres(databaseURL string, files []string) {
	conn, err := pgx.Connect(context.Background(), databaseURL)
	if err != nil {
		log.Fatal("Failed to connect: ", err)
	}
	defer conn.Close(context.Background())

	for _, file := range files {
		log.Printf("Running migration: %s", file)

		content, err := os.ReadFile(file)
		if err != nil {
			log.Fatal("Failed to read file: ", err)
		}

		if _, err := conn.Exec(context.Background(), string(content)); err != nil {
			log.Fatalf("Failed to execute %s: %v", file, err)
		}

		log.Printf("✓ %s", file)
	}
}

func runSQLite(path string, files []string) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	defer db.Close()

	for _, file := range files {
		log.Printf("Running migration: %s", file)

		content, err := os.ReadFile(file)
		if err != nil {
			log.Fatal("Failed to read file: ", err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			log.Fatalf("Failed to execute %s: %v", file, err)
		}

		log.Printf("✓ %s", file)
	}
}
