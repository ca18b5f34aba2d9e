package main

import (
	"context"
	"log"
	"time"

	"fave/auth"
	"fave/config"
	"fave/handlers"
	"fave/market"
	"fave/profile"
	"fave/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	s, err := openStore(cfg)
	if err != nil {
		log.Fatal("Failed to open store: ", err)
	}
	defer s.Close()

	provider, err := auth.NewProvider(cfg.Auth)
	if err != nil {
		log.Fatal("Failed to build auth provider: ", err)
	}

	sessions := auth.NewService(s, provider, cfg.Session.TTL)
	ledger := market.NewLedger(s, sessions)
	images := profile.NewImages(s)

	r := handlers.NewRouter(handlers.Deps{
		Store:    s,
		Ledger:   ledger,
		Images:   images,
		Sessions: sessions,
	})

	log.Printf("Server starting on %s (store: %s, auth: %s)", cfg.Addr, cfg.Store.Driver, cfg.Auth.Kind)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal("Server error: ", err)
	}
}

func openStore(cfg config.Config) (store.Store, error) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return store.ConnectPostgres(ctx, cfg.Store.DatabaseURL)
	case config.StoreSQLite:
		return store.OpenSQLite(cfg.Store.Path)
	default:
		return store.NewMemory(), nil
	}
}
