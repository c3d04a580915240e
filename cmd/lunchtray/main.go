package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/lunchtray/internal/catalog"
	"github.com/jask/lunchtray/internal/config"
	"github.com/jask/lunchtray/internal/database"
	"github.com/jask/lunchtray/internal/database/repository"
	"github.com/jask/lunchtray/internal/logging"
	"github.com/jask/lunchtray/internal/order"
	"github.com/jask/lunchtray/internal/service"
	"github.com/jask/lunchtray/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, logCloser, err := logging.Open(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer logCloser.Close()

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	menu, err := loadMenu(cfg)
	if err != nil {
		log.Fatalf("menu: %v", err)
	}
	if err := database.SeedCatalog(ctx, db, menu); err != nil {
		log.Fatalf("seed menu: %v", err)
	}
	// read back so the TUI shows exactly what is stored
	menu, err = repository.NewMenuRepo(db).Catalog(ctx)
	if err != nil {
		log.Fatalf("load menu: %v", err)
	}

	taxRate, err := cfg.TaxRate()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	checkout := &service.CheckoutService{DB: db, Logger: logger}
	session := service.NewSession(order.New(taxRate), checkout, logger)
	logger.Info("lunchtray started", "db", cfg.Database.Path, "items", len(menu.All()), "tax_rate", taxRate.String())

	p := tea.NewProgram(tui.New(ctx, cfg, tui.Deps{
		Session:  session,
		Menu:     menu,
		Checkout: checkout,
		Logger:   logger,
	}), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func loadMenu(cfg config.Config) (catalog.Catalog, error) {
	if cfg.Menu.Path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(cfg.Menu.Path)
}
