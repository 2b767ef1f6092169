package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/PuerkitoBio/goquery"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"chatbot/internal/config"
	"chatbot/internal/cv"
	"chatbot/internal/engine"
	"chatbot/internal/logger"
	"chatbot/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/chatbot/config.yaml if not provided)")
	flag.Parse()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	htmlPath := cfg.Site.HTMLPath
	if args := flag.Args(); len(args) > 0 {
		htmlPath = args[0]
	}
	if htmlPath == "" {
		fmt.Println("Usage: chatbot [--config=config.yaml] [page.html]")
		os.Exit(1)
	}

	appLogger, err := logger.New(cfg.Logger.Level)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	f, err := os.Open(htmlPath)
	if err != nil {
		log.Fatalf("failed to open page %s: %v", htmlPath, err)
	}
	doc, err := goquery.NewDocumentFromReader(f)
	_ = f.Close()
	if err != nil {
		log.Fatalf("failed to parse page %s: %v", htmlPath, err)
	}

	catalog := cv.NewCatalog(cfg.CV.BaseURL)
	eng := engine.New(doc, catalog, engine.Options{
		TopK:           cfg.Engine.TopK,
		WhatsAppNumber: cfg.Contact.WhatsAppNumber,
	}, appLogger)
	if err := eng.Initialize(context.Background()); err != nil {
		log.Fatalf("engine initialization failed: %v", err)
	}

	if _, err := tea.NewProgram(tui.New(eng)).Run(); err != nil {
		log.Fatal(err)
	}
}
