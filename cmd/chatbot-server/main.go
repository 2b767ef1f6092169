package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/PuerkitoBio/goquery"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"chatbot/internal/config"
	"chatbot/internal/cv"
	"chatbot/internal/engine"
	"chatbot/internal/logger"
	"chatbot/internal/server"
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
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("starting chatbot server")

	f, err := os.Open(cfg.Site.HTMLPath)
	if err != nil {
		appLogger.Fatal("failed to open site page", zap.String("path", cfg.Site.HTMLPath), zap.Error(err))
	}
	doc, err := goquery.NewDocumentFromReader(f)
	_ = f.Close()
	if err != nil {
		appLogger.Fatal("failed to parse site page", zap.String("path", cfg.Site.HTMLPath), zap.Error(err))
	}

	catalog := cv.NewCatalog(cfg.CV.BaseURL)
	eng := engine.New(doc, catalog, engine.Options{
		TopK:           cfg.Engine.TopK,
		WhatsAppNumber: cfg.Contact.WhatsAppNumber,
	}, appLogger)
	if err := eng.Initialize(context.Background()); err != nil {
		appLogger.Fatal("engine initialization failed", zap.Error(err))
	}

	app := server.New(eng, cfg.Site.StaticDir, appLogger)

	go func() {
		if err := app.Listen(cfg.Server.Addr); err != nil {
			appLogger.Fatal("server stopped", zap.Error(err))
		}
	}()
	appLogger.Info("listening", zap.String("addr", cfg.Server.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("shutdown failed", zap.Error(err))
	}
}
