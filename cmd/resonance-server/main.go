package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/cognicore/resonance/internal/server"
	"github.com/cognicore/resonance/pkg/resonance"
	"github.com/cognicore/resonance/pkg/resonance/config"
)

func main() {
	// Missing .env is fine; environment variables still apply.
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal("load config", "err", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "resonance",
	})
	if cfg.Server.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	lex, err := cfg.Lexicons()
	if err != nil {
		logger.Fatal("load lexicons", "err", err)
	}

	engine := resonance.New(resonance.Options{
		Lexicons:  lex,
		CacheSize: cfg.Engine.CacheSize,
	})

	srv := server.New(cfg, engine, logger)
	if err := srv.Start(); err != nil {
		logger.Fatal("server shutdown", "err", err)
	}
}
