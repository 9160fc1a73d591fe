package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"pagespec_server/config"
	"pagespec_server/internal/ai"
	"pagespec_server/internal/brand"
	"pagespec_server/internal/generator"
	"pagespec_server/internal/logger"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config    config.Config
	Log       *logger.Logger
	Generator *generator.Service
	Brand     *brand.Fetcher
}

func newAppContext(flags *rootFlags) (*AppContext, error) {
	// .env must be loaded before viper reads the environment.
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	} else {
		log.Println("Info: Loaded environment variables from .env file.")
	}

	cfg, err := config.LoadConfig(flags.configDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := cfg.LogLevel
	if flags.verbose {
		level = "debug"
	}
	lg, err := logger.New(logger.Options{Level: level, HumanReadable: cfg.LogHuman, Writer: os.Stderr})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	opts := []generator.Option{
		generator.WithLogger(lg),
		generator.WithDefaultPrompt(cfg.DefaultPrompt),
	}
	llm := ai.NewGenerator(ai.Config{APIKey: cfg.OpenAIKey, Model: cfg.OpenAIModel, BaseURL: cfg.OpenAIBaseURL}, lg)
	if llm != nil {
		opts = append(opts, generator.WithSpecSource(llm))
	}

	return &AppContext{
		Config:    cfg,
		Log:       lg,
		Generator: generator.New(opts...),
		Brand:     brand.NewFetcher(cfg.BrandFetchTimeout, lg),
	}, nil
}
