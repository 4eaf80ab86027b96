package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/hoanghai1803/newsgenie/internal/answer"
	"github.com/hoanghai1803/newsgenie/internal/api"
	"github.com/hoanghai1803/newsgenie/internal/config"
	"github.com/hoanghai1803/newsgenie/internal/corroborate"
	"github.com/hoanghai1803/newsgenie/internal/credibility"
	"github.com/hoanghai1803/newsgenie/internal/history"
	"github.com/hoanghai1803/newsgenie/internal/news"
	"github.com/hoanghai1803/newsgenie/internal/pipeline"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	// Load configuration (auto-creates default if missing).
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Session log lives in memory; nothing is written to disk.
	store, err := history.Open()
	if err != nil {
		slog.Error("failed to open session store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	// Create answer provider (nil if no API key -- the pipeline apologizes
	// instead of answering general questions).
	var answerer answer.Provider
	if cfg.AI.APIKey != "" {
		answerer, err = answer.New(answer.ProviderConfig{
			Provider: cfg.AI.Provider,
			APIKey:   cfg.AI.APIKey,
			Model:    cfg.AI.Model,
		})
		if err != nil {
			slog.Error("failed to create answer provider", "error", err)
			os.Exit(1)
		}
		slog.Info("answer provider configured", "provider", cfg.AI.Provider, "model", cfg.AI.Model)
	} else {
		slog.Warn("no AI api key configured, general questions will be declined")
	}

	client := news.NewClient(cfg.News)
	model := credibility.NewModel(credibility.DefaultReputation())
	searcher := corroborate.New(cfg.Search)

	p := pipeline.New(client, model, searcher, answerer, cfg.News.Region, cfg.Search.TopK)

	router := api.NewRouter(p, store)

	// Localhost only; this is a single-user assistant.
	addr := fmt.Sprintf("localhost:%d", cfg.Server.Port)

	slog.Info("starting server", "addr", "http://"+addr, "mock_mode", cfg.News.MockMode)
	if err := http.ListenAndServe(addr, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
