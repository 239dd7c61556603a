package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"lexsim/internal/config"
	"lexsim/internal/corpus"
	"lexsim/internal/logging"
	"lexsim/internal/service"
	"lexsim/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/lexsim/config.yaml if not provided)")
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
	logger := logging.Setup(cfg.LogLevel)

	// Positional overrides: corpus CSV, then vocabulary file.
	args := flag.Args()
	if len(args) > 2 {
		fmt.Println("Usage: lexsim [--config=config.yaml] [corpus.csv [vocab.txt]]")
		os.Exit(1)
	}
	if len(args) > 0 {
		cfg.Corpus.Path = args[0]
	}
	if len(args) > 1 {
		cfg.Corpus.VocabPath = args[1]
	}

	crp, err := corpus.Load(cfg.Corpus.Path, cfg.Corpus.VocabPath)
	if err != nil {
		log.Fatalf("failed to load corpus: %v", err)
	}
	explorer, err := service.New(crp, service.Options{
		Window:  cfg.Weighting.WindowSize,
		Epsilon: cfg.Weighting.Epsilon,
	}, logger)
	if err != nil {
		log.Fatalf("failed to build matrices: %v", err)
	}

	m := tui.New(explorer, cfg.Query.TopK)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}
