// Command lexsim-report prints batch similarity rankings: for a chosen
// document and word, the top-k neighbors under every metric in every
// applicable matrix space.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"lexsim/internal/config"
	"lexsim/internal/corpus"
	"lexsim/internal/domain"
	"lexsim/internal/logging"
	"lexsim/internal/service"
	"lexsim/internal/similarity"
)

var titleStyle = lipgloss.NewStyle().Bold(true)

func main() {
	_ = godotenv.Load()

	var (
		cfgPath string
		doc     string
		word    string
		topK    int
	)
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file")
	flag.StringVar(&doc, "doc", "", "Document to rank neighbors for (default: first document in the corpus)")
	flag.StringVar(&word, "word", "", "Word to rank neighbors for (optional)")
	flag.IntVar(&topK, "k", 0, "Number of neighbors per table (default: query.top_k from config)")
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
	if topK <= 0 {
		topK = cfg.Query.TopK
	}

	args := flag.Args()
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

	if doc == "" {
		doc = explorer.Documents()[0]
	}

	for _, space := range []service.Space{service.Counts, service.TFIDF} {
		for _, metric := range similarity.All() {
			neighbors, err := explorer.SimilarDocuments(doc, space, metric, topK)
			if err != nil {
				log.Fatalf("rank documents: %v", err)
			}
			printTable(fmt.Sprintf("Documents similar to %q (%s, %s)", doc, space, metric.Name()), neighbors)
		}
	}

	if word == "" {
		return
	}
	for _, space := range []service.Space{service.Counts, service.PPMI} {
		for _, metric := range similarity.All() {
			neighbors, err := explorer.SimilarWords(word, space, metric, topK)
			if err != nil {
				log.Fatalf("rank words: %v", err)
			}
			printTable(fmt.Sprintf("Words similar to %q (%s, %s)", word, space, metric.Name()), neighbors)
		}
	}
}

func printTable(title string, neighbors []domain.Neighbor) {
	fmt.Println(titleStyle.Render(title))
	for i, n := range neighbors {
		fmt.Printf("%2d. %-28s %.4f\n", i+1, n.Name, n.Score)
	}
	fmt.Println()
}
