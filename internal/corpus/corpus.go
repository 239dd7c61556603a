// Package corpus loads and tokenizes the source text: a semicolon-delimited
// CSV of line records plus a vocabulary file with one token per line.
package corpus

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"lexsim/internal/domain"
)

// Record layout of the corpus CSV (the Shakespeare dataset shape).
const (
	documentField = 1
	textField     = 5
)

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9\s]`)

// Tokenize normalizes a raw line into lowercase alphanumeric tokens.
// Non-alphanumeric characters act as separators rather than being dropped
// in place.
func Tokenize(line string) []string {
	cleaned := nonAlnum.ReplaceAllString(line, " ")
	return strings.Fields(strings.ToLower(cleaned))
}

// Load reads the corpus CSV and the vocabulary file. Document names are
// deduplicated in first-seen order; records too short to carry a text
// field are skipped.
func Load(corpusPath, vocabPath string) (*domain.Corpus, error) {
	f, err := os.Open(corpusPath)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var lines []domain.Line
	var docs []string
	seen := make(map[string]struct{})
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read corpus: %w", err)
		}
		if len(record) <= textField {
			continue
		}
		doc := strings.TrimSpace(record[documentField])
		lines = append(lines, domain.Line{Document: doc, Tokens: Tokenize(record[textField])})
		if _, ok := seen[doc]; !ok {
			seen[doc] = struct{}{}
			docs = append(docs, doc)
		}
	}

	vocab, err := readVocab(vocabPath)
	if err != nil {
		return nil, err
	}
	return &domain.Corpus{Lines: lines, Documents: docs, Vocabulary: vocab}, nil
}

func readVocab(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocab: %w", err)
	}
	defer f.Close()

	var vocab []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if tok := strings.TrimSpace(sc.Text()); tok != "" {
			vocab = append(vocab, tok)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read vocab: %w", err)
	}
	return vocab, nil
}
