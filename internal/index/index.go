// Package index maps entity names (vocabulary tokens, document names) to
// dense matrix positions and back.
package index

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a name that was never indexed.
var ErrNotFound = errors.New("not found")

// Index is an immutable bijection between names and positions [0, Len).
type Index struct {
	names     []string
	positions map[string]int
}

// New builds an Index from an ordered sequence of names. Duplicates keep
// their first position.
func New(names []string) *Index {
	ix := &Index{
		names:     make([]string, 0, len(names)),
		positions: make(map[string]int, len(names)),
	}
	for _, name := range names {
		if _, ok := ix.positions[name]; ok {
			continue
		}
		ix.positions[name] = len(ix.names)
		ix.names = append(ix.names, name)
	}
	return ix
}

// Position returns the matrix position of name. Unindexed names yield an
// error wrapping ErrNotFound.
func (ix *Index) Position(name string) (int, error) {
	pos, ok := ix.positions[name]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return pos, nil
}

// Name returns the name stored at pos.
func (ix *Index) Name(pos int) (string, error) {
	if pos < 0 || pos >= len(ix.names) {
		return "", fmt.Errorf("position %d outside [0, %d): %w", pos, len(ix.names), ErrNotFound)
	}
	return ix.names[pos], nil
}

// Len returns the number of indexed names.
func (ix *Index) Len() int { return len(ix.names) }

// Names returns the indexed names in position order.
func (ix *Index) Names() []string {
	out := make([]string, len(ix.names))
	copy(out, ix.names)
	return out
}
