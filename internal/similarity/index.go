// Package similarity serves precomputed close-neighbor lookups. The
// index files hold one "word:neighbor1,neighbor2,..." entry per line,
// sorted by word, so a lookup is a binary search over the loaded lines.
package similarity

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
)

type entry struct {
	word      string
	neighbors []string
}

// Index is an immutable sorted neighbor table
type Index struct {
	entries []entry
}

// Load reads an index file into memory. Unparseable lines are skipped.
func Load(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open similarity index: %w", err)
	}
	defer f.Close()

	var entries []entry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		word, rest, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		var neighbors []string
		for _, n := range strings.Split(rest, ",") {
			if n = strings.TrimSpace(n); n != "" {
				neighbors = append(neighbors, n)
			}
		}
		entries = append(entries, entry{word: word, neighbors: neighbors})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read similarity index: %w", err)
	}

	// Lookup requires sorted entries
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].word < entries[j].word
	})
	return &Index{entries: entries}, nil
}

// Lookup returns the neighbors of a word, nil when the word is unknown
func (idx *Index) Lookup(word string) []string {
	i := sort.Search(len(idx.entries), func(i int) bool {
		return idx.entries[i].word >= word
	})
	if i < len(idx.entries) && idx.entries[i].word == word {
		return idx.entries[i].neighbors
	}
	return nil
}

// Len reports how many words the index holds
func (idx *Index) Len() int {
	return len(idx.entries)
}
