// Package dictionary loads the word list and etymology table the steal
// engine consumes. The engine performs no I/O itself; everything here
// runs once at startup and the results are read-only afterwards.
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Dictionary is the fixed set of playable words. Membership lookups go
// through a patricia trie; Words exposes a lexicographically ordered
// list whose iteration order is stable for the whole session, which is
// what keeps result ordering deterministic when sort keys tie.
type Dictionary struct {
	trie  *patricia.Trie
	words []string
}

// New builds a Dictionary from an explicit word list. Entries are
// uppercased and deduplicated; anything containing a character outside
// A-Z is dropped. Mainly useful for tests with synthetic dictionaries.
func New(words []string) *Dictionary {
	d := &Dictionary{trie: patricia.NewTrie()}
	for _, w := range words {
		d.insert(w)
	}
	d.freeze()
	return d
}

// LoadWordList reads a newline-delimited word list into a Dictionary.
func LoadWordList(path string) (*Dictionary, error) {
	if err := ValidateFileFormat(path, FormatWordList); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	d := &Dictionary{trie: patricia.NewTrie()}
	skipped := 0

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !d.insert(line) {
			skipped++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}

	d.freeze()
	if skipped > 0 {
		log.Debugf("Skipped %d non-alphabetic entries in %s", skipped, path)
	}
	log.Debugf("Loaded %d words from %s", len(d.words), path)
	return d, nil
}

// insert uppercases and stores one word. Returns false when the entry is
// not a pure A-Z word.
func (d *Dictionary) insert(word string) bool {
	upper := strings.ToUpper(strings.TrimSpace(word))
	if upper == "" || !isAlphaUpper(upper) {
		return false
	}
	d.trie.Insert(patricia.Prefix(upper), true)
	return true
}

// freeze materializes the ordered word list from the trie, which visits
// keys in lexicographic order.
func (d *Dictionary) freeze() {
	d.words = d.words[:0]
	d.trie.Visit(func(prefix patricia.Prefix, _ patricia.Item) error {
		d.words = append(d.words, string(prefix))
		return nil
	})
}

// Contains reports membership for an uppercase word.
func (d *Dictionary) Contains(word string) bool {
	return d.trie.Get(patricia.Prefix(word)) != nil
}

// Words returns the stable ordered word list. Callers must not modify
// the returned slice.
func (d *Dictionary) Words() []string {
	return d.words
}

// Len returns the number of words loaded.
func (d *Dictionary) Len() int {
	return len(d.words)
}

func isAlphaUpper(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
