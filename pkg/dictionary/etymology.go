package dictionary

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// LoadEtymology reads the etymology JSON table: a map from word to a
// list of "language:root" tag strings, as produced by the Wiktionary
// extraction pipeline. Keys are uppercased; a word missing from the
// table means its etymology is unknown, not empty.
func LoadEtymology(path string) (map[string][]string, error) {
	if err := ValidateFileFormat(path, FormatEtymology); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read etymology file %s: %w", path, err)
	}

	raw := make(map[string][]string)
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse etymology file %s: %w", path, err)
	}

	table := make(map[string][]string, len(raw))
	for word, tags := range raw {
		table[strings.ToUpper(word)] = tags
	}

	log.Debugf("Loaded %d etymology entries from %s", len(table), path)
	return table, nil
}
