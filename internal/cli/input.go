// Package cli handles cmd line input for testing and debugging the
// steal engine interactively.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wordsnatch/snatch/internal/logger"
	"github.com/wordsnatch/snatch/internal/utils"
	"github.com/wordsnatch/snatch/pkg/snatch"
)

// InputHandler reads words from stdin and runs all four searches on
// each, printing annotated, ordered results. Results go to stdout via
// the out logger; diagnostics use the default stderr logger.
type InputHandler struct {
	engine       *snatch.Engine
	out          *log.Logger
	resultLimit  int
	showInvalid  bool
	requestCount int
}

// NewInputHandler handles initialization with basic parameters
func NewInputHandler(engine *snatch.Engine, limit int, showInvalid bool) *InputHandler {
	return &InputHandler{
		engine:      engine,
		out:         logger.New(""),
		resultLimit: limit,
		showInvalid: showInvalid,
	}
}

// Start begins the interface loop. It continuously prompts for a word,
// reads a line from stdin, and passes the trimmed input to handleInput.
// The loop terminates if reading from stdin fails.
func (h *InputHandler) Start() error {
	h.out.Print("Snatch CLI")
	reader := bufio.NewReader(os.Stdin)
	h.out.Print("type a word and press Enter to see its steals (Ctrl+C to exit):")

	for {
		h.out.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

// handleInput validates one word and runs the four searches against it.
func (h *InputHandler) handleInput(input string) {
	h.requestCount++

	if !utils.IsValidQuery(input) {
		log.Errorf("Not a word: %q", input)
		return
	}
	word := utils.NormalizeWord(input)

	switch h.engine.CheckWord(word) {
	case snatch.WordTooShort:
		log.Errorf("'%s' is too short (minimum %d letters)", word, snatch.MinWordLength)
		return
	case snatch.WordInvalid:
		log.Errorf("'%s' is not in the dictionary", word)
		return
	}

	start := time.Now()
	h.printSteals("steal from", h.engine.FindStealsFrom(word))
	h.printSteals("steal to", h.engine.FindStealsTo(word))

	ctx := context.Background()
	merges, truncated, _ := h.engine.FindMergeSteals(ctx, word, h.resultLimit)
	h.printMerges(word, merges, truncated)

	mergesTo, truncatedTo, _ := h.engine.FindMergeStealsTo(ctx, word, h.resultLimit)
	h.printMergesTo(word, mergesTo, truncatedTo)

	log.Debugf("Took [ %v ] for '%s'", time.Since(start), word)
}

// colorWord highlights a word in the terminal output.
func colorWord(w string) string {
	return fmt.Sprintf("\033[38;5;75m%s\033[0m", w)
}

func invalidMark(invalid bool) string {
	if invalid {
		return " (same root)"
	}
	return ""
}

func (h *InputHandler) printSteals(label string, steals []snatch.Steal) {
	if len(steals) == 0 {
		h.out.Warnf("No words to %s", label)
		return
	}
	h.out.Printf("Words to %s (%s):", label, utils.FormatWithCommas(len(steals)))
	shown := 0
	for _, st := range steals {
		if st.Invalid && !h.showInvalid {
			continue
		}
		shown++
		h.out.Printf("%3d. %-24s +%s%s", shown, colorWord(st.Word), st.AddedLetters, invalidMark(st.Invalid))
	}
}

func (h *InputHandler) printMerges(word string, merges []snatch.MergeSteal, truncated bool) {
	if len(merges) == 0 {
		h.out.Warnf("No merges make '%s'", word)
		return
	}
	h.out.Printf("Merges that make '%s' (%s%s):", word, utils.FormatWithCommas(len(merges)), truncatedMark(truncated))
	shown := 0
	for _, m := range merges {
		if m.Invalid && !h.showInvalid {
			continue
		}
		shown++
		h.out.Printf("%3d. %s + %s +%s%s", shown, colorWord(m.Word1), colorWord(m.Word2), m.AddedLetters, invalidMark(m.Invalid))
	}
}

func (h *InputHandler) printMergesTo(word string, merges []snatch.MergeStealTo, truncated bool) {
	if len(merges) == 0 {
		h.out.Warnf("'%s' merges into nothing", word)
		return
	}
	h.out.Printf("Words '%s' can merge into (%s%s):", word, utils.FormatWithCommas(len(merges)), truncatedMark(truncated))
	shown := 0
	for _, m := range merges {
		if m.Invalid && !h.showInvalid {
			continue
		}
		shown++
		h.out.Printf("%3d. + %s +%s -> %s%s", shown, colorWord(m.OtherWord), m.AddedLetters, colorWord(m.ResultWord), invalidMark(m.Invalid))
	}
}

func truncatedMark(truncated bool) string {
	if truncated {
		return ", capped"
	}
	return ""
}
