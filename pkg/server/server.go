package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/wordsnatch/snatch/internal/utils"
	"github.com/wordsnatch/snatch/pkg/config"
	"github.com/wordsnatch/snatch/pkg/snatch"
)

// Server handles the IPC for steal and merge queries.
type Server struct {
	engine       *snatch.Engine
	cfg          *config.Config
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	requestCount int
}

// NewServer creates a query server using stdin/stdout for IPC.
func NewServer(engine *snatch.Engine, cfg *config.Config) *Server {
	return NewServerWithStreams(engine, cfg, os.Stdin, os.Stdout)
}

// NewServerWithStreams creates a query server over explicit streams,
// which is what the tests use.
func NewServerWithStreams(engine *snatch.Engine, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		engine:  engine,
		cfg:     cfg,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. Returns nil on clean EOF.
func (s *Server) Start() error {
	log.Debug("Starting server.")
	s.send(map[string]string{"status": "ready"})

	for {
		var request Request
		if err := s.decoder.Decode(&request); err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches one decoded request.
func (s *Server) handleRequest(request Request) {
	s.requestCount++

	switch request.Command {
	case "steals_from", "steals_to":
		s.handleSteals(request)
	case "merge":
		s.handleMerge(request)
	case "merge_with":
		s.handleMergeWith(request)
	case "check":
		s.handleCheck(request)
	case "health":
		s.send(map[string]string{"status": "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown command: %s", request.Command), 400)
	}
}

// validateWord normalizes a query word and runs the pre-checks the
// engine expects its callers to perform: letters only, length bounds,
// dictionary membership. Returns the normalized word and ok=false when
// an error response has already been sent.
func (s *Server) validateWord(request Request) (string, bool) {
	word := utils.NormalizeWord(request.Word)
	if word == "" {
		s.sendError(request.ID, "Missing 'w' parameter", 400)
		return "", false
	}
	if !utils.IsUppercaseWord(word) {
		s.sendError(request.ID, "Word must contain only letters", 400)
		return "", false
	}
	if len(word) > s.cfg.Server.MaxWordLen {
		s.sendError(request.ID, fmt.Sprintf("Word exceeds maximum length of %d", s.cfg.Server.MaxWordLen), 400)
		return "", false
	}
	switch s.engine.CheckWord(word) {
	case snatch.WordTooShort:
		s.sendError(request.ID, fmt.Sprintf("Word must be at least %d letters", snatch.MinWordLength), 400)
		return "", false
	case snatch.WordInvalid:
		s.sendError(request.ID, "Word not in dictionary", 404)
		return "", false
	}
	return word, true
}

// limitFor clamps the requested result cap against the configured max.
func (s *Server) limitFor(request Request) int {
	limit := request.Limit
	if limit < 1 || limit > s.cfg.Server.MaxResults {
		limit = s.cfg.Server.MaxResults
	}
	return limit
}

func (s *Server) handleSteals(request Request) {
	word, ok := s.validateWord(request)
	if !ok {
		return
	}

	start := time.Now()
	var steals []snatch.Steal
	if request.Command == "steals_from" {
		steals = s.engine.FindStealsFrom(word)
	} else {
		steals = s.engine.FindStealsTo(word)
	}
	elapsed := time.Since(start)

	entries := make([]StealEntry, len(steals))
	for i, st := range steals {
		entries[i] = StealEntry{Word: st.Word, AddedLetters: st.AddedLetters, Invalid: st.Invalid}
	}

	s.send(StealResponse{
		ID:        request.ID,
		Steals:    entries,
		Count:     len(entries),
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleMerge(request Request) {
	word, ok := s.validateWord(request)
	if !ok {
		return
	}

	start := time.Now()
	merges, truncated, err := s.engine.FindMergeSteals(context.Background(), word, s.limitFor(request))
	if err != nil {
		s.sendError(request.ID, "Merge search cancelled", 500)
		return
	}
	elapsed := time.Since(start)

	entries := make([]MergeEntry, len(merges))
	for i, m := range merges {
		entries[i] = MergeEntry{Word1: m.Word1, Word2: m.Word2, AddedLetters: m.AddedLetters, Invalid: m.Invalid}
	}

	s.send(MergeResponse{
		ID:        request.ID,
		Merges:    entries,
		Count:     len(entries),
		Truncated: truncated,
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleMergeWith(request Request) {
	word, ok := s.validateWord(request)
	if !ok {
		return
	}

	start := time.Now()
	merges, truncated, err := s.engine.FindMergeStealsTo(context.Background(), word, s.limitFor(request))
	if err != nil {
		s.sendError(request.ID, "Merge search cancelled", 500)
		return
	}
	elapsed := time.Since(start)

	entries := make([]MergeWithEntry, len(merges))
	for i, m := range merges {
		entries[i] = MergeWithEntry{
			OtherWord:    m.OtherWord,
			ResultWord:   m.ResultWord,
			AddedLetters: m.AddedLetters,
			Invalid:      m.Invalid,
		}
	}

	s.send(MergeWithResponse{
		ID:        request.ID,
		Merges:    entries,
		Count:     len(entries),
		Truncated: truncated,
		TimeTaken: elapsed.Microseconds(),
	})
}

// handleCheck answers a plain membership query; unlike the searches it
// accepts words absent from the dictionary, that being the point.
func (s *Server) handleCheck(request Request) {
	word := utils.NormalizeWord(request.Word)
	if word == "" || !utils.IsUppercaseWord(word) {
		s.sendError(request.ID, "Missing or malformed 'w' parameter", 400)
		return
	}
	s.send(CheckResponse{ID: request.ID, Status: s.engine.CheckWord(word).String()})
}

// send encodes one response object onto the output stream.
func (s *Server) send(response interface{}) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	log.Debugf("Request %s failed: %s", id, message)
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
