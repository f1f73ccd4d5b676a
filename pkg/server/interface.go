/*
Package server implements msgpack IPC for the snatch steal engine.

The server provides a minimal interface for word-game queries using
msgpack serialization over stdin/stdout. Messages are processed
synchronously with timing info included in responses.

# IPC

The server operates on a request response model where clients send
structured messages via stdin and receive responses through stdout.
Each message carries an ID, a command, and the query word.

A single-word steal request looks like:

	{"id": "req_001", "cmd": "steals_from", "w": "PLANE"}

The server responds with annotated steals, valid ones first:

	{"id": "req_001", "s": [{"w": "LANE", "a": "P"}, ...], "c": 12, "t": 145}

Merge queries accept an optional result limit and report truncation so a
capped result set is never mistaken for an exhaustive one:

	{"id": "req_002", "cmd": "merge", "w": "CARTHORSE", "l": 100}

# Commands

steals_from and steals_to run the single-word subset/superset searches.
merge finds word pairs that combine into the query word; merge_with
finds words the query word can merge into. check answers a plain
membership query. health reports server liveness.

Words are uppercased server-side; queries below the minimum word length
or absent from the dictionary are rejected before any search runs.
*/
package server

// Request - single query request
type Request struct {
	ID      string `msgpack:"id"`
	Command string `msgpack:"cmd"`
	Word    string `msgpack:"w"`
	Limit   int    `msgpack:"l,omitempty"`
}

// StealEntry - one single-word steal result
type StealEntry struct {
	Word         string `msgpack:"w"`
	AddedLetters string `msgpack:"a"`
	Invalid      bool   `msgpack:"x,omitempty"`
}

// MergeEntry - one merge-to-target result
type MergeEntry struct {
	Word1        string `msgpack:"w1"`
	Word2        string `msgpack:"w2"`
	AddedLetters string `msgpack:"a"`
	Invalid      bool   `msgpack:"x,omitempty"`
}

// MergeWithEntry - one merge-with-source result
type MergeWithEntry struct {
	OtherWord    string `msgpack:"o"`
	ResultWord   string `msgpack:"r"`
	AddedLetters string `msgpack:"a"`
	Invalid      bool   `msgpack:"x,omitempty"`
}

// StealResponse - response for steals_from / steals_to
type StealResponse struct {
	ID        string       `msgpack:"id"`
	Steals    []StealEntry `msgpack:"s"`
	Count     int          `msgpack:"c"`
	TimeTaken int64        `msgpack:"t"`
}

// MergeResponse - response for merge
type MergeResponse struct {
	ID        string       `msgpack:"id"`
	Merges    []MergeEntry `msgpack:"s"`
	Count     int          `msgpack:"c"`
	Truncated bool         `msgpack:"tr,omitempty"`
	TimeTaken int64        `msgpack:"t"`
}

// MergeWithResponse - response for merge_with
type MergeWithResponse struct {
	ID        string           `msgpack:"id"`
	Merges    []MergeWithEntry `msgpack:"s"`
	Count     int              `msgpack:"c"`
	Truncated bool             `msgpack:"tr,omitempty"`
	TimeTaken int64            `msgpack:"t"`
}

// CheckResponse - response for check: too_short, valid or invalid
type CheckResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
