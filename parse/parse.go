// Package parse recovers structured data from free-text LLM responses.
// Models wrap JSON in markdown fences, bury it in prose, or return it bare;
// this package locates the payload, decodes it, and reports success or
// failure as a tagged value. Nothing here performs I/O and no function
// panics or returns a Go error from the main entry points: parsing failure
// is an expected, frequent outcome that callers must branch on.
package parse

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// KindParsing identifies parse failures in the error taxonomy.
const KindParsing = "parsing_error"

// snippetLen bounds the diagnostic head/tail snippets kept on an Error.
const snippetLen = 200

// Error describes a failed parse attempt. It carries diagnostic context for
// server-side logs; the Message is safe to surface, the snippets are not.
type Error struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Kind      string `json:"kind"`
	Retryable bool   `json:"retryable"`

	// Cause is the underlying decoder error, if any.
	Cause string `json:"cause,omitempty"`

	// Head and Tail are truncated snippets of the offending response,
	// kept for logging only.
	Head string `json:"head,omitempty"`
	Tail string `json:"tail,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("parse error: code=%s message=%s", e.Code, e.Message)
}

// Payload is the tagged result of a parse attempt.
// Data is meaningful iff Success is true; Err is set iff Success is false.
type Payload[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Err     *Error `json:"error,omitempty"`
}

// JSON extracts and decodes a JSON payload from an LLM response.
// It never returns a Go error; malformed input yields a failure Payload.
// Structural failures are not expected to succeed on blind retry, so the
// returned error is never retryable.
func JSON[T any](response string) Payload[T] {
	candidate, ok := ExtractJSONBlock(response)
	if !ok {
		// The model may have returned pure JSON with no surrounding
		// prose or fencing.
		candidate = strings.TrimSpace(response)
	}

	var data T
	if err := json.Unmarshal([]byte(candidate), &data); err != nil {
		return Payload[T]{Err: newError(response, err)}
	}

	return Payload[T]{Success: true, Data: data}
}

// JSONDefault is like JSON but degrades gracefully: any failure yields a
// success Payload carrying def. Intended for non-critical call sites where
// a sensible default beats an error branch.
func JSONDefault[T any](response string, def T) Payload[T] {
	p := JSON[T](response)
	if !p.Success {
		return Payload[T]{Success: true, Data: def}
	}
	return p
}

var (
	jsonFenceRe = regexp.MustCompile("(?s)```json\\s*\\n?(.*?)```")
	anyFenceRe  = regexp.MustCompile("(?s)```[a-zA-Z0-9_+-]*[ \t]*\\n?(.*?)```")
)

// ExtractJSONBlock locates the JSON payload candidate inside a response.
// Tried in order, first match wins: a ```json fence, any fence whose content
// starts with '{' or '[', the first '{' through the last '}', then the first
// '[' through the last ']'. Returns false if nothing qualifies.
func ExtractJSONBlock(response string) (string, bool) {
	for _, re := range []*regexp.Regexp{jsonFenceRe, anyFenceRe} {
		if m := re.FindStringSubmatch(response); m != nil {
			inner := strings.TrimSpace(m[1])
			// Guard against non-JSON code samples matching the fence.
			if strings.HasPrefix(inner, "{") || strings.HasPrefix(inner, "[") {
				return inner, true
			}
		}
	}

	if block, ok := spanBetween(response, '{', '}'); ok {
		return block, true
	}
	if block, ok := spanBetween(response, '[', ']'); ok {
		return block, true
	}

	return "", false
}

// spanBetween greedily captures the first open delimiter through the last
// close delimiter, which tolerates JSON embedded in prose.
func spanBetween(s string, open, close byte) (string, bool) {
	start := strings.IndexByte(s, open)
	if start < 0 {
		return "", false
	}
	end := strings.LastIndexByte(s, close)
	if end <= start {
		return "", false
	}
	return s[start : end+1], true
}

func newError(response string, cause error) *Error {
	e := &Error{
		Code:      "json_parse_failed",
		Message:   "could not understand the model response",
		Kind:      KindParsing,
		Retryable: false,
	}
	if cause != nil {
		e.Cause = cause.Error()
	}

	runes := []rune(response)
	if len(runes) <= 2*snippetLen {
		e.Head = response
	} else {
		e.Head = string(runes[:snippetLen])
		e.Tail = string(runes[len(runes)-snippetLen:])
	}
	return e
}
