package quizgen

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoJSONFound reports that the accumulated text contains no bracketed
// array of objects at all.
var ErrNoJSONFound = errors.New("no JSON array found in model output")

// MalformedJSONError reports that a candidate array span was located but did
// not parse. Raw carries the full accumulated text for manual recovery.
type MalformedJSONError struct {
	Raw string
	Err error
}

func (e *MalformedJSONError) Error() string {
	return fmt.Sprintf("malformed JSON in model output: %v", e.Err)
}

func (e *MalformedJSONError) Unwrap() error { return e.Err }

// ExtractProblems locates the first embedded JSON array of problem objects
// in free-form model output and parses it. Missing fields default to the
// zero value; nothing else about the problems is validated. Pure and
// idempotent: the same text always yields the same result.
func ExtractProblems(text string) ([]Problem, error) {
	span, ok := findObjectArray(text)
	if !ok {
		return nil, ErrNoJSONFound
	}

	var raw []struct {
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer string   `json:"correct_answer"`
	}
	if err := json.Unmarshal([]byte(span), &raw); err != nil {
		return nil, &MalformedJSONError{Raw: text, Err: err}
	}

	problems := make([]Problem, len(raw))
	for i, r := range raw {
		opts := r.Options
		if opts == nil {
			opts = []string{}
		}
		problems[i] = Problem{
			Question:      r.Question,
			Options:       opts,
			CorrectAnswer: r.CorrectAnswer,
		}
	}
	return problems, nil
}

// findObjectArray returns the first balanced bracket span that opens an
// array of objects: a '[' whose next non-whitespace byte is '{', scanned to
// its matching ']' with JSON string and escape state tracked so braces
// inside string values do not confuse the depth count.
func findObjectArray(text string) (string, bool) {
	for start := 0; start < len(text); start++ {
		if text[start] != '[' {
			continue
		}
		if !opensObject(text[start+1:]) {
			continue
		}
		if end, ok := matchBracket(text, start); ok {
			return text[start : end+1], true
		}
	}
	return "", false
}

func opensObject(rest string) bool {
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case ' ', '\t', '\r', '\n':
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

// matchBracket scans from the opening bracket at start and returns the index
// of the bracket that closes it, or false if the text ends first.
func matchBracket(text string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[', '{':
			depth++
		case ']', '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
