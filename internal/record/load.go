package record

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrInputNotFound is returned by LoadFile when the input path does not exist.
var ErrInputNotFound = errors.New("input file not found")

// ErrInvalidUTF8 is the cause of a ParseError for a line that is not UTF-8.
var ErrInvalidUTF8 = errors.New("line is not valid UTF-8")

// maxContentPreview caps how much of a malformed line is echoed back.
const maxContentPreview = 80

// ParseError reports a non-blank line that is not a JSON object.
type ParseError struct {
	Line    int    // 1-based physical line number
	Content string // offending line, truncated for display
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: invalid JSON record: %v", e.Line, e.Err)
}

// Unwrap returns the underlying decode error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadFile opens path and loads all records from it.
// Returns an error wrapping ErrInputNotFound if the path does not exist or
// names a directory.
func LoadFile(path string) ([]Record, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("stat input %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInputNotFound, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read-only file

	records, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return records, nil
}

// Load reads newline-delimited JSON objects from r, one per non-blank line,
// in input order. Blank lines are skipped. The first malformed line aborts
// the load with a *ParseError and no records are returned.
func Load(r io.Reader) ([]Record, error) {
	reader := bufio.NewReader(r)
	records := []Record{}

	for lineNo := 1; ; lineNo++ {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("reading line %d: %w", lineNo, readErr)
		}

		if trimmed := strings.TrimSpace(line); trimmed != "" {
			rec, err := parseLine(trimmed)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Content: preview(trimmed), Err: err}
			}
			records = append(records, rec)
		}

		if errors.Is(readErr, io.EOF) {
			return records, nil
		}
	}
}

// parseLine decodes a single trimmed line into a record.
// Lines that are not valid UTF-8 are rejected before decoding.
func parseLine(line string) (Record, error) {
	if !utf8.ValidString(line) {
		return Record{}, ErrInvalidUTF8
	}
	data := []byte(line)
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return Record{}, err
	}
	if data[0] != '{' {
		return Record{}, fmt.Errorf("expected a JSON object, got %s", kindOf(data[0]))
	}

	fields := map[string]json.RawMessage{}
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&fields); err != nil {
		return Record{}, err
	}
	return Record{fields: fields}, nil
}

// kindOf names the JSON value kind starting with b.
func kindOf(b byte) string {
	switch b {
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

// preview shortens s for inclusion in error messages. Invalid UTF-8 is
// shown as U+FFFD.
func preview(s string) string {
	runes := []rune(strings.ToValidUTF8(s, "\uFFFD"))
	if len(runes) <= maxContentPreview {
		return string(runes)
	}
	return string(runes[:maxContentPreview]) + "..."
}
