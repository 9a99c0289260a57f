// Package record provides the question/answer record model and the
// newline-delimited JSON loader for qareport.
package record

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Placeholders rendered when a text field is absent.
const (
	DefaultQuestion    = "N/A"
	DefaultPrediction  = "No answer generated"
	DefaultTermination = "unknown"
)

// NullText is the text of a field that is present with a JSON null value.
const NullText = "None"

// Field names interpreted by the renderer. All other fields are retained
// but ignored.
const (
	FieldQuestion    = "question"
	FieldPrediction  = "prediction"
	FieldTermination = "termination"
	FieldError       = "error"
)

// Text is an optional text field: either present with a value or absent.
type Text struct {
	value   string
	present bool
}

// Present returns a Text holding s. An empty s is still present.
func Present(s string) Text {
	return Text{value: s, present: true}
}

// Absent returns a Text with no value.
func Absent() Text {
	return Text{}
}

// IsPresent reports whether the field carried a value.
func (t Text) IsPresent() bool {
	return t.present
}

// Or returns the value if present, otherwise def.
func (t Text) Or(def string) string {
	if !t.present {
		return def
	}
	return t.value
}

// Record is one parsed JSON object from the input.
// Records are never mutated after Load returns them.
type Record struct {
	fields map[string]json.RawMessage
}

// Question returns the question text.
func (r Record) Question() Text {
	return r.text(FieldQuestion)
}

// Prediction returns the generated answer text.
func (r Record) Prediction() Text {
	return r.text(FieldPrediction)
}

// Termination returns the termination status label.
func (r Record) Termination() Text {
	return r.text(FieldTermination)
}

// Failed reports whether the record carries a truthy error field.
// Absent, null, false, "", 0, [] and {} all count as no error.
func (r Record) Failed() bool {
	raw, ok := r.fields[FieldError]
	if !ok {
		return false
	}
	return truthy(raw)
}

// Successful is the strict complement of Failed.
func (r Record) Successful() bool {
	return !r.Failed()
}

// text decodes a field into a Text. Only a missing key is absent. A JSON
// null reads as NullText, strings are taken verbatim and any other JSON value
// is kept as its compact JSON text.
func (r Record) text(name string) Text {
	raw, ok := r.fields[name]
	if !ok {
		return Absent()
	}
	trimmed := bytes.TrimSpace(raw)
	if bytes.Equal(trimmed, []byte("null")) {
		return Present(NullText)
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return Present(s)
		}
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, trimmed); err != nil {
		return Present(string(trimmed))
	}
	return Present(compact.String())
}

// truthy applies the usual scripting truthiness rule to a raw JSON value.
func truthy(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return false
	}

	switch trimmed[0] {
	case 'n':
		return false
	case 't':
		return true
	case 'f':
		return false
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return true
		}
		return s != ""
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return true
		}
		return len(items) > 0
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return true
		}
		return len(obj) > 0
	default:
		n, err := strconv.ParseFloat(string(trimmed), 64)
		if err != nil {
			return true
		}
		return n != 0
	}
}
