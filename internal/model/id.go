package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// TaskID identifies a task. It remembers whether it travelled over the wire as
// a JSON number or a JSON string so it is echoed back in the same form.
type TaskID struct {
	value  string
	number bool
}

// NewTaskID returns a random UUIDv4 id.
func NewTaskID() TaskID {
	return TaskID{value: uuid.NewString()}
}

// StringID wraps s as a string id.
func StringID(s string) TaskID {
	return TaskID{value: s}
}

// NumberID wraps n as a numeric id.
func NumberID(n float64) TaskID {
	return TaskID{value: strconv.FormatFloat(n, 'f', -1, 64), number: true}
}

func (id TaskID) String() string { return id.value }
func (id TaskID) IsZero() bool   { return id.value == "" }
func (id TaskID) IsNumber() bool { return id.number }

// Equal compares ids by their textual value, so numeric 7 equals the path
// segment "7".
func (id TaskID) Equal(other TaskID) bool {
	return id.value == other.value
}

func (id TaskID) MarshalJSON() ([]byte, error) {
	if id.number {
		return []byte(id.value), nil
	}
	return json.Marshal(id.value)
}

func (id *TaskID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = TaskID{}
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("task id: %w", err)
		}
		*id = TaskID{value: s}
		return nil
	default:
		n, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("task id must be a number or a string, got %s", data)
		}
		*id = TaskID{value: canonicalNumber(string(data), n), number: true}
		return nil
	}
}

// canonicalNumber spells numerically equal ids the same way, so 7, 7.0 and
// 7e0 all read "7". Plain integer literals are kept verbatim so ids beyond
// float64 precision survive.
func canonicalNumber(text string, n float64) string {
	if isIntegerLiteral(text) {
		return text
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func isIntegerLiteral(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
