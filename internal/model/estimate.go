package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Estimate is the "time" field of a task. Forms submit it as text while some
// servers store it as a number; both forms are kept verbatim.
type Estimate struct {
	value  string
	number bool
}

// EstimateText wraps free text as typed in the form.
func EstimateText(s string) Estimate {
	return Estimate{value: s}
}

// EstimateNumber wraps a numeric estimate.
func EstimateNumber(n float64) Estimate {
	return Estimate{value: strconv.FormatFloat(n, 'f', -1, 64), number: true}
}

func (e Estimate) String() string { return e.value }
func (e Estimate) IsNumber() bool { return e.number }

// Hours parses the estimate as a number of hours.
func (e Estimate) Hours() (float64, bool) {
	h, err := strconv.ParseFloat(strings.TrimSpace(e.value), 64)
	if err != nil {
		return 0, false
	}
	return h, true
}

// Plural reports whether the estimate reads as more than one hour.
// Non-numeric text is never plural.
func (e Estimate) Plural() bool {
	h, ok := e.Hours()
	return ok && h > 1
}

func (e Estimate) MarshalJSON() ([]byte, error) {
	if e.number {
		return []byte(e.value), nil
	}
	return json.Marshal(e.value)
}

func (e *Estimate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*e = Estimate{}
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("task time: %w", err)
		}
		*e = Estimate{value: s}
		return nil
	default:
		if _, err := strconv.ParseFloat(string(data), 64); err != nil {
			return fmt.Errorf("task time must be a number or a string, got %s", data)
		}
		*e = Estimate{value: string(data), number: true}
		return nil
	}
}
