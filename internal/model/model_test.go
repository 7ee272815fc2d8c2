package model_test

import (
	"encoding/json"
	"testing"

	"todo-sync/internal/model"
)

func TestTaskIDJSON(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		want     string
		isNumber bool
	}{
		{"random float", `0.5487239`, "0.5487239", true},
		{"integer", `7`, "7", true},
		{"uuid string", `"6f1c2d7e-9a51-4c1b-8f3e-0c2f7d9b1a44"`, "6f1c2d7e-9a51-4c1b-8f3e-0c2f7d9b1a44", false},
		{"numeric string", `"7"`, "7", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var id model.TaskID
			if err := json.Unmarshal([]byte(tc.in), &id); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id.String() != tc.want || id.IsNumber() != tc.isNumber {
				t.Errorf("got %q (number=%v), want %q (number=%v)", id.String(), id.IsNumber(), tc.want, tc.isNumber)
			}

			out, err := json.Marshal(id)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(out) != tc.in {
				t.Errorf("expected wire form %s preserved, got %s", tc.in, out)
			}
		})
	}
}

func TestTaskIDNumericSpellings(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trailing zero", `7.0`, "7"},
		{"exponent", `7e0`, "7"},
		{"fraction", `0.50`, "0.5"},
		{"large integer kept", `12345678901234567890`, "12345678901234567890"},
		{"negative integer", `-3`, "-3"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var id model.TaskID
			if err := json.Unmarshal([]byte(tc.in), &id); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id.String() != tc.want {
				t.Errorf("got %q, want %q", id.String(), tc.want)
			}
		})
	}

	var a, b model.TaskID
	if err := json.Unmarshal([]byte(`7.0`), &a); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(`7`), &b); err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) || !a.Equal(model.NumberID(7)) || !a.Equal(model.StringID("7")) {
		t.Errorf("7.0 should match 7")
	}
}

func TestTaskIDRejectsOtherKinds(t *testing.T) {
	var id model.TaskID
	if err := json.Unmarshal([]byte(`true`), &id); err == nil {
		t.Errorf("expected error for boolean id")
	}
}

func TestTaskIDEqual(t *testing.T) {
	if !model.NumberID(7).Equal(model.StringID("7")) {
		t.Errorf("numeric 7 should equal path segment \"7\"")
	}
	if model.NewTaskID().Equal(model.NewTaskID()) {
		t.Errorf("generated ids should differ")
	}
}

func TestEstimatePlural(t *testing.T) {
	tests := []struct {
		name string
		e    model.Estimate
		want bool
	}{
		{"one hour text", model.EstimateText("1"), false},
		{"two hours text", model.EstimateText("2"), true},
		{"fraction", model.EstimateText("1.5"), true},
		{"half", model.EstimateNumber(0.5), false},
		{"number", model.EstimateNumber(3), true},
		{"non numeric", model.EstimateText("a while"), false},
		{"empty", model.EstimateText(""), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.e.Plural(); got != tc.want {
				t.Errorf("Plural() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNewTask(t *testing.T) {
	task := model.NewTask("Buy milk", model.EstimateText("1"))
	if task.ID.IsZero() {
		t.Errorf("expected generated id")
	}
	if task.Done {
		t.Errorf("new task must not be done")
	}
	if task.Time.String() != "1" || task.Time.IsNumber() {
		t.Errorf("expected text estimate \"1\", got %+v", task.Time)
	}
}
