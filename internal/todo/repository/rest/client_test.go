package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"todo-sync/internal/model"
	"todo-sync/internal/todo/repository/rest"
)

func TestTodoClient(t *testing.T) {
	var lastPut rest.Todo

	mux := http.NewServeMux()
	mux.HandleFunc("/todo", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			io.WriteString(w, `[{"id":0.42,"title":"Buy milk","time":"1","done":false},{"id":"b","title":"Walk","time":2,"done":true}]`)
		case http.MethodPost:
			if r.Header.Get("Content-Type") != "application/json" {
				w.WriteHeader(http.StatusUnsupportedMediaType)
				return
			}
			var todo rest.Todo
			json.NewDecoder(r.Body).Decode(&todo)
			todo.ID = model.NumberID(11)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(todo)
		}
	})
	mux.HandleFunc("/todo/7", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			json.NewDecoder(r.Body).Decode(&lastPut)
			json.NewEncoder(w).Encode(lastPut)
		case http.MethodDelete:
			io.WriteString(w, `{}`)
		}
	})
	mux.HandleFunc("/todo/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{}`)
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := rest.NewClient(ts.URL)
	ctx := context.Background()

	t.Run("ListTodos", func(t *testing.T) {
		todos, err := client.ListTodos(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(todos) != 2 {
			t.Fatalf("expected 2 todos, got %d", len(todos))
		}
		if todos[0].ID.String() != "0.42" || !todos[0].ID.IsNumber() {
			t.Errorf("unexpected first id: %+v", todos[0].ID)
		}
		if todos[1].Time.String() != "2" || !todos[1].Done {
			t.Errorf("unexpected second todo: %+v", todos[1])
		}
	})

	t.Run("CreateTodo", func(t *testing.T) {
		created, err := client.CreateTodo(ctx, rest.Todo{
			ID:    model.StringID("local"),
			Title: "Buy milk",
			Time:  model.EstimateText("1"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created == nil || created.ID.String() != "11" {
			t.Errorf("expected server id 11, got %+v", created)
		}
	})

	t.Run("UpdateTodo", func(t *testing.T) {
		res, err := client.UpdateTodo(ctx, rest.Todo{
			ID:    model.NumberID(7),
			Title: "Walk",
			Time:  model.EstimateText("2"),
			Done:  true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Done || !lastPut.Done {
			t.Errorf("expected done=true echoed, got %+v", res)
		}
		if !lastPut.ID.IsNumber() {
			t.Errorf("expected numeric id preserved on the wire, got %+v", lastPut.ID)
		}
	})

	t.Run("DeleteTodo", func(t *testing.T) {
		if err := client.DeleteTodo(ctx, "7"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Status error", func(t *testing.T) {
		err := client.DeleteTodo(ctx, "missing")
		var statusErr *rest.StatusError
		if !errors.As(err, &statusErr) {
			t.Fatalf("expected StatusError, got %v", err)
		}
		if statusErr.Code != http.StatusNotFound || statusErr.Op != "delete" {
			t.Errorf("unexpected status error: %+v", statusErr)
		}
	})

	t.Run("Server Down", func(t *testing.T) {
		badClient := rest.NewClient("http://localhost:59999")
		if _, err := badClient.ListTodos(ctx); err == nil {
			t.Errorf("expected connection refused error")
		}
	})
}

func TestCreateTodoIgnoresResponseBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"empty object", "{}"},
		{"not json", "created"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				io.WriteString(w, tc.body)
			}))
			defer ts.Close()

			created, err := rest.NewClient(ts.URL).CreateTodo(context.Background(), rest.Todo{ID: model.StringID("a")})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if created != nil {
				t.Errorf("expected nil created todo, got %+v", created)
			}
		})
	}
}

func TestClientTimeout(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer ts.Close()
	defer close(release)

	client := rest.NewClient(ts.URL, rest.WithTimeout(50*time.Millisecond))
	if _, err := client.ListTodos(context.Background()); err == nil {
		t.Errorf("expected timeout error")
	}
}

func TestClientTimeoutIgnoresOptionOrder(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer ts.Close()
	defer close(release)

	shared := &http.Client{}
	client := rest.NewClient(ts.URL, rest.WithTimeout(50*time.Millisecond), rest.WithHTTPClient(shared))
	if _, err := client.ListTodos(context.Background()); err == nil {
		t.Errorf("expected timeout error")
	}
	if shared.Timeout != 0 {
		t.Errorf("shared client was modified: timeout = %v", shared.Timeout)
	}
}

func TestClientLeavesDefaultClientAlone(t *testing.T) {
	before := http.DefaultClient.Timeout
	rest.NewClient("http://localhost:5000", rest.WithHTTPClient(http.DefaultClient), rest.WithTimeout(time.Second))
	if http.DefaultClient.Timeout != before {
		t.Errorf("http.DefaultClient timeout changed to %v", http.DefaultClient.Timeout)
	}
}

func TestClientValidation(t *testing.T) {
	validator, err := rest.NewValidator()
	if err != nil {
		t.Fatalf("compile schema: %v", err)
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			io.WriteString(w, `[{"id":1,"title":"Buy milk","time":"1","done":"no"}]`)
		case http.MethodPut:
			io.WriteString(w, `{"id":1,"title":"Buy milk","time":"1"}`)
		}
	}))
	defer ts.Close()

	client := rest.NewClient(ts.URL, rest.WithValidator(validator))

	_, err = client.ListTodos(context.Background())
	var schemaErr *rest.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError from list, got %v", err)
	}
	if schemaErr.Path != "/0/done" {
		t.Errorf("expected path /0/done, got %q", schemaErr.Path)
	}

	_, err = client.UpdateTodo(context.Background(), rest.Todo{ID: model.NumberID(1)})
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError from update, got %v", err)
	}
}
