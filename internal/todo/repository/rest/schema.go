package rest

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const (
	taskSchemaURL     = "https://todo-sync.local/schema/task.json"
	taskListSchemaURL = "https://todo-sync.local/schema/task-list.json"
)

const taskSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "$id": "https://todo-sync.local/schema/task.json",
  "type": "object",
  "required": ["id", "title", "time", "done"],
  "properties": {
    "id":    {"type": ["number", "string"]},
    "title": {"type": "string"},
    "time":  {"type": ["string", "number"]},
    "done":  {"type": "boolean"}
  }
}`

const taskListSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "$id": "https://todo-sync.local/schema/task-list.json",
  "type": "array",
  "items": {"$ref": "task.json"}
}`

// Validator checks raw response bodies against the task JSON shape.
type Validator struct {
	task     *jsonschema.Schema
	taskList *jsonschema.Schema
}

// NewValidator compiles the task schemas.
func NewValidator() (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7

	if err := compiler.AddResource(taskSchemaURL, strings.NewReader(taskSchema)); err != nil {
		return nil, fmt.Errorf("add task schema: %w", err)
	}
	if err := compiler.AddResource(taskListSchemaURL, strings.NewReader(taskListSchema)); err != nil {
		return nil, fmt.Errorf("add task list schema: %w", err)
	}

	task, err := compiler.Compile(taskSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile task schema: %w", err)
	}
	taskList, err := compiler.Compile(taskListSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile task list schema: %w", err)
	}

	return &Validator{task: task, taskList: taskList}, nil
}

// ValidateTask validates a single task body.
func (v *Validator) ValidateTask(raw []byte) error {
	return validate(v.task, raw)
}

// ValidateList validates a task array body.
func (v *Validator) ValidateList(raw []byte) error {
	return validate(v.taskList, raw)
}

func validate(schema *jsonschema.Schema, raw []byte) error {
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &SchemaError{Message: fmt.Sprintf("invalid JSON: %v", err)}
	}
	if err := schema.Validate(doc); err != nil {
		return toSchemaError(err)
	}
	return nil
}

// toSchemaError reduces a jsonschema error tree to its first leaf cause.
func toSchemaError(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return &SchemaError{Message: err.Error()}
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return &SchemaError{Path: ve.InstanceLocation, Message: ve.Message}
}
