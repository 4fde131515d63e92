package storage

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"todo-list/internal/domain"
	"todo-list/internal/validation"
)

// Persisted format versions
const (
	LegacyVersion  = 0
	CurrentVersion = 1
)

const schemaBaseURL = "https://todo-list.local/schema/"

//go:embed schema/*.json
var schemaFS embed.FS

// Envelope is the versioned persisted document
type Envelope struct {
	Version int          `json:"version"`
	Tasks   []TaskRecord `json:"tasks"`
}

// Codec converts task lists to and from the persisted JSON form
type Codec struct {
	envelopeSchema *jsonschema.Schema
	legacySchema   *jsonschema.Schema
	mapper         *TaskMapper
	validator      *validation.TaskValidator
}

// NewCodec compiles the embedded schemas
func NewCodec() (*Codec, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7

	for _, name := range []string{"task.json", "envelope.json", "legacy.json"} {
		data, err := schemaFS.ReadFile("schema/" + name)
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", name, err)
		}
		if err := compiler.AddResource(schemaBaseURL+name, bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("add schema %s: %w", name, err)
		}
	}

	envelopeSchema, err := compiler.Compile(schemaBaseURL + "envelope.json")
	if err != nil {
		return nil, fmt.Errorf("compile envelope schema: %w", err)
	}
	legacySchema, err := compiler.Compile(schemaBaseURL + "legacy.json")
	if err != nil {
		return nil, fmt.Errorf("compile legacy schema: %w", err)
	}

	return &Codec{
		envelopeSchema: envelopeSchema,
		legacySchema:   legacySchema,
		mapper:         NewTaskMapper(),
		validator:      validation.NewTaskValidator(),
	}, nil
}

// Encode serialises list as a current-version envelope
func (c *Codec) Encode(list domain.TaskList) ([]byte, error) {
	return json.Marshal(Envelope{
		Version: CurrentVersion,
		Tasks:   c.mapper.ToRecords(list),
	})
}

// Decode parses a stored value in either the current or the legacy format
func (c *Codec) Decode(data []byte) (domain.TaskList, error) {
	list, _, err := c.DecodeVersion(data)
	return list, err
}

// DecodeVersion parses a stored value and reports which format it was in
func (c *Codec) DecodeVersion(data []byte) (domain.TaskList, int, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, 0, fmt.Errorf("empty document")
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var doc interface{}
	if err := decoder.Decode(&doc); err != nil {
		return nil, 0, fmt.Errorf("parse JSON: %w", err)
	}

	var records []TaskRecord
	var version int

	switch value := doc.(type) {
	case []interface{}:
		version = LegacyVersion
		if err := c.legacySchema.Validate(value); err != nil {
			return nil, 0, schemaError(err)
		}
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, 0, fmt.Errorf("decode legacy tasks: %w", err)
		}
	case map[string]interface{}:
		v, err := envelopeVersion(value)
		if err != nil {
			return nil, 0, err
		}
		version = v
		if err := c.envelopeSchema.Validate(value); err != nil {
			return nil, 0, schemaError(err)
		}
		var envelope Envelope
		if err := json.Unmarshal(data, &envelope); err != nil {
			return nil, 0, fmt.Errorf("decode envelope: %w", err)
		}
		records = envelope.Tasks
	default:
		return nil, 0, fmt.Errorf("unexpected document type %T", doc)
	}

	list := c.mapper.FromRecords(records)
	if err := c.validator.ValidateTaskList(list); err != nil {
		return nil, 0, err
	}
	return list, version, nil
}

func envelopeVersion(doc map[string]interface{}) (int, error) {
	raw, ok := doc["version"]
	if !ok {
		return 0, fmt.Errorf("missing version")
	}
	number, ok := raw.(json.Number)
	if !ok {
		return 0, fmt.Errorf("version is not a number")
	}
	v, err := number.Int64()
	if err != nil || v != CurrentVersion {
		return 0, fmt.Errorf("unsupported version %s", number.String())
	}
	return int(v), nil
}

// schemaError flattens the leaf causes of a schema failure into one line
func schemaError(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("schema: %w", err)
	}
	var leaves []string
	collectLeaves(ve, &leaves)
	if len(leaves) == 0 {
		return fmt.Errorf("schema: %s", ve.Message)
	}
	return fmt.Errorf("schema: %s", strings.Join(leaves, "; "))
}

func collectLeaves(ve *jsonschema.ValidationError, leaves *[]string) {
	if len(ve.Causes) == 0 {
		location := ve.InstanceLocation
		if location == "" {
			location = "/"
		}
		*leaves = append(*leaves, location+": "+ve.Message)
		return
	}
	for _, cause := range ve.Causes {
		collectLeaves(cause, leaves)
	}
}
