package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/grovetools/remote-attach/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const debugConfigResource = "remote-attach-debug.json"

// Validator lints debug configurations against the generated schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the debug configuration schema.
func NewValidator() (*Validator, error) {
	data, err := GenerateDebugConfigSchema()
	if err != nil {
		return nil, fmt.Errorf("failed to generate debug configuration schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(debugConfigResource, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	compiled, err := compiler.Compile(debugConfigResource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return &Validator{schema: compiled}, nil
}

// Validate checks raw against the schema. Violations are returned as a
// SCHEMA_VIOLATION error listing one line per problem.
func (v *Validator) Validate(raw []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var doc interface{}
	if err := decoder.Decode(&doc); err != nil {
		return errors.Wrap(err, errors.ErrCodeDebugConfigInvalid, "failed to decode debug configuration")
	}

	if err := v.schema.Validate(doc); err != nil {
		validationErr, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return errors.Wrap(err, errors.ErrCodeSchemaViolation, "schema validation failed")
		}
		var messages []string
		collectErrors(validationErr, &messages)
		sort.Strings(messages)
		return errors.SchemaViolation(messages)
	}

	return nil
}

// Violations returns the violation lines of a SCHEMA_VIOLATION error.
func Violations(err error) []string {
	toolErr, ok := err.(*errors.ToolError)
	if !ok || toolErr.Code != errors.ErrCodeSchemaViolation {
		return nil
	}
	violations, _ := toolErr.Details["violations"].([]string)
	return violations
}

// collectErrors gathers the leaf validation errors, which carry the
// specific messages.
func collectErrors(err *jsonschema.ValidationError, messages *[]string) {
	if len(err.Causes) == 0 {
		location := err.InstanceLocation
		if location == "" {
			location = "/"
		}
		*messages = append(*messages, fmt.Sprintf("- %s: %s", location, err.Message))
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, messages)
	}
}
