package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	schemavalidator "github.com/santhosh-tekuri/jsonschema/v5"
)

// Issue identifies a problem at a dotted location in the config tree.
type Issue struct {
	Path    string
	Message string
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// Result is the outcome of config validation. Exactly one arm is populated:
// a valid result carries the decoded, defaulted Config; an invalid result
// carries the accumulated issues.
type Result struct {
	Valid  bool
	Config *Config
	Issues []Issue
}

// Success wraps a fully validated config.
func Success(cfg *Config) Result {
	return Result{Valid: true, Config: cfg}
}

// Failure wraps accumulated validation issues.
func Failure(issues ...Issue) Result {
	return Result{Valid: false, Issues: issues}
}

// Err converts an invalid result into an error. Returns nil for valid results.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return &ValidationError{Issues: r.Issues}
}

// ValidateObject validates a raw config value. Stages short-circuit:
// legacy shapes block schema validation, schema failures block duplicate
// checks and default backfilling.
func ValidateObject(raw any) Result {
	if issues := legacyIssues(raw); len(issues) > 0 {
		return Failure(issues...)
	}

	if issues := schemaIssues(raw); len(issues) > 0 {
		return Failure(issues...)
	}

	rawMap, ok := raw.(map[string]any)
	if !ok {
		return Failure(Issue{Path: "", Message: "config must be an object"})
	}
	cfg, err := decodeRawConfig(rawMap)
	if err != nil {
		return Failure(Issue{Path: "", Message: err.Error()})
	}

	if issue, found := duplicateAgentDirIssue(cfg); found {
		return Failure(issue)
	}

	ApplyModelDefaults(cfg)
	ApplySessionDefaults(cfg)
	return Success(cfg)
}

// schemaIssues validates the raw value against the reflected Config schema
// and maps each leaf failure to a dotted-path issue.
func schemaIssues(raw any) []Issue {
	schema, err := compiledSchema()
	if err != nil {
		return []Issue{{Path: "", Message: fmt.Sprintf("config schema unavailable: %v", err)}}
	}

	// Round-trip through JSON so the validator sees plain JSON values
	// regardless of how the raw map was produced.
	payload, err := json.Marshal(raw)
	if err != nil {
		return []Issue{{Path: "", Message: fmt.Sprintf("config is not serializable: %v", err)}}
	}
	var decoded any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return []Issue{{Path: "", Message: fmt.Sprintf("config is not serializable: %v", err)}}
	}

	err = schema.Validate(decoded)
	if err == nil {
		return nil
	}
	var ve *schemavalidator.ValidationError
	if !errors.As(err, &ve) {
		return []Issue{{Path: "", Message: err.Error()}}
	}
	return flattenSchemaError(ve)
}

func flattenSchemaError(ve *schemavalidator.ValidationError) []Issue {
	var issues []Issue
	var walk func(e *schemavalidator.ValidationError)
	walk = func(e *schemavalidator.ValidationError) {
		if len(e.Causes) == 0 {
			issues = append(issues, Issue{
				Path:    dottedPath(e.InstanceLocation),
				Message: e.Message,
			})
			return
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(ve)
	return issues
}

// dottedPath converts a JSON pointer ("/plugins/entries/x") to the dotted
// form used in issue paths ("plugins.entries.x").
func dottedPath(pointer string) string {
	pointer = strings.TrimPrefix(pointer, "/")
	if pointer == "" {
		return ""
	}
	segments := strings.Split(pointer, "/")
	for i, seg := range segments {
		seg = strings.ReplaceAll(seg, "~1", "/")
		seg = strings.ReplaceAll(seg, "~0", "~")
		segments[i] = seg
	}
	return strings.Join(segments, ".")
}
