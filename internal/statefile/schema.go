package statefile

import (
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// documentSchema constrains an imported document before it is parsed:
// types, required sections, non-negative counters, known priority and
// filter enums. Unknown extra fields are allowed so newer exports
// degrade gracefully.
const documentSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["version"],
	"properties": {
		"version": {"type": "integer", "minimum": 1},
		"exportedAt": {"type": "string"},
		"tasks": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "title"],
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"title": {"type": "string", "minLength": 1},
					"subjectId": {"type": "string"},
					"dueDate": {"type": "string"},
					"priority": {"enum": ["low", "medium", "high"]},
					"estimatedMinutes": {"type": "integer", "minimum": 0},
					"completed": {"type": "boolean"},
					"createdAt": {"type": "integer"}
				}
			}
		},
		"subjects": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "name"],
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"name": {"type": "string", "minLength": 1},
					"color": {"type": "string"}
				}
			}
		},
		"player": {
			"type": "object",
			"properties": {
				"xp": {"type": "integer", "minimum": 0},
				"level": {"type": "integer", "minimum": 1},
				"streak": {"type": "integer", "minimum": 0},
				"lastActiveDate": {"type": "string"},
				"totalPomodoros": {"type": "integer", "minimum": 0},
				"weeklyMinutes": {
					"type": "object",
					"additionalProperties": {"type": "integer", "minimum": 0}
				},
				"pomoDayCount": {"type": "integer", "minimum": 0},
				"pomoDayDate": {"type": "string"},
				"pomoXpTotal": {"type": "integer", "minimum": 0}
			}
		},
		"achievements": {
			"type": "object",
			"additionalProperties": {"type": "integer"}
		}
	}
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// validate checks raw against the document schema.
func validate(raw []byte) error {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(documentSchema))
		if err != nil {
			schemaErr = fmt.Errorf("parse state schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("statefile.json", doc); err != nil {
			schemaErr = fmt.Errorf("add state schema: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile("statefile.json")
	})
	if schemaErr != nil {
		return schemaErr
	}

	parsed, err := jsonschema.UnmarshalJSON(strings.NewReader(string(raw)))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("state document rejected: %w", err)
	}
	return nil
}
