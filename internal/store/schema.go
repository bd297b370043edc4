package store

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// rosterSchema pins the field names and JSON types of a saved roster. Values
// of grade, studentClass and section are not constrained.
const rosterSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["name", "rollNo", "age", "grade", "studentClass", "section"],
    "properties": {
      "name":         {"type": "string"},
      "rollNo":       {"type": "string"},
      "age":          {"type": "integer"},
      "grade":        {"type": "string"},
      "studentClass": {"type": "string"},
      "section":      {"type": "string"}
    }
  }
}`

var compiledSchema = mustCompile(rosterSchema)

func mustCompile(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("store: invalid roster schema: %v", err))
	}
	return schema
}

// checkShape reports whether data is a JSON array of student objects.
func checkShape(data []byte) error {
	result, err := compiledSchema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Errorf("schema validation failed: %s", summarize(errs))
}

// summarize keeps the first three errors to avoid massive output.
func summarize(errs []string) string {
	if len(errs) > 3 {
		return strings.Join(errs[:3], "; ") + fmt.Sprintf("; ... and %d more", len(errs)-3)
	}
	return strings.Join(errs, "; ")
}
