package schemameta

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// metadataSchema requires every property of the document to be a JSON
// array. An operator's ViewMap/DestroyMap, marshaled as
// map[string][]int, satisfies this iff every value is an ordered
// sequence (spec.md §6).
const metadataSchema = `{
	"type": "object",
	"additionalProperties": {
		"type": "array",
		"items": {"type": "integer"}
	}
}`

var schemaLoader = gojsonschema.NewStringLoader(metadataSchema)

// ValidateMetadata checks that viewMap and destroyMap each have only
// ordered-sequence values. Either argument may be nil.
func ValidateMetadata(viewMap, destroyMap map[int][]int) error {
	if err := validateOne("view_map", viewMap); err != nil {
		return err
	}
	return validateOne("destroy_map", destroyMap)
}

func validateOne(label string, m map[int][]int) error {
	if m == nil {
		return nil
	}
	// JSON object keys must be strings; the schema only cares about the
	// values, so the re-keying below is purely to produce valid JSON.
	stringKeyed := make(map[string][]int, len(m))
	for k, v := range m {
		stringKeyed[fmt.Sprintf("%d", k)] = v
	}

	doc, err := json.Marshal(stringKeyed)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("%s: schema validation failed: %w", label, err)
	}
	if !result.Valid() {
		descs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			descs = append(descs, e.Description())
		}
		return fmt.Errorf("%s: not an ordered-sequence map: %v", label, descs)
	}
	return nil
}
