package logger

// IDKey is the field name holding the logger's correlation identifier.
const IDKey = "id"

// Fields are the structured key-value pairs attached to a single record.
type Fields map[string]any

// Enrich returns a new map holding fields plus the logger id under IDKey.
// A caller-supplied IDKey is overwritten. The input map is never modified.
func Enrich(fields Fields, id string) Fields {
	enriched := make(Fields, len(fields)+1)
	for k, v := range fields {
		enriched[k] = v
	}

	enriched[IDKey] = id

	return enriched
}
