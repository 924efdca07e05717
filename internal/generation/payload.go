package generation

// Type is the JSON type of a schema node.
type Type string

// Schema node types understood by the providers.
const (
	TypeObject  Type = "OBJECT"
	TypeArray   Type = "ARRAY"
	TypeString  Type = "STRING"
	TypeNumber  Type = "NUMBER"
	TypeInteger Type = "INTEGER"
	TypeBoolean Type = "BOOLEAN"
)

// MIMETypeJSON asks the model for a JSON document.
const MIMETypeJSON = "application/json"

// Schema describes the shape the model must conform its JSON output to.
type Schema struct {
	Type       Type               `json:"type"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	// PropertyOrder keeps the declared field order stable for providers
	// that honour it.
	PropertyOrder []string `json:"propertyOrdering,omitempty"`
	Items         *Schema  `json:"items,omitempty"`
	Required      []string `json:"required,omitempty"`
}

// RequestPayload is a complete single-shot generation request: the
// instruction text plus an optional structured-output schema.
type RequestPayload struct {
	// Operation tags the payload for logging and metrics.
	Operation string `json:"operation"`

	// Instruction is the full prompt text sent to the model.
	Instruction string `json:"instruction"`

	// ResponseMIMEType is MIMETypeJSON when Schema is set, empty otherwise.
	ResponseMIMEType string `json:"responseMimeType,omitempty"`

	// Schema is the output schema, nil for free text.
	Schema *Schema `json:"schema,omitempty"`
}

// Structured reports whether the payload requests schema-conforming JSON.
func (p RequestPayload) Structured() bool {
	return p.Schema != nil
}
