package note

// Property describes one field of a resource schema.
type Property struct {
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Context     []string `json:"context,omitempty"`
	ReadOnly    bool     `json:"readonly,omitempty"`
}

// Schema is a draft-04 json schema of a resource.
type Schema struct {
	Schema     string              `json:"$schema"`
	Title      string              `json:"title"`
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
}

// ItemSchema describes a Summary. Fields added to Summary must be declared here too.
func ItemSchema() Schema {
	return Schema{
		Schema: "http://json-schema.org/draft-04/schema#",
		Title:  "note",
		Type:   "object",
		Properties: map[string]Property{
			"id": {
				Description: "Unique identifier for the object.",
				Type:        "integer",
				Context:     []string{"view", "edit", "embed"},
				ReadOnly:    true,
			},
			"modificationDate": {
				Description: "The GMT time of the last post modification.",
				Type:        "integer",
			},
		},
	}
}
