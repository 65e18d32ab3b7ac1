package api

import (
	"encoding/json"
	"fmt"

	"github.com/pagebound/bookclub/internal/client/models"
)

// Resource is one {id, attributes} element of the response envelope.
type Resource struct {
	ID         models.ID       `json:"id"`
	Type       string          `json:"type,omitempty"`
	Attributes json.RawMessage `json:"attributes"`
}

// Decode unmarshals the resource attributes into v. Attributes rarely
// repeat the envelope id, so callers copy r.ID into the decoded value
// themselves.
func (r Resource) Decode(v any) error {
	if len(r.Attributes) == 0 {
		return fmt.Errorf("resource %s has no attributes", r.ID)
	}
	if err := json.Unmarshal(r.Attributes, v); err != nil {
		return fmt.Errorf("decoding resource attributes: %w", err)
	}
	return nil
}

// Envelope is the single-resource response wrapper {data:{id,attributes}}.
type Envelope struct {
	Data    Resource `json:"data"`
	Message string   `json:"message,omitempty"`
}

// ListEnvelope is the collection response wrapper {data:[...]}.
type ListEnvelope struct {
	Data []Resource `json:"data"`
}
