package ai

import (
	"encoding/json"
	"strings"
)

// ParseEmailList defensively parses a model response expected to be a
// JSON array of {"email": "..."} objects. The model is untrusted free
// text: code-fence markers are stripped, a non-array payload yields
// nothing, and array elements that are not objects with a string email
// field are discarded silently.
func ParseEmailList(raw string) ([]string, error) {
	cleaned := stripCodeFences(raw)

	var parsed []json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, err
	}

	emails := make([]string, 0, len(parsed))
	for _, element := range parsed {
		var obj struct {
			Email *string `json:"email"`
		}
		if err := json.Unmarshal(element, &obj); err != nil {
			continue
		}
		if obj.Email != nil && *obj.Email != "" {
			emails = append(emails, *obj.Email)
		}
	}

	return emails, nil
}

// stripCodeFences removes Markdown code-fence markers the model may
// wrap its JSON in.
func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
