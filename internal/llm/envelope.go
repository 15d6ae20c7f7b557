package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

type fieldsEnvelope struct {
	Fields []FieldPayload `json:"fields"`
}

// ParseExtractionResponse turns an untrusted model response into field
// payloads. The response is treated as a possibly-malformed blob:
// Markdown code fences are stripped, only the first '{' through the
// last '}' is parsed (models like to prepend and append prose), the
// payload is sanitized field by field, and the result must match the
// fields schema before any of it is used.
func ParseExtractionResponse(raw string, logger *slog.Logger) ([]FieldPayload, error) {
	if logger == nil {
		logger = slog.Default()
	}

	body, err := trimEnvelope(raw)
	if err != nil {
		return nil, err
	}

	cleaned, dropped, err := sanitizeFields([]byte(body))
	if err != nil {
		return nil, err
	}
	if len(dropped) > 0 {
		logger.Warn("llm.response.sanitize", "dropped", dropped)
	}

	if err := ValidateJSONAgainstSchema(BuildFieldsJSONSchema(), cleaned); err != nil {
		return nil, fmt.Errorf("response shape: %w", err)
	}

	var env fieldsEnvelope
	if err := json.Unmarshal(cleaned, &env); err != nil {
		return nil, fmt.Errorf("unmarshal fields: %w", err)
	}
	return env.Fields, nil
}

// trimEnvelope strips code fences and extraneous prose around the JSON
// object.
func trimEnvelope(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		if i := strings.Index(s, "\n"); i >= 0 {
			s = s[i+1:]
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	first := strings.Index(s, "{")
	last := strings.LastIndex(s, "}")
	if first < 0 || last <= first {
		return "", fmt.Errorf("no JSON object in response")
	}
	return s[first : last+1], nil
}

// sanitizeFields normalizes each entry of the 'fields' array so a
// cooperative-but-sloppy response still validates:
//   - numeric values are coerced to strings, numeric lines to integers
//   - entries that are not objects, or miss name/value, are dropped
//   - unknown keys are removed (additionalProperties friendliness)
//
// Returns the cleaned document and the list of dropped/changed items.
func sanitizeFields(doc []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	rawFields, ok := m["fields"].([]any)
	if !ok {
		return nil, nil, fmt.Errorf("sanitize: missing fields array")
	}

	var dropped []string
	out := make([]any, 0, len(rawFields))
	for i, item := range rawFields {
		entry, ok := item.(map[string]any)
		if !ok {
			dropped = append(dropped, fmt.Sprintf("fields[%d](shape)", i))
			continue
		}

		name := trimmedString(entry["name"])
		value := coerceString(entry["value"])
		if name == "" || value == "" {
			dropped = append(dropped, fmt.Sprintf("fields[%d](empty)", i))
			continue
		}

		clean := map[string]any{"name": name, "value": value}
		switch t := entry["line"].(type) {
		case float64:
			if t >= 0 {
				clean["line"] = int(t)
			}
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil && n >= 0 {
				clean["line"] = n
			} else {
				dropped = append(dropped, fmt.Sprintf("fields[%d].line(type)", i))
			}
		}
		out = append(out, clean)
	}
	m = map[string]any{"fields": out}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	return b, dropped, nil
}

func trimmedString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}
