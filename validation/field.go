package validation

import "strings"

// Field is one collected form value with its declared type and constraints.
type Field struct {
	// Name is the field identifier (input name or id).
	Name string
	// Type is the declared input type: email, tel, url, number or text.
	Type string
	// Value is the raw collected value.
	Value string
	// Required marks the field as mandatory.
	Required bool
	// Min and Max bound number fields.
	Min *float64
	Max *float64
	// Confirm holds the confirmation value for password fields.
	Confirm *string
}

// ValidateField checks one field. The required check runs first; when it
// passes and the field is non-empty, exactly one further rule runs, picked
// by the field type or by a name substring, otherwise none.
func ValidateField(f Field) error {
	value := strings.TrimSpace(f.Value)

	if f.Required {
		if err := Required(value); err != nil {
			return err
		}
	}
	if value == "" {
		return nil
	}

	switch f.Type {
	case "email":
		return Email(value)
	case "tel":
		return Phone(value)
	case "url":
		return URL(value)
	case "number":
		return Number(value, f.Min, f.Max)
	default:
		if strings.Contains(f.Name, "name") {
			return Name(value)
		}
		if strings.Contains(f.Name, "password") {
			return Password(value, f.Confirm)
		}
	}
	return nil
}

// ValidateFields checks every field and returns the per-field messages,
// keyed by field name. An empty map means the form is valid.
func ValidateFields(fields []Field) map[string]string {
	failures := map[string]string{}
	for _, f := range fields {
		if err := ValidateField(f); err != nil {
			failures[f.Name] = err.Error()
		}
	}
	return failures
}
