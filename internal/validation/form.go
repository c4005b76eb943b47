package validation

// Rules maps a form field name to its validator.
type Rules map[string]Func

// FormResult reports a full validation pass. Errors maps field name to
// message; absence of a key means the field is valid.
type FormResult struct {
	Valid  bool
	Errors map[string]string
}

// ValidateForm runs every rule against the corresponding value. A missing
// value is validated as empty, not skipped, and there is no short-circuiting:
// all fields are evaluated so the caller can display every error at once.
// The error map is rebuilt on each pass, never carried over from a previous one.
func ValidateForm(values map[string]string, rules Rules) FormResult {
	errors := make(map[string]string)
	for field, rule := range rules {
		outcome := rule(values[field])
		if !outcome.Valid {
			errors[field] = outcome.Message
		}
	}
	return FormResult{Valid: len(errors) == 0, Errors: errors}
}
