package validation

// Validator checks a struct against its validate tags and returns
// field-level messages keyed by json field name, or nil when valid.
type Validator interface {
	ValidateStruct(s any) map[string]string
}
