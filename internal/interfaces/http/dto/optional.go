package dto

import "encoding/json"

// OptionalInt distinguishes an omitted JSON field from an explicit null.
// Set is true whenever the field appeared in the request; Value is nil for an
// explicit null.
type OptionalInt struct {
	Set   bool
	Value *int
}

// UnmarshalJSON implements json.Unmarshaler. It is invoked for explicit nulls
// but not for absent fields.
func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}
