package handler

import "encoding/json"

// FlexID is a clothing item identifier that binds from either a JSON string
// or a JSON number; the web client sends catalog ids as numbers while stored
// outfits round-trip them as strings. The textual form is kept either way.
type FlexID string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}
