package api

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ID is a server-assigned identifier in canonical string form. The backend
// and the form layer disagree about whether identifiers are numbers or
// strings, so every identifier is normalized to a string on receipt and
// compared only in that form.
type ID string

// Valid reports whether the ID carries a value.
func (id ID) Valid() bool {
	return id != ""
}

func (id ID) String() string {
	return string(id)
}

// UnmarshalJSON accepts a JSON number, string, or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if text == "null" {
		*id = ""
		return nil
	}
	if strings.HasPrefix(text, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON emits a number when the identifier is numeric, matching what
// the server assigned, and a string otherwise. An empty ID marshals as null.
func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}
