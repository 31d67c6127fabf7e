package domain

import (
	"encoding/json"
	"strings"
)

// ServicesValue is the result of decoding a stored services field. The
// column holds a JSON-encoded list, but older rows and external writers may
// have stored a bare string, so decoding keeps both shapes explicit instead
// of coercing one into the other.
type ServicesValue struct {
	list   []string
	raw    string
	isList bool
}

// DecodeServices parses the stored services value. A value that is not a
// valid JSON list is kept verbatim as a raw scalar.
func DecodeServices(raw string) ServicesValue {
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		return ServicesValue{list: list, isList: true}
	}
	return ServicesValue{raw: raw}
}

// EncodeServices marshals service names for storage.
func EncodeServices(services []string) (string, error) {
	data, err := json.Marshal(services)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// List returns the decoded service names. A raw scalar degrades to a
// single-item list so rendering never fails.
func (v ServicesValue) List() []string {
	if v.isList {
		return v.list
	}
	return []string{v.raw}
}

func (v ServicesValue) IsList() bool {
	return v.isList
}

// Display renders the value for customer-facing views: a comma-joined list
// when decoded, otherwise the raw value verbatim.
func (v ServicesValue) Display() string {
	if v.isList {
		return strings.Join(v.list, ", ")
	}
	return v.raw
}
