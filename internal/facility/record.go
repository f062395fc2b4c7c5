package facility

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Record is one facility entry from the external snapshot. Every field
// is optional; zero values mean "not present". Decoding is tolerant:
// unrecognized shapes degrade to zero values rather than failing the
// whole snapshot.
type Record struct {
	ID           string     `json:"id"`
	Name         FlexString `json:"name"`
	Type         string     `json:"type"`
	Tags         []string   `json:"tags"`
	Programs     []string   `json:"programs"`
	State        string     `json:"state"`
	Address      Place      `json:"address"`
	Location     Place      `json:"location"`
	CARF         FlexBool   `json:"carf"`
	TherapyHours FlexFloat  `json:"therapy_hours"`
}

// Decode parses a JSON array of facility records.
func Decode(data []byte) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing facility snapshot: %w", err)
	}
	return records, nil
}

// FlexString accepts either a plain JSON string or the snapshot's
// {"value": "..."} confidence wrapper.
type FlexString string

// UnmarshalJSON implements tolerant string decoding.
func (s *FlexString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = FlexString(str)
		return nil
	}

	var wrapped struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil {
		*s = FlexString(wrapped.Value)
		return nil
	}

	*s = ""
	return nil
}

// FlexFloat accepts a JSON number, a numeric string, or a
// {"value": ...} wrapper. Anything non-numeric decodes as 0.
type FlexFloat float64

// UnmarshalJSON implements tolerant numeric decoding.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*f = FlexFloat(num)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil {
			*f = FlexFloat(parsed)
		} else {
			*f = 0
		}
		return nil
	}

	var wrapped struct {
		Value FlexFloat `json:"value"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil {
		*f = wrapped.Value
		return nil
	}

	*f = 0
	return nil
}

// FlexBool accepts a JSON bool, a nonzero number, a truthy string, or
// a {"value": ...} wrapper. Anything else decodes as false.
type FlexBool bool

// UnmarshalJSON implements truthiness decoding.
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	var v bool
	if err := json.Unmarshal(data, &v); err == nil {
		*b = FlexBool(v)
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*b = num != 0
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		switch strings.ToLower(strings.TrimSpace(str)) {
		case "", "false", "0", "no":
			*b = false
		default:
			*b = true
		}
		return nil
	}

	var wrapped struct {
		Value FlexBool `json:"value"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil {
		*b = wrapped.Value
		return nil
	}

	*b = false
	return nil
}

// Place is a location-bearing field that may be a free-text string
// ("West Orange, NJ") or a structured object with a state field.
type Place struct {
	Text  string
	State string
}

// UnmarshalJSON accepts either shape.
func (p *Place) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		p.Text = strings.TrimSpace(s)
		return nil
	}

	var obj struct {
		State string `json:"state"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		p.State = strings.TrimSpace(obj.State)
		return nil
	}

	return nil
}

// IsZero reports whether the place carries no information.
func (p Place) IsZero() bool {
	return p.Text == "" && p.State == ""
}
