package report

import (
	json "github.com/goccy/go-json"
)

// MarshalJSON encodes a report as indented JSON.
func MarshalJSON(r *Report) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// UnmarshalJSON decodes a report from JSON.
func UnmarshalJSON(data []byte) (*Report, error) {
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
