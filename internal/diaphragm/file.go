package diaphragm

import (
	"encoding/json"
	"os"
)

// Case bundles the scalar inputs and wall table of one analysis, as stored in
// a JSON case file.
type Case struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Inputs      Inputs `json:"inputs"`
	Walls       []Wall `json:"walls"`
}

// LoadCaseFile loads an analysis case from a JSON file.
func LoadCaseFile(filepath string) (*Case, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var c Case
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}

	return &c, nil
}
