package compare

import (
	"encoding/json"
)

// JSONFormatter formats comparison results as indented JSON for downstream
// tooling.
type JSONFormatter struct{}

// Format marshals the comparison set.
func (jf *JSONFormatter) Format(set *ComparisonSet) (string, error) {
	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
