package output

import (
	"encoding/json"
)

// JSONFormatter renders the calculation result as JSON
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

func (jf JSONFormatter) Name() string { return "json" }

// Format emits the report; decimals are encoded as strings to keep precision
func (jf JSONFormatter) Format(report Report) ([]byte, error) {
	if jf.Pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}
