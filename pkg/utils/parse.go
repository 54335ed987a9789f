package utils

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Converts string value to int64
func FromStringToInt64(value string) (int64, error) {
	return strconv.ParseInt(value, 10, 64)
}

// Renders a decoded document as indented JSON for display
func ToPrettyJSON(value any) string {
	pretty, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(pretty)
}
