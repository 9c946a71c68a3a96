package common

import (
	"fmt"
)

// GetCustomerFromArgs extracts the customer id from request arguments.
// Returns the empty string when the tool takes no customer_id parameter
// (list_accessible_customers) or the caller omitted it.
func GetCustomerFromArgs(args map[string]interface{}) string {
	if customerVal, ok := args["customer_id"].(string); ok {
		return customerVal
	}
	return ""
}

// ParseStringOrArray parses a parameter that may be either a single string
// or an array of strings. MCP clients send both forms for list-valued
// parameters; both are accepted.
func ParseStringOrArray(param interface{}, paramName string) ([]string, error) {
	if param == nil {
		return nil, fmt.Errorf("%s is required", paramName)
	}

	var result []string

	switch v := param.(type) {
	case string:
		if v == "" {
			return nil, fmt.Errorf("%s cannot be empty", paramName)
		}
		result = []string{v}
	case []interface{}:
		if len(v) == 0 {
			return nil, fmt.Errorf("%s cannot be empty", paramName)
		}
		for i, item := range v {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%s[%d] must be a string", paramName, i)
			}
			if str == "" {
				return nil, fmt.Errorf("%s[%d] cannot be empty", paramName, i)
			}
			result = append(result, str)
		}
	default:
		return nil, fmt.Errorf("%s must be a string or array of strings", paramName)
	}

	return result, nil
}

// OptionalStringOrArray is like ParseStringOrArray but treats a missing
// parameter as an empty list rather than an error.
func OptionalStringOrArray(param interface{}, paramName string) ([]string, error) {
	if param == nil {
		return nil, nil
	}
	return ParseStringOrArray(param, paramName)
}
