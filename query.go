package rentvest

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression, like "$.series[10].cash", against
// the JSON encoding of v.
func Query(v any, path string) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding %T: %w", v, err)
	}
	var obj any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("decoding %T: %w", v, err)
	}
	res, err := jsonpath.Get(path, obj)
	if err != nil {
		return nil, fmt.Errorf("evaluating %q: %w", path, err)
	}
	// jsonpath returns a list for filters and slices, even with a single answer.
	if list, ok := res.([]any); ok && len(list) == 1 {
		res = list[0]
	}
	return res, nil
}

// QueryFloat is like Query for a path that designates a single number.
func QueryFloat(v any, path string) (float64, error) {
	res, err := Query(v, path)
	if err != nil {
		return 0, err
	}
	f, ok := res.(float64)
	if !ok {
		return 0, fmt.Errorf("evaluating %q: not a number: %v", path, res)
	}
	return f, nil
}
