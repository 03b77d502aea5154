package telemetry

import (
	"fmt"
	"sort"

	"go.opentelemetry.io/otel/attribute"
)

// mapToAttributes converts a map to attributes, sorted by key so spans and data points are stable.
func mapToAttributes(data map[string]any) []attribute.KeyValue {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	attrs := make([]attribute.KeyValue, 0, len(keys))

	for _, key := range keys {
		switch val := data[key].(type) {
		case string:
			attrs = append(attrs, attribute.String(key, val))
		case int:
			attrs = append(attrs, attribute.Int(key, val))
		case uint:
			attrs = append(attrs, attribute.Int64(key, int64(val))) //nolint:gosec
		case int64:
			attrs = append(attrs, attribute.Int64(key, val))
		case float64:
			attrs = append(attrs, attribute.Float64(key, val))
		case bool:
			attrs = append(attrs, attribute.Bool(key, val))
		default:
			attrs = append(attrs, attribute.String(key, fmt.Sprintf("%v", val)))
		}
	}

	return attrs
}
