package log

import "sort"

// Keys of the fields attached by hashbrute.
const (
	FieldKeyPrefix    = "prefix"
	FieldKeyRunID     = "run-id"
	FieldKeyAlgorithm = "algo"
	FieldKeyLength    = "length"
	FieldKeyInFlight  = "in-flight"
	FieldKeyBatches   = "batches"
)

// Fields type, used to pass to `WithFields`.
type Fields map[string]any

// Keys returns the sorted field keys without the given ones.
func (fields Fields) Keys(removeKeys ...string) []string {
	keys := make([]string, 0, len(fields))

outer:
	for key := range fields {
		for _, removeKey := range removeKeys {
			if key == removeKey {
				continue outer
			}
		}

		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
