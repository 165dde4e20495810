package provider

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Record is one raw JSON object from a provider's metadata document.
type Record map[string]any

// DecodeRecords parses a provider document, which must be a JSON array of objects.
func DecodeRecords(data []byte) ([]Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var records []Record
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: decoding provider document: %v", ErrMalformedPayload, err)
	}

	for i, r := range records {
		if r == nil {
			return nil, fmt.Errorf("%w: record %d is not an object", ErrMalformedPayload, i)
		}
	}

	return records, nil
}

// String returns a required string field.
func (r Record) String(field string) (string, error) {
	v, ok := r[field]
	if !ok || v == nil {
		return "", fmt.Errorf("%w: missing field %q", ErrMalformedPayload, field)
	}

	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q is %T, expected string", ErrMalformedPayload, field, v)
	}

	return s, nil
}

// Int returns a required integer field.
func (r Record) Int(field string) (int, error) {
	v, ok := r[field]
	if !ok || v == nil {
		return 0, fmt.Errorf("%w: missing field %q", ErrMalformedPayload, field)
	}

	n, err := toInt(v)
	if err != nil {
		return 0, fmt.Errorf("%w: field %q: %v", ErrMalformedPayload, field, err)
	}

	return n, nil
}

// Ints returns a required array-of-integers field.
func (r Record) Ints(field string) ([]int, error) {
	v, ok := r[field]
	if !ok || v == nil {
		return nil, fmt.Errorf("%w: missing field %q", ErrMalformedPayload, field)
	}

	arr, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: field %q is %T, expected array", ErrMalformedPayload, field, v)
	}

	out := make([]int, 0, len(arr))

	for i, e := range arr {
		n, err := toInt(e)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q[%d]: %v", ErrMalformedPayload, field, i, err)
		}

		out = append(out, n)
	}

	return out, nil
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case json.Number:
		i, err := strconv.Atoi(n.String())
		if err != nil {
			return 0, fmt.Errorf("%s is not an integer", n)
		}

		return i, nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}

		return int(n), nil
	case int:
		return n, nil
	default:
		return 0, fmt.Errorf("%T is not a number", v)
	}
}
