// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
)

// DataItem is the flat field-name to value mapping held by one subfolder.
// Values are strings or numbers; numbers are carried as [json.Number] so
// they survive a round trip unchanged.
type DataItem map[string]any

// Keys returns the field names in snapshot order (ascending byte order).
func (d DataItem) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Clone returns a shallow copy of d. A nil item clones to an empty one.
func (d DataItem) Clone() DataItem {
	out := make(DataItem, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Value returns the stringified value of field key and whether it exists.
func (d DataItem) Value(key string) (string, bool) {
	v, ok := d[key]
	if !ok {
		return "", false
	}
	return FormatValue(v), true
}

// Pairs converts d into editor rows in snapshot order.
func (d DataItem) Pairs() []Pair {
	pairs := make([]Pair, 0, len(d))
	for _, k := range d.Keys() {
		pairs = append(pairs, Pair{Key: k, Value: FormatValue(d[k])})
	}
	return pairs
}

// FormatValue renders a stored scalar the way it is displayed and edited.
func FormatValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case json.Number:
		return value.String()
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case bool:
		return strconv.FormatBool(value)
	default:
		return fmt.Sprint(value)
	}
}

// IsScalar reports whether v is a value a field may hold.
func IsScalar(v any) bool {
	switch v.(type) {
	case string, json.Number, float64, int, int64:
		return true
	default:
		return false
	}
}

// DecodeDataItem decodes a JSON object into a DataItem keeping numbers as
// [json.Number]. A JSON null decodes to an empty item.
func DecodeDataItem(data []byte) (DataItem, error) {
	item := DataItem{}
	if len(bytes.TrimSpace(data)) == 0 {
		return item, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&item); err != nil {
		return nil, fmt.Errorf("decode data item: %w", err)
	}
	if item == nil {
		item = DataItem{}
	}
	return item, nil
}

// EncodeValue returns the persisted JSON form of one scalar value.
func EncodeValue(v any) (string, error) {
	if !IsScalar(v) {
		return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode value: %w", err)
	}
	return string(b), nil
}

// DecodeValue parses a value produced by [EncodeValue].
func DecodeValue(s string) (any, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode value: %w", err)
	}
	if !IsScalar(v) {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
	return v, nil
}
