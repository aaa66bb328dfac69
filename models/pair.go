// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Pair is one editable field row.
type Pair struct {
	Key   string
	Value string
}

// DefaultPairs returns the two rows a fresh subfolder starts with.
func DefaultPairs() []Pair {
	return []Pair{{Key: "email"}, {Key: "password"}}
}
