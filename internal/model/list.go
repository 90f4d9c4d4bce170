// Package model defines domain types shared across layers.
package model

import "encoding/json"

// StringList is an ordered list of strings persisted as a JSON column.
// The zero value is an empty list.
type StringList []string

// DecodeStringList parses a raw JSON column value into a StringList.
// A null, empty, or corrupted value decodes to an empty list; the public
// read path must never fail on a bad blob.
func DecodeStringList(raw []byte) StringList {
	if len(raw) == 0 {
		return StringList{}
	}

	var list StringList
	if err := json.Unmarshal(raw, &list); err != nil {
		return StringList{}
	}
	if list == nil {
		return StringList{}
	}

	return list
}

// Encode serializes the list for storage. A nil list encodes as "[]"
// so the column never holds SQL NULL for new rows.
func (l StringList) Encode() []byte {
	if l == nil {
		l = StringList{}
	}

	raw, err := json.Marshal(l)
	if err != nil {
		// A []string cannot fail to marshal; keep the column well-formed anyway.
		return []byte("[]")
	}

	return raw
}
