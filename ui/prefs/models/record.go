// Package models contains the data model for list-typed preferences.
//
// A list preference (custom hyperlinks, triggers, automatic profile-switch
// patterns) is an ordered sequence of fixed-arity records. The model carries
// only business data, no GUI dependencies: the dialogs own widgets, the model
// owns records, and the codec in the business package converts between the
// model and the persisted string-list form.
package models

import (
	"strconv"
	"strings"
)

// Record arity per list preference.
const (
	HyperlinkArity = 3
	TriggerArity   = 3
	SwitchArity    = 1
)

// Field indexes. Field 0 is always the pattern; payload fields follow.
const (
	FieldPattern = 0

	HyperlinkFieldCommand         = 1
	HyperlinkFieldCaseInsensitive = 2

	TriggerFieldAction    = 1
	TriggerFieldParameter = 2
)

// ListRecord is one structured row of a list preference: an ordered tuple of
// string fields. Arity is fixed per use case and enforced by the codec, not
// by the record itself.
type ListRecord struct {
	Fields []string
}

// NewListRecord creates a record from the given fields.
func NewListRecord(fields ...string) ListRecord {
	return ListRecord{Fields: fields}
}

// Pattern returns field 0, the regex or match-string that identifies the
// record. Empty means "unset" and the record is skipped on save.
func (r ListRecord) Pattern() string {
	return r.Field(FieldPattern)
}

// Field returns the field at index i, or "" if the record is shorter.
func (r ListRecord) Field(i int) string {
	if i < 0 || i >= len(r.Fields) {
		return ""
	}
	return r.Fields[i]
}

// Bool interprets the field at index i as a boolean. The parse is permissive:
// anything that does not parse as a boolean is false, not an error.
func (r ListRecord) Bool(i int) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(r.Field(i)))
	if err != nil {
		return false
	}
	return v
}

// Clone returns a deep copy of the record.
func (r ListRecord) Clone() ListRecord {
	fields := make([]string, len(r.Fields))
	copy(fields, r.Fields)
	return ListRecord{Fields: fields}
}

// Equal reports whether two records have identical fields.
func (r ListRecord) Equal(other ListRecord) bool {
	if len(r.Fields) != len(other.Fields) {
		return false
	}
	for i := range r.Fields {
		if r.Fields[i] != other.Fields[i] {
			return false
		}
	}
	return true
}

// RecordSet is an ordered sequence of ListRecord. Insertion order is
// significant and preserved through load, edit and save. Duplicate patterns
// are permitted.
type RecordSet struct {
	Records []ListRecord
}

// Len returns the number of records.
func (s *RecordSet) Len() int {
	return len(s.Records)
}

// At returns the record at index i.
func (s *RecordSet) At(i int) ListRecord {
	return s.Records[i]
}

// Add appends a record.
func (s *RecordSet) Add(r ListRecord) {
	s.Records = append(s.Records, r)
}

// Update replaces the record at index i. Returns false if i is out of range.
func (s *RecordSet) Update(i int, r ListRecord) bool {
	if i < 0 || i >= len(s.Records) {
		return false
	}
	s.Records[i] = r
	return true
}

// Remove deletes the record at index i. Returns false if i is out of range.
func (s *RecordSet) Remove(i int) bool {
	if i < 0 || i >= len(s.Records) {
		return false
	}
	s.Records = append(s.Records[:i], s.Records[i+1:]...)
	return true
}

// Clone returns a deep copy of the set. Each dialog edits a private clone and
// only writes back on apply; cancel discards the clone.
func (s *RecordSet) Clone() *RecordSet {
	out := &RecordSet{Records: make([]ListRecord, 0, len(s.Records))}
	for _, r := range s.Records {
		out.Records = append(out.Records, r.Clone())
	}
	return out
}

// Equal reports whether two sets contain identical records in the same order.
func (s *RecordSet) Equal(other *RecordSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for i := range s.Records {
		if !s.Records[i].Equal(other.Records[i]) {
			return false
		}
	}
	return true
}
