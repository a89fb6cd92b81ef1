package models

import "testing"

// TestListRecordBool tests the permissive boolean field parse
func TestListRecordBool(t *testing.T) {
	tests := []struct {
		name     string
		record   ListRecord
		index    int
		expected bool
	}{
		{
			name:     "true",
			record:   NewListRecord("p", "c", "true"),
			index:    HyperlinkFieldCaseInsensitive,
			expected: true,
		},
		{
			name:     "Mixed case TRUE",
			record:   NewListRecord("p", "c", "TRUE"),
			index:    HyperlinkFieldCaseInsensitive,
			expected: true,
		},
		{
			name:     "Surrounding whitespace tolerated",
			record:   NewListRecord("p", "c", " true "),
			index:    HyperlinkFieldCaseInsensitive,
			expected: true,
		},
		{
			name:     "Garbage is false",
			record:   NewListRecord("p", "c", "yes please"),
			index:    HyperlinkFieldCaseInsensitive,
			expected: false,
		},
		{
			name:     "Empty is false",
			record:   NewListRecord("p", "c", ""),
			index:    HyperlinkFieldCaseInsensitive,
			expected: false,
		},
		{
			name:     "Out of range index is false",
			record:   NewListRecord("p"),
			index:    5,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.Bool(tt.index); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

// TestListRecordField tests out-of-range field access
func TestListRecordField(t *testing.T) {
	r := NewListRecord("a", "b")
	if got := r.Field(0); got != "a" {
		t.Errorf("Expected %q, got %q", "a", got)
	}
	if got := r.Field(2); got != "" {
		t.Errorf("Expected empty string for missing field, got %q", got)
	}
	if got := r.Field(-1); got != "" {
		t.Errorf("Expected empty string for negative index, got %q", got)
	}
}

// TestRecordSetMutations tests Add, Update and Remove
func TestRecordSetMutations(t *testing.T) {
	set := &RecordSet{}
	set.Add(NewListRecord("first", "1", ""))
	set.Add(NewListRecord("second", "2", ""))

	if !set.Update(1, NewListRecord("second-edited", "2", "")) {
		t.Fatal("Update of valid index failed")
	}
	if set.Update(9, NewListRecord("x")) {
		t.Error("Update of invalid index should fail")
	}
	if got := set.At(1).Pattern(); got != "second-edited" {
		t.Errorf("Expected %q, got %q", "second-edited", got)
	}

	if !set.Remove(0) {
		t.Fatal("Remove of valid index failed")
	}
	if set.Remove(5) {
		t.Error("Remove of invalid index should fail")
	}
	if set.Len() != 1 {
		t.Errorf("Expected 1 record after remove, got %d", set.Len())
	}
	if got := set.At(0).Pattern(); got != "second-edited" {
		t.Errorf("Expected remaining record %q, got %q", "second-edited", got)
	}
}

// TestRecordSetClone tests that a clone is independent of the original
func TestRecordSetClone(t *testing.T) {
	original := &RecordSet{}
	original.Add(NewListRecord("keep", "cmd", "false"))

	clone := original.Clone()
	clone.Add(NewListRecord("extra", "", ""))
	clone.Records[0].Fields[0] = "mutated"

	if original.Len() != 1 {
		t.Errorf("Original length changed after clone mutation: %d", original.Len())
	}
	if got := original.At(0).Pattern(); got != "keep" {
		t.Errorf("Original record mutated through clone: %q", got)
	}
	if !clone.At(0).Equal(NewListRecord("mutated", "cmd", "false")) {
		t.Errorf("Clone mutation lost: %q", clone.At(0).Fields)
	}
}

// TestRecordSetEqual tests ordered set comparison
func TestRecordSetEqual(t *testing.T) {
	a := &RecordSet{}
	a.Add(NewListRecord("x", "1", ""))
	a.Add(NewListRecord("y", "2", ""))

	b := a.Clone()
	if !a.Equal(b) {
		t.Error("Clone should equal original")
	}

	b.Records[0], b.Records[1] = b.Records[1], b.Records[0]
	if a.Equal(b) {
		t.Error("Order matters: reordered set should not be equal")
	}
}
