package business

import (
	"reflect"
	"testing"

	"termprefs/ui/prefs/models"
)

// TestEscapeField tests the RFC4180-style quoting rule
func TestEscapeField(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		expected string
	}{
		{
			name:     "Plain field unchanged",
			field:    "plain",
			expected: "plain",
		},
		{
			name:     "Comma forces quoting",
			field:    "a,b",
			expected: "\"a,b\"",
		},
		{
			name:     "Internal quote doubled",
			field:    "a\"b",
			expected: "\"a\"\"b\"",
		},
		{
			name:     "Newline forces quoting",
			field:    "a\nb",
			expected: "\"a\nb\"",
		},
		{
			name:     "Empty field unchanged",
			field:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EscapeField(tt.field)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

// TestValidateSwitchPattern tests the syntactic profile-switch pattern check
func TestValidateSwitchPattern(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		expected  bool
	}{
		{
			name:      "Empty string",
			candidate: "",
			expected:  false,
		},
		{
			name:      "Single character",
			candidate: "a",
			expected:  false,
		},
		{
			name:      "Host and dir",
			candidate: "host:dir",
			expected:  true,
		},
		{
			name:      "User and host",
			candidate: "user@host",
			expected:  true,
		},
		{
			name:      "No separator",
			candidate: "noseparator",
			expected:  false,
		},
		{
			name:      "Single separator only",
			candidate: ":",
			expected:  false,
		},
		{
			name:      "Two character pattern with separator",
			candidate: "a:",
			expected:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateSwitchPattern(tt.candidate)
			if result != tt.expected {
				t.Errorf("ValidateSwitchPattern(%q): expected %v, got %v", tt.candidate, tt.expected, result)
			}
		})
	}
}

// TestValidateRegex tests the regex compile check
func TestValidateRegex(t *testing.T) {
	if err := ValidateRegex(`https?://\S+`); err != nil {
		t.Errorf("Expected valid regex to pass, got %v", err)
	}
	if err := ValidateRegex(`(unclosed`); err == nil {
		t.Error("Expected compile error for unbalanced group, got nil")
	}
}

// TestDecodeLenient tests the per-row leniency policies of Decode
func TestDecodeLenient(t *testing.T) {
	codec := ListCodec{Arity: models.HyperlinkArity}

	tests := []struct {
		name     string
		row      string
		expected []string
	}{
		{
			name:     "Full row",
			row:      "foo.*,/bin/bar,true",
			expected: []string{"foo.*", "/bin/bar", "true"},
		},
		{
			name:     "Missing trailing field padded",
			row:      "foo.*,/bin/bar",
			expected: []string{"foo.*", "/bin/bar", ""},
		},
		{
			name:     "Extra fields truncated",
			row:      "a,b,c,d,e",
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "Empty row degrades to empty record",
			row:      "",
			expected: []string{"", "", ""},
		},
		{
			name:     "Quoted field with comma",
			row:      "\"a,b\",cmd,false",
			expected: []string{"a,b", "cmd", "false"},
		},
		{
			name:     "Quoted field with doubled quote",
			row:      "\"a\"\"b\",cmd,true",
			expected: []string{"a\"b", "cmd", "true"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := codec.Decode([]string{tt.row})
			if set.Len() != 1 {
				t.Fatalf("Expected 1 record, got %d", set.Len())
			}
			if !reflect.DeepEqual(set.At(0).Fields, tt.expected) {
				t.Errorf("Expected fields %q, got %q", tt.expected, set.At(0).Fields)
			}
		})
	}
}

// TestDecodeBooleanLeniency tests that an unparseable boolean defaults to false
func TestDecodeBooleanLeniency(t *testing.T) {
	codec := ListCodec{Arity: models.HyperlinkArity}

	tests := []struct {
		name     string
		row      string
		expected bool
	}{
		{
			name:     "true parses",
			row:      "p,c,true",
			expected: true,
		},
		{
			name:     "Numeric 1 parses",
			row:      "p,c,1",
			expected: true,
		},
		{
			name:     "Garbage defaults to false",
			row:      "p,c,maybe",
			expected: false,
		},
		{
			name:     "Missing field defaults to false",
			row:      "p,c",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := codec.Decode([]string{tt.row})
			got := set.At(0).Bool(models.HyperlinkFieldCaseInsensitive)
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

// TestEncodeDropRule tests that blank-pattern records are never persisted
func TestEncodeDropRule(t *testing.T) {
	codec := ListCodec{Arity: models.HyperlinkArity}

	set := &models.RecordSet{}
	set.Add(models.NewListRecord("keep.*", "/bin/true", "false"))
	set.Add(models.NewListRecord("", "dropped even with payload", "true"))
	set.Add(models.NewListRecord("   ", "whitespace pattern dropped", "true"))
	set.Add(models.NewListRecord("also-kept", "", ""))

	rows := codec.Encode(set)
	expected := []string{"keep.*,/bin/true,false", "also-kept,,"}
	if !reflect.DeepEqual(rows, expected) {
		t.Errorf("Expected %q, got %q", expected, rows)
	}
}

// TestRoundTrip tests decode(encode(records)) == records
func TestRoundTrip(t *testing.T) {
	codec := ListCodec{Arity: models.TriggerArity}

	set := &models.RecordSet{}
	set.Add(models.NewListRecord("error: (.*)", "execute", "/usr/bin/notify \"$1\""))
	set.Add(models.NewListRecord("warn,level", "notify", "line with, comma"))
	set.Add(models.NewListRecord("multi\nline", "title", "x"))
	set.Add(models.NewListRecord("dup", "a", "b"))
	set.Add(models.NewListRecord("dup", "a", "b")) // duplicates are allowed

	decoded := codec.Decode(codec.Encode(set))
	if !decoded.Equal(set) {
		t.Errorf("Round trip mismatch:\n in: %q\nout: %q", set.Records, decoded.Records)
	}
}

// TestEncodeIdempotence tests encode(decode(encode(r))) == encode(r)
func TestEncodeIdempotence(t *testing.T) {
	codec := ListCodec{Arity: models.HyperlinkArity}

	set := &models.RecordSet{}
	set.Add(models.NewListRecord("a\"b", "c,d", "true"))
	set.Add(models.NewListRecord("", "blank pattern", "x"))
	set.Add(models.NewListRecord("plain", "cmd", "not-a-bool"))

	first := codec.Encode(set)
	second := codec.Encode(codec.Decode(first))
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Encode not idempotent:\nfirst:  %q\nsecond: %q", first, second)
	}
}

// TestDecodeEncodeByteIdentical tests the end-to-end persisted form scenario
func TestDecodeEncodeByteIdentical(t *testing.T) {
	codec := ListCodec{Arity: models.HyperlinkArity}

	persisted := []string{"foo.*,/bin/bar,true", "baz,,false"}
	set := codec.Decode(persisted)
	if set.Len() != 2 {
		t.Fatalf("Expected 2 records, got %d", set.Len())
	}

	rows := codec.Encode(set)
	if !reflect.DeepEqual(rows, persisted) {
		t.Errorf("Expected byte-identical re-encode %q, got %q", persisted, rows)
	}
}

// TestDecodeOrderPreserved tests that record order survives the round trip
func TestDecodeOrderPreserved(t *testing.T) {
	codec := ListCodec{Arity: models.SwitchArity}

	persisted := []string{"z@last", "a@first", "m:middle"}
	set := codec.Decode(persisted)
	for i, want := range persisted {
		if got := set.At(i).Pattern(); got != want {
			t.Errorf("Record %d: expected %q, got %q", i, want, got)
		}
	}

	rows := codec.Encode(set)
	if !reflect.DeepEqual(rows, persisted) {
		t.Errorf("Expected stable order %q, got %q", persisted, rows)
	}
}

// TestDecodeUnterminatedQuote tests that a broken row degrades, not errors
func TestDecodeUnterminatedQuote(t *testing.T) {
	codec := ListCodec{Arity: models.TriggerArity}

	set := codec.Decode([]string{"\"unterminated,rest"})
	if set.Len() != 1 {
		t.Fatalf("Expected 1 record, got %d", set.Len())
	}
	// The row must survive in some shape; the pattern must carry the raw text
	// rather than the whole decode failing.
	if set.At(0).Pattern() == "" {
		t.Errorf("Expected best-effort content for broken row, got empty pattern (fields %q)", set.At(0).Fields)
	}
}
