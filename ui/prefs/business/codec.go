// Package business contains the non-GUI logic of the preferences editor:
// the codec that round-trips list preferences between their record model and
// the persisted string-list form, and the validators used by the dialogs.
package business

import (
	"encoding/csv"
	"regexp"
	"strings"

	"termprefs/internal/debuglog"
	"termprefs/ui/prefs/models"
)

// ListCodec converts between a RecordSet and the persisted string list, one
// CSV-encoded row per string. Arity is the expected field count per row.
//
// Decoding is lenient by policy, not by accident: settings written by older
// versions may carry fewer fields per row, and a hand-edited settings file
// may carry malformed rows. A bad row degrades to best-effort defaults; it
// never aborts the whole decode.
type ListCodec struct {
	Arity int
}

// Decode parses each persisted string as one CSV row and returns the records
// in input order. Rows with the wrong field count are padded or truncated to
// the expected arity. A row that fails to parse at all is kept as a single
// literal field. Decode never fails.
func (c ListCodec) Decode(rows []string) *models.RecordSet {
	set := &models.RecordSet{Records: make([]models.ListRecord, 0, len(rows))}
	for _, raw := range rows {
		set.Add(models.NewListRecord(c.decodeRow(raw)...))
	}
	return set
}

func (c ListCodec) decodeRow(raw string) []string {
	reader := csv.NewReader(strings.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	fields, err := reader.Read()
	if err != nil {
		// Unparseable row: keep the raw text as a single literal field.
		debuglog.WarnLog("ListCodec.decodeRow: unparseable row %q: %v", raw, err)
		fields = []string{raw}
	}

	if len(fields) != c.Arity {
		debuglog.DebugLog("ListCodec.decodeRow: row has %d fields, expected %d", len(fields), c.Arity)
	}
	for len(fields) < c.Arity {
		fields = append(fields, "")
	}
	return fields[:c.Arity]
}

// Encode serializes the records back to the persisted string list, one CSV
// row per record, preserving order. Records whose pattern field is blank are
// omitted entirely: a blank pattern means "not yet filled in" and is never
// persisted.
func (c ListCodec) Encode(set *models.RecordSet) []string {
	rows := make([]string, 0, set.Len())
	for i := 0; i < set.Len(); i++ {
		record := set.At(i)
		if strings.TrimSpace(record.Pattern()) == "" {
			continue
		}
		escaped := make([]string, 0, c.Arity)
		for f := 0; f < c.Arity; f++ {
			escaped = append(escaped, EscapeField(record.Field(f)))
		}
		rows = append(rows, strings.Join(escaped, ","))
	}
	return rows
}

// EscapeField applies RFC4180-style quoting: a field containing a comma,
// quote or newline is wrapped in double quotes with internal quotes doubled;
// anything else is returned unchanged.
func EscapeField(field string) string {
	if strings.ContainsAny(field, ",\"\n\r") {
		return "\"" + strings.ReplaceAll(field, "\"", "\"\"") + "\""
	}
	return field
}

// ValidateSwitchPattern reports whether candidate is acceptable as an
// automatic profile-switch pattern. The format is [user@]host-or-dir[:dir],
// so the check is purely syntactic: longer than one character and containing
// at least one of the delimiters '@' or ':'. Host and path semantics are not
// validated here.
func ValidateSwitchPattern(candidate string) bool {
	return len(candidate) > 1 && strings.ContainsAny(candidate, "@:")
}

// ValidateRegex compiles candidate as a regular expression and returns the
// compile error, if any. Callers surface a failure as a non-blocking warning:
// the pattern is still accepted and stored.
func ValidateRegex(candidate string) error {
	_, err := regexp.Compile(candidate)
	return err
}
