package dialogs

import (
	"termprefs/core"
	"termprefs/core/settings"
	"termprefs/ui/prefs/models"
)

// ShowHyperlinkEditor opens the custom hyperlink list editor. Each record is
// (regex, command, case-insensitive): terminal output matching the regex
// becomes a clickable link that runs the command with the match substituted.
// onApply receives the encoded rows after an apply, never on cancel.
func ShowHyperlinkEditor(ac *core.AppController, onApply func(rows []string)) {
	ShowListEditor(ac, EditorConfig{
		Title:              "Custom Hyperlinks",
		Key:                settings.KeyCustomHyperlinks,
		Arity:              models.HyperlinkArity,
		PatternLabel:       "Hyperlink",
		PatternPlaceholder: "Regex, e.g. issue-(\\d+)",
		Fields: []FieldSpec{
			{
				Label:       "Command",
				Kind:        FieldText,
				Placeholder: "Command, e.g. xdg-open https://bugs.example.com/$1",
			},
			{
				Label: "Case insensitive",
				Kind:  FieldCheck,
			},
		},
		OnApply: onApply,
	})
}
