package dialogs

import (
	"termprefs/core"
	"termprefs/core/settings"
	"termprefs/ui/prefs/models"
)

// TriggerActions are the actions a trigger can perform when terminal output
// matches its regex. The parameter field's meaning depends on the action
// (command line, notification body, title text, text to insert).
var TriggerActions = []string{
	"update-state",
	"execute-command",
	"send-notification",
	"update-title",
	"play-bell",
	"insert-text",
}

// ShowTriggerEditor opens the trigger list editor. Each record is
// (regex, action, parameter). onApply receives the encoded rows after an
// apply, never on cancel.
func ShowTriggerEditor(ac *core.AppController, onApply func(rows []string)) {
	ShowListEditor(ac, EditorConfig{
		Title:              "Triggers",
		Key:                settings.KeyTriggers,
		Arity:              models.TriggerArity,
		PatternLabel:       "Trigger",
		PatternPlaceholder: "Regex, e.g. ^ERROR: (.*)",
		Fields: []FieldSpec{
			{
				Label:   "Action",
				Kind:    FieldSelect,
				Options: TriggerActions,
			},
			{
				Label:       "Parameter",
				Kind:        FieldText,
				Placeholder: "Action parameter, e.g. notify-send \"$1\"",
			},
		},
		OnApply: onApply,
	})
}
