// Package dialogs contains the modal editors for list-typed preferences.
//
// Both the hyperlink and the trigger editor are the same dialog over
// different record shapes: a window listing the rows of one settings key,
// Add/Edit/Delete over an in-memory RecordSet, and Apply/Cancel semantics.
// Apply is the only point where the settings store is written; closing the
// window any other way discards every in-memory mutation.
package dialogs

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"termprefs/core"
	appdialogs "termprefs/internal/dialogs"
	"termprefs/ui/prefs/business"
	"termprefs/ui/prefs/models"
)

// FieldKind selects the widget used to edit a payload field.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldSelect
	FieldCheck
)

// FieldSpec describes one payload field of a record (fields 1..arity-1).
type FieldSpec struct {
	Label       string
	Kind        FieldKind
	Options     []string // FieldSelect only
	Placeholder string   // FieldText only
}

// EditorConfig describes a list editor over one CSV-encoded settings key.
type EditorConfig struct {
	Title              string
	Key                string
	Arity              int
	PatternLabel       string
	PatternPlaceholder string
	Fields             []FieldSpec

	// OnApply receives the encoded rows after they have been written to the
	// settings store. The host only sees rows on apply, never on cancel.
	OnApply func(rows []string)
}

// ShowListEditor opens the editor window for cfg. A second editor for the
// same key replaces the first.
func ShowListEditor(ac *core.AppController, cfg EditorConfig) {
	if existing, ok := ac.OpenEditorWindows[cfg.Key]; ok {
		existing.Close()
		delete(ac.OpenEditorWindows, cfg.Key)
	}

	codec := business.ListCodec{Arity: cfg.Arity}
	// The working set is this window's private copy; the store is not
	// touched again until apply.
	working := codec.Decode(ac.Store.GetStringList(cfg.Key))
	selected := -1

	rowList := widget.NewList(
		func() int { return working.Len() },
		func() fyne.CanvasObject {
			return container.NewHBox(widget.NewLabel(""), layout.NewSpacer(), widget.NewLabel(""))
		},
		func(i widget.ListItemID, o fyne.CanvasObject) {
			box := o.(*fyne.Container)
			record := working.At(i)
			box.Objects[0].(*widget.Label).SetText(record.Pattern())
			box.Objects[2].(*widget.Label).SetText(summarizePayload(record, cfg))
		},
	)
	rowList.OnSelected = func(id widget.ListItemID) {
		selected = id
	}

	editorWindow := ac.Application.NewWindow(cfg.Title)

	addButton := widget.NewButton("Add...", func() {
		showRowDialog(ac, cfg, nil, func(record models.ListRecord) {
			working.Add(record)
			rowList.Refresh()
		})
	})

	editButton := widget.NewButton("Edit...", func() {
		if selected < 0 || selected >= working.Len() {
			return
		}
		index := selected
		existing := working.At(index)
		showRowDialog(ac, cfg, &existing, func(record models.ListRecord) {
			working.Update(index, record)
			rowList.Refresh()
		})
	})

	deleteButton := widget.NewButton("Delete", func() {
		if selected < 0 || selected >= working.Len() {
			return
		}
		working.Remove(selected)
		selected = -1
		rowList.UnselectAll()
		rowList.Refresh()
	})

	applyButton := widget.NewButton("Apply", func() {
		rows := codec.Encode(working)
		ac.Store.SetStringList(cfg.Key, rows)
		ac.SaveSettings()
		if cfg.OnApply != nil {
			cfg.OnApply(rows)
		}
		delete(ac.OpenEditorWindows, cfg.Key)
		editorWindow.Close()
	})
	applyButton.Importance = widget.HighImportance

	cancelButton := widget.NewButton("Cancel", func() {
		delete(ac.OpenEditorWindows, cfg.Key)
		editorWindow.Close()
	})

	buttons := container.NewHBox(
		addButton,
		editButton,
		deleteButton,
		layout.NewSpacer(),
		cancelButton,
		applyButton,
	)

	editorWindow.SetContent(container.NewBorder(nil, buttons, nil, nil, rowList))
	editorWindow.Resize(fyne.NewSize(560, 420))
	editorWindow.CenterOnScreen()

	ac.OpenEditorWindows[cfg.Key] = editorWindow
	editorWindow.SetCloseIntercept(func() {
		delete(ac.OpenEditorWindows, cfg.Key)
		editorWindow.Close()
	})

	editorWindow.Show()
}

// summarizePayload renders the payload fields of a record for the row list.
func summarizePayload(record models.ListRecord, cfg EditorConfig) string {
	parts := make([]string, 0, len(cfg.Fields))
	for i, spec := range cfg.Fields {
		value := record.Field(i + 1)
		if spec.Kind == FieldCheck {
			if record.Bool(i + 1) {
				parts = append(parts, spec.Label)
			}
			continue
		}
		if value != "" {
			parts = append(parts, value)
		}
	}
	return strings.Join(parts, " · ")
}

// showRowDialog opens the add/edit window for a single record. onConfirm is
// only called with a validated record; closing the window otherwise leaves
// the working set untouched.
func showRowDialog(ac *core.AppController, cfg EditorConfig, existing *models.ListRecord, onConfirm func(models.ListRecord)) {
	isEdit := existing != nil
	title := "Add " + cfg.PatternLabel
	if isEdit {
		title = "Edit " + cfg.PatternLabel
	}

	patternEntry := widget.NewEntry()
	patternEntry.SetPlaceHolder(cfg.PatternPlaceholder)
	if isEdit {
		patternEntry.SetText(existing.Pattern())
	}

	// Payload widgets, one per FieldSpec. Values are read back as strings so
	// the record stays a plain string tuple.
	valueFuncs := make([]func() string, 0, len(cfg.Fields))
	form := container.NewVBox(widget.NewLabel(cfg.PatternLabel+":"), patternEntry)

	for i, spec := range cfg.Fields {
		fieldIndex := i + 1
		form.Add(widget.NewLabel(spec.Label + ":"))
		switch spec.Kind {
		case FieldCheck:
			check := widget.NewCheck("", nil)
			if isEdit {
				check.SetChecked(existing.Bool(fieldIndex))
			}
			form.Add(check)
			valueFuncs = append(valueFuncs, func() string {
				return strconv.FormatBool(check.Checked)
			})
		case FieldSelect:
			sel := widget.NewSelect(spec.Options, func(string) {})
			if isEdit && existing.Field(fieldIndex) != "" {
				sel.SetSelected(existing.Field(fieldIndex))
			} else if len(spec.Options) > 0 {
				sel.SetSelected(spec.Options[0])
			}
			form.Add(sel)
			valueFuncs = append(valueFuncs, func() string {
				return sel.Selected
			})
		default:
			entry := widget.NewEntry()
			entry.SetPlaceHolder(spec.Placeholder)
			if isEdit {
				entry.SetText(existing.Field(fieldIndex))
			}
			form.Add(entry)
			valueFuncs = append(valueFuncs, func() string {
				return entry.Text
			})
		}
	}

	rowWindow := ac.Application.NewWindow(title)

	var confirmButton *widget.Button
	updateButtonState := func() {
		if confirmButton == nil {
			return
		}
		if strings.TrimSpace(patternEntry.Text) == "" {
			confirmButton.Disable()
		} else {
			confirmButton.Enable()
		}
	}
	patternEntry.OnChanged = func(string) { updateButtonState() }

	confirmText := "Add"
	if isEdit {
		confirmText = "Save"
	}
	confirmButton = widget.NewButton(confirmText, func() {
		pattern := patternEntry.Text
		if err := business.ValidateRegex(pattern); err != nil {
			// Warn but accept: a pattern that does not compile is stored
			// anyway so the user can come back and fix it.
			appdialogs.ShowWarning(rowWindow, "Invalid regular expression",
				"The pattern does not compile and will not match anything:\n"+err.Error())
		}

		fields := make([]string, 0, cfg.Arity)
		fields = append(fields, pattern)
		for _, value := range valueFuncs {
			fields = append(fields, value())
		}
		onConfirm(models.NewListRecord(fields...))
		rowWindow.Close()
	})
	confirmButton.Importance = widget.HighImportance

	cancelButton := widget.NewButton("Cancel", func() {
		rowWindow.Close()
	})

	buttons := container.NewHBox(layout.NewSpacer(), cancelButton, confirmButton)
	rowWindow.SetContent(container.NewBorder(nil, buttons, nil, nil, container.NewScroll(form)))
	rowWindow.Resize(fyne.NewSize(440, 320))
	rowWindow.CenterOnScreen()

	updateButtonState()
	rowWindow.Show()
}
