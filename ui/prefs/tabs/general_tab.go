// Package tabs contains the preference pages shown in the main window.
// Each CreateXxxTab builds the page content and returns the Binder that ties
// its widgets to the settings store; the caller owns Refresh and Unbind.
package tabs

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"termprefs/core"
	"termprefs/core/settings"
	"termprefs/ui/prefs/binding"
)

// CreateGeneralTab creates the General page: profile name, cursor, bell and
// initial terminal size.
func CreateGeneralTab(ac *core.AppController) (fyne.CanvasObject, *binding.Binder) {
	b := binding.NewBinder(ac.Store, ac.SaveSettings)

	nameEntry := widget.NewEntry()
	b.BindEntry(settings.KeyVisibleName, nameEntry)

	shapeSelect := widget.NewSelect(settings.CursorShapes, nil)
	b.BindSelect(settings.KeyCursorShape, shapeSelect)

	blinkSelect := widget.NewSelect(settings.CursorBlinkModes, nil)
	b.BindSelect(settings.KeyCursorBlinkMode, blinkSelect)

	bellCheck := widget.NewCheck("Audible bell", nil)
	b.BindCheck(settings.KeyTerminalBell, bellCheck)

	columnsEntry := widget.NewEntry()
	b.BindIntEntry(settings.KeySizeColumns, columnsEntry)
	rowsEntry := widget.NewEntry()
	b.BindIntEntry(settings.KeySizeRows, rowsEntry)

	content := container.NewVBox(
		widget.NewLabel("Profile name:"),
		nameEntry,
		widget.NewSeparator(),
		widget.NewLabel("Cursor shape:"),
		shapeSelect,
		widget.NewLabel("Cursor blink:"),
		blinkSelect,
		widget.NewSeparator(),
		bellCheck,
		widget.NewSeparator(),
		widget.NewLabel("Initial size (columns x rows):"),
		container.NewGridWithColumns(2, columnsEntry, rowsEntry),
	)
	return container.NewScroll(content), b
}
