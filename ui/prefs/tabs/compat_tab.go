package tabs

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"termprefs/core"
	"termprefs/core/settings"
	"termprefs/ui/prefs/binding"
)

// CreateCompatTab creates the Compatibility page: erase key bindings,
// ambiguous-width handling and the terminal encoding.
func CreateCompatTab(ac *core.AppController) (fyne.CanvasObject, *binding.Binder) {
	b := binding.NewBinder(ac.Store, ac.SaveSettings)

	backspaceSelect := widget.NewSelect(settings.EraseBindings, nil)
	b.BindSelect(settings.KeyBackspaceBinding, backspaceSelect)

	deleteSelect := widget.NewSelect(settings.EraseBindings, nil)
	b.BindSelect(settings.KeyDeleteBinding, deleteSelect)

	widthSelect := widget.NewSelect(settings.AmbiguousWidths, nil)
	b.BindSelect(settings.KeyAmbiguousWidth, widthSelect)

	encodingSelect := widget.NewSelect(settings.Encodings, nil)
	b.BindSelect(settings.KeyEncoding, encodingSelect)

	content := container.NewVBox(
		widget.NewLabel("Backspace key generates:"),
		backspaceSelect,
		widget.NewLabel("Delete key generates:"),
		deleteSelect,
		widget.NewSeparator(),
		widget.NewLabel("Ambiguous-width characters:"),
		widthSelect,
		widget.NewLabel("Encoding:"),
		encodingSelect,
	)
	return container.NewScroll(content), b
}
