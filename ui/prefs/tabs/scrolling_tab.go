package tabs

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"termprefs/core"
	"termprefs/core/settings"
	"termprefs/ui/prefs/binding"
)

// CreateScrollingTab creates the Scrolling page.
func CreateScrollingTab(ac *core.AppController) (fyne.CanvasObject, *binding.Binder) {
	b := binding.NewBinder(ac.Store, ac.SaveSettings)

	linesEntry := widget.NewEntry()
	b.BindIntEntry(settings.KeyScrollbackLines, linesEntry)

	syncLinesEntry := func(unlimited bool) {
		if unlimited {
			linesEntry.Disable()
		} else {
			linesEntry.Enable()
		}
	}

	unlimitedCheck := widget.NewCheck("Unlimited scrollback", nil)
	b.BindCheck(settings.KeyScrollbackUnlimit, unlimitedCheck)
	storeHandler := unlimitedCheck.OnChanged
	unlimitedCheck.OnChanged = func(v bool) {
		storeHandler(v)
		syncLinesEntry(v)
	}
	syncLinesEntry(unlimitedCheck.Checked)

	scrollbarCheck := widget.NewCheck("Show scrollbar", nil)
	b.BindCheck(settings.KeyShowScrollbar, scrollbarCheck)

	onOutputCheck := widget.NewCheck("Scroll on output", nil)
	b.BindCheck(settings.KeyScrollOnOutput, onOutputCheck)

	onKeystrokeCheck := widget.NewCheck("Scroll on keystroke", nil)
	b.BindCheck(settings.KeyScrollOnKeystroke, onKeystrokeCheck)

	content := container.NewVBox(
		widget.NewLabel("Scrollback lines:"),
		linesEntry,
		unlimitedCheck,
		widget.NewSeparator(),
		scrollbarCheck,
		onOutputCheck,
		onKeystrokeCheck,
	)
	return container.NewScroll(content), b
}
