package tabs

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"termprefs/core"
	"termprefs/core/settings"
	"termprefs/ui/prefs/binding"
)

// colorScheme is a named foreground/background pair. Schemes are compiled in;
// scheme file I/O is out of scope.
type colorScheme struct {
	Name       string
	Foreground string
	Background string
}

var colorSchemes = []colorScheme{
	{"Dark Pastels", "#DCDCCC", "#2C2C2C"},
	{"Linux Console", "#AAAAAA", "#000000"},
	{"Solarized Dark", "#839496", "#002B36"},
	{"Solarized Light", "#657B83", "#FDF6E3"},
	{"Tango", "#D3D7CF", "#2E3436"},
}

// CustomSchemeName marks a foreground/background pair that matches no
// compiled-in scheme.
const CustomSchemeName = "Custom"

func schemeNames() []string {
	names := make([]string, 0, len(colorSchemes)+1)
	for _, s := range colorSchemes {
		names = append(names, s.Name)
	}
	return append(names, CustomSchemeName)
}

func findScheme(name string) (colorScheme, bool) {
	for _, s := range colorSchemes {
		if s.Name == name {
			return s, true
		}
	}
	return colorScheme{}, false
}

// CreateColorTab creates the Color page. Editing a color entry by hand flips
// the scheme to Custom; applying a scheme updates both entries without
// flipping, which is told apart by the applying argument threaded through
// updateColor rather than by a shared flag.
func CreateColorTab(ac *core.AppController) (fyne.CanvasObject, *binding.Binder) {
	b := binding.NewBinder(ac.Store, ac.SaveSettings)

	fgEntry := widget.NewEntry()
	bgEntry := widget.NewEntry()
	var schemeSelect *widget.Select

	updateColor := func(key, value string, applying bool) {
		ac.Store.SetString(key, value)
		if !applying && schemeSelect.Selected != CustomSchemeName {
			ac.Store.SetString(settings.KeyColorScheme, CustomSchemeName)
			schemeSelect.SetSelected(CustomSchemeName)
		}
		ac.SaveSettings()
	}

	attachColorHandlers := func() {
		fgEntry.OnChanged = func(v string) { updateColor(settings.KeyForegroundColor, v, false) }
		bgEntry.OnChanged = func(v string) { updateColor(settings.KeyBackgroundColor, v, false) }
	}
	detachColorHandlers := func() {
		fgEntry.OnChanged = nil
		bgEntry.OnChanged = nil
	}

	applyScheme := func(scheme colorScheme) {
		// Bulk update: set both entries with handlers detached, then write
		// the store with applying=true so the scheme selection stands.
		detachColorHandlers()
		fgEntry.SetText(scheme.Foreground)
		bgEntry.SetText(scheme.Background)
		attachColorHandlers()
		updateColor(settings.KeyForegroundColor, scheme.Foreground, true)
		updateColor(settings.KeyBackgroundColor, scheme.Background, true)
	}

	schemeSelect = widget.NewSelect(schemeNames(), func(name string) {
		ac.Store.SetString(settings.KeyColorScheme, name)
		if scheme, ok := findScheme(name); ok {
			applyScheme(scheme)
			return
		}
		// Custom: keep whatever colors are in the entries.
		ac.SaveSettings()
	})

	// Initial state from the store.
	fgEntry.SetText(ac.Store.GetString(settings.KeyForegroundColor))
	bgEntry.SetText(ac.Store.GetString(settings.KeyBackgroundColor))
	attachColorHandlers()
	schemeSelect.Selected = ac.Store.GetString(settings.KeyColorScheme)
	schemeSelect.Refresh()

	b.AddCustom(func() {
		detachColorHandlers()
		fgEntry.SetText(ac.Store.GetString(settings.KeyForegroundColor))
		bgEntry.SetText(ac.Store.GetString(settings.KeyBackgroundColor))
		attachColorHandlers()
		schemeSelect.Selected = ac.Store.GetString(settings.KeyColorScheme)
		schemeSelect.Refresh()
	}, func() {
		detachColorHandlers()
		schemeSelect.OnChanged = nil
	})

	boldCheck := widget.NewCheck("Show bold text in bright colors", nil)
	b.BindCheck(settings.KeyBoldIsBright, boldCheck)

	dimSlider := widget.NewSlider(0, 100)
	dimSlider.Step = 5
	b.BindSlider(settings.KeyDimPercent, dimSlider)

	content := container.NewVBox(
		widget.NewLabel("Color scheme:"),
		schemeSelect,
		widget.NewSeparator(),
		widget.NewLabel("Foreground color:"),
		fgEntry,
		widget.NewLabel("Background color:"),
		bgEntry,
		widget.NewSeparator(),
		boldCheck,
		widget.NewLabel("Dim unfocused terminal (%):"),
		dimSlider,
	)
	return container.NewScroll(content), b
}
