package tabs

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"termprefs/core"
	"termprefs/core/settings"
	"termprefs/internal/process"
	"termprefs/ui/prefs/binding"
)

// CreateCommandTab creates the Command page: login shell, custom command and
// what to do when the command exits.
func CreateCommandTab(ac *core.AppController) (fyne.CanvasObject, *binding.Binder) {
	b := binding.NewBinder(ac.Store, ac.SaveSettings)

	loginCheck := widget.NewCheck("Run command as a login shell", nil)
	b.BindCheck(settings.KeyLoginShell, loginCheck)

	commandEntry := widget.NewEntry()
	commandEntry.SetPlaceHolder("e.g. /usr/bin/fish")
	b.BindEntry(settings.KeyCustomCommand, commandEntry)

	pickButton := widget.NewButton("Pick...", func() {
		showCommandPicker(ac, commandEntry)
	})

	syncCommandRow := func(enabled bool) {
		if enabled {
			commandEntry.Enable()
			pickButton.Enable()
		} else {
			commandEntry.Disable()
			pickButton.Disable()
		}
	}

	customCheck := widget.NewCheck("Run a custom command instead of my shell", nil)
	b.BindCheck(settings.KeyUseCustomCommand, customCheck)
	// Chain onto the binder's handler so the store write still happens.
	storeHandler := customCheck.OnChanged
	customCheck.OnChanged = func(v bool) {
		storeHandler(v)
		syncCommandRow(v)
	}
	syncCommandRow(customCheck.Checked)

	exitSelect := widget.NewSelect(settings.ExitActions, nil)
	b.BindSelect(settings.KeyExitAction, exitSelect)

	content := container.NewVBox(
		loginCheck,
		widget.NewSeparator(),
		customCheck,
		container.NewBorder(nil, nil, nil, pickButton, commandEntry),
		widget.NewSeparator(),
		widget.NewLabel("When command exits:"),
		exitSelect,
	)
	return container.NewScroll(content), b
}

// showCommandPicker opens a window listing running executables so the user
// can pick one as the custom command without typing a path.
func showCommandPicker(ac *core.AppController, target *widget.Entry) {
	w := ac.Application.NewWindow("Pick Command")
	w.Resize(fyne.NewSize(420, 400))

	loadNames := func() []string {
		names, err := process.ExecutableNames()
		if err != nil {
			return []string{}
		}
		return names
	}

	listData := loadNames()
	selectedIdx := -1
	nameList := widget.NewList(
		func() int { return len(listData) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(listData[i])
		},
	)
	nameList.OnSelected = func(id widget.ListItemID) {
		selectedIdx = id
	}

	useButton := widget.NewButton("Use", func() {
		if selectedIdx >= 0 && selectedIdx < len(listData) {
			target.SetText(listData[selectedIdx])
			w.Close()
		}
	})
	refreshButton := widget.NewButton("Refresh", func() {
		listData = loadNames()
		selectedIdx = -1
		nameList.UnselectAll()
		nameList.Refresh()
	})
	closeButton := widget.NewButton("Close", func() { w.Close() })

	buttons := container.NewHBox(layout.NewSpacer(), refreshButton, useButton, closeButton)
	w.SetContent(container.NewBorder(nil, buttons, nil, nil, container.NewScroll(nameList)))
	w.Show()
}
