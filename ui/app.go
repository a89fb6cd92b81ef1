// Package ui assembles the preferences window from a fixed list of page
// descriptors. Pages do not know about each other; each one exposes a
// build/bind step and an unbind step, and the App drives both.
package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"termprefs/core"
	"termprefs/ui/prefs/binding"
	"termprefs/ui/prefs/tabs"
)

// PageID identifies a preference page.
type PageID string

const (
	PageGeneral   PageID = "general"
	PageCommand   PageID = "command"
	PageColor     PageID = "color"
	PageScrolling PageID = "scrolling"
	PageCompat    PageID = "compatibility"
	PageAdvanced  PageID = "advanced"
)

// PageDescriptor describes one preference page. The page set is the fixed
// ordered list below; Build returns the page content and the binder that
// ties its widgets to the settings store.
type PageDescriptor struct {
	ID    PageID
	Title string
	Build func(ac *core.AppController) (fyne.CanvasObject, *binding.Binder)
}

func pageList() []PageDescriptor {
	return []PageDescriptor{
		{ID: PageGeneral, Title: "General", Build: tabs.CreateGeneralTab},
		{ID: PageCommand, Title: "Command", Build: tabs.CreateCommandTab},
		{ID: PageColor, Title: "Color", Build: tabs.CreateColorTab},
		{ID: PageScrolling, Title: "Scrolling", Build: tabs.CreateScrollingTab},
		{ID: PageCompat, Title: "Compatibility", Build: tabs.CreateCompatTab},
		{ID: PageAdvanced, Title: "Advanced", Build: tabs.CreateAdvancedTab},
	}
}

// App manages the UI structure and tabs
type App struct {
	window  fyne.Window
	core    *core.AppController
	tabs    *container.AppTabs
	binders []*binding.Binder
	content fyne.CanvasObject
}

// NewApp creates a new App instance and builds every page.
func NewApp(window fyne.Window, controller *core.AppController) *App {
	a := &App{
		window: window,
		core:   controller,
	}

	items := make([]*container.TabItem, 0, len(pageList()))
	for _, page := range pageList() {
		content, binder := page.Build(controller)
		a.binders = append(a.binders, binder)
		items = append(items, container.NewTabItem(page.Title, content))
	}
	a.tabs = container.NewAppTabs(items...)

	controller.StatusLabel = widget.NewLabel("")
	a.content = container.NewBorder(nil, controller.StatusLabel, nil, nil, a.tabs)

	// External settings reloads re-read every bound key.
	controller.RefreshPagesFunc = a.RefreshPages

	return a
}

// GetContent returns the window content (tabs plus status bar).
func (a *App) GetContent() fyne.CanvasObject {
	return a.content
}

// GetTabs returns the tabs container
func (a *App) GetTabs() *container.AppTabs {
	return a.tabs
}

// GetWindow returns the main window
func (a *App) GetWindow() fyne.Window {
	return a.window
}

// GetController returns the core controller
func (a *App) GetController() *core.AppController {
	return a.core
}

// RefreshPages re-reads every bound settings key into the widgets.
func (a *App) RefreshPages() {
	for _, b := range a.binders {
		b.Refresh()
	}
}

// Close unbinds every page. Called once on shutdown.
func (a *App) Close() {
	for _, b := range a.binders {
		b.Unbind()
	}
}
