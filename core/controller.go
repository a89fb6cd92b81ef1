package core

import (
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/widget"

	"termprefs/core/settings"
	"termprefs/internal/constants"
	"termprefs/internal/debuglog"
	"termprefs/internal/dialogs"
)

// AppController - the main structure encapsulating application state.
type AppController struct {
	// --- Fyne Components ---
	Application fyne.App
	MainWindow  fyne.Window

	// --- Settings ---
	Store   *settings.Store
	Watcher *settings.Watcher

	// --- UI State ---
	StatusLabel *widget.Label

	// Open list-editor windows keyed by settings key, so a second click
	// focuses work on a fresh dialog instead of stacking duplicates.
	OpenEditorWindows map[string]fyne.Window

	// --- Logging ---
	MainLogFile *os.File

	// --- Callbacks for UI logic ---
	RefreshPagesFunc func() // Rebinds all pages after an external settings reload
}

// NewAppController creates the controller: logging, settings store and the
// file watcher. The main window is created by main after the controller is up.
func NewAppController() (*AppController, error) {
	ac := &AppController{
		Application:       app.NewWithID("io.termprefs.editor"),
		OpenEditorWindows: make(map[string]fyne.Window),
	}

	settingsDir, err := resolveSettingsDir()
	if err != nil {
		return nil, err
	}

	logFile, err := SetupFileLogging(settingsDir)
	if err != nil {
		// Logging to a file is not worth failing startup over; stderr still works.
		debuglog.WarnLog("NewAppController: file logging disabled: %v", err)
	} else {
		ac.MainLogFile = logFile
	}

	ac.Store = settings.NewStore(filepath.Join(settingsDir, constants.SettingsFileName))
	if err := ac.Store.Load(); err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	watcher, err := settings.NewWatcher(ac.Store)
	if err != nil {
		debuglog.WarnLog("NewAppController: settings watcher disabled: %v", err)
	} else {
		ac.Watcher = watcher
	}

	ac.Store.Subscribe(func() {
		// Called from the watcher goroutine; hop to the UI thread.
		fyne.Do(func() {
			if ac.RefreshPagesFunc != nil {
				ac.RefreshPagesFunc()
			}
			ac.SetStatus("Settings reloaded from disk")
		})
	})

	debuglog.InfoLog("NewAppController: settings at %s", ac.Store.Path())
	return ac, nil
}

// resolveSettingsDir returns the per-user config directory for the app,
// creating it if needed. Falls back to the executable's directory when the
// user config dir is unavailable.
func resolveSettingsDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		exe, exeErr := os.Executable()
		if exeErr != nil {
			return "", fmt.Errorf("failed to resolve config directory: %w", err)
		}
		return filepath.Dir(exe), nil
	}
	dir := filepath.Join(base, "termprefs")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return dir, nil
}

// SaveSettings persists the store and reports failures to the user.
func (ac *AppController) SaveSettings() {
	if err := ac.Store.Save(); err != nil {
		debuglog.ErrorLog("SaveSettings: %v", err)
		if ac.MainWindow != nil {
			dialogs.ShowError(ac.MainWindow, err)
		}
		return
	}
	ac.SetStatus("Saved")
}

// SetStatus updates the status bar text, if the status bar exists yet.
func (ac *AppController) SetStatus(text string) {
	if ac.StatusLabel != nil {
		ac.StatusLabel.SetText(text)
	}
}

// ShowAutoHideInfo shows a short auto-hiding notification dialog.
func (ac *AppController) ShowAutoHideInfo(title, message string) {
	dialogs.ShowAutoHideInfo(ac.Application, ac.MainWindow, title, message)
}

// GracefulExit stops the watcher and flushes settings before shutdown.
func (ac *AppController) GracefulExit() {
	if ac.Watcher != nil {
		ac.Watcher.Stop()
	}
	ac.SaveSettings()
}
