package tabs

import (
	"fmt"
	"log"
	"net"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"termprefs/core"
	"termprefs/core/netcheck"
	"termprefs/core/settings"
	"termprefs/internal/constants"
	appdialogs "termprefs/internal/dialogs"
	"termprefs/ui/prefs/binding"
	"termprefs/ui/prefs/business"
	prefsdialogs "termprefs/ui/prefs/dialogs"
	"termprefs/ui/prefs/models"
)

// CreateAdvancedTab creates the Advanced page: the two list editors, the
// automatic profile-switch patterns and the hyperlink proxy settings.
func CreateAdvancedTab(ac *core.AppController) (fyne.CanvasObject, *binding.Binder) {
	b := binding.NewBinder(ac.Store, ac.SaveSettings)

	// --- List editors ---
	hyperlinkCount := widget.NewLabel("")
	triggerCount := widget.NewLabel("")
	updateCounts := func() {
		hyperlinkCount.SetText(fmt.Sprintf("%d patterns", len(ac.Store.GetStringList(settings.KeyCustomHyperlinks))))
		triggerCount.SetText(fmt.Sprintf("%d triggers", len(ac.Store.GetStringList(settings.KeyTriggers))))
	}
	updateCounts()
	b.AddCustom(updateCounts, nil)

	hyperlinkButton := widget.NewButton("Edit Hyperlinks...", func() {
		prefsdialogs.ShowHyperlinkEditor(ac, func(rows []string) {
			// Rows arrive only after the user applied the dialog.
			updateCounts()
			ac.SetStatus(fmt.Sprintf("Saved %d hyperlink patterns", len(rows)))
		})
	})
	triggerButton := widget.NewButton("Edit Triggers...", func() {
		prefsdialogs.ShowTriggerEditor(ac, func(rows []string) {
			updateCounts()
			ac.SetStatus(fmt.Sprintf("Saved %d triggers", len(rows)))
		})
	})

	// --- Automatic profile switching ---
	switchSection := buildSwitchPatternSection(ac, b)

	// --- Hyperlink proxy ---
	proxySection := buildProxySection(ac, b)

	content := container.NewVBox(
		widget.NewLabel("Custom hyperlinks:"),
		container.NewBorder(nil, nil, nil, hyperlinkCount, hyperlinkButton),
		widget.NewLabel("Triggers:"),
		container.NewBorder(nil, nil, nil, triggerCount, triggerButton),
		widget.NewSeparator(),
		widget.NewLabel("Switch to this profile when connected to:"),
		switchSection,
		widget.NewSeparator(),
		widget.NewLabel("Open hyperlinks through a SOCKS5 proxy:"),
		proxySection,
	)
	return container.NewScroll(content), b
}

// buildSwitchPatternSection builds the inline editor for automatic
// profile-switch patterns ([user@]host-or-dir[:dir]). Unlike the modal list
// editors, edits here persist immediately; the pattern gate rejects bad
// input before the list is touched.
func buildSwitchPatternSection(ac *core.AppController, b *binding.Binder) fyne.CanvasObject {
	codec := business.ListCodec{Arity: models.SwitchArity}

	patternsBox := container.NewVBox()
	var refreshPatterns func()
	refreshPatterns = func() {
		set := codec.Decode(ac.Store.GetStringList(settings.KeyAutoSwitchPatterns))
		patternsBox.Objects = nil
		for i := 0; i < set.Len(); i++ {
			index := i
			label := widget.NewLabel(set.At(i).Pattern())
			removeButton := widget.NewButton("−", func() {
				current := codec.Decode(ac.Store.GetStringList(settings.KeyAutoSwitchPatterns))
				if current.Remove(index) {
					ac.Store.SetStringList(settings.KeyAutoSwitchPatterns, codec.Encode(current))
					ac.SaveSettings()
					refreshPatterns()
				}
			})
			patternsBox.Add(container.NewHBox(label, layout.NewSpacer(), removeButton))
		}
		patternsBox.Refresh()
	}
	refreshPatterns()
	b.AddCustom(refreshPatterns, nil)

	patternEntry := widget.NewEntry()
	patternEntry.SetPlaceHolder("user@host, host:dir ...")
	addButton := widget.NewButton("Add", func() {
		candidate := patternEntry.Text
		if !business.ValidateSwitchPattern(candidate) {
			// Re-prompt without mutating the list; the entry keeps its text
			// so the user can correct it.
			appdialogs.ShowErrorText(ac.MainWindow, "Invalid pattern",
				"Use [user@]host-or-dir[:dir] with at least one '@' or ':'")
			return
		}
		set := codec.Decode(ac.Store.GetStringList(settings.KeyAutoSwitchPatterns))
		set.Add(models.NewListRecord(candidate))
		ac.Store.SetStringList(settings.KeyAutoSwitchPatterns, codec.Encode(set))
		ac.SaveSettings()
		patternEntry.SetText("")
		refreshPatterns()
	})

	return container.NewVBox(
		patternsBox,
		container.NewBorder(nil, nil, nil, addButton, patternEntry),
	)
}

// buildProxySection builds the proxy host/port fields and the two
// connectivity checks.
func buildProxySection(ac *core.AppController, b *binding.Binder) fyne.CanvasObject {
	hostEntry := widget.NewEntry()
	hostEntry.SetPlaceHolder("Host (empty disables the proxy)")
	b.BindEntry(settings.KeyProxyHost, hostEntry)

	portEntry := widget.NewEntry()
	b.BindIntEntry(settings.KeyProxyPort, portEntry)

	testButton := widget.NewButton("Test Proxy", func() {
		host := ac.Store.GetString(settings.KeyProxyHost)
		if host == "" {
			appdialogs.ShowErrorText(ac.MainWindow, "Proxy test", "No proxy host configured")
			return
		}
		addr := net.JoinHostPort(host, strconv.Itoa(ac.Store.GetInt(settings.KeyProxyPort)))

		waitDialog := dialog.NewCustomWithoutButtons("Proxy Test", widget.NewLabel("Connecting, please wait..."), ac.MainWindow)
		waitDialog.Show()
		go func() {
			err := netcheck.TestSocksProxy(addr)
			fyne.Do(func() {
				waitDialog.Hide()
				if err != nil {
					log.Printf("advancedTab: proxy test failed: %v", err)
					dialog.ShowError(err, ac.MainWindow)
					return
				}
				dialog.ShowInformation("Proxy Test", fmt.Sprintf("Proxy %s accepted the connection.", addr), ac.MainWindow)
			})
		}()
	})

	stunButton := widget.NewButton("Check External IP", func() {
		waitDialog := dialog.NewCustomWithoutButtons("STUN Check", widget.NewLabel("Checking, please wait..."), ac.MainWindow)
		waitDialog.Show()
		go func() {
			ip, err := netcheck.CheckSTUN(constants.DefaultSTUNServer)
			fyne.Do(func() {
				waitDialog.Hide()
				if err != nil {
					log.Printf("advancedTab: STUN check failed: %v", err)
					dialog.ShowError(err, ac.MainWindow)
					return
				}
				log.Printf("advancedTab: STUN check successful, IP: %s", ip)
				resultLabel := widget.NewLabel(fmt.Sprintf("Your External IP: %s\n(determined via [UDP]%s)", ip, constants.DefaultSTUNServer))
				copyButton := widget.NewButton("Copy IP", func() {
					ac.MainWindow.Clipboard().SetContent(ip)
					ac.ShowAutoHideInfo("Copied", "IP address copied to clipboard.")
				})
				dialog.ShowCustom("STUN Check Result", "Close", container.NewVBox(resultLabel, copyButton), ac.MainWindow)
			})
		}()
	})

	return container.NewVBox(
		container.NewGridWithColumns(2, hostEntry, portEntry),
		container.NewHBox(testButton, stunButton),
	)
}
