// Package settings implements the persisted key-value store behind the
// preferences editor. Values live in a single JSON file that users may edit
// by hand; comments and trailing commas are tolerated on load, plain JSON is
// written on save. Unknown or type-mismatched values fall back to a
// compiled-in defaults table.
package settings

// Profile keys bound by the preference pages.
const (
	KeyVisibleName        = "visible-name"
	KeyCursorShape        = "cursor-shape"
	KeyCursorBlinkMode    = "cursor-blink-mode"
	KeyTerminalBell       = "terminal-bell"
	KeySizeColumns        = "default-size-columns"
	KeySizeRows           = "default-size-rows"
	KeyLoginShell         = "login-shell"
	KeyUseCustomCommand   = "use-custom-command"
	KeyCustomCommand      = "custom-command"
	KeyExitAction         = "exit-action"
	KeyColorScheme        = "color-scheme"
	KeyForegroundColor    = "foreground-color"
	KeyBackgroundColor    = "background-color"
	KeyBoldIsBright       = "bold-is-bright"
	KeyDimPercent         = "dim-transparency-percent"
	KeyScrollbackLines    = "scrollback-lines"
	KeyScrollbackUnlimit  = "scrollback-unlimited"
	KeyShowScrollbar      = "show-scrollbar"
	KeyScrollOnOutput     = "scroll-on-output"
	KeyScrollOnKeystroke  = "scroll-on-keystroke"
	KeyBackspaceBinding   = "backspace-binding"
	KeyDeleteBinding      = "delete-binding"
	KeyAmbiguousWidth     = "ambiguous-width"
	KeyEncoding           = "encoding"
	KeyProxyHost          = "link-proxy-host"
	KeyProxyPort          = "link-proxy-port"
)

// List-typed keys. Each holds a list of CSV-encoded rows; see ui/prefs/business.
const (
	KeyCustomHyperlinks   = "custom-hyperlinks"
	KeyTriggers           = "triggers"
	KeyAutoSwitchPatterns = "auto-switch-patterns"
)
