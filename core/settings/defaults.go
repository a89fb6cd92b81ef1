package settings

// Enumerated option values offered by the preference pages. The first entry
// of each list is the default.
var (
	CursorShapes     = []string{"block", "ibeam", "underline"}
	CursorBlinkModes = []string{"system", "on", "off"}
	ExitActions      = []string{"close", "restart", "hold"}
	EraseBindings    = []string{"auto", "ascii-backspace", "ascii-delete", "delete-sequence", "tty"}
	AmbiguousWidths  = []string{"narrow", "wide"}
	Encodings        = []string{"UTF-8", "ISO-8859-1", "ISO-8859-15", "KOI8-R", "WINDOWS-1252"}
)

// defaults is the compiled-in fallback table. Every key the UI binds must
// have an entry here; GetX falls back to it for missing keys and for values
// of the wrong type.
var defaults = map[string]interface{}{
	KeyVisibleName:       "Default",
	KeyCursorShape:       "block",
	KeyCursorBlinkMode:   "system",
	KeyTerminalBell:      true,
	KeySizeColumns:       80,
	KeySizeRows:          24,
	KeyLoginShell:        false,
	KeyUseCustomCommand:  false,
	KeyCustomCommand:     "",
	KeyExitAction:        "close",
	KeyColorScheme:       "Dark Pastels",
	KeyForegroundColor:   "#DCDCCC",
	KeyBackgroundColor:   "#2C2C2C",
	KeyBoldIsBright:      true,
	KeyDimPercent:        0,
	KeyScrollbackLines:   10000,
	KeyScrollbackUnlimit: false,
	KeyShowScrollbar:     true,
	KeyScrollOnOutput:    false,
	KeyScrollOnKeystroke: true,
	KeyBackspaceBinding:  "ascii-delete",
	KeyDeleteBinding:     "delete-sequence",
	KeyAmbiguousWidth:    "narrow",
	KeyEncoding:          "UTF-8",
	KeyProxyHost:         "",
	KeyProxyPort:         1080,

	KeyCustomHyperlinks:   []string{},
	KeyTriggers:           []string{},
	KeyAutoSwitchPatterns: []string{},
}
