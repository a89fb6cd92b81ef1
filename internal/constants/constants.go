package constants

// File names
const (
	SettingsFileName = "settings.json"
)

// Directory names
const (
	LogsDirName = "logs"
)

// Log file names
const (
	MainLogFileName = "termprefs.log"
)

// Network constants
const (
	DefaultSTUNServer = "stun.l.google.com:19302"
)

// Application version
// Can be overridden at build time using -ldflags="-X termprefs/internal/constants.AppVersion=..."
var (
	AppVersion = "v0.3.0" // Default version, overridden by build scripts from git tag
)

// UI Theme settings
const (
	// Theme options: "dark", "light", or "default" (follows system theme)
	AppTheme = "default" // Set to "dark", "light", or "default"
)
