package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/muhammadmuzzammil1998/jsonc"

	"termprefs/internal/debuglog"
)

const (
	// MaxSettingsFileSize is the maximum settings file size we will load (256 KB).
	MaxSettingsFileSize = 256 * 1024
)

// Store is the key-value settings backend. All reads fall back to the
// defaults table for missing keys and type mismatches; writes stay in memory
// until Save. The store is safe for concurrent use because the file watcher
// reloads it from a background goroutine.
type Store struct {
	path string

	mu     sync.RWMutex
	values map[string]interface{}

	subMu       sync.Mutex
	subscribers []func()
}

// NewStore creates a store backed by the given file path. The file is not
// touched until Load or Save.
func NewStore(path string) *Store {
	return &Store{
		path:   path,
		values: make(map[string]interface{}),
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

var reTrailingCommas = regexp.MustCompile(`,(\s*[\]\}])`)

func removeTrailingCommas(data []byte) []byte {
	return reTrailingCommas.ReplaceAll(data, []byte("$1"))
}

// Load reads and parses the settings file. Comments and trailing commas are
// tolerated (the file is user-editable). A missing file is not an error: the
// store starts empty and every read serves defaults.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		debuglog.InfoLog("settings.Load: %s not found, using defaults", s.path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read settings file: %w", err)
	}
	if len(data) > MaxSettingsFileSize {
		return fmt.Errorf("settings file too large: %d bytes (max %d)", len(data), MaxSettingsFileSize)
	}

	// Trailing commas are removed before and after jsonc so jsonc never sees
	// invalid input and we still fix cases like `, // comment \n ]`.
	data = removeTrailingCommas(data)
	cleanData := jsonc.ToJSON(data)
	cleanData = removeTrailingCommas(cleanData)

	var values map[string]interface{}
	if err := json.Unmarshal(cleanData, &values); err != nil {
		return fmt.Errorf("failed to parse settings file: %w", err)
	}

	s.mu.Lock()
	s.values = values
	s.mu.Unlock()

	debuglog.InfoLog("settings.Load: loaded %d keys from %s", len(values), s.path)
	return nil
}

// Save writes the current values as indented JSON, creating the parent
// directory if needed.
func (s *Store) Save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.values, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	debuglog.InfoLog("settings.Save: saved to %s", s.path)
	return nil
}

// Subscribe registers fn to run after the store is reloaded from disk.
// Subscribers are invoked from the watcher goroutine; UI subscribers must
// hop to the UI thread themselves.
func (s *Store) Subscribe(fn func()) {
	s.subMu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.subMu.Unlock()
}

func (s *Store) notify() {
	s.subMu.Lock()
	subs := make([]func(), len(s.subscribers))
	copy(subs, s.subscribers)
	s.subMu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// Reload re-reads the file and notifies subscribers. Used by the watcher
// when the file changes on disk.
func (s *Store) Reload() {
	if err := s.Load(); err != nil {
		debuglog.WarnLog("settings.Reload: %v", err)
		return
	}
	s.notify()
}

func (s *Store) raw(key string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *Store) set(key string, value interface{}) {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()
}

// GetString returns the string value for key, or its default.
func (s *Store) GetString(key string) string {
	if v, ok := s.raw(key); ok {
		if str, ok := v.(string); ok {
			return str
		}
		debuglog.WarnLog("settings.GetString: key %q has type %T, using default", key, v)
	}
	if d, ok := defaults[key].(string); ok {
		return d
	}
	return ""
}

// SetString sets the string value for key.
func (s *Store) SetString(key, value string) {
	s.set(key, value)
}

// GetBool returns the boolean value for key, or its default.
func (s *Store) GetBool(key string) bool {
	if v, ok := s.raw(key); ok {
		if b, ok := v.(bool); ok {
			return b
		}
		debuglog.WarnLog("settings.GetBool: key %q has type %T, using default", key, v)
	}
	if d, ok := defaults[key].(bool); ok {
		return d
	}
	return false
}

// SetBool sets the boolean value for key.
func (s *Store) SetBool(key string, value bool) {
	s.set(key, value)
}

// GetInt returns the integer value for key, or its default. JSON numbers
// arrive as float64 and are truncated.
func (s *Store) GetInt(key string) int {
	if v, ok := s.raw(key); ok {
		switch n := v.(type) {
		case float64:
			return int(n)
		case int:
			return n
		}
		debuglog.WarnLog("settings.GetInt: key %q has type %T, using default", key, v)
	}
	if d, ok := defaults[key].(int); ok {
		return d
	}
	return 0
}

// SetInt sets the integer value for key.
func (s *Store) SetInt(key string, value int) {
	s.set(key, value)
}

// GetStringList returns the string-list value for key, or its default.
// Non-string elements are skipped rather than failing the whole read.
func (s *Store) GetStringList(key string) []string {
	if v, ok := s.raw(key); ok {
		switch list := v.(type) {
		case []string:
			out := make([]string, len(list))
			copy(out, list)
			return out
		case []interface{}:
			out := make([]string, 0, len(list))
			for _, item := range list {
				if str, ok := item.(string); ok {
					out = append(out, str)
				} else {
					debuglog.WarnLog("settings.GetStringList: key %q has non-string element %T, skipping", key, item)
				}
			}
			return out
		}
		debuglog.WarnLog("settings.GetStringList: key %q has type %T, using default", key, v)
	}
	if d, ok := defaults[key].([]string); ok {
		out := make([]string, len(d))
		copy(out, d)
		return out
	}
	return nil
}

// SetStringList sets the string-list value for key.
func (s *Store) SetStringList(key string, value []string) {
	out := make([]string, len(value))
	copy(out, value)
	s.set(key, out)
}
