package settings

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func tempStore(t *testing.T, contents string) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	if contents != "" {
		if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
			t.Fatalf("Failed to write settings file: %v", err)
		}
	}
	store := NewStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return store
}

// TestStoreDefaults tests that a missing file serves defaults for every value type
func TestStoreDefaults(t *testing.T) {
	store := tempStore(t, "")

	if got := store.GetString(KeyEncoding); got != "UTF-8" {
		t.Errorf("Expected default encoding %q, got %q", "UTF-8", got)
	}
	if got := store.GetBool(KeyScrollOnKeystroke); got != true {
		t.Errorf("Expected default scroll-on-keystroke true, got %v", got)
	}
	if got := store.GetInt(KeyScrollbackLines); got != 10000 {
		t.Errorf("Expected default scrollback 10000, got %d", got)
	}
	if got := store.GetStringList(KeyTriggers); len(got) != 0 {
		t.Errorf("Expected empty default trigger list, got %q", got)
	}
}

// TestStoreLoadJSONC tests that comments and trailing commas are tolerated
func TestStoreLoadJSONC(t *testing.T) {
	store := tempStore(t, `{
	// user-edited settings file
	"visible-name": "Work", /* inline */
	"default-size-columns": 120,
	"custom-hyperlinks": [
		"foo.*,/bin/bar,true", // trailing comma next
	],
}`)

	if got := store.GetString(KeyVisibleName); got != "Work" {
		t.Errorf("Expected %q, got %q", "Work", got)
	}
	if got := store.GetInt(KeySizeColumns); got != 120 {
		t.Errorf("Expected 120, got %d", got)
	}
	if got := store.GetStringList(KeyCustomHyperlinks); !reflect.DeepEqual(got, []string{"foo.*,/bin/bar,true"}) {
		t.Errorf("Expected hyperlink rows, got %q", got)
	}
}

// TestStoreTypeMismatchFallsBack tests the type-mismatch fallback policy
func TestStoreTypeMismatchFallsBack(t *testing.T) {
	store := tempStore(t, `{
	"scrollback-lines": "lots",
	"terminal-bell": 7,
	"triggers": "not-a-list"
}`)

	if got := store.GetInt(KeyScrollbackLines); got != 10000 {
		t.Errorf("Expected default for mistyped int, got %d", got)
	}
	if got := store.GetBool(KeyTerminalBell); got != true {
		t.Errorf("Expected default for mistyped bool, got %v", got)
	}
	if got := store.GetStringList(KeyTriggers); len(got) != 0 {
		t.Errorf("Expected default for mistyped list, got %q", got)
	}
}

// TestStoreStringListSkipsNonStrings tests element-level leniency
func TestStoreStringListSkipsNonStrings(t *testing.T) {
	store := tempStore(t, `{"auto-switch-patterns": ["user@host", 42, "host:dir"]}`)

	got := store.GetStringList(KeyAutoSwitchPatterns)
	expected := []string{"user@host", "host:dir"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

// TestStoreSaveLoadRoundTrip tests persistence through Save and a fresh Load
func TestStoreSaveLoadRoundTrip(t *testing.T) {
	store := tempStore(t, "")

	store.SetString(KeyVisibleName, "Remote")
	store.SetBool(KeyLoginShell, true)
	store.SetInt(KeySizeRows, 50)
	store.SetStringList(KeyTriggers, []string{"err.*,notify,oops", "warn,execute,/bin/beep"})
	if err := store.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded := NewStore(store.Path())
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := reloaded.GetString(KeyVisibleName); got != "Remote" {
		t.Errorf("Expected %q, got %q", "Remote", got)
	}
	if got := reloaded.GetBool(KeyLoginShell); got != true {
		t.Errorf("Expected true, got %v", got)
	}
	if got := reloaded.GetInt(KeySizeRows); got != 50 {
		t.Errorf("Expected 50, got %d", got)
	}
	expected := []string{"err.*,notify,oops", "warn,execute,/bin/beep"}
	if got := reloaded.GetStringList(KeyTriggers); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

// TestStoreListIsolation tests that returned lists are copies
func TestStoreListIsolation(t *testing.T) {
	store := tempStore(t, "")
	store.SetStringList(KeyTriggers, []string{"a,b,c"})

	got := store.GetStringList(KeyTriggers)
	got[0] = "mutated"

	if again := store.GetStringList(KeyTriggers); again[0] != "a,b,c" {
		t.Errorf("Store value mutated through returned slice: %q", again)
	}
}
