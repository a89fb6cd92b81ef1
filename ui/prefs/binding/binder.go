// Package binding connects Fyne widgets to settings keys. Each preference
// page owns one Binder; the page's Build populates it and the page's Unbind
// is the Binder's Unbind. Refresh re-reads every bound key after the store
// is reloaded from disk.
package binding

import (
	"strconv"

	"fyne.io/fyne/v2/widget"

	"termprefs/core/settings"
	"termprefs/internal/debuglog"
)

// Binder ties widgets to store keys. Not safe for concurrent use; all calls
// happen on the UI thread.
type Binder struct {
	store    *settings.Store
	onChange func()

	refreshers []func()
	unbinders  []func()
}

// NewBinder creates a binder over the store. onChange runs after every
// widget-driven write, typically to persist the store.
func NewBinder(store *settings.Store, onChange func()) *Binder {
	return &Binder{store: store, onChange: onChange}
}

func (b *Binder) changed() {
	if b.onChange != nil {
		b.onChange()
	}
}

// BindEntry binds a text entry to a string key.
func (b *Binder) BindEntry(key string, entry *widget.Entry) {
	entry.SetText(b.store.GetString(key))
	entry.OnChanged = func(text string) {
		b.store.SetString(key, text)
		b.changed()
	}
	b.refreshers = append(b.refreshers, func() {
		entry.SetText(b.store.GetString(key))
	})
	b.unbinders = append(b.unbinders, func() {
		entry.OnChanged = nil
	})
}

// BindIntEntry binds a text entry to an integer key. Non-numeric input is
// ignored rather than written; the widget keeps the text so the user can
// finish typing.
func (b *Binder) BindIntEntry(key string, entry *widget.Entry) {
	entry.SetText(strconv.Itoa(b.store.GetInt(key)))
	entry.OnChanged = func(text string) {
		n, err := strconv.Atoi(text)
		if err != nil {
			debuglog.DebugLog("Binder.BindIntEntry: %q is not an integer for key %q", text, key)
			return
		}
		b.store.SetInt(key, n)
		b.changed()
	}
	b.refreshers = append(b.refreshers, func() {
		entry.SetText(strconv.Itoa(b.store.GetInt(key)))
	})
	b.unbinders = append(b.unbinders, func() {
		entry.OnChanged = nil
	})
}

// BindCheck binds a checkbox to a boolean key.
func (b *Binder) BindCheck(key string, check *widget.Check) {
	check.SetChecked(b.store.GetBool(key))
	check.OnChanged = func(v bool) {
		b.store.SetBool(key, v)
		b.changed()
	}
	b.refreshers = append(b.refreshers, func() {
		check.SetChecked(b.store.GetBool(key))
	})
	b.unbinders = append(b.unbinders, func() {
		check.OnChanged = nil
	})
}

// BindSelect binds a select widget to a string key.
func (b *Binder) BindSelect(key string, sel *widget.Select) {
	sel.SetSelected(b.store.GetString(key))
	sel.OnChanged = func(v string) {
		b.store.SetString(key, v)
		b.changed()
	}
	b.refreshers = append(b.refreshers, func() {
		sel.SetSelected(b.store.GetString(key))
	})
	b.unbinders = append(b.unbinders, func() {
		sel.OnChanged = nil
	})
}

// BindSlider binds a slider to an integer key.
func (b *Binder) BindSlider(key string, slider *widget.Slider) {
	slider.SetValue(float64(b.store.GetInt(key)))
	slider.OnChanged = func(v float64) {
		b.store.SetInt(key, int(v))
		b.changed()
	}
	b.refreshers = append(b.refreshers, func() {
		slider.SetValue(float64(b.store.GetInt(key)))
	})
	b.unbinders = append(b.unbinders, func() {
		slider.OnChanged = nil
	})
}

// AddCustom registers a refresh/unbind pair for a widget the binder has no
// dedicated Bind method for. Either function may be nil.
func (b *Binder) AddCustom(refresh, unbind func()) {
	if refresh != nil {
		b.refreshers = append(b.refreshers, refresh)
	}
	if unbind != nil {
		b.unbinders = append(b.unbinders, unbind)
	}
}

// Refresh re-reads every bound key and updates the widgets. Used after the
// settings file is reloaded from disk.
func (b *Binder) Refresh() {
	for _, fn := range b.refreshers {
		fn()
	}
}

// Unbind detaches every widget callback. The page must not write to the
// store afterwards.
func (b *Binder) Unbind() {
	for _, fn := range b.unbinders {
		fn()
	}
	b.refreshers = nil
	b.unbinders = nil
}
