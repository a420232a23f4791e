package ui

import "fyne.io/fyne/v2/widget"

// DateEntry is a custom Entry widget that notifies a callback when keyboard
// focus leaves the field. It embeds widget.Entry to inherit all standard
// behavior; the callback lets the controller validate the typed date on
// blur in addition to the explicit search action.
type DateEntry struct {
	widget.Entry

	// OnFocusLost is invoked after the embedded Entry has processed the
	// focus change.
	OnFocusLost func()
}

// NewDateEntry creates a new instance of DateEntry.
func NewDateEntry() *DateEntry {
	entry := &DateEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// FocusLost intercepts the focus change and forwards it to the callback.
func (e *DateEntry) FocusLost() {
	e.Entry.FocusLost()
	if e.OnFocusLost != nil {
		e.OnFocusLost()
	}
}
