package overlay

import "slices"

// WindowListener is told when the overlay window appears and disappears.
type WindowListener interface {
	DidShow(w *Window)
	DidHide(w *Window)
}

// Window is the host window carrying a Border above everything else. It
// tracks whether the window is on screen, which outlives the border's own
// transition state: the window stays visible until a hide finishes.
type Window struct {
	border    *Border
	showing   bool
	visible   bool
	listeners []registration
	nextID    int
}

type registration struct {
	id int
	l  WindowListener
}

// NewWindow wraps border in a hidden window.
func NewWindow(border *Border) *Window {
	return &Window{border: border}
}

// Border returns the wrapped border.
func (w *Window) Border() *Border {
	return w.border
}

// AddListener registers l. Listeners are told in registration order, and
// adding the same listener twice tells it twice. Returns an unsubscribe
// function that removes only this registration.
func (w *Window) AddListener(l WindowListener) func() {
	id := w.nextID
	w.nextID++
	w.listeners = append(w.listeners, registration{id: id, l: l})
	return func() {
		w.listeners = slices.DeleteFunc(w.listeners, func(r registration) bool { return r.id == id })
	}
}

// ShowWindow puts the window on screen and animates the border in.
func (w *Window) ShowWindow() {
	w.visible = true
	w.border.Show()
	w.showing = true
	for _, r := range slices.Clone(w.listeners) {
		r.l.DidShow(w)
	}
}

// HideWindow animates the border out and takes the window off screen when
// the hide finishes. A ShowWindow before then keeps the window up, and
// neither onComplete nor DidHide runs.
func (w *Window) HideWindow(onComplete func()) {
	w.border.Hide(func() {
		w.visible = false
		w.showing = false
		if onComplete != nil {
			onComplete()
		}
		for _, r := range slices.Clone(w.listeners) {
			r.l.DidHide(w)
		}
	})
}

// IsShowing reports whether the window was shown and has not finished hiding.
func (w *Window) IsShowing() bool {
	return w.showing
}

// IsVisible reports whether the window is on screen.
func (w *Window) IsVisible() bool {
	return w.visible
}

// CornerRadius returns the border's corner radius.
func (w *Window) CornerRadius() float64 {
	return w.border.CornerRadius()
}

// SetCornerRadius changes the border's corner radius.
func (w *Window) SetCornerRadius(r float64) {
	w.border.SetCornerRadius(r)
}
