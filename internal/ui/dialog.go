// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of passdesk

package ui

import (
	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

// Dialog button labels.
const (
	ButtonOK  = "OK"
	ButtonYes = "Yes"
	ButtonNo  = "No"
)

// DialogOption customizes a dialog.
type DialogOption func(*Dialog)

// WithButtons replaces the default OK button.
func WithButtons(labels ...string) DialogOption {
	return func(d *Dialog) {
		d.buttons = labels
	}
}

// WithDanger paints the dialog red.
func WithDanger() DialogOption {
	return func(d *Dialog) {
		d.SetTextColor(tcell.ColorRed)
		d.SetButtonBackgroundColor(tcell.ColorRed)
		d.SetButtonTextColor(tcell.ColorWhite)
	}
}

// OnButton is called with the pressed label once the dialog is gone.
func OnButton(fn func(label string)) DialogOption {
	return func(d *Dialog) {
		d.onButton = fn
	}
}

// Dialog is a modal overlay shown on a Pages page of its own.
type Dialog struct {
	*tview.Modal

	pages    *Pages
	pageID   string
	buttons  []string
	onButton func(string)
}

// NewDialog returns a dialog, call Show to display it.
func NewDialog(pages *Pages, pageID, message string, opts ...DialogOption) *Dialog {
	d := Dialog{
		Modal:   tview.NewModal(),
		pages:   pages,
		pageID:  pageID,
		buttons: []string{ButtonOK},
	}
	d.SetBackgroundColor(tcell.ColorDefault)
	d.SetTextColor(tcell.ColorWhite)
	d.SetText(message)
	for _, o := range opts {
		o(&d)
	}
	d.AddButtons(d.buttons)
	d.SetDoneFunc(func(_ int, label string) {
		d.Dismiss()
		if d.onButton != nil {
			d.onButton(label)
		}
	})

	return &d
}

// Show puts the dialog in front.
func (d *Dialog) Show() {
	if d.pages != nil {
		d.pages.Show(d.pageID, d)
	}
}

// Dismiss removes the dialog.
func (d *Dialog) Dismiss() {
	if d.pages != nil {
		d.pages.Hide(d.pageID)
	}
}

// PageID returns the page the dialog lives on.
func (d *Dialog) PageID() string {
	return d.pageID
}

// InfoDialog shows a message with an OK button.
func InfoDialog(pages *Pages, message string) *Dialog {
	return NewDialog(pages, "info-dialog", message)
}

// ErrorDialog shows an error with an OK button.
func ErrorDialog(pages *Pages, message string) *Dialog {
	return NewDialog(pages, "error-dialog", message, WithDanger())
}

// ConfirmDialog asks a yes/no question and calls onYes on confirmation.
func ConfirmDialog(pages *Pages, message string, dangerous bool, onYes func()) *Dialog {
	opts := []DialogOption{
		WithButtons(ButtonYes, ButtonNo),
		OnButton(func(label string) {
			if label == ButtonYes && onYes != nil {
				onYes()
			}
		}),
	}
	if dangerous {
		opts = append(opts, WithDanger())
	}

	return NewDialog(pages, "confirm-dialog", message, opts...)
}
