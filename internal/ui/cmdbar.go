// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of passdesk

package ui

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

// IndicatorMode represents the current input mode.
type IndicatorMode int

const (
	// ModeNormal is the default navigation mode.
	ModeNormal IndicatorMode = iota

	// ModeCommand is for entering view commands (: prefix).
	ModeCommand

	// ModeSearch narrows the options of the focused filter (/ prefix).
	ModeSearch
)

// CmdBar is a bordered command and search input bar at the top of the app.
// Uses a TextView for ghost-text autocomplete.
type CmdBar struct {
	*tview.TextView

	mode              IndicatorMode
	cmdFn             func(string)
	searchFn          func(string)
	cancelFn          func()
	activeFn          func(bool)
	isActive          bool
	text              []rune
	suggestions       []string
	suggestionIdx     int
	currentSuggestion string
	commands          []string
	mx                sync.RWMutex
}

// NewCmdBar creates a new command bar.
func NewCmdBar() *CmdBar {
	c := &CmdBar{
		TextView:      tview.NewTextView(),
		mode:          ModeNormal,
		suggestionIdx: -1,
	}

	c.SetBorder(true)
	c.SetBorderColor(tcell.ColorDarkCyan)
	c.SetBackgroundColor(tcell.ColorDefault)
	c.SetTextColor(tcell.ColorWhite)
	c.SetDynamicColors(true)
	c.SetWrap(false)
	c.SetInputCapture(c.keyboard)
	c.render()

	return c
}

// keyboard handles all keyboard input for the command bar.
func (c *CmdBar) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	if !c.IsActive() {
		return evt
	}

	switch evt.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		c.mx.Lock()
		if len(c.text) > 0 {
			c.text = c.text[:len(c.text)-1]
		}
		c.mx.Unlock()
		c.changed()
		return nil

	case tcell.KeyEnter:
		c.execute()
		return nil

	case tcell.KeyEsc:
		c.cancel()
		return nil

	case tcell.KeyTab, tcell.KeyRight:
		c.mx.Lock()
		if c.currentSuggestion != "" {
			c.text = []rune(c.currentSuggestion)
		}
		c.mx.Unlock()
		c.clearSuggestions()
		c.render()
		return nil

	case tcell.KeyUp:
		c.cycleSuggestion(-1)
		return nil

	case tcell.KeyDown:
		c.cycleSuggestion(1)
		return nil

	case tcell.KeyCtrlU, tcell.KeyCtrlW:
		c.mx.Lock()
		c.text = c.text[:0]
		c.mx.Unlock()
		c.changed()
		return nil

	case tcell.KeyRune:
		c.Type(string(evt.Rune()))
		return nil
	}

	return evt
}

// Type appends text to the input.
func (c *CmdBar) Type(s string) {
	c.mx.Lock()
	c.text = append(c.text, []rune(s)...)
	c.mx.Unlock()
	c.changed()
}

func (c *CmdBar) changed() {
	c.updateSuggestions()
	c.render()

	c.mx.RLock()
	mode, fn, text := c.mode, c.searchFn, string(c.text)
	c.mx.RUnlock()
	if mode == ModeSearch && fn != nil {
		fn(text)
	}
}

func (c *CmdBar) cycleSuggestion(delta int) {
	c.mx.Lock()
	if n := len(c.suggestions); n > 0 {
		c.suggestionIdx = ((c.suggestionIdx+delta)%n + n) % n
		c.currentSuggestion = c.suggestions[c.suggestionIdx]
	}
	c.mx.Unlock()
	c.render()
}

// render updates the display with current text and ghost suggestion.
func (c *CmdBar) render() {
	c.mx.RLock()
	text := string(c.text)
	suggestion := c.currentSuggestion
	mode := c.mode
	c.mx.RUnlock()

	var prefix string
	switch mode {
	case ModeCommand:
		prefix = ":"
	case ModeSearch:
		prefix = "/"
	default:
		prefix = ">"
	}

	display := fmt.Sprintf("%s [::b]%s", prefix, tview.Escape(text))
	if strings.HasPrefix(suggestion, text) && len(suggestion) > len(text) {
		display += fmt.Sprintf("[gray::-]%s[-::]", suggestion[len(text):])
	}
	c.SetText(display)
}

// Suggestions returns the commands matching the given text.
func (c *CmdBar) Suggestions(text string) []string {
	c.mx.RLock()
	defer c.mx.RUnlock()

	return c.suggestionsLocked(text)
}

func (c *CmdBar) suggestionsLocked(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.ToLower(text)
	var matches []string
	for _, cmd := range c.commands {
		if strings.HasPrefix(cmd, text) && cmd != text {
			matches = append(matches, cmd)
		}
	}
	return matches
}

// updateSuggestions updates the suggestion list based on current text.
func (c *CmdBar) updateSuggestions() {
	c.mx.Lock()
	defer c.mx.Unlock()

	text := string(c.text)
	c.suggestions, c.suggestionIdx, c.currentSuggestion = nil, -1, ""
	if c.mode != ModeCommand || text == "" {
		return
	}

	c.suggestions = c.suggestionsLocked(text)
	if len(c.suggestions) > 0 {
		c.suggestionIdx = 0
		c.currentSuggestion = c.suggestions[0]
	}
}

// clearSuggestions clears all suggestions.
func (c *CmdBar) clearSuggestions() {
	c.mx.Lock()
	defer c.mx.Unlock()

	c.suggestions = nil
	c.suggestionIdx = -1
	c.currentSuggestion = ""
}

// SetCommands sets the full list of available commands.
func (c *CmdBar) SetCommands(cmds []string) {
	c.mx.Lock()
	defer c.mx.Unlock()

	c.commands = append([]string(nil), cmds...)
	sort.Strings(c.commands)
}

// GetText returns the current input text.
func (c *CmdBar) GetText() string {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return string(c.text)
}

// Activate enters command or search mode.
func (c *CmdBar) Activate(mode IndicatorMode) {
	c.mx.Lock()
	c.mode = mode
	c.isActive = true
	c.text = c.text[:0]
	fn := c.activeFn
	c.mx.Unlock()
	c.clearSuggestions()
	c.render()

	if fn != nil {
		fn(true)
	}
}

// Deactivate exits input mode and returns to normal.
func (c *CmdBar) Deactivate() {
	c.mx.Lock()
	c.isActive = false
	c.mode = ModeNormal
	c.text = c.text[:0]
	fn := c.activeFn
	c.mx.Unlock()
	c.clearSuggestions()
	c.render()

	if fn != nil {
		fn(false)
	}
}

// execute runs the command. A search is already applied as it is typed.
func (c *CmdBar) execute() {
	text := strings.TrimSpace(c.GetText())

	c.mx.RLock()
	mode, fn := c.mode, c.cmdFn
	c.mx.RUnlock()
	if mode == ModeCommand && fn != nil && text != "" {
		fn(text)
	}

	c.Deactivate()
}

// cancel aborts the current input.
func (c *CmdBar) cancel() {
	c.mx.RLock()
	mode, fn := c.mode, c.cancelFn
	c.mx.RUnlock()
	if mode == ModeSearch && fn != nil {
		fn()
	}
	c.Deactivate()
}

// IsActive returns whether the command bar is accepting input.
func (c *CmdBar) IsActive() bool {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return c.isActive
}

// Mode returns the current mode.
func (c *CmdBar) Mode() IndicatorMode {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return c.mode
}

// SetCommandFn sets the callback for command execution.
func (c *CmdBar) SetCommandFn(fn func(string)) {
	c.cmdFn = fn
}

// SetSearchFn sets the callback for search text changes.
func (c *CmdBar) SetSearchFn(fn func(string)) {
	c.searchFn = fn
}

// SetCancelFn sets the callback for when a search is cancelled.
func (c *CmdBar) SetCancelFn(fn func()) {
	c.cancelFn = fn
}

// SetActiveFn sets the callback for when active state changes.
func (c *CmdBar) SetActiveFn(fn func(bool)) {
	c.activeFn = fn
}
