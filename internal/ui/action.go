// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of passdesk

package ui

import (
	"sort"
	"sync"

	"github.com/derailed/tcell/v2"
)

// Rune keys usable as KeyMap keys.
const (
	KeySpace    tcell.Key = ' '
	KeySlash    tcell.Key = '/'
	KeyColon    tcell.Key = ':'
	KeyQuestion tcell.Key = '?'
	KeyA        tcell.Key = 'a'
	KeyC        tcell.Key = 'c'
	KeyF        tcell.Key = 'f'
	KeyJ        tcell.Key = 'j'
	KeyN        tcell.Key = 'n'
	KeyP        tcell.Key = 'p'
	KeyQ        tcell.Key = 'q'
	KeyR        tcell.Key = 'r'
	KeyS        tcell.Key = 's'
	KeyW        tcell.Key = 'w'
	KeyX        tcell.Key = 'x'
	KeyY        tcell.Key = 'y'

	KeyShiftJ tcell.Key = 'J'
)

// ActionHandler handles a keyboard event.
type ActionHandler func(*tcell.EventKey) *tcell.EventKey

// KeyAction represents a keyboard action.
type KeyAction struct {
	Description string
	Action      ActionHandler
	Visible     bool
}

// NewKeyAction returns a new keyboard action.
func NewKeyAction(d string, a ActionHandler, visible bool) KeyAction {
	return KeyAction{Description: d, Action: a, Visible: visible}
}

// KeyMap tracks key to action mappings.
type KeyMap map[tcell.Key]KeyAction

// KeyActions tracks the actions bound to a component.
type KeyActions struct {
	actions KeyMap
	mx      sync.RWMutex
}

// NewKeyActions returns an empty action set.
func NewKeyActions() *KeyActions {
	return &KeyActions{actions: make(KeyMap)}
}

// Add binds an action to a key.
func (a *KeyActions) Add(k tcell.Key, ka KeyAction) {
	a.mx.Lock()
	defer a.mx.Unlock()

	a.actions[k] = ka
}

// Bulk binds several actions at once.
func (a *KeyActions) Bulk(km KeyMap) {
	a.mx.Lock()
	defer a.mx.Unlock()

	for k, v := range km {
		a.actions[k] = v
	}
}

// Get returns the action bound to a key.
func (a *KeyActions) Get(k tcell.Key) (KeyAction, bool) {
	a.mx.RLock()
	defer a.mx.RUnlock()

	ka, ok := a.actions[k]
	return ka, ok
}

// Delete unbinds keys.
func (a *KeyActions) Delete(kk ...tcell.Key) {
	a.mx.Lock()
	defer a.mx.Unlock()

	for _, k := range kk {
		delete(a.actions, k)
	}
}

// Len returns the number of bound keys.
func (a *KeyActions) Len() int {
	a.mx.RLock()
	defer a.mx.RUnlock()

	return len(a.actions)
}

// Hints returns the menu hints of the visible actions.
func (a *KeyActions) Hints() MenuHints {
	a.mx.RLock()
	defer a.mx.RUnlock()

	hh := make(MenuHints, 0, len(a.actions))
	for k, v := range a.actions {
		hh = append(hh, MenuHint{
			Mnemonic:    KeyName(k),
			Description: v.Description,
			Visible:     v.Visible,
		})
	}
	sort.Sort(hh)

	return hh
}

// Handle dispatches an event to its bound action.
// Rune events are looked up by their rune.
func (a *KeyActions) Handle(evt *tcell.EventKey) (*tcell.EventKey, bool) {
	k := evt.Key()
	if k == tcell.KeyRune {
		k = tcell.Key(evt.Rune())
	}
	ka, ok := a.Get(k)
	if !ok || ka.Action == nil {
		return evt, false
	}
	return ka.Action(evt), true
}

// KeyName returns the display name of a key.
func KeyName(k tcell.Key) string {
	if k == KeySpace {
		return "space"
	}
	if n, ok := tcell.KeyNames[k]; ok {
		return n
	}
	return string(rune(k))
}
