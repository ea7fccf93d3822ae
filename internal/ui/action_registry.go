// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of passdesk

package ui

import (
	"sync"

	"github.com/derailed/tcell/v2"
)

// RowAction describes how a named row action is bound.
type RowAction struct {
	Name        string    // Action name emitted with the click event
	Key         tcell.Key // Key binding
	Description string    // Menu hint
	Mutating    bool      // Disabled in read-only mode
}

var (
	rowActions = map[string]RowAction{}
	rowMx      sync.RWMutex
)

func init() {
	RegisterRowAction(RowAction{Name: "details", Key: tcell.KeyEnter, Description: "Details"})
	RegisterRowAction(RowAction{Name: "copy-id", Key: KeyY, Description: "Copy ID"})
}

// RegisterRowAction registers a row action binding.
func RegisterRowAction(a RowAction) {
	rowMx.Lock()
	defer rowMx.Unlock()

	rowActions[a.Name] = a
}

// RowActionsFor returns the bindings of the named actions, skipping unknown
// names and mutating actions when readOnly is set.
func RowActionsFor(names []string, readOnly bool) []RowAction {
	rowMx.RLock()
	defer rowMx.RUnlock()

	out := make([]RowAction, 0, len(names))
	for _, n := range names {
		a, ok := rowActions[n]
		if !ok || (readOnly && a.Mutating) {
			continue
		}
		out = append(out, a)
	}
	return out
}
