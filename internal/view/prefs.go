package view

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/wI2L/jsondiff"

	"github.com/passdesk/passdesk/internal/config/data"
	"github.com/passdesk/passdesk/internal/model1"
)

// ErrNoChanges is returned when two column sets have the same visibility.
var ErrNoChanges = errors.New("no changes detected")

// ColumnsPatch returns the JSON patch turning the visibility of before into after.
func ColumnsPatch(before, after model1.Columns) (string, error) {
	patch, err := jsondiff.Compare(visibility(before), visibility(after))
	if err != nil {
		return "", fmt.Errorf("failed to diff columns: %w", err)
	}
	if len(patch) == 0 {
		return "", ErrNoChanges
	}

	raw, err := json.Marshal(patch)
	if err != nil {
		return "", fmt.Errorf("failed to marshal patch: %w", err)
	}

	return string(raw), nil
}

func visibility(cc model1.Columns) map[string]bool {
	m := make(map[string]bool, len(cc))
	for _, c := range cc {
		m[c.Property] = c.IsChecked
	}
	return m
}

// ApplyViewPrefs checks the saved visible columns. Fixed columns stay checked
// and unknown properties are ignored.
func ApplyViewPrefs(cols model1.Columns, v *data.View) model1.Columns {
	out := cols.Clone()
	if v == nil || len(v.Columns) == 0 {
		return out
	}

	visible := make(map[string]struct{}, len(v.Columns))
	for _, p := range v.Columns {
		visible[p] = struct{}{}
	}
	for i := range out {
		_, ok := visible[out[i].Property]
		out[i].IsChecked = ok || out[i].IsFixed
	}

	return out
}

// PrefPageSize returns the saved page size when it is one of the offered sizes.
func PrefPageSize(v *data.View, sizes []int, fallback int) int {
	if v == nil || v.PageSize <= 0 {
		return fallback
	}
	for _, s := range sizes {
		if s == v.PageSize {
			return s
		}
	}
	return fallback
}
