package model1

import (
	"sort"
	"strings"

	"github.com/fvbommel/sortorder"
)

// Less returns true if v1 sorts before v2 in natural order.
func Less(v1, v2 string) bool {
	return sortorder.NaturalLess(strings.ToLower(v1), strings.ToLower(v2))
}

// SortOptions sorts options by display value in natural order.
func SortOptions(oo Options, lt LabelType) {
	sort.SliceStable(oo, func(i, j int) bool {
		di, _ := oo[i].Display(lt)
		dj, _ := oo[j].Display(lt)
		return Less(di, dj)
	})
}

// OptionsFrom builds sorted, de-duplicated options from raw values. Blank values are skipped.
func OptionsFrom(values []string) Options {
	seen := make(map[string]struct{}, len(values))
	oo := make(Options, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		oo = append(oo, Option{Value: v})
	}
	SortOptions(oo, LabelValue)
	return oo
}
