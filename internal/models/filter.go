package models

import "strings"

// FilterAll is the sentinel criteria value that disables a predicate
const FilterAll = "all"

// FilterCriteria holds the user-entered list filters
type FilterCriteria struct {
	Search   string // matched against name or dex id
	Type     string // type name or FilterAll
	Category string // physical/special/status or FilterAll
}

// NewFilterCriteria returns criteria with every predicate disabled
func NewFilterCriteria() FilterCriteria {
	return FilterCriteria{
		Type:     FilterAll,
		Category: FilterAll,
	}
}

// Clear resets all criteria to the disabled state
func (c *FilterCriteria) Clear() {
	*c = NewFilterCriteria()
}

// IsActive reports whether any predicate is enabled
func (c FilterCriteria) IsActive() bool {
	return strings.TrimSpace(c.Search) != "" || !IsAll(c.Type) || !IsAll(c.Category)
}

// IsAll reports whether a criteria value disables its predicate.
// An empty value is treated the same as the sentinel.
func IsAll(value string) bool {
	value = strings.TrimSpace(value)
	return value == "" || strings.EqualFold(value, FilterAll)
}
