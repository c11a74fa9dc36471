package types

import "fmt"

// AssignedFilter narrows a queue projection by assignment relationship
// to the requesting actor
type AssignedFilter string

const (
	AssignedFilterAll        AssignedFilter = "all"
	AssignedFilterSelf       AssignedFilter = "self"
	AssignedFilterOther      AssignedFilter = "other"
	AssignedFilterUnassigned AssignedFilter = "unassigned"
)

// IsValid checks if the assigned filter is valid
func (f AssignedFilter) IsValid() bool {
	switch f {
	case AssignedFilterAll, AssignedFilterSelf, AssignedFilterOther, AssignedFilterUnassigned:
		return true
	default:
		return false
	}
}

// Normalize returns the filter, treating empty as AssignedFilterAll
func (f AssignedFilter) Normalize() AssignedFilter {
	if f == "" {
		return AssignedFilterAll
	}
	return f
}

// String returns the string representation of the assigned filter
func (f AssignedFilter) String() string {
	return string(f)
}

// ParseAssignedFilter parses a string into an AssignedFilter
func ParseAssignedFilter(s string) (AssignedFilter, error) {
	f := AssignedFilter(s)
	if !f.IsValid() {
		return "", fmt.Errorf("invalid assigned filter: %s", s)
	}
	return f, nil
}
