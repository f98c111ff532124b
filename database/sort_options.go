package database

import (
	"sort"

	"github.com/facette/natsort"
)

const (
	SortIDAsc   = "id_asc"
	SortNameAsc = "name_asc"
	SortNameNat = "name_nat"
	SortAgeAsc  = "age_asc"
	SortAgeDesc = "age_desc"
)

const DefaultSortOrder = SortIDAsc

// IsValidSortOrder checks if a string is a valid sort order constant
func IsValidSortOrder(order string) bool {
	switch order {
	case SortIDAsc, SortNameAsc, SortNameNat, SortAgeAsc, SortAgeDesc:
		return true
	default:
		return false
	}
}

// OrderClause returns the ORDER BY applied in SQL. Natural ordering happens
// in memory afterwards, so it reads rows in id order.
func OrderClause(order string) string {
	switch order {
	case SortNameAsc:
		return "name ASC, id ASC"
	case SortAgeAsc:
		return "age ASC, id ASC"
	case SortAgeDesc:
		return "age DESC, id ASC"
	default:
		return "id ASC"
	}
}

// SortNatural orders items by name using natural ordering ("Ana 2" before "Ana 10").
func SortNatural[T any](items []T, name func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		return natsort.Compare(name(items[i]), name(items[j]))
	})
}
