package catalog

import "fmt"

type SortOrder int

const (
	SortNone SortOrder = iota
	SortAsc
	SortDesc
)

// ParseSortOrder accepts "", "asc" and "desc".
func ParseSortOrder(s string) (SortOrder, error) {
	switch s {
	case "":
		return SortNone, nil
	case "asc", "ASC":
		return SortAsc, nil
	case "desc", "DESC":
		return SortDesc, nil
	}
	return SortNone, fmt.Errorf("unknown sort order %q", s)
}

// orderBy maps each order to a fixed clause; nothing caller-supplied reaches SQL.
func (o SortOrder) orderBy() string {
	switch o {
	case SortAsc:
		return " ORDER BY Rating ASC, ReviewID"
	case SortDesc:
		return " ORDER BY Rating DESC, ReviewID"
	default:
		return " ORDER BY ReviewID"
	}
}
