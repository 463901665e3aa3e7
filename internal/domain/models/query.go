package models

import "math"

// ListFilter holds the parsed list-query parameters shared by every list endpoint.
// Filters that are nil or empty are not applied.
type ListFilter struct {
	Search    string
	Published *bool
	Type      GaleriType
	Status    LaporanStatus
	Page      int
	Limit     int
}

// Offset saturates at math.MaxInt instead of wrapping.
func (f ListFilter) Offset() int {
	if f.Page < 1 || f.Limit < 1 {
		return 0
	}
	if f.Page-1 > math.MaxInt/f.Limit {
		return math.MaxInt
	}
	return (f.Page - 1) * f.Limit
}
