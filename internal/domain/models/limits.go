package models

import "unicode/utf8"

// Column sizes of the bounded text fields.
const (
	MaxTitleLength = 255
	MaxNamaLength  = 255
	MaxPhoneLength = 32
)

// TooLong counts characters, not bytes, the way VARCHAR does.
func TooLong(s string, max int) bool {
	return utf8.RuneCountInString(s) > max
}
