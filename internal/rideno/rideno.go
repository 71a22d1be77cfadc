// Package rideno derives the human-scannable "ride number" shown next to
// a shipment: the sum of the UTF-16 code units of the shipment identifier.
// It is collision-prone and display-only; never use it for lookups.
package rideno

import "unicode/utf16"

func Checksum(id string) int {
	sum := 0
	for _, u := range utf16.Encode([]rune(id)) {
		sum += int(u)
	}
	return sum
}
