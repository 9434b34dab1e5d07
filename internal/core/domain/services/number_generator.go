package services

import (
	"fmt"
	"math/rand/v2"
)

// GenerateOrderNumber derives a display order number from a persistence
// identifier. The identifier is zero-padded to at least 8 digits and split
// into a leading 4-digit group and the remainder, then a random 4-digit
// suffix is appended: "0000-0042-7311". A non-empty prefix is prepended with
// a dash: "WEB-0000-0042-7311".
//
// The random suffix means the generator alone cannot guarantee global
// uniqueness; the order store enforces uniqueness of the number column and a
// collision surfaces as a write error to the caller.
func GenerateOrderNumber(orderID int64, prefix string) string {
	padded := fmt.Sprintf("%08d", orderID)
	suffix := 1000 + rand.IntN(9000)

	number := fmt.Sprintf("%s-%s-%d", padded[:4], padded[4:], suffix)
	if prefix != "" {
		number = prefix + "-" + number
	}
	return number
}
