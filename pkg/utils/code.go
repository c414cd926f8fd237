package utils

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	// CodeExpiration is how long a reservation code stays redeemable.
	CodeExpiration = time.Hour

	codeMin  = 1000000
	codeSpan = 9000000
)

// GenerateReservationCode returns a 7-digit numeric confirmation code
// in [1000000, 9999999]. Uniqueness is enforced by the unique index on
// the codes table; callers retry on collision.
func GenerateReservationCode() string {
	return fmt.Sprintf("%d", codeMin+rand.Intn(codeSpan))
}
