package utils

import (
	"crypto/rand"
	"math/big"
	"time"
)

// RandomInt returns a random number in [0, max).
func RandomInt(max int64) int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		// fallback: time-based entropy
		return time.Now().UnixNano() % max
	}
	return n.Int64()
}
