package utils

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// CodeAlphabet has no I, O, 1, 0 to avoid confusion when codes are read
// aloud or handwritten at the door.
const CodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateID draws a ticket code of exactly length characters, uniformly
// from CodeAlphabet.
func GenerateID(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = CodeAlphabet[rand.IntN(len(CodeAlphabet))]
	}
	return string(b)
}

// NewUUID returns a fresh opaque record id.
func NewUUID() string {
	return uuid.New().String()
}
