package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
)

// VerificationCode returns a 4-digit numeric code. Collisions across
// users are possible and accepted; the code is checked per account.
func VerificationCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "0000"
	}
	return fmt.Sprintf("%04d", n.Int64())
}

// ResetToken returns a 256-bit opaque token, hex-encoded.
func ResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
