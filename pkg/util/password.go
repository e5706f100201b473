package util

import (
	"crypto/rand"
	"encoding/base64"
	"math"
	"strings"
)

// Rough password strength estimate in bits, based on the
// character classes present.
func Entropy(password string) float64 {
	var digits, lower, upper, symbols bool

	for _, ch := range password {
		switch {
		case ch >= '0' && ch <= '9':
			digits = true
		case ch >= 'a' && ch <= 'z':
			lower = true
		case ch >= 'A' && ch <= 'Z':
			upper = true
		default:
			symbols = true
		}
	}

	var charset float64
	if digits {
		charset += 10
	}
	if lower {
		charset += 26
	}
	if upper {
		charset += 26
	}
	if symbols {
		charset += 33
	}

	return float64(len(password)) * math.Log2(charset)
}

func GenerateId(n int) (string, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}

	id := base64.URLEncoding.EncodeToString(b)
	id = strings.ReplaceAll(id, "-", "a")
	id = strings.ReplaceAll(id, "_", "b")
	id = strings.ReplaceAll(id, "=", "c")

	return id, err
}
