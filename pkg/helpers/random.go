package helpers

import (
	"crypto/rand"
	"io"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// bytes at or above this bound are rejected so b%62 stays uniform
const alphanumericBound = 256 - 256%len(alphanumeric)

// RandomString returns n characters drawn from [A-Za-z0-9].
// r is the entropy source; nil means crypto/rand.
func RandomString(r io.Reader, n int) (string, error) {
	if r == nil {
		r = rand.Reader
	}
	out := make([]byte, 0, n)
	buf := make([]byte, n)
	for len(out) < n {
		chunk := buf[:n-len(out)]
		if _, err := io.ReadFull(r, chunk); err != nil {
			return "", err
		}
		for _, b := range chunk {
			if int(b) >= alphanumericBound {
				continue
			}
			out = append(out, alphanumeric[int(b)%len(alphanumeric)])
		}
	}
	return string(out), nil
}
