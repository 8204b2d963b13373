package container

import (
	"errors"
	"fmt"
	"io"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// maxIDAttempts bounds how many candidates generateID draws before giving up.
const maxIDAttempts = 32

// ErrIDExhausted is returned when no free id could be drawn.
var ErrIDExhausted = errors.New("container: could not generate a free instance id")

// generateID draws random lowercase alphanumeric ids until one is free in
// bucket (must hold mu).
func (c *Container) generateID(bucket map[string]Instance) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := randomID(c.random, c.idLength)
		if err != nil {
			return "", err
		}
		if _, taken := bucket[id]; !taken {
			return id, nil
		}
	}
	return "", ErrIDExhausted
}

// randomID reads n characters from idAlphabet. Bytes at or above the
// largest multiple of the alphabet size are rejected to keep the draw
// uniform.
func randomID(r io.Reader, n int) (string, error) {
	const limit = 256 - 256%len(idAlphabet)

	out := make([]byte, 0, n)
	buf := make([]byte, n)
	for len(out) < n {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", fmt.Errorf("container: read random id: %w", err)
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, idAlphabet[int(b)%len(idAlphabet)])
			if len(out) == n {
				break
			}
		}
	}
	return string(out), nil
}
