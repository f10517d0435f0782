package store

import (
	"errors"
	"strings"
)

// prefixSealer is a reversible stand-in for the AES sealer.
type prefixSealer struct{}

func (prefixSealer) Seal(plaintext string) (string, error) {
	return "sealed:" + plaintext, nil
}

func (prefixSealer) Open(sealed string) (string, error) {
	token, ok := strings.CutPrefix(sealed, "sealed:")
	if !ok {
		return "", errors.New("not sealed")
	}
	return token, nil
}
