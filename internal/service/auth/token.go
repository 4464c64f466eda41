package auth

import (
	"fmt"

	"github.com/google/uuid"
)

// TokenGenerator issues opaque session tokens.
type TokenGenerator interface {
	Generate() (string, error)
}

// UUIDTokenGenerator issues random (version 4) UUID strings.
type UUIDTokenGenerator struct{}

// Generate implements TokenGenerator.
func (UUIDTokenGenerator) Generate() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return id.String(), nil
}
