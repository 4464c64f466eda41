package auth

import (
	"errors"

	"github.com/phrazzld/contacts-api/internal/domain"
)

// ErrUnauthorized is returned for rejected credentials and unknown or missing
// session tokens. The message is identical in every case so callers cannot
// tell which part of a login was wrong.
var ErrUnauthorized = domain.NewUnauthorizedError("Unauthorized")

// ErrPasswordMismatch is returned by PasswordVerifier.Compare when the
// password does not match the hash. Any other Compare error is a failure to
// verify, not a wrong password.
var ErrPasswordMismatch = errors.New("password does not match")
