package service

import (
	"errors"

	"github.com/phrazzld/contacts-api/internal/domain"
)

// isExpected reports whether err is a classified client-facing condition
// rather than an infrastructure failure. Expected errors are logged at debug.
func isExpected(err error) bool {
	var de *domain.Error
	return errors.As(err, &de) && !errors.Is(err, domain.ErrInternal)
}
