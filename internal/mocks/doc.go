// Package mocks provides centralized mock implementations for testing.
//
// Each mock has function fields that override a single method, and an
// in-memory default behaviour that mirrors the real PostgreSQL store closely
// enough for service and handler tests to exercise ownership and paging
// rules without a database.
//
// Usage:
//
//	users := mocks.NewMockUserStore()
//	users.GetByTokenFn = func(ctx context.Context, token string) (*domain.User, error) {
//	    return nil, errors.New("connection refused")
//	}
package mocks
