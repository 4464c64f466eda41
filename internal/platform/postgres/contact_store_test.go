package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/platform/postgres"
	"github.com/phrazzld/contacts-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var contactRowColumns = []string{"id", "first_name", "last_name", "email", "phone", "username"}

func TestContactStore_Create(t *testing.T) {
	t.Run("success sets id", func(t *testing.T) {
		mock := newMockPool(t)
		contact := &domain.Contact{
			FirstName: "Jane",
			LastName:  strPtr("Doe"),
			Email:     strPtr("jane@example.com"),
			Username:  "alice",
		}
		mock.ExpectQuery(`INSERT INTO contacts \(first_name, last_name, email, phone, username\)`).
			WithArgs("Jane", strPtr("Doe"), strPtr("jane@example.com"), (*string)(nil), "alice").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(42)))

		require.NoError(t, postgres.NewContactStore(mock, nil).Create(context.Background(), contact))
		assert.Equal(t, int64(42), contact.ID)
	})

	t.Run("database error", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(`INSERT INTO contacts`).
			WithArgs("Jane", (*string)(nil), (*string)(nil), (*string)(nil), "alice").
			WillReturnError(errors.New("connection reset"))

		err := postgres.NewContactStore(mock, nil).Create(context.Background(),
			&domain.Contact{FirstName: "Jane", Username: "alice"})
		var storeErr *store.StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, "contact", storeErr.Entity)
	})
}

func TestContactStore_Get(t *testing.T) {
	t.Run("owned contact", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(`SELECT id, first_name, last_name, email, phone, username FROM contacts WHERE id = \$1 AND username = \$2`).
			WithArgs(int64(7), "alice").
			WillReturnRows(pgxmock.NewRows(contactRowColumns).
				AddRow(int64(7), "Jane", strPtr("Doe"), nil, strPtr("555"), "alice"))

		c, err := postgres.NewContactStore(mock, nil).Get(context.Background(), "alice", 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), c.ID)
		assert.Equal(t, "Jane", c.FirstName)
		assert.Equal(t, "Doe", *c.LastName)
		assert.Nil(t, c.Email)
		assert.Equal(t, "555", *c.Phone)
	})

	t.Run("other user's contact is not found", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(`FROM contacts WHERE id = \$1 AND username = \$2`).
			WithArgs(int64(7), "bob").
			WillReturnRows(pgxmock.NewRows(contactRowColumns))

		_, err := postgres.NewContactStore(mock, nil).Get(context.Background(), "bob", 7)
		assert.ErrorIs(t, err, store.ErrContactNotFound)
		assert.Equal(t, "contact is not found", err.Error())
	})
}

func TestContactStore_Update(t *testing.T) {
	contact := &domain.Contact{ID: 7, FirstName: "Janet", Phone: strPtr("555"), Username: "alice"}

	t.Run("updated", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec(`UPDATE contacts SET first_name = \$1, last_name = \$2, email = \$3, phone = \$4 WHERE id = \$5 AND username = \$6`).
			WithArgs("Janet", (*string)(nil), (*string)(nil), strPtr("555"), int64(7), "alice").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, postgres.NewContactStore(mock, nil).Update(context.Background(), contact))
	})

	t.Run("no matching row", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec(`UPDATE contacts`).
			WithArgs("Janet", (*string)(nil), (*string)(nil), strPtr("555"), int64(7), "alice").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := postgres.NewContactStore(mock, nil).Update(context.Background(), contact)
		assert.ErrorIs(t, err, store.ErrContactNotFound)
	})
}

func TestContactStore_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec(`DELETE FROM contacts WHERE id = \$1 AND username = \$2`).
			WithArgs(int64(7), "alice").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, postgres.NewContactStore(mock, nil).Delete(context.Background(), "alice", 7))
	})

	t.Run("not owned", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec(`DELETE FROM contacts`).
			WithArgs(int64(7), "bob").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := postgres.NewContactStore(mock, nil).Delete(context.Background(), "bob", 7)
		assert.ErrorIs(t, err, store.ErrContactNotFound)
	})
}

func TestContactStore_Search(t *testing.T) {
	tests := []struct {
		name      string
		filter    domain.ContactFilter
		page      domain.PageRequest
		setupMock func(mock pgxmock.PgxPoolIface)
		wantIDs   []int64
		wantTotal int64
	}{
		{
			name: "owner only",
			page: domain.PageRequest{Page: 1, Size: 10},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM contacts WHERE username = \$1$`).
					WithArgs("alice").
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))
				mock.ExpectQuery(`FROM contacts WHERE username = \$1 ORDER BY id LIMIT \$2 OFFSET \$3`).
					WithArgs("alice", 10, 0).
					WillReturnRows(pgxmock.NewRows(contactRowColumns).
						AddRow(int64(1), "Jane", nil, nil, nil, "alice").
						AddRow(int64(2), "John", nil, nil, nil, "alice"))
			},
			wantIDs:   []int64{1, 2},
			wantTotal: 2,
		},
		{
			name:   "name matches first or last name",
			filter: domain.ContactFilter{Name: strPtr("jo")},
			page:   domain.PageRequest{Page: 1, Size: 10},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM contacts WHERE username = \$1 AND \(first_name ILIKE \$2 OR last_name ILIKE \$2\)`).
					WithArgs("alice", "%jo%").
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
				mock.ExpectQuery(`AND \(first_name ILIKE \$2 OR last_name ILIKE \$2\) ORDER BY id LIMIT \$3 OFFSET \$4`).
					WithArgs("alice", "%jo%", 10, 0).
					WillReturnRows(pgxmock.NewRows(contactRowColumns).
						AddRow(int64(2), "John", nil, nil, nil, "alice"))
			},
			wantIDs:   []int64{2},
			wantTotal: 1,
		},
		{
			name:   "all criteria on a later page",
			filter: domain.ContactFilter{Name: strPtr("j"), Email: strPtr("example"), Phone: strPtr("55_")},
			page:   domain.PageRequest{Page: 3, Size: 10},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`WHERE username = \$1 AND \(first_name ILIKE \$2 OR last_name ILIKE \$2\) AND email ILIKE \$3 AND phone ILIKE \$4$`).
					WithArgs("alice", "%j%", "%example%", `%55\_%`).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(25)))
				mock.ExpectQuery(`phone ILIKE \$4 ORDER BY id LIMIT \$5 OFFSET \$6`).
					WithArgs("alice", "%j%", "%example%", `%55\_%`, 10, 20).
					WillReturnRows(pgxmock.NewRows(contactRowColumns).
						AddRow(int64(21), "Jo", nil, strPtr("jo@example.com"), strPtr("555"), "alice").
						AddRow(int64(22), "Jay", nil, strPtr("jay@example.com"), strPtr("556"), "alice").
						AddRow(int64(23), "Jim", nil, strPtr("jim@example.com"), strPtr("557"), "alice").
						AddRow(int64(24), "Jun", nil, strPtr("jun@example.com"), strPtr("558"), "alice").
						AddRow(int64(25), "Jax", nil, strPtr("jax@example.com"), strPtr("559"), "alice"))
			},
			wantIDs:   []int64{21, 22, 23, 24, 25},
			wantTotal: 25,
		},
		{
			name:   "empty email filter still requires an email",
			filter: domain.ContactFilter{Email: strPtr("")},
			page:   domain.PageRequest{Page: 1, Size: 10},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`WHERE username = \$1 AND email ILIKE \$2$`).
					WithArgs("alice", "%%").
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
				mock.ExpectQuery(`email ILIKE \$2 ORDER BY id LIMIT \$3 OFFSET \$4`).
					WithArgs("alice", "%%", 10, 0).
					WillReturnRows(pgxmock.NewRows(contactRowColumns).
						AddRow(int64(3), "Eve", nil, strPtr("eve@example.com"), nil, "alice"))
			},
			wantIDs:   []int64{3},
			wantTotal: 1,
		},
		{
			name: "empty result",
			page: domain.PageRequest{Page: 1, Size: 10},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM contacts`).
					WithArgs("alice").
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
				mock.ExpectQuery(`ORDER BY id LIMIT`).
					WithArgs("alice", 10, 0).
					WillReturnRows(pgxmock.NewRows(contactRowColumns))
			},
			wantIDs:   []int64{},
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			tt.setupMock(mock)

			contacts, total, err := postgres.NewContactStore(mock, nil).
				Search(context.Background(), "alice", tt.filter, tt.page)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)

			ids := make([]int64, 0, len(contacts))
			for _, c := range contacts {
				assert.Equal(t, "alice", c.Username)
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestContactStore_SearchCountError(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM contacts`).
		WithArgs("alice").
		WillReturnError(errors.New("statement timeout"))

	_, _, err := postgres.NewContactStore(mock, nil).
		Search(context.Background(), "alice", domain.ContactFilter{}, domain.PageRequest{Page: 1, Size: 10})
	require.Error(t, err)
	assert.False(t, store.IsNotFoundError(err))
	assert.Contains(t, err.Error(), "failed to count contacts")
}
