package postgres

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSchema(t *testing.T) {
	t.Run("executes the embedded schema", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`create table if not exists items`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, EnsureSchema(db))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates execution errors", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		boom := errors.New("permission denied")
		mock.ExpectExec(`create table if not exists items`).WillReturnError(boom)

		err = EnsureSchema(db)
		assert.ErrorIs(t, err, boom)
	})
}
