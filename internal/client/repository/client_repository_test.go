package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ridloal/rodamientos-backoffice/internal/client/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clientColumns = []string{"id", "nit", "created_at", "updated_at", "person_id", "first_name", "last_name", "phone"}

func TestPostgresClientRepository_UpsertClient(t *testing.T) {
	ctx := context.TODO()
	now := time.Now()

	t.Run("Existing client keeps stored fields the request leaves empty", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewPostgresClientRepository(db)

		sqlMock.ExpectQuery("SELECT id, person_id FROM clients WHERE nit = .+ FOR UPDATE").
			WithArgs("4455667").
			WillReturnRows(sqlmock.NewRows([]string{"id", "person_id"}).AddRow(10, 20))
		sqlMock.ExpectExec(regexp.QuoteMeta("first_name = COALESCE(NULLIF($2, ''), first_name)")).
			WithArgs(20, "", "Rojas", "").
			WillReturnResult(sqlmock.NewResult(0, 1))
		sqlMock.ExpectExec("UPDATE clients SET updated_at").
			WithArgs(10).
			WillReturnResult(sqlmock.NewResult(0, 1))
		sqlMock.ExpectQuery("WHERE c.id = ").
			WithArgs(10).
			WillReturnRows(sqlmock.NewRows(clientColumns).AddRow(10, "4455667", now, now, 20, "Ana", "Rojas", "70000000"))

		c, err := repo.UpsertClient(ctx, db, domain.ClientRequest{NIT: "4455667", LastName: "Rojas"})
		require.NoError(t, err)
		assert.Equal(t, "Ana", c.Person.FirstName)
		assert.Equal(t, "70000000", c.Person.Phone)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("New client inserts person then client", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewPostgresClientRepository(db)

		sqlMock.ExpectQuery("SELECT id, person_id FROM clients").
			WithArgs("778899").
			WillReturnRows(sqlmock.NewRows([]string{"id", "person_id"}))
		sqlMock.ExpectQuery("INSERT INTO people").
			WithArgs("Luis", "Pérez", "").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(30))
		sqlMock.ExpectQuery("INSERT INTO clients").
			WithArgs("778899", 30).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
		sqlMock.ExpectQuery("WHERE c.id = ").
			WithArgs(11).
			WillReturnRows(sqlmock.NewRows(clientColumns).AddRow(11, "778899", now, now, 30, "Luis", "Pérez", ""))

		c, err := repo.UpsertClient(ctx, db, domain.ClientRequest{NIT: "778899", FirstName: "Luis", LastName: "Pérez"})
		require.NoError(t, err)
		assert.Equal(t, int64(11), c.ID)
		assert.Equal(t, "Luis Pérez", c.Person.FullName())
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("Concurrent insert of the same nit", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewPostgresClientRepository(db)

		sqlMock.ExpectQuery("SELECT id, person_id FROM clients").
			WillReturnRows(sqlmock.NewRows([]string{"id", "person_id"}))
		sqlMock.ExpectQuery("INSERT INTO people").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(31))
		sqlMock.ExpectQuery("INSERT INTO clients").
			WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err = repo.UpsertClient(ctx, db, domain.ClientRequest{NIT: "778899"})
		assert.ErrorIs(t, err, ErrClientConflict)
	})
}
