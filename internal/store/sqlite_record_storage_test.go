package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-shortage-keeper/internal/logger"
	"github.com/MKhiriev/go-shortage-keeper/models"
)

var (
	selectAccountsSQL = regexp.QuoteMeta("SELECT record_key, payload FROM records WHERE collection = ? ORDER BY record_key")
	deleteAccountsSQL = regexp.QuoteMeta("DELETE FROM records WHERE collection = ?")
	insertRecordsSQL  = regexp.QuoteMeta("INSERT INTO records (collection,record_key,payload) VALUES")
)

func newTestAccountSQLStorage(t *testing.T) (AccountStorage, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	l := logger.Nop()
	return NewSQLiteRecordStorage[models.Account](&DB{DB: conn, logger: l}, AccountsCollection, l), mock
}

func accountPayload(t *testing.T, a models.Account) string {
	t.Helper()
	b, err := json.Marshal(a)
	require.NoError(t, err)
	return string(b)
}

func TestSQLiteRecordStorage_Load(t *testing.T) {
	alice := models.Account{Name: "alice", HashedPassword: "h1"}
	admin := models.Account{Name: "admin", IsAdmin: true, HashedPassword: "h2"}

	t.Run("success", func(t *testing.T) {
		s, mock := newTestAccountSQLStorage(t)
		rows := sqlmock.NewRows([]string{"record_key", "payload"}).
			AddRow("admin", accountPayload(t, admin)).
			AddRow("alice", accountPayload(t, alice))
		mock.ExpectQuery(selectAccountsSQL).WithArgs("accounts").WillReturnRows(rows)

		got, err := s.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, map[string]models.Account{"alice": alice, "admin": admin}, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty collection", func(t *testing.T) {
		s, mock := newTestAccountSQLStorage(t)
		mock.ExpectQuery(selectAccountsSQL).WithArgs("accounts").
			WillReturnRows(sqlmock.NewRows([]string{"record_key", "payload"}))

		got, err := s.Load(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("query error", func(t *testing.T) {
		s, mock := newTestAccountSQLStorage(t)
		mock.ExpectQuery(selectAccountsSQL).WillReturnError(errors.New("disk I/O error"))

		got, err := s.Load(context.Background())
		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("undecodable payload", func(t *testing.T) {
		s, mock := newTestAccountSQLStorage(t)
		rows := sqlmock.NewRows([]string{"record_key", "payload"}).AddRow("alice", "{not json")
		mock.ExpectQuery(selectAccountsSQL).WillReturnRows(rows)

		got, err := s.Load(context.Background())
		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrPersistenceCorrupt)
	})

	t.Run("key mismatch", func(t *testing.T) {
		s, mock := newTestAccountSQLStorage(t)
		rows := sqlmock.NewRows([]string{"record_key", "payload"}).AddRow("bob", accountPayload(t, alice))
		mock.ExpectQuery(selectAccountsSQL).WillReturnRows(rows)

		got, err := s.Load(context.Background())
		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrPersistenceCorrupt)
	})

	t.Run("row error", func(t *testing.T) {
		s, mock := newTestAccountSQLStorage(t)
		rows := sqlmock.NewRows([]string{"record_key", "payload"}).
			AddRow("alice", accountPayload(t, alice)).
			RowError(0, errors.New("broken row"))
		mock.ExpectQuery(selectAccountsSQL).WillReturnRows(rows)

		got, err := s.Load(context.Background())
		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrScanningRows)
	})
}

func TestSQLiteRecordStorage_Save(t *testing.T) {
	alice := models.Account{Name: "alice", HashedPassword: "h1"}
	bob := models.Account{Name: "bob", HashedPassword: "h2"}
	records := map[string]models.Account{"bob": bob, "alice": alice}

	t.Run("replaces collection in one transaction", func(t *testing.T) {
		s, mock := newTestAccountSQLStorage(t)
		mock.ExpectBegin()
		mock.ExpectExec(deleteAccountsSQL).WithArgs("accounts").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(insertRecordsSQL).
			WithArgs("accounts", "alice", accountPayload(t, alice), "accounts", "bob", accountPayload(t, bob)).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		require.NoError(t, s.Save(context.Background(), records))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty map only clears", func(t *testing.T) {
		s, mock := newTestAccountSQLStorage(t)
		mock.ExpectBegin()
		mock.ExpectExec(deleteAccountsSQL).WithArgs("accounts").WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectCommit()

		require.NoError(t, s.Save(context.Background(), map[string]models.Account{}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin error", func(t *testing.T) {
		s, mock := newTestAccountSQLStorage(t)
		mock.ExpectBegin().WillReturnError(errors.New("cannot begin"))

		err := s.Save(context.Background(), records)
		assert.ErrorIs(t, err, ErrBeginningTransaction)
	})

	t.Run("insert error rolls back", func(t *testing.T) {
		s, mock := newTestAccountSQLStorage(t)
		mock.ExpectBegin()
		mock.ExpectExec(deleteAccountsSQL).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(insertRecordsSQL).WillReturnError(errors.New("constraint failed"))
		mock.ExpectRollback()

		err := s.Save(context.Background(), records)
		assert.ErrorIs(t, err, ErrExecutingStatement)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("commit error", func(t *testing.T) {
		s, mock := newTestAccountSQLStorage(t)
		mock.ExpectBegin()
		mock.ExpectExec(deleteAccountsSQL).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(insertRecordsSQL).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit().WillReturnError(errors.New("database is locked"))

		err := s.Save(context.Background(), records)
		assert.ErrorIs(t, err, ErrCommitingTransaction)
	})
}

func TestSQLiteRecordStorage_SaveInBatches(t *testing.T) {
	records := make(map[string]models.Account, maxRecordsPerInsert+1)
	for i := range maxRecordsPerInsert + 1 {
		name := fmt.Sprintf("user%04d", i)
		records[name] = models.Account{Name: name, HashedPassword: "h"}
	}
	last := records[fmt.Sprintf("user%04d", maxRecordsPerInsert)]
	singleRowInsertSQL := regexp.QuoteMeta("INSERT INTO records (collection,record_key,payload) VALUES (?,?,?)") + "$"

	t.Run("every batch runs in the same transaction", func(t *testing.T) {
		s, mock := newTestAccountSQLStorage(t)
		mock.ExpectBegin()
		mock.ExpectExec(deleteAccountsSQL).WithArgs("accounts").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(insertRecordsSQL).WillReturnResult(sqlmock.NewResult(0, maxRecordsPerInsert))
		mock.ExpectExec(singleRowInsertSQL).
			WithArgs("accounts", last.Name, accountPayload(t, last)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, s.Save(context.Background(), records))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed later batch rolls back", func(t *testing.T) {
		s, mock := newTestAccountSQLStorage(t)
		mock.ExpectBegin()
		mock.ExpectExec(deleteAccountsSQL).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(insertRecordsSQL).WillReturnResult(sqlmock.NewResult(0, maxRecordsPerInsert))
		mock.ExpectExec(singleRowInsertSQL).WillReturnError(errors.New("disk I/O error"))
		mock.ExpectRollback()

		err := s.Save(context.Background(), records)
		assert.ErrorIs(t, err, ErrExecutingStatement)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
